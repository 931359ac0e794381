package clients

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crownpanel/crownpanel/internal/query"
	"github.com/crownpanel/crownpanel/internal/shared"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

// Filter names understood by the client list view.
const (
	FilterMonth  = "month"  // birthday month, "1".."12"
	FilterStatus = "status" // derived Active/Inactive
)

// Sort keys understood by the client list view.
const (
	SortName     = "name"
	SortBirthday = "birthday"
)

// Service owns client mutations and the client list view.
type Service struct {
	repo     Repository
	txs      transactions.Repository
	confirm  shared.Confirmer
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, txs transactions.Repository, confirm shared.Confirmer) *Service {
	if confirm == nil {
		confirm = shared.AlwaysConfirm
	}
	return &Service{
		repo:     repo,
		txs:      txs,
		confirm:  confirm,
		validate: validator.New(),
		now:      time.Now,
	}
}

// AddClientInput is the add-client form. Validation failures reject the
// mutation before anything is written.
type AddClientInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"required,email"`
	Birthday string `validate:"required"`
	Status   string
	Notes    string
	Items    []ItemInput `validate:"dive"`
}

// ItemInput is one picked product on the add-client form.
type ItemInput struct {
	ProductID int64   `validate:"required,gt=0"`
	Qty       int     `validate:"required,gt=0"`
	Price     float64 `validate:"gte=0"`
}

// Add validates the form, creates the client with a fresh id, snapshots the
// picked products, and appends one transaction per picked product.
func (s *Service) Add(ctx context.Context, in AddClientInput) (Client, error) {
	if err := s.validate.Struct(in); err != nil {
		return Client{}, fmt.Errorf("clients: invalid input: %w", err)
	}
	birthday, err := shared.ParseDate(in.Birthday)
	if err != nil {
		return Client{}, fmt.Errorf("clients: invalid birthday: %w", err)
	}
	status := in.Status
	if status == "" {
		status = string(StatusActive)
	}

	list := s.repo.GetAll(ctx)
	c := Client{
		ID:       NextID(list),
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Birthday: birthday,
		Status:   status,
		Notes:    in.Notes,
	}
	for _, item := range in.Items {
		c.ProductsPurchased = append(c.ProductsPurchased, PurchasedItem{
			ProductID:       item.ProductID,
			Qty:             item.Qty,
			PriceAtPurchase: item.Price,
		})
	}
	if err := s.repo.SetAll(ctx, append(list, c)); err != nil {
		return Client{}, err
	}

	if len(in.Items) > 0 {
		txs := s.txs.GetAll(ctx)
		nextID := transactions.NextID(txs)
		today := shared.DateOf(s.now())
		for i, item := range in.Items {
			txs = append(txs, transactions.Transaction{
				ID:              nextID + int64(i),
				ClientID:        c.ID,
				ProductID:       item.ProductID,
				Qty:             item.Qty,
				PriceAtPurchase: item.Price,
				Date:            today,
			})
		}
		if err := s.txs.SetAll(ctx, txs); err != nil {
			return Client{}, err
		}
	}
	return c, nil
}

// UpdateClientInput carries edits to an existing client. The purchase
// snapshot is not editable, and an empty Status leaves the stored value
// alone.
type UpdateClientInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"required,email"`
	Birthday string `validate:"required"`
	Status   string
	Notes    string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateClientInput) (Client, error) {
	if err := s.validate.Struct(in); err != nil {
		return Client{}, fmt.Errorf("clients: invalid input: %w", err)
	}
	birthday, err := shared.ParseDate(in.Birthday)
	if err != nil {
		return Client{}, fmt.Errorf("clients: invalid birthday: %w", err)
	}
	list := s.repo.GetAll(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Name = in.Name
			list[i].Phone = in.Phone
			list[i].Email = in.Email
			list[i].Birthday = birthday
			if in.Status != "" {
				list[i].Status = in.Status
			}
			list[i].Notes = in.Notes
			if err := s.repo.SetAll(ctx, list); err != nil {
				return Client{}, err
			}
			return list[i], nil
		}
	}
	return Client{}, shared.ErrNotFound
}

// Delete removes a client after confirmation. Their transaction history is
// left intact.
func (s *Service) Delete(ctx context.Context, id int64) error {
	list := s.repo.GetAll(ctx)
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return shared.ErrNotFound
	}
	if !s.confirm.Confirm("Delete Client", fmt.Sprintf("This will remove %s.", list[idx].Name)) {
		return shared.ErrDeclined
	}
	return s.repo.SetAll(ctx, append(list[:idx:idx], list[idx+1:]...))
}

func (s *Service) Get(ctx context.Context, id int64) (Client, error) {
	for _, c := range s.repo.GetAll(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, shared.ErrNotFound
}

// List runs the client list view: name search, birthday-month and derived
// status filters, name/birthday sort, pagination. The status filter matches
// the computed status, never the stored field.
func (s *Service) List(ctx context.Context, st query.State) query.Result[Client] {
	list := s.repo.GetAll(ctx)
	statusOf := StatusIndex(s.txs.GetAll(ctx), s.now())

	binding := query.Binding[Client]{
		Text: func(c Client) []string { return []string{c.Name} },
		Fields: map[string]func(Client) string{
			FilterMonth: func(c Client) string {
				if c.Birthday.IsZero() {
					return ""
				}
				return strconv.Itoa(int(c.Birthday.Month()))
			},
			FilterStatus: func(c Client) string { return string(statusOf(c.ID)) },
		},
		Compare: map[string]func(a, b Client) int{
			SortName:     func(a, b Client) int { return query.CompareStrings(a.Name, b.Name) },
			SortBirthday: func(a, b Client) int { return query.CompareTimes(a.Birthday.Time, b.Birthday.Time) },
		},
	}
	return query.Run(list, st, binding)
}

// StatusIndex returns the derived-status lookup over the current data, for
// callers that render many clients at once.
func (s *Service) StatusIndex(ctx context.Context) func(int64) Status {
	return StatusIndex(s.txs.GetAll(ctx), s.now())
}

// BirthdayEntry is one row of the birthday reminder list.
type BirthdayEntry struct {
	Client
	Days        int
	WindowStart time.Time
	WindowEnd   time.Time
}

// Birthdays lists clients with a known birthday, soonest first.
func (s *Service) Birthdays(ctx context.Context) []BirthdayEntry {
	now := s.now()
	var out []BirthdayEntry
	for _, c := range s.repo.GetAll(ctx) {
		if c.Birthday.IsZero() {
			continue
		}
		start, end := DiscountWindow(c.Birthday, now)
		out = append(out, BirthdayEntry{
			Client:      c,
			Days:        DaysUntilBirthday(c.Birthday, now),
			WindowStart: start,
			WindowEnd:   end,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}

// Purchases returns a client's transaction history and total spend.
func (s *Service) Purchases(ctx context.Context, id int64) ([]transactions.Transaction, float64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	var out []transactions.Transaction
	var total float64
	for _, t := range s.txs.GetAll(ctx) {
		if t.ClientID == id {
			out = append(out, t)
			total += t.PriceAtPurchase * float64(t.Qty)
		}
	}
	return out, total, nil
}
