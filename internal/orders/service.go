package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crownpanel/crownpanel/internal/query"
	"github.com/crownpanel/crownpanel/internal/shared"
)

// Filter and sort keys understood by the order list view.
const (
	FilterStatus = "status"
	SortDate     = "date"
)

type Service struct {
	repo     Repository
	sync     *Syncer
	log      *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewService wires the order book. sync may be nil when the storefront runs
// without a back-office to mirror into.
func NewService(repo Repository, sync *Syncer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		sync:     sync,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// CheckoutInput is the storefront checkout form.
type CheckoutInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Address  string `validate:"required"`
	Notes    string
	Birthday string
	Items    []CheckoutItem `validate:"required,min=1,dive"`
}

// CheckoutItem is one cart line at checkout.
type CheckoutItem struct {
	ProductID int64   `validate:"required,gt=0"`
	Name      string  `validate:"required"`
	Price     float64 `validate:"gte=0"`
	Qty       int     `validate:"required,gt=0"`
}

// Place validates the checkout form, persists the order, and mirrors it into
// the back-office data. Sync failure is logged and swallowed: the customer's
// order stands regardless.
func (s *Service) Place(ctx context.Context, in CheckoutInput) (Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return Order{}, fmt.Errorf("orders: invalid checkout: %w", err)
	}

	var birthday shared.Date
	if in.Birthday != "" {
		b, err := shared.ParseDate(in.Birthday)
		if err != nil {
			return Order{}, fmt.Errorf("orders: invalid birthday: %w", err)
		}
		birthday = b
	}

	now := s.now()
	o := Order{
		ID:     now.UnixMilli(),
		Date:   shared.DateOf(now),
		Status: StatusPending,
		Customer: Customer{
			Name:     in.Name,
			Phone:    in.Phone,
			Address:  in.Address,
			Notes:    in.Notes,
			Birthday: birthday,
		},
	}
	for _, item := range in.Items {
		o.Items = append(o.Items, OrderItem{
			ID:    item.ProductID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
		})
		o.Total += item.Price * float64(item.Qty)
	}

	if err := s.repo.SetAll(ctx, append(s.repo.GetAll(ctx), o)); err != nil {
		return Order{}, err
	}

	if s.sync != nil {
		if err := s.sync.SyncToAdmin(ctx, o); err != nil {
			s.log.Warn("order placed but admin sync failed", "order_id", o.ID, "error", err)
		}
	}
	return o, nil
}

// List runs the order list view: search over the customer's name and the
// item names, status filter, date sort (ids carry the placement instant).
func (s *Service) List(ctx context.Context, st query.State) query.Result[Order] {
	binding := query.Binding[Order]{
		Text: func(o Order) []string {
			out := []string{o.Customer.Name}
			for _, item := range o.Items {
				out = append(out, item.Name)
			}
			return out
		},
		Fields: map[string]func(Order) string{
			FilterStatus: func(o Order) string { return string(o.Status) },
		},
		Compare: map[string]func(a, b Order) int{
			SortDate: func(a, b Order) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				}
				return 0
			},
		},
	}
	return query.Run(s.repo.GetAll(ctx), st, binding)
}

func (s *Service) Get(ctx context.Context, id int64) (Order, error) {
	for _, o := range s.repo.GetAll(ctx) {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, shared.ErrNotFound
}

// SetStatus moves an order to a new fulfilment state.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (Order, error) {
	list := s.repo.GetAll(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Status = ParseStatus(status)
			if err := s.repo.SetAll(ctx, list); err != nil {
				return Order{}, err
			}
			return list[i], nil
		}
	}
	return Order{}, shared.ErrNotFound
}
