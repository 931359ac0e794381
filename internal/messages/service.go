package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crownpanel/crownpanel/internal/shared"
)

// Filter values accepted by List. "all" (or "") returns everything.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterRead   = "read"
)

// Service owns the contact inbox.
type Service struct {
	repo     Repository
	confirm  shared.Confirmer
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, confirm shared.Confirmer) *Service {
	if confirm == nil {
		confirm = shared.AlwaysConfirm
	}
	return &Service{
		repo:     repo,
		confirm:  confirm,
		validate: validator.New(),
		now:      time.Now,
	}
}

// ComposeInput is the storefront contact form.
type ComposeInput struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string
	Subject    string `validate:"required"`
	Body       string `validate:"required"`
	Newsletter bool
}

// Compose validates the form and appends an unread message with a
// timestamp id.
func (s *Service) Compose(ctx context.Context, in ComposeInput) (Message, error) {
	if err := s.validate.Struct(in); err != nil {
		return Message{}, fmt.Errorf("messages: invalid input: %w", err)
	}
	m := Message{
		ID:         s.now().UnixMilli(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Subject:    in.Subject,
		Body:       in.Body,
		Date:       s.now(),
		Status:     StatusUnread,
		Newsletter: in.Newsletter,
	}
	if err := s.repo.SetAll(ctx, append(s.repo.GetAll(ctx), m)); err != nil {
		return Message{}, err
	}
	return m, nil
}

// List returns messages matching the read/unread filter, newest first.
func (s *Service) List(ctx context.Context, filter string) []Message {
	all := s.repo.GetAll(ctx)
	out := make([]Message, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		switch filter {
		case FilterUnread:
			if m.Status != StatusUnread {
				continue
			}
		case FilterRead:
			if m.Status != StatusRead {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// Counts reports the inbox headline: total and unread.
func (s *Service) Counts(ctx context.Context) (total, unread int) {
	for _, m := range s.repo.GetAll(ctx) {
		total++
		if m.Status == StatusUnread {
			unread++
		}
	}
	return total, unread
}

// Toggle flips a message between read and unread.
func (s *Service) Toggle(ctx context.Context, id int64) (Message, error) {
	list := s.repo.GetAll(ctx)
	for i := range list {
		if list[i].ID == id {
			if list[i].Status == StatusUnread {
				list[i].Status = StatusRead
			} else {
				list[i].Status = StatusUnread
			}
			if err := s.repo.SetAll(ctx, list); err != nil {
				return Message{}, err
			}
			return list[i], nil
		}
	}
	return Message{}, shared.ErrNotFound
}

// Delete removes a message after confirmation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	list := s.repo.GetAll(ctx)
	for i := range list {
		if list[i].ID == id {
			if !s.confirm.Confirm("Delete message", fmt.Sprintf("Remove the message from %s?", list[i].Sender())) {
				return shared.ErrDeclined
			}
			return s.repo.SetAll(ctx, append(list[:i:i], list[i+1:]...))
		}
	}
	return shared.ErrNotFound
}
