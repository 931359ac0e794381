package messages

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Key is the storage key holding the message inbox.
const Key = "messages"

type Repository interface {
	GetAll(ctx context.Context) []Message
	SetAll(ctx context.Context, list []Message) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) GetAll(ctx context.Context) []Message {
	return store.ReadOr(ctx, r.store, Key, []Message{})
}

func (r *repository) SetAll(ctx context.Context, list []Message) error {
	return r.store.Set(ctx, Key, list)
}
