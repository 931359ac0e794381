package orders

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Key is the storage key holding the order collection.
const Key = "orders"

type Repository interface {
	GetAll(ctx context.Context) []Order
	SetAll(ctx context.Context, list []Order) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) GetAll(ctx context.Context) []Order {
	return store.ReadOr(ctx, r.store, Key, []Order{})
}

func (r *repository) SetAll(ctx context.Context, list []Order) error {
	return r.store.Set(ctx, Key, list)
}
