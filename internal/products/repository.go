package products

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Key is the storage key holding the product catalogue.
const Key = "products"

type Repository interface {
	GetAll(ctx context.Context) []Product
	SetAll(ctx context.Context, list []Product) error
	Seed(ctx context.Context) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) GetAll(ctx context.Context) []Product {
	return store.ReadOr(ctx, r.store, Key, []Product{})
}

func (r *repository) SetAll(ctx context.Context, list []Product) error {
	return r.store.Set(ctx, Key, list)
}

func (r *repository) Seed(ctx context.Context) error {
	exists, err := r.store.Exists(ctx, Key)
	if err != nil || exists {
		return err
	}
	return r.store.Set(ctx, Key, seedProducts)
}
