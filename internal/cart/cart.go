package cart

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Key is the storage key holding the storefront cart.
const Key = "cart"

// Line is one product in the cart. Prices are not snapshotted here; the cart
// resolves against the live catalogue at checkout.
type Line struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

type Repository interface {
	Get(ctx context.Context) []Line
	Add(ctx context.Context, productID int64, qty int) error
	Remove(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) Get(ctx context.Context) []Line {
	return store.ReadOr(ctx, r.store, Key, []Line{})
}

// Add merges into an existing line for the same product.
func (r *repository) Add(ctx context.Context, productID int64, qty int) error {
	lines := r.Get(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty += qty
			return r.store.Set(ctx, Key, lines)
		}
	}
	return r.store.Set(ctx, Key, append(lines, Line{ProductID: productID, Qty: qty}))
}

func (r *repository) Remove(ctx context.Context, productID int64) error {
	lines := r.Get(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			return r.store.Set(ctx, Key, append(lines[:i:i], lines[i+1:]...))
		}
	}
	return nil
}

func (r *repository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, Key)
}
