package transactions

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Key is the storage key holding the transaction collection.
const Key = "transactions"

// Repository reads and writes the transaction collection. Transactions are
// append-only from the application's perspective; no delete is exposed.
type Repository interface {
	GetAll(ctx context.Context) []Transaction
	SetAll(ctx context.Context, list []Transaction) error
	Seed(ctx context.Context) error
}

type repository struct {
	store *store.Store
}

// NewRepository binds a repository to the store.
func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) GetAll(ctx context.Context) []Transaction {
	return store.ReadOr(ctx, r.store, Key, []Transaction{})
}

func (r *repository) SetAll(ctx context.Context, list []Transaction) error {
	return r.store.Set(ctx, Key, list)
}

// Seed writes the demo dataset on first run only.
func (r *repository) Seed(ctx context.Context) error {
	exists, err := r.store.Exists(ctx, Key)
	if err != nil || exists {
		return err
	}
	return r.store.Set(ctx, Key, seedTransactions)
}
