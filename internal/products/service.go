package products

import (
	"context"
	"sort"

	"github.com/crownpanel/crownpanel/internal/shared"
)

// Service owns catalogue mutations. Destructive actions go through the
// Confirmer before touching the store.
type Service struct {
	repo    Repository
	confirm shared.Confirmer
}

func NewService(repo Repository, confirm shared.Confirmer) *Service {
	if confirm == nil {
		confirm = shared.AlwaysConfirm
	}
	return &Service{repo: repo, confirm: confirm}
}

func (s *Service) List(ctx context.Context) []Product {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	for _, p := range s.repo.GetAll(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, shared.ErrNotFound
}

func (s *Service) Add(ctx context.Context, p Product) (Product, error) {
	if err := s.validate(p); err != nil {
		return Product{}, err
	}
	list := s.repo.GetAll(ctx)
	p.ID = NextID(list)
	if err := s.repo.SetAll(ctx, append(list, p)); err != nil {
		return Product{}, err
	}
	return p, nil
}

// QuickAdd creates a minimal product from name and price alone, for the
// inline picker on the add-client form.
func (s *Service) QuickAdd(ctx context.Context, name string, price float64) (Product, error) {
	return s.Add(ctx, Product{Name: name, Price: price})
}

func (s *Service) Update(ctx context.Context, id int64, p Product) error {
	if err := s.validate(p); err != nil {
		return err
	}
	list := s.repo.GetAll(ctx)
	for i := range list {
		if list[i].ID == id {
			p.ID = id
			list[i] = p
			return s.repo.SetAll(ctx, list)
		}
	}
	return shared.ErrNotFound
}

// Delete removes a product after confirmation and returns the removed record
// so callers can offer undo. Historical transactions referencing the id are
// left untouched.
func (s *Service) Delete(ctx context.Context, id int64) (Product, error) {
	list := s.repo.GetAll(ctx)
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Product{}, shared.ErrNotFound
	}
	if !s.confirm.Confirm("Delete product", "This cannot be undone.") {
		return Product{}, shared.ErrDeclined
	}
	deleted := list[idx]
	next := append(list[:idx:idx], list[idx+1:]...)
	if err := s.repo.SetAll(ctx, next); err != nil {
		return Product{}, err
	}
	return deleted, nil
}

// Restore puts a deleted product back, keeping the catalogue ordered by id.
func (s *Service) Restore(ctx context.Context, p Product) error {
	list := append(s.repo.GetAll(ctx), p)
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return s.repo.SetAll(ctx, list)
}
