package products

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/shared"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRepository(store.NewWithClient(client))
}

func TestAddAssignsNextID(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	first, err := svc.Add(ctx, Product{Name: "Cup", Price: 18})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first id = %d", first.ID)
	}

	second, err := svc.Add(ctx, Product{Name: "Notebook", Price: 22})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second id = %d", second.ID)
	}
}

func TestAddUsesMaxExistingPlusOne(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	svc.Add(ctx, Product{Name: "A", Price: 1})
	svc.Add(ctx, Product{Name: "B", Price: 2})
	c, _ := svc.Add(ctx, Product{Name: "C", Price: 3})
	if _, err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	d, err := svc.Add(ctx, Product{Name: "D", Price: 4})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if d.ID != 3 {
		t.Fatalf("id must be max existing + 1, got %d", d.ID)
	}
}

func TestDeleteDeclined(t *testing.T) {
	repo := newTestRepo(t)
	decline := shared.ConfirmerFunc(func(string, string) bool { return false })
	svc := NewService(repo, decline)
	ctx := context.Background()

	p, _ := NewService(repo, nil).Add(ctx, Product{Name: "Cup", Price: 18})
	if _, err := svc.Delete(ctx, p.ID); !errors.Is(err, shared.ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if len(svc.List(ctx)) != 1 {
		t.Fatal("declined delete must leave the catalogue untouched")
	}
}

func TestValidation(t *testing.T) {
	svc := NewService(newTestRepo(t), nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, Product{Name: "  ", Price: 1}); err == nil {
		t.Fatal("blank name must be rejected")
	}
	if _, err := svc.Add(ctx, Product{Name: "X", Price: -1}); err == nil {
		t.Fatal("negative price must be rejected")
	}
	neg := -1
	if _, err := svc.Add(ctx, Product{Name: "X", Price: 1, Stock: &neg}); err == nil {
		t.Fatal("negative stock must be rejected")
	}
}

func TestRestoreKeepsIDOrder(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	svc.Add(ctx, Product{Name: "A", Price: 1})
	b, _ := svc.Add(ctx, Product{Name: "B", Price: 2})
	svc.Add(ctx, Product{Name: "C", Price: 3})

	deleted, err := svc.Delete(ctx, b.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Restore(ctx, deleted); err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := svc.List(ctx)
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("catalogue out of order after restore: %v", list)
		}
	}
}

func TestSeedIsFirstRunOnly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	seeded := repo.GetAll(ctx)
	if len(seeded) == 0 {
		t.Fatal("seed wrote nothing")
	}

	if err := repo.SetAll(ctx, []Product{{ID: 99, Name: "Only", Price: 5}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	got := repo.GetAll(ctx)
	if len(got) != 1 || got[0].ID != 99 {
		t.Fatalf("seed must never overwrite existing data, got %v", got)
	}
}
