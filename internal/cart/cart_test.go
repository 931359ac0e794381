package cart

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRepository(store.NewWithClient(client))
}

func TestAddMergesLines(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.Add(ctx, 1, 2)
	repo.Add(ctx, 2, 1)
	repo.Add(ctx, 1, 3)

	lines := repo.Get(ctx)
	if len(lines) != 2 {
		t.Fatalf("expected merged lines, got %v", lines)
	}
	if lines[0].ProductID != 1 || lines[0].Qty != 5 {
		t.Fatalf("line not merged: %+v", lines[0])
	}
}

func TestRemoveAndClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.Add(ctx, 1, 1)
	repo.Add(ctx, 2, 1)

	if err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Remove(ctx, 99); err != nil {
		t.Fatalf("removing an absent line is not an error: %v", err)
	}
	if lines := repo.Get(ctx); len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("lines = %v", lines)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if lines := repo.Get(ctx); len(lines) != 0 {
		t.Fatalf("cart not cleared: %v", lines)
	}
}
