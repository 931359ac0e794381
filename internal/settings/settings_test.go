package settings

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

func TestGetLazyDefault(t *testing.T) {
	repo := newTestRepo(t)
	got := repo.Get(context.Background())
	if got.ProfitMargin != 0.3 || got.Currency != "USD" {
		t.Fatalf("unexpected default: %+v", got)
	}
}

func TestSaveClampsMargin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, Settings{ProfitMargin: 1.7, Currency: "EUR"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ProfitMargin != 1 {
		t.Fatalf("margin above 1 must clamp, got %v", saved.ProfitMargin)
	}

	saved, err = repo.Save(ctx, Settings{ProfitMargin: -0.2})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ProfitMargin != 0 {
		t.Fatalf("margin below 0 must clamp, got %v", saved.ProfitMargin)
	}
	if saved.Currency != "USD" {
		t.Fatalf("empty currency must default, got %q", saved.Currency)
	}

	if got := repo.Get(ctx); got != saved {
		t.Fatalf("read back %+v, want %+v", got, saved)
	}
}

func TestAvatarRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if got := repo.Avatar(ctx); got != "" {
		t.Fatalf("no avatar yet, got %q", got)
	}
	if err := repo.SetAvatar(ctx, "avatars/owner.png"); err != nil {
		t.Fatalf("set avatar: %v", err)
	}
	if got := repo.Avatar(ctx); got != "avatars/owner.png" {
		t.Fatalf("avatar = %q", got)
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Save(ctx, Settings{ProfitMargin: 0.5, Currency: "EUR"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := repo.Get(ctx); got.ProfitMargin != 0.5 {
		t.Fatalf("seed must not overwrite, got %+v", got)
	}
}
