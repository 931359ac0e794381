package stats

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/settings"
	"github.com/crownpanel/crownpanel/internal/shared"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	st := store.NewWithClient(client)
	svc := NewService(
		transactions.NewRepository(st),
		settings.NewRepository(st),
		clients.NewRepository(st),
		products.NewRepository(st),
	)
	return svc, st
}

func TestSummaryRevenueAndProfit(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	transactions.NewRepository(st).SetAll(ctx, []transactions.Transaction{
		{ID: 1, ClientID: 1, ProductID: 1, Qty: 2, PriceAtPurchase: 18},
		{ID: 2, ClientID: 2, ProductID: 3, Qty: 1, PriceAtPurchase: 8},
	})
	settings.NewRepository(st).Save(ctx, settings.Settings{ProfitMargin: 0.5, Currency: "EUR"})

	got := svc.Summary(ctx)
	if got.Revenue != 44 {
		t.Fatalf("revenue = %v", got.Revenue)
	}
	if got.Profit != 22 {
		t.Fatalf("profit = %v", got.Profit)
	}
	if got.Sales != 2 || got.Currency != "EUR" {
		t.Fatalf("summary = %+v", got)
	}
}

func TestSummaryTopProducts(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	products.NewRepository(st).SetAll(ctx, []products.Product{
		{ID: 1, Name: "Mug", Price: 12},
		{ID: 2, Name: "Candle", Price: 22},
		{ID: 3, Name: "Tote", Price: 25},
	})
	transactions.NewRepository(st).SetAll(ctx, []transactions.Transaction{
		{ID: 1, ClientID: 1, ProductID: 2, Qty: 3, PriceAtPurchase: 22}, // 66
		{ID: 2, ClientID: 1, ProductID: 1, Qty: 1, PriceAtPurchase: 12}, // 12
		{ID: 3, ClientID: 2, ProductID: 99, Qty: 1, PriceAtPurchase: 50},
	})

	got := svc.Summary(ctx)
	if len(got.TopProducts) != 3 {
		t.Fatalf("one row per catalogue product, got %+v", got.TopProducts)
	}
	if got.TopProducts[0].Name != "Candle" || got.TopProducts[0].Revenue != 66 {
		t.Fatalf("best seller wrong: %+v", got.TopProducts[0])
	}
	if got.TopProducts[2].Revenue != 0 {
		t.Fatalf("unsold products rank last with zero revenue: %+v", got.TopProducts)
	}
	// The deleted product's sale still counts toward the totals.
	if got.Revenue != 128 {
		t.Fatalf("revenue = %v", got.Revenue)
	}
}

func TestSummaryClientCounts(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	clients.NewRepository(st).SetAll(ctx, []clients.Client{
		{ID: 1, Name: "Recent", Birthday: shared.NewDate(1990, time.June, 10)},
		{ID: 2, Name: "Dormant", Birthday: shared.NewDate(1990, time.December, 25)},
		{ID: 3, Name: "NoBirthday"},
	})
	transactions.NewRepository(st).SetAll(ctx, []transactions.Transaction{
		{ID: 1, ClientID: 1, Date: shared.DateOf(now.AddDate(0, 0, -5))},
		{ID: 2, ClientID: 2, Date: shared.DateOf(now.AddDate(0, 0, -200))},
	})

	got := svc.Summary(ctx)
	if got.Clients != 3 || got.Active != 1 || got.Inactive != 2 {
		t.Fatalf("counts = %+v", got)
	}
	// Only the June 10 birthday falls inside the 30-day horizon; clients
	// without a birthday never count.
	if got.UpcomingBirthdays != 1 {
		t.Fatalf("upcoming birthdays = %d", got.UpcomingBirthdays)
	}
}

func TestSummaryEmptyUsesDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	got := svc.Summary(context.Background())
	if got.Revenue != 0 || got.Profit != 0 || got.Currency != "USD" {
		t.Fatalf("summary = %+v", got)
	}
	if got.Clients != 0 || len(got.TopProducts) != 0 {
		t.Fatalf("summary = %+v", got)
	}
}
