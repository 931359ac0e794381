package orders

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/query"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewWithClient(client)
}

func TestPlacePersistsAndSyncs(t *testing.T) {
	st := newTestStore(t)
	clientRepo := clients.NewRepository(st)
	txRepo := transactions.NewRepository(st)
	repo := NewRepository(st)
	svc := NewService(repo, NewSyncer(clientRepo, txRepo), slog.Default())
	ctx := context.Background()

	o, err := svc.Place(ctx, CheckoutInput{
		Name: "Walk In", Phone: "999", Address: "1 Main St",
		Items: []CheckoutItem{
			{ProductID: 1, Name: "Mug", Price: 12, Qty: 2},
			{ProductID: 2, Name: "Candle", Price: 22, Qty: 1},
		},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if o.Status != StatusPending {
		t.Fatalf("new orders start Pending, got %s", o.Status)
	}
	if o.Total != 46 {
		t.Fatalf("total = %v", o.Total)
	}
	if o.ID == 0 {
		t.Fatal("order id must be set")
	}

	if got := repo.GetAll(ctx); len(got) != 1 {
		t.Fatalf("order not persisted: %v", got)
	}
	if got := clientRepo.GetAll(ctx); len(got) != 1 || got[0].Phone != "999" {
		t.Fatalf("sync did not create the client: %v", got)
	}
	if got := txRepo.GetAll(ctx); len(got) != 2 {
		t.Fatalf("sync did not append transactions: %v", got)
	}
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	st := newTestStore(t)
	repo := NewRepository(st)
	svc := NewService(repo, nil, nil)

	_, err := svc.Place(context.Background(), CheckoutInput{
		Name: "Walk In", Phone: "999", Address: "1 Main St",
	})
	if err == nil {
		t.Fatal("empty cart must be rejected")
	}
	if got := repo.GetAll(context.Background()); len(got) != 0 {
		t.Fatal("rejected checkout must not write")
	}
}

type failingClientRepo struct{}

func (failingClientRepo) GetAll(context.Context) []clients.Client { return nil }
func (failingClientRepo) SetAll(context.Context, []clients.Client) error {
	return errors.New("boom")
}
func (failingClientRepo) Seed(context.Context) error { return nil }

func TestPlaceSurvivesSyncFailure(t *testing.T) {
	st := newTestStore(t)
	repo := NewRepository(st)
	sync := NewSyncer(failingClientRepo{}, transactions.NewRepository(st))
	svc := NewService(repo, sync, slog.Default())

	_, err := svc.Place(context.Background(), CheckoutInput{
		Name: "Walk In", Phone: "999", Address: "1 Main St",
		Items: []CheckoutItem{{ProductID: 1, Name: "Mug", Price: 12, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("sync failure must not fail placement: %v", err)
	}
	if got := repo.GetAll(context.Background()); len(got) != 1 {
		t.Fatal("order must persist despite the failed sync")
	}
}

func TestListSearchesItemsAndFiltersStatus(t *testing.T) {
	st := newTestStore(t)
	repo := NewRepository(st)
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	repo.SetAll(ctx, []Order{
		{ID: 1, Customer: Customer{Name: "Amira"}, Status: StatusPending,
			Items: []OrderItem{{Name: "Scented Candle"}}},
		{ID: 2, Customer: Customer{Name: "Ben"}, Status: StatusDelivered,
			Items: []OrderItem{{Name: "Mug"}}},
		{ID: 3, Customer: Customer{Name: "Chloe"}, Status: StatusPending,
			Items: []OrderItem{{Name: "Tote Bag"}}},
	})

	res := svc.List(ctx, query.State{Query: "candle", Page: 1, PageSize: 10})
	if res.Total != 1 || res.Items[0].ID != 1 {
		t.Fatalf("item-name search wrong: %+v", res)
	}

	res = svc.List(ctx, query.State{
		Filters:  map[string]string{FilterStatus: string(StatusPending)},
		SortKey:  SortDate, Descending: true,
		Page: 1, PageSize: 10,
	})
	if res.Total != 2 || res.Items[0].ID != 3 || res.Items[1].ID != 1 {
		t.Fatalf("status filter with newest-first sort wrong: %+v", res)
	}
}

func TestSetStatusNormalisesInput(t *testing.T) {
	st := newTestStore(t)
	repo := NewRepository(st)
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	repo.SetAll(ctx, []Order{{ID: 1, Status: StatusPending}})

	o, err := svc.SetStatus(ctx, 1, "in transit")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if o.Status != StatusInTransit {
		t.Fatalf("expected In Transit, got %s", o.Status)
	}

	if _, err := svc.SetStatus(ctx, 404, "Delivered"); err == nil {
		t.Fatal("unknown order must error")
	}
}

func TestStatusNormalisedOnDecode(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// An older writer stored the lowercase form.
	if err := st.Set(ctx, Key, []map[string]any{{"id": 1, "status": "pending"}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got := NewRepository(st).GetAll(ctx)
	if len(got) != 1 || got[0].Status != StatusPending {
		t.Fatalf("decode must normalise status, got %+v", got)
	}
}
