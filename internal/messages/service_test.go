package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/shared"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(NewRepository(store.NewWithClient(client)), nil)
}

func TestComposeStartsUnread(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.Compose(ctx, ComposeInput{
		FirstName: "Amira", LastName: "Haddad", Email: "amira@example.com",
		Subject: "custom-order", Body: "Can you engrave a mug?",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if m.Status != StatusUnread {
		t.Fatalf("new messages start unread, got %s", m.Status)
	}
	if m.ID == 0 {
		t.Fatal("message id must be set")
	}

	total, unread := svc.Counts(ctx)
	if total != 1 || unread != 1 {
		t.Fatalf("counts = %d/%d", total, unread)
	}
}

func TestComposeValidatesInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Compose(ctx, ComposeInput{FirstName: "Amira", Email: "not-an-email", Subject: "general", Body: "hi"})
	if err == nil {
		t.Fatal("bad input must be rejected")
	}
	if got := svc.List(ctx, FilterAll); len(got) != 0 {
		t.Fatalf("rejected input must not write, got %v", got)
	}
}

func TestListFiltersAndOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.repo.SetAll(ctx, []Message{
		{ID: 1, FirstName: "A", Status: StatusRead},
		{ID: 2, FirstName: "B", Status: StatusUnread},
		{ID: 3, FirstName: "C", Status: StatusUnread},
	})

	all := svc.List(ctx, FilterAll)
	if len(all) != 3 || all[0].ID != 3 {
		t.Fatalf("newest first expected, got %+v", all)
	}

	unread := svc.List(ctx, FilterUnread)
	if len(unread) != 2 {
		t.Fatalf("unread filter: %+v", unread)
	}
	read := svc.List(ctx, FilterRead)
	if len(read) != 1 || read[0].ID != 1 {
		t.Fatalf("read filter: %+v", read)
	}
}

func TestToggleFlipsStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.repo.SetAll(ctx, []Message{{ID: 1, Status: StatusUnread}})

	m, err := svc.Toggle(ctx, 1)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if m.Status != StatusRead {
		t.Fatalf("expected read, got %s", m.Status)
	}

	m, err = svc.Toggle(ctx, 1)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if m.Status != StatusUnread {
		t.Fatalf("expected unread, got %s", m.Status)
	}

	if _, err := svc.Toggle(ctx, 404); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
}

func TestDeleteAsksFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.repo.SetAll(ctx, []Message{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}})

	svc.confirm = shared.ConfirmerFunc(func(string, string) bool { return false })
	if err := svc.Delete(ctx, 1); !errors.Is(err, shared.ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}

	svc.confirm = shared.AlwaysConfirm
	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := svc.List(ctx, FilterAll)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("inbox = %+v", got)
	}
}

func TestSubjectLabel(t *testing.T) {
	if got := SubjectLabel("custom-order"); got != "Custom Order Request" {
		t.Fatalf("got %q", got)
	}
	if got := SubjectLabel("something-else"); got != "something-else" {
		t.Fatalf("unknown subjects pass through, got %q", got)
	}
}

func TestComposeTimestamps(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC) }

	m, err := svc.Compose(context.Background(), ComposeInput{
		FirstName: "Amira", LastName: "Haddad", Email: "amira@example.com",
		Subject: "general", Body: "hello",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if m.ID != m.Date.UnixMilli() {
		t.Fatalf("id %d must be the placement instant %d", m.ID, m.Date.UnixMilli())
	}
}
