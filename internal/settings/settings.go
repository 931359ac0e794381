package settings

import (
	"context"

	"github.com/crownpanel/crownpanel/internal/platform/store"
)

// Storage keys for the settings record and the avatar reference.
const (
	Key       = "settings"
	AvatarKey = "avatar"
)

// Settings is the single back-office configuration record.
type Settings struct {
	ProfitMargin float64 `json:"profitMargin"`
	Currency     string  `json:"currency"`
	Theme        string  `json:"theme,omitempty"`
}

// Default is what a fresh install sees before anything is saved.
func Default() Settings {
	return Settings{ProfitMargin: 0.3, Currency: "USD"}
}

type Repository interface {
	Get(ctx context.Context) Settings
	Save(ctx context.Context, s Settings) (Settings, error)
	Avatar(ctx context.Context) string
	SetAvatar(ctx context.Context, ref string) error
	Seed(ctx context.Context) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) Get(ctx context.Context) Settings {
	return store.ReadOr(ctx, r.store, Key, Default())
}

// Save normalises before writing: the profit margin is clamped to [0, 1] and
// an empty currency falls back to the default.
func (r *repository) Save(ctx context.Context, s Settings) (Settings, error) {
	if s.ProfitMargin < 0 {
		s.ProfitMargin = 0
	}
	if s.ProfitMargin > 1 {
		s.ProfitMargin = 1
	}
	if s.Currency == "" {
		s.Currency = Default().Currency
	}
	if err := r.store.Set(ctx, Key, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *repository) Avatar(ctx context.Context) string {
	return store.ReadOr(ctx, r.store, AvatarKey, "")
}

func (r *repository) SetAvatar(ctx context.Context, ref string) error {
	return r.store.Set(ctx, AvatarKey, ref)
}

func (r *repository) Seed(ctx context.Context) error {
	exists, err := r.store.Exists(ctx, Key)
	if err != nil || exists {
		return err
	}
	return r.store.Set(ctx, Key, Default())
}
