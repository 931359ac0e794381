package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/shared"
)

// Storage keys for the credential record and the active session token.
const (
	AccountKey = "account"
	SessionKey = "session"
)

// Account is the single admin credential record. Only the bcrypt hash is
// ever stored.
type Account struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Service owns sign-up, sign-in and the session token.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// SignUp creates the admin account. There is exactly one; signing up over an
// existing account is rejected.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("auth: email and password are required")
	}
	exists, err := s.store.Exists(ctx, AccountKey)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("auth: account already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	return s.store.Set(ctx, AccountKey, Account{Email: email, PasswordHash: string(hash)})
}

// SignIn verifies credentials and mints a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	var acct Account
	if err := s.store.Get(ctx, AccountKey, &acct); err != nil {
		return "", shared.ErrInvalidCredentials
	}
	if acct.Email != email {
		return "", shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", shared.ErrInvalidCredentials
	}
	token := uuid.NewString()
	if err := s.store.Set(ctx, SessionKey, token); err != nil {
		return "", err
	}
	return token, nil
}

// SignOut drops the session token.
func (s *Service) SignOut(ctx context.Context) error {
	return s.store.Delete(ctx, SessionKey)
}

// CurrentSession returns the active token, or "" when signed out.
func (s *Service) CurrentSession(ctx context.Context) string {
	return store.ReadOr(ctx, s.store, SessionKey, "")
}
