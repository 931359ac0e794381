package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoKey is returned by Get when the key has never been written.
var ErrNoKey = errors.New("store: key not set")

// DecodeError wraps a payload that could not be decoded. Repositories
// collapse it to their fallback value; it never reaches the UI.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("store: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store is a thin key-value adapter over Redis. Each logical collection
// lives under a single key as one JSON document; a write replaces the whole
// document. Two processes sharing the same Redis share the same data, with
// last-writer-wins semantics and no locking.
type Store struct {
	client *redis.Client
}

// New dials Redis and verifies the connection.
func New(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get decodes the value stored at key into dest. A missing key yields
// ErrNoKey, an undecodable payload a *DecodeError.
func (s *Store) Get(ctx context.Context, key string, dest any) error {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNoKey
		}
		return fmt.Errorf("store: get %q: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return &DecodeError{Key: key, Err: err}
	}
	return nil
}

// Set encodes value and overwrites key unconditionally. No TTL: the data is
// the system of record, not a cache.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("store: del %q: %w", key, err)
	}
	return nil
}

// Exists reports whether key has been written.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("store: exists %q: %w", key, err)
	}
	return count > 0, nil
}

// ReadOr returns the decoded value at key, or fallback when the key is
// absent or its payload does not decode. Decode failures are swallowed on
// purpose: a corrupt entry silently reverts to the default.
func ReadOr[T any](ctx context.Context, s *Store, key string, fallback T) T {
	var out T
	if err := s.Get(ctx, key, &out); err != nil {
		return fallback
	}
	return out
}
