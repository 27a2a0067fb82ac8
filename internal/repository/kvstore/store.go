package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is a key-value document store holding one JSON document per key.
// Every repository in this codebase runs on top of this interface, so the
// same business code binds to an in-memory map in tests, a directory of JSON
// files locally, or a Postgres table in a deployed environment.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON reads the document under key into v. Missing keys return
// ErrNotFound with v untouched.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode document %q: %w", key, err)
	}
	return nil
}

// SetJSON marshals v and writes it as the document under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
