// Package store persists game state behind a small key-value contract.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// Well-known keys.
const (
	KeyPetData     = "myPetData"
	KeyExpenseLog  = "expenseLog"
	KeyTempPetType = "tempPetType"
	KeyTheme       = "theme"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is the abstract key-value store the engine persists into.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON unmarshals the stored value for key into out. A missing key
// returns ErrNotFound with out untouched; a corrupt value is treated the
// same way, logged and recovered rather than propagated — the caller falls
// back to defaults.
func GetJSON(ctx context.Context, s Store, key string, out any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("discarding corrupt stored value", "key", key, "error", err)
		return ErrNotFound
	}
	return nil
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
