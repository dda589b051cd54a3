// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection keys. Each key holds one independent JSON document; there is no
// transactional guarantee across keys.
const (
	KeyCatalog     = "catalog"
	KeyCart        = "cart"
	KeySession     = "session"
	KeyOrders      = "orders"
	KeyCredentials = "credentials"
)

// Store is the key-value port the storefront collections live behind.
// A missing key is reported through ok=false and is never an error.
type Store interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON reads a collection into dest. An absent key leaves dest untouched,
// so callers get their empty default.
func ReadJSON(ctx context.Context, s Store, key string, dest interface{}) error {
	value, ok, err := s.Read(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

// WriteJSON serializes v and stores it under key, replacing the whole
// collection.
func WriteJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := s.Write(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
