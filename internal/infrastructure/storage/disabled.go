// internal/infrastructure/storage/disabled.go
package storage

import "context"

// DisabledStore is the explicit no-persistent-storage capability. Every read
// reports an absent key and writes and deletes are accepted no-ops, so callers
// always see empty defaults instead of failures.
type DisabledStore struct{}

// NewDisabledStore creates a store for environments without persistence.
func NewDisabledStore() *DisabledStore {
	return &DisabledStore{}
}

// Read always reports an absent key.
func (DisabledStore) Read(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

// Write accepts and discards the value.
func (DisabledStore) Write(ctx context.Context, key string, value string) error {
	return nil
}

// Delete is a no-op.
func (DisabledStore) Delete(ctx context.Context, key string) error {
	return nil
}
