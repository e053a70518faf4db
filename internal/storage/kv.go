// Package storage provides the snapshot key-value store backing the
// repositories.  The contract is deliberately minimal (get a string blob,
// set a string blob) so a repository can serialize its whole collection
// and overwrite one key on every mutation.
package storage

import "context"

// KV is a synchronous string key-value store.  GetItem returns the stored
// value and whether the key exists; a missing key is not an error.
type KV interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
}
