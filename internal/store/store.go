// Package store defines the key-value boundary notes are persisted through.
package store

import "context"

// KV is a whole-value key-value slot store.
//
// Load reports ok=false with a nil error when the key has never been saved.
// Save overwrites the previous value for key in one step.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}
