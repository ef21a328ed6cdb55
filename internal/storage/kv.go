// Package storage holds the key/value backends the roster persists into.
// Every backend stores opaque byte values under string keys, the same
// contract a browser's local storage offers.
package storage

import "context"

//go:generate mockgen -source=kv.go -destination=mock/kv_mock.go -package=mock
type KV interface {
	// Get returns the value stored under key. exists is false when the key
	// was never written or has been deleted.
	Get(ctx context.Context, key string) (value []byte, exists bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
