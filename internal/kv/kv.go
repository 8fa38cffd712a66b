// Package kv is the persisted key-value substrate the storefront stores are
// built on. Values are opaque strings; callers own serialization.
package kv

import "context"

// Store reads and writes string values under string keys. Get reports
// whether the key was present; substrate failures surface unwrapped.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
