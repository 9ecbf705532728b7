// Package storage is the durable key-value store behind browser-session state.
package storage

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("storage: store is closed")

type KeyValueStore interface {
	// Get reports found=false, with no error, for a missing key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type namespaced struct {
	store  KeyValueStore
	prefix string
}

// Namespace prefixes every key with prefix + ":". Closing the namespace does
// not close the underlying store.
func Namespace(store KeyValueStore, prefix string) KeyValueStore {
	return &namespaced{store: store, prefix: prefix + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = n.prefix + k
	}

	return n.store.Delete(ctx, full...)
}

func (n *namespaced) Close() error {
	return nil
}
