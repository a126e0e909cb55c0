// Package store implements the client's durable key-value store, the local
// substitute for per-origin browser storage. Values are opaque byte strings;
// callers are responsible for parsing and must treat unparseable values as
// absent, deleting the offending key.
package store

import "context"

// Well-known keys.
const (
	KeyToken        = "jwt_token"
	KeyUser         = "auth_user"
	KeyRegistry     = "registered_users"
	KeyClearedChats = "clearedChats"
	KeyDeletedChats = "deletedChats"
	KeySignupDraft  = "signup_form_data"
)

// Store is a persistent string-keyed store with no expiry, no encryption and
// no schema validation.
//
// Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
