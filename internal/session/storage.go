package session

import "context"

// StorageKey is the single fixed key the current session is mirrored
// under. The stored value is the serialized account record; there is no
// version field, so a schema change needs a migration strategy.
const StorageKey = "techconnect_session"

// Storage is the durable key-value store backing session persistence
// across restarts (the browser localStorage of the original design).
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
