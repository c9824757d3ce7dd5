package ports

import "context"

// LocalStorage is origin-scoped durable key/value storage. A missing key is
// reported with found == false, not an error.
type LocalStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// StorageWatcher reports keys changed in storage by any writer, including
// other processes. Delivery may repeat and arrive in any order.
type StorageWatcher interface {
	Watch(ctx context.Context, onChange func(key string)) error
}
