package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
)

const WishlistKey = "wishlist"

// Wishlist is the locally persisted wishlist. Mutations that change the
// stored value publish TopicWishlistChanged after the write lands.
type Wishlist struct {
	storage ports.LocalStorage
	bus     *Bus
	logger  *slog.Logger

	// mu serializes read-modify-write cycles and guards the last raw value
	// this process wrote or observed.
	mu       sync.Mutex
	lastRaw  string
	lastSeen bool
}

func NewWishlist(storage ports.LocalStorage, bus *Bus, logger *slog.Logger) *Wishlist {
	if logger == nil {
		logger = slog.Default()
	}

	return &Wishlist{storage: storage, bus: bus, logger: logger}
}

// Entries returns the stored wishlist. Unreadable or corrupt data reads as
// empty.
func (w *Wishlist) Entries(ctx context.Context) domain.Wishlist {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries, _, _ := w.read(ctx)
	return entries
}

func (w *Wishlist) Count(ctx context.Context) int {
	return len(w.Entries(ctx))
}

func (w *Wishlist) Contains(ctx context.Context, id domain.ProductID) bool {
	return w.Entries(ctx).Contains(id)
}

// Add stores entry unless its ID is already present. It reports whether the
// wishlist changed.
func (w *Wishlist) Add(ctx context.Context, entry domain.WishlistEntry) (bool, error) {
	entry.ID = entry.ID.Trimmed()
	if entry.ID == "" {
		return false, fmt.Errorf("add wishlist entry: %w: empty product id", domain.ErrInvalidInput)
	}

	return w.mutate(ctx, func(current domain.Wishlist) (domain.Wishlist, bool) {
		return current.With(entry)
	})
}

// Remove deletes id. Removing an absent ID is a no-op.
func (w *Wishlist) Remove(ctx context.Context, id domain.ProductID) (bool, error) {
	return w.mutate(ctx, func(current domain.Wishlist) (domain.Wishlist, bool) {
		return current.Without(id)
	})
}

// Toggle adds entry when absent and removes it when present. It reports
// whether the entry is in the wishlist afterwards.
func (w *Wishlist) Toggle(ctx context.Context, entry domain.WishlistEntry) (bool, error) {
	entry.ID = entry.ID.Trimmed()
	if entry.ID == "" {
		return false, fmt.Errorf("toggle wishlist entry: %w: empty product id", domain.ErrInvalidInput)
	}

	added := false
	_, err := w.mutate(ctx, func(current domain.Wishlist) (domain.Wishlist, bool) {
		if current.Contains(entry.ID) {
			return current.Without(entry.ID)
		}
		added = true
		return current.With(entry)
	})
	if err != nil {
		return false, err
	}

	return added, nil
}

// Clear removes the stored wishlist, including undecodable data. A failed
// read aborts the clear.
func (w *Wishlist) Clear(ctx context.Context) (bool, error) {
	w.mu.Lock()
	_, found, err := w.read(ctx)
	if err != nil {
		w.mu.Unlock()
		return false, fmt.Errorf("read wishlist: %w", err)
	}
	if !found {
		w.mu.Unlock()
		return false, nil
	}

	if err := w.storage.Remove(ctx, WishlistKey); err != nil {
		w.mu.Unlock()
		return false, fmt.Errorf("clear wishlist: %w", err)
	}
	w.lastRaw, w.lastSeen = "", false
	w.mu.Unlock()

	w.publish(SourceLocal)
	return true, nil
}

// Sync turns storage notifications for the wishlist key into
// TopicWishlistChanged events until ctx ends. A notification whose stored
// value matches the last one seen by this process is dropped.
func (w *Wishlist) Sync(ctx context.Context, watcher ports.StorageWatcher) error {
	w.mu.Lock()
	_, _, _ = w.read(ctx)
	w.mu.Unlock()

	return watcher.Watch(ctx, func(key string) {
		if key != WishlistKey {
			return
		}
		if w.observe(ctx) {
			w.publish(SourceStorage)
		}
	})
}

func (w *Wishlist) observe(ctx context.Context) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	previousRaw, previousSeen := w.lastRaw, w.lastSeen
	if _, _, err := w.read(ctx); err != nil {
		return false
	}

	return previousRaw != w.lastRaw || previousSeen != w.lastSeen
}

// mutate applies change to the stored wishlist. A failed read aborts so the
// stored entries are never overwritten from an empty stand-in.
func (w *Wishlist) mutate(ctx context.Context, change func(domain.Wishlist) (domain.Wishlist, bool)) (bool, error) {
	w.mu.Lock()

	current, _, err := w.read(ctx)
	if err != nil {
		w.mu.Unlock()
		return false, fmt.Errorf("read wishlist: %w", err)
	}
	next, changed := change(current)
	if !changed {
		w.mu.Unlock()
		return false, nil
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		w.mu.Unlock()
		return false, fmt.Errorf("encode wishlist: %w", err)
	}

	if err := w.storage.Set(ctx, WishlistKey, string(encoded)); err != nil {
		w.mu.Unlock()
		return false, fmt.Errorf("write wishlist: %w", err)
	}
	w.lastRaw, w.lastSeen = string(encoded), true
	w.mu.Unlock()

	w.publish(SourceLocal)
	return true, nil
}

// read loads and decodes the stored value and records it as last seen.
// Callers hold w.mu. A storage error is logged and returned; undecodable
// data reads as empty.
func (w *Wishlist) read(ctx context.Context) (domain.Wishlist, bool, error) {
	raw, found, err := w.storage.Get(ctx, WishlistKey)
	if err != nil {
		w.logger.Warn("read wishlist", slog.String("error", err.Error()))
		return domain.Wishlist{}, false, err
	}
	w.lastRaw, w.lastSeen = raw, found
	if !found {
		return domain.Wishlist{}, false, nil
	}

	var entries domain.Wishlist
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		w.logger.Warn("decode wishlist, treating as empty", slog.String("error", err.Error()))
		return domain.Wishlist{}, true, nil
	}

	return entries.Normalize(), true, nil
}

func (w *Wishlist) publish(source EventSource) {
	if w.bus == nil {
		return
	}
	w.bus.Publish(Event{Topic: TopicWishlistChanged, Source: source})
}
