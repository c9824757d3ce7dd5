package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/storefront-cli/internal/adapters/storage/file"
	passstore "github.com/bnema/storefront-cli/internal/adapters/storage/pass"
	"github.com/bnema/storefront-cli/internal/ports"
)

// Store writes to primary and falls back when it fails. Reads that miss in
// primary consult fallback, so values written during a primary outage stay
// readable.
type Store struct {
	primary  ports.LocalStorage
	fallback ports.LocalStorage
}

var _ ports.LocalStorage = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary storage is nil")
	errNilFallbackStore = errors.New("fallback storage is nil")
)

func NewStore(primary ports.LocalStorage, fallback ports.LocalStorage) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.LocalStorage, fallback ports.LocalStorage) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	err := s.primary.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Set(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := s.primary.Get(ctx, key)
	if err == nil && found {
		return value, true, nil
	}
	if err != nil && shouldSkipFallback(err) {
		return "", false, err
	}

	fallbackValue, fallbackFound, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, fallbackFound, nil
	}
	if err == nil {
		return "", false, fmt.Errorf("fallback backend get failed: %w", fallbackErr)
	}

	return "", false, fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Remove clears key from both backends. It fails only when the key may
// still be readable afterwards.
func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.primary.Remove(ctx, key)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Remove(ctx, key)
	if fallbackErr == nil {
		return nil
	}
	if err == nil {
		return fmt.Errorf("fallback backend remove failed: %w", fallbackErr)
	}

	return fmt.Errorf("primary backend remove failed: %w; fallback backend remove failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
