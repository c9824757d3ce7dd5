package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenEntry = "storefront/http_localhost_4000/cx_token"

func TestStoreSetUsesPassInsertUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		prefix: "storefront/http_localhost_4000",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", tokenEntry}, args)
			assert.Equal(t, "token-1\n", input)
			return "", "", nil
		},
	}

	err := store.Set(context.Background(), "cx_token", "token-1")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: "storefront/http_localhost_4000",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", tokenEntry}, args)
			assert.Empty(t, input)
			return "token-1\n", "", nil
		},
	}

	value, found, err := store.Get(context.Background(), "cx_token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-1", value)
}

func TestStoreGetMissingEntryIsNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: "storefront/http_localhost_4000",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: " + tokenEntry + " is not in the password store.", errors.New("exit status 1")
		},
	}

	value, found, err := store.Get(context.Background(), "cx_token")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestStoreRemoveUsesPassRemoveAndIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	calls := 0
	store := &Store{
		prefix: "storefront/http_localhost_4000",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			calls++
			assert.Equal(t, []string{"rm", "-f", tokenEntry}, args)
			if calls > 1 {
				return "", "Error: " + tokenEntry + " is not in the password store.", errors.New("exit status 1")
			}
			return "", "", nil
		},
	}

	require.NoError(t, store.Remove(context.Background(), "cx_token"))
	require.NoError(t, store.Remove(context.Background(), "cx_token"))
	assert.Equal(t, 2, calls)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: "storefront/http_localhost_4000",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, _, err := store.Get(context.Background(), "cx_token")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, tokenEntry)
	assert.ErrorContains(t, err, "No secret key")
}

func TestStoreSurfacesUnavailablePass(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "", ErrUnavailable
		},
	}

	err := store.Set(context.Background(), "cx_token", "token-1")
	require.ErrorIs(t, err, ErrUnavailable)
}
