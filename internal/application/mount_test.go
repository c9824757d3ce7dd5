package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountUnmountRemovesEverySubscription(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	mount := NewMount(bus)
	calls := 0
	mount.Subscribe(TopicWishlistChanged, func(Event) { calls++ })
	mount.Subscribe(TopicCartChanged, func(Event) { calls++ })

	bus.Publish(Event{Topic: TopicWishlistChanged})
	mount.Unmount()
	mount.Unmount()
	bus.Publish(Event{Topic: TopicWishlistChanged})
	bus.Publish(Event{Topic: TopicCartChanged})

	assert.Equal(t, 1, calls)
	assert.False(t, mount.Mounted())
	assert.Zero(t, bus.SubscriberCount(TopicWishlistChanged))
	assert.Zero(t, bus.SubscriberCount(TopicCartChanged))

	mount.Subscribe(TopicCartChanged, func(Event) { calls++ })
	assert.Zero(t, bus.SubscriberCount(TopicCartChanged))
}

func TestLoadDeliversResultWhileMounted(t *testing.T) {
	t.Parallel()

	mount := NewMount(NewBus())
	var got []string
	Load(context.Background(), mount, "products", func(context.Context) ([]string, error) {
		return []string{"p1", "p2"}, nil
	}, func(products []string, err error) {
		assert.NoError(t, err)
		got = products
	})
	mount.Wait()

	assert.Equal(t, []string{"p1", "p2"}, got)
}

func TestLoadDropsResultAfterUnmount(t *testing.T) {
	t.Parallel()

	mount := NewMount(NewBus())
	release := make(chan struct{})
	delivered := false
	fetched := false

	Load(context.Background(), mount, "cart", func(context.Context) (int, error) {
		<-release
		fetched = true
		return 3, nil
	}, func(int, error) {
		delivered = true
	})

	mount.Unmount()
	close(release)
	mount.Wait()

	assert.True(t, fetched, "in-flight fetch is not cancelled")
	assert.False(t, delivered, "stale result must be discarded")
}

func TestLoadKeepsOnlyLatestResultPerKey(t *testing.T) {
	t.Parallel()

	mount := NewMount(NewBus())
	releaseFirst := make(chan struct{})
	var mu sync.Mutex
	var delivered []int

	deliver := func(v int, err error) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, v)
	}

	Load(context.Background(), mount, "count", func(context.Context) (int, error) {
		<-releaseFirst
		return 1, nil
	}, deliver)
	Load(context.Background(), mount, "count", func(context.Context) (int, error) {
		return 2, nil
	}, deliver)
	Load(context.Background(), mount, "other", func(context.Context) (int, error) {
		return 7, nil
	}, deliver)

	close(releaseFirst)
	mount.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []int{2, 7}, delivered)
}

func TestLoadPassesFetchErrorToDeliver(t *testing.T) {
	t.Parallel()

	mount := NewMount(NewBus())
	boom := errors.New("boom")
	var got error
	Load(context.Background(), mount, "orders", func(context.Context) (int, error) {
		return 0, boom
	}, func(_ int, err error) {
		got = err
	})
	mount.Wait()

	require.ErrorIs(t, got, boom)
}

func TestLoadOnUnmountedViewDoesNothing(t *testing.T) {
	t.Parallel()

	mount := NewMount(NewBus())
	mount.Unmount()

	fetched := false
	Load(context.Background(), mount, "orders", func(context.Context) (int, error) {
		fetched = true
		return 0, nil
	}, func(int, error) {})
	mount.Wait()

	assert.False(t, fetched)
}
