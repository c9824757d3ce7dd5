package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishInvokesSubscribersOnceInOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var calls []string
	bus.Subscribe(TopicWishlistChanged, func(Event) { calls = append(calls, "header") })
	bus.Subscribe(TopicWishlistChanged, func(Event) { calls = append(calls, "detail") })
	bus.Subscribe(TopicCartChanged, func(Event) { calls = append(calls, "cart") })

	bus.Publish(Event{Topic: TopicWishlistChanged})

	assert.Equal(t, []string{"header", "detail"}, calls)
}

func TestBusStampsOriginAndSource(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got Event
	bus.Subscribe(TopicCartChanged, func(e Event) { got = e })

	bus.Publish(Event{Topic: TopicCartChanged})

	assert.Equal(t, TopicCartChanged, got.Topic)
	assert.Equal(t, SourceLocal, got.Source)
	assert.Equal(t, bus.InstanceID(), got.Origin)
	assert.NotEmpty(t, bus.InstanceID())
	assert.NotEqual(t, bus.InstanceID(), NewBus().InstanceID())
}

func TestBusUnsubscribedHandlerIsNotInvoked(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(TopicWishlistChanged, func(Event) { calls++ })

	unsubscribe()
	unsubscribe()
	bus.Publish(Event{Topic: TopicWishlistChanged})

	assert.Zero(t, calls)
	assert.Zero(t, bus.SubscriberCount(TopicWishlistChanged))
}

func TestBusSkipsHandlerUnsubscribedDuringPublish(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var calls []string
	var unsubscribeSecond func()
	bus.Subscribe(TopicWishlistChanged, func(Event) {
		calls = append(calls, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = bus.Subscribe(TopicWishlistChanged, func(Event) {
		calls = append(calls, "second")
	})

	bus.Publish(Event{Topic: TopicWishlistChanged})
	bus.Publish(Event{Topic: TopicWishlistChanged})

	assert.Equal(t, []string{"first", "first"}, calls)
}

func TestBusHandlerMayUnsubscribeItself(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(TopicCartChanged, func(Event) {
		calls++
		unsubscribe()
	})

	bus.Publish(Event{Topic: TopicCartChanged})
	bus.Publish(Event{Topic: TopicCartChanged})

	assert.Equal(t, 1, calls)
}

func TestBusDoesNotReplayToLateSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	bus.Publish(Event{Topic: TopicCartChanged})

	calls := 0
	bus.Subscribe(TopicCartChanged, func(Event) { calls++ })

	assert.Zero(t, calls)
}

func TestBusIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var mu sync.Mutex
	delivered := 0
	bus.Subscribe(TopicWishlistChanged, func(Event) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish(Event{Topic: TopicWishlistChanged, Source: SourceStorage})
		}()
		go func() {
			defer wg.Done()
			unsubscribe := bus.Subscribe(TopicWishlistChanged, func(Event) {})
			unsubscribe()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 8, delivered)
	assert.Equal(t, 1, bus.SubscriberCount(TopicWishlistChanged))
}
