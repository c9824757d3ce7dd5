package application

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type Topic string

const (
	TopicWishlistChanged Topic = "wishlist.changed"
	TopicCartChanged     Topic = "cart.changed"
)

type EventSource string

const (
	// SourceLocal marks events raised by a mutation in this process.
	SourceLocal EventSource = "local"
	// SourceStorage marks events raised by a storage change observed on disk.
	SourceStorage EventSource = "storage"
)

// Event carries no payload. Subscribers re-read state instead of diffing.
type Event struct {
	Topic  Topic
	Source EventSource
	Origin string
}

type Handler func(Event)

// Bus delivers events synchronously on the publisher's goroutine, in
// subscription order per topic. Events are not replayed to late subscribers.
type Bus struct {
	instanceID string

	mu   sync.Mutex
	subs map[Topic][]*subscription
}

type subscription struct {
	handler Handler
	active  atomic.Bool
}

func NewBus() *Bus {
	return &Bus{
		instanceID: uuid.NewString(),
		subs:       map[Topic][]*subscription{},
	}
}

// InstanceID identifies this process on every event it publishes.
func (b *Bus) InstanceID() string {
	return b.instanceID
}

// Subscribe registers handler for topic. The returned func removes it; it is
// idempotent and safe to call from inside a handler.
func (b *Bus) Subscribe(topic Topic, handler Handler) func() {
	sub := &subscription{handler: handler}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.active.Store(false)
			b.remove(topic, sub)
		})
	}
}

func (b *Bus) Publish(event Event) {
	if event.Origin == "" {
		event.Origin = b.instanceID
	}
	if event.Source == "" {
		event.Source = SourceLocal
	}

	b.mu.Lock()
	snapshot := b.subs[event.Topic]
	b.mu.Unlock()

	for _, sub := range snapshot {
		if !sub.active.Load() {
			continue
		}
		sub.handler(event)
	}
}

func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

func (b *Bus) remove(topic Topic, target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subs[topic]
	next := make([]*subscription, 0, len(current))
	for _, sub := range current {
		if sub != target {
			next = append(next, sub)
		}
	}

	if len(next) == 0 {
		delete(b.subs, topic)
		return
	}
	b.subs[topic] = next
}
