package application

import (
	"context"
	"sync"
)

// Mount is the lifetime of one view. Subscriptions made through it end at
// Unmount, and background loads deliver only while it is mounted.
type Mount struct {
	bus *Bus

	// deliverMu serializes deliveries with Unmount so no delivery starts
	// after Unmount returns.
	deliverMu sync.Mutex

	mu      sync.Mutex
	mounted bool
	unsubs  []func()
	latest  map[string]uint64

	inflight sync.WaitGroup
}

func NewMount(bus *Bus) *Mount {
	return &Mount{
		bus:     bus,
		mounted: true,
		latest:  map[string]uint64{},
	}
}

// Subscribe registers handler on the bus until Unmount. It is a no-op on an
// unmounted view.
func (m *Mount) Subscribe(topic Topic, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return
	}
	m.unsubs = append(m.unsubs, m.bus.Subscribe(topic, handler))
}

func (m *Mount) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// Unmount removes every subscription and discards pending load results. It
// is idempotent. It must not be called from a Load deliver func.
func (m *Mount) Unmount() {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	if !m.mounted {
		m.mu.Unlock()
		return
	}
	m.mounted = false
	unsubs := m.unsubs
	m.unsubs = nil
	m.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
}

// Wait blocks until every load started so far has finished.
func (m *Mount) Wait() {
	m.inflight.Wait()
}

func (m *Mount) begin(key string) (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return 0, false
	}
	m.latest[key]++
	m.inflight.Add(1)
	return m.latest[key], true
}

func (m *Mount) isCurrent(key string, generation uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted && m.latest[key] == generation
}

// Load runs fetch in the background and hands its result to deliver, unless
// the mount was unmounted or a newer load for key started meanwhile. The
// fetch itself is never cancelled; stale results are dropped.
func Load[T any](ctx context.Context, m *Mount, key string, fetch func(context.Context) (T, error), deliver func(T, error)) {
	generation, ok := m.begin(key)
	if !ok {
		return
	}

	go func() {
		defer m.inflight.Done()

		value, err := fetch(ctx)

		m.deliverMu.Lock()
		defer m.deliverMu.Unlock()
		if !m.isCurrent(key, generation) {
			return
		}
		deliver(value, err)
	}()
}
