package glcontext

import "sync"

// Notifier receives the context-changed notification. The System calls
// ContextChanged synchronously at the moment a context is adopted or
// restored, carrying the active native handle.
type Notifier interface {
	ContextChanged(gl RenderingContext)
}

// nopNotifier is used when a System is constructed without a notifier.
type nopNotifier struct{}

func (nopNotifier) ContextChanged(RenderingContext) {}

// Bus is a concrete Notifier that fans the context-changed notification
// out to subscribers, in subscription order, on the caller's goroutine.
//
// Each renderer owns its own Bus; it is deliberately not a process-wide
// singleton so multiple renderer instances (and tests) do not interfere.
type Bus struct {
	mu     sync.Mutex
	subs   []busSub
	nextID int
}

type busSub struct {
	id int
	fn func(gl RenderingContext)
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn to be called on every context change. The
// returned cancel function removes the subscription; calling it more
// than once is a no-op.
func (b *Bus) Subscribe(fn func(gl RenderingContext)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, busSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// ContextChanged delivers gl to every subscriber synchronously.
func (b *Bus) ContextChanged(gl RenderingContext) {
	b.mu.Lock()
	subs := make([]busSub, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(gl)
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
