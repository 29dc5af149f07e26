package realtime

import "sync"

// Broadcaster delivers state changes to the open streams of one session.
// Each subscriber holds at most one undelivered event: a newer event
// replaces an unread one, so a slow reader skips straight to the latest state.
type Broadcaster[E any] struct {
	mu     sync.Mutex
	subs   map[*subscriber[E]]struct{}
	closed bool
}

type subscriber[E any] struct {
	ch chan E
}

// NewBroadcaster returns a broadcaster with no subscribers.
func NewBroadcaster[E any]() *Broadcaster[E] {
	return &Broadcaster[E]{subs: make(map[*subscriber[E]]struct{})}
}

// Subscribe returns the event channel and a cancel func that releases it.
// Cancel is idempotent and closes the channel. Subscribing to a closed
// broadcaster yields an already-closed channel.
func (b *Broadcaster[E]) Subscribe() (<-chan E, func()) {
	sub := &subscriber[E]{ch: make(chan E, 1)}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub.ch, func() { b.remove(sub) }
}

func (b *Broadcaster[E]) remove(sub *subscriber[E]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Publish hands event to every subscriber, replacing any event it has not
// read yet. It never blocks.
func (b *Broadcaster[E]) Publish(event E) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- event
	}
}

// Close ends every subscription. Later subscribers get a closed channel.
func (b *Broadcaster[E]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Len returns the number of live subscribers.
func (b *Broadcaster[E]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
