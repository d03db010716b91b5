package event

import "sync"

type subscriber struct {
	id int
	fn func(Event)
}

// Bus delivers events to subscribers synchronously, in subscription order.
// It is safe for concurrent use; the zero value is not usable, call NewBus.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Kind][]subscriber
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]subscriber)}
}

// Payload is the type set of the concrete event values. Pointers to them
// and the Event interface itself are not subscribable.
type Payload interface {
	RoutePlanned | SegmentResolved | FloorTransition | Unreachable | PathEnd
	Event
}

// Subscribe registers fn for every published event of type E and returns a
// function that removes the subscription. Calling it twice is harmless.
func Subscribe[E Payload](b *Bus, fn func(E)) (unsubscribe func()) {
	var zero E
	kind := zero.Kind()

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[kind] = append(b.subs[kind], subscriber{
		id: id,
		fn: func(e Event) {
			if typed, ok := e.(E); ok {
				fn(typed)
			}
		},
	})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(kind, id) })
	}
}

func (b *Bus) remove(kind Kind, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[kind]
	for i, s := range list {
		if s.id == id {
			// copy so that an in-flight Publish keeps its snapshot
			next := make([]subscriber, 0, len(list)-1)
			next = append(next, list[:i]...)
			b.subs[kind] = append(next, list[i+1:]...)
			return
		}
	}
}

// Publish delivers e to the subscribers of its kind. A nil Bus drops events.
func (b *Bus) Publish(e Event) {
	if b == nil || e == nil {
		return
	}
	b.mu.RLock()
	list := b.subs[e.Kind()]
	b.mu.RUnlock()
	for _, s := range list {
		s.fn(e)
	}
}

// Len returns the number of subscribers of kind.
func (b *Bus) Len(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[kind])
}
