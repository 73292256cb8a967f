package bot

import (
	"log"
	"sync"
)

type SystemEventType string

const (
	SystemEventStartupNotice SystemEventType = "startup_notice"
	SystemEventPrefixUpdated SystemEventType = "prefix_updated"
)

// SystemEvent is a process-internal notification passed between the bot
// runtime and event handlers, outside the gateway.
type SystemEvent struct {
	Type    SystemEventType
	GuildID string
	Target  string
}

type subscriber struct {
	fn   func(SystemEvent)
	once bool
	done bool
}

// Bus is a small in-process event bus. Handlers subscribe by event type,
// persistently or one-shot; publishing never blocks the caller.
type Bus struct {
	mu          sync.Mutex
	subscribers map[SystemEventType][]*subscriber
	ch          chan SystemEvent
	closed      bool
}

// NewBus returns a bus ready for subscriptions. Run must be started for
// published events to reach handlers.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[SystemEventType][]*subscriber),
		ch:          make(chan SystemEvent, 16),
	}
}

// Subscribe attaches fn to evt. With once set the handler detaches after
// its first delivery.
func (b *Bus) Subscribe(evt SystemEventType, once bool, fn func(SystemEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[evt] = append(b.subscribers[evt], &subscriber{fn: fn, once: once})
}

// Publish queues an event for delivery. When the queue is full or the bus
// is already closed the event is dropped rather than blocking or crashing
// the publisher; message handlers may still be in flight during teardown.
func (b *Bus) Publish(evt SystemEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		log.Printf("[WARN] System event bus closed, dropping %s", evt.Type)
		return
	}
	select {
	case b.ch <- evt:
	default:
		log.Printf("[WARN] System event bus full, dropping %s", evt.Type)
	}
}

// Run delivers queued events to subscribers until the channel closes.
// Handler panics are the handler's problem, as with any emitter.
func (b *Bus) Run() {
	for evt := range b.ch {
		b.dispatch(evt)
	}
}

// Close stops delivery. Later publishes are dropped; closing twice is a
// no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

func (b *Bus) dispatch(evt SystemEvent) {
	b.mu.Lock()
	subs := b.subscribers[evt.Type]
	var fns []func(SystemEvent)
	kept := subs[:0]
	for _, s := range subs {
		if s.done {
			continue
		}
		fns = append(fns, s.fn)
		if s.once {
			s.done = true
			continue
		}
		kept = append(kept, s)
	}
	b.subscribers[evt.Type] = kept
	b.mu.Unlock()

	for _, fn := range fns {
		fn(evt)
	}
}
