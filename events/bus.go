package events

// Handler reacts to a dispatched event.
type Handler func(Event)

// Bus delivers events to the handlers subscribed for their Type.
//
// Dispatch runs every handler synchronously to completion
// in subscription order. A Bus is not safe for concurrent use,
// events are expected to be dispatched from a single event loop.
type Bus struct {
	handlers map[Type][]Handler
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers handler for events of type t.
func (b *Bus) Subscribe(t Type, handler Handler) {
	b.handlers[t] = append(b.handlers[t], handler)
}

// NumHandlers returns the number of handlers subscribed for t.
func (b *Bus) NumHandlers(t Type) int {
	return len(b.handlers[t])
}

// Dispatch delivers ev to the handlers of its type
// until one of them stops propagation.
// It returns false if a handler prevented the default action.
func (b *Bus) Dispatch(ev Event) bool {
	for _, handler := range b.handlers[ev.Type()] {
		handler(ev)
		if ev.PropagationStopped() {
			break
		}
	}
	return !ev.DefaultPrevented()
}
