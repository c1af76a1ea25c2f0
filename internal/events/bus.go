package events

// Handler observes published events.
type Handler func(GameEvent)

// Bus delivers events synchronously to subscribers in subscription order.
// It is not safe for concurrent use; the game drives it from one goroutine.
type Bus struct {
	handlers []Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every future event.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish hands e to every subscriber. A nil bus drops the event.
func (b *Bus) Publish(e GameEvent) {
	if b == nil {
		return
	}
	for _, h := range b.handlers {
		h(e)
	}
}
