package game

type EventType int

const (
	EventSessionStarted EventType = iota
	EventCoinSpawned
	EventCoinCollected
	EventSegmentAdded
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "session-started"
	case EventCoinSpawned:
		return "coin-spawned"
	case EventCoinCollected:
		return "coin-collected"
	case EventSegmentAdded:
		return "segment-added"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Pos  Vec2
	Data int // score for coin/game-over events, body length for growth.
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, on the
// goroutine that emits them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventSessionStarted; t <= EventGameOver; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
