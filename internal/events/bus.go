package events

import (
	"sync"
	"time"
)

// Topics emitted by the engine. The presentation layer can poll auction
// state or subscribe to these; the engine does not mandate either.
const (
	TopicBidPlaced            = "bid-placed"
	TopicBidUpdated           = "bid-updated"
	TopicPhaseChanged         = "phase-changed"
	TopicSettlementCompleted  = "settlement-completed"
	TopicRewardGrantRequested = "reward-grant-requested"
)

// Event is one emission on the bus
type Event struct {
	Topic   string         `json:"topic"`
	Payload map[string]any `json:"payload"`
	At      time.Time      `json:"at"`
}

// Publisher is the emission contract the engine components depend on
type Publisher interface {
	Publish(event Event)
}

// Bus is an in-process fan-out Publisher. Publish never blocks: slow
// subscribers drop events rather than stalling the bid path.
type Bus struct {
	mu   sync.RWMutex
	subs []chan Event
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber with the given channel buffer
func (b *Bus) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, ch)
	return ch
}

// Publish fans the event out to all subscribers without blocking
func (b *Bus) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// NopPublisher discards all events. Useful for tests and tools that do
// not care about emissions.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
