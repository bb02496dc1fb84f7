package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBus_FanOut(t *testing.T) {
	bus := NewBus()
	first := bus.Subscribe(4)
	second := bus.Subscribe(4)

	bus.Publish(Event{Topic: TopicBidPlaced, Payload: map[string]any{"item_id": "item1"}})

	for _, ch := range []<-chan Event{first, second} {
		select {
		case event := <-ch:
			require.Equal(t, TopicBidPlaced, event.Topic)
			require.Equal(t, "item1", event.Payload["item_id"])
			require.False(t, event.At.IsZero())
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)

	// Second publish must not block even though the buffer is full.
	bus.Publish(Event{Topic: TopicBidPlaced})
	bus.Publish(Event{Topic: TopicBidUpdated})

	event := <-ch
	require.Equal(t, TopicBidPlaced, event.Topic)
	select {
	case extra := <-ch:
		t.Fatalf("expected dropped event, got %s", extra.Topic)
	default:
	}
}
