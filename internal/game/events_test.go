package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedSubscriber struct {
	name string
	log  *[]string
}

func (s *namedSubscriber) OnEvent(e Event) {
	*s.log = append(*s.log, s.name+":"+e.EventType().String())
}

func TestEventBusDispatchOrder(t *testing.T) {
	bus := NewEventBus()
	var log []string

	bus.Subscribe(&namedSubscriber{name: "first", log: &log})
	bus.Subscribe(&namedSubscriber{name: "second", log: &log})
	bus.Subscribe(&namedSubscriber{name: "third", log: &log})

	bus.Publish(NewTurnStartEvent("alice", 0))
	bus.Publish(NewForfeitEvent("alice", 0))

	assert.Equal(t, []string{
		"first:turn_start", "second:turn_start", "third:turn_start",
		"first:forfeit", "second:forfeit", "third:forfeit",
	}, log)
}

func TestSubscriptionCancel(t *testing.T) {
	bus := NewEventBus()
	var log []string

	bus.Subscribe(&namedSubscriber{name: "keep", log: &log})
	sub := bus.Subscribe(&namedSubscriber{name: "drop", log: &log})

	bus.Publish(NewTurnStartEvent("alice", 0))
	sub.Cancel()
	bus.Publish(NewTurnStartEvent("bob", 1))

	// Canceling twice is a no-op.
	sub.Cancel()
	bus.Publish(NewTurnStartEvent("alice", 2))

	assert.Equal(t, []string{
		"keep:turn_start", "drop:turn_start",
		"keep:turn_start",
		"keep:turn_start",
	}, log)
}

func TestCancelDuringDispatch(t *testing.T) {
	bus := NewEventBus()
	var log []string

	var self *Subscription
	self = bus.Subscribe(subscriberFunc(func(e Event) {
		log = append(log, "canceler:"+e.EventType().String())
		self.Cancel()
	}))
	bus.Subscribe(&namedSubscriber{name: "after", log: &log})

	bus.Publish(NewTurnStartEvent("alice", 0))
	bus.Publish(NewTurnStartEvent("bob", 1))

	// Canceling mid-dispatch does not skip later subscribers of the same
	// event, and takes effect for the next one.
	assert.Equal(t, []string{
		"canceler:turn_start", "after:turn_start",
		"after:turn_start",
	}, log)
}

func TestBoardEventsObserveConsistentState(t *testing.T) {
	b := mustBoard(t, 2, 2)
	bus := NewEventBus()
	b.SetEventBus(bus)

	var placements []PlacementEvent
	var captures []CaptureEvent
	bus.Subscribe(subscriberFunc(func(e Event) {
		switch ev := e.(type) {
		case PlacementEvent:
			// The board already reflects the placement when the event
			// arrives.
			slot, err := b.SlotAt(ev.After.Coord.X, ev.After.Coord.Y)
			require.NoError(t, err)
			assert.Equal(t, Line, slot.Kind)
			placements = append(placements, ev)
		case CaptureEvent:
			slot, err := b.SlotAt(ev.After.Coord.X, ev.After.Coord.Y)
			require.NoError(t, err)
			assert.Equal(t, Captured, slot.Kind)
			captures = append(captures, ev)
		}
	}))

	place(t, b, "alice", 0, 1, 0)
	place(t, b, "bob", 1, 0, 1)
	place(t, b, "alice", 2, 2, 1)
	place(t, b, "bob", 3, 1, 2)
	b.ApplyCaptures()

	require.Len(t, placements, 4)
	assert.Equal(t, Spacer, placements[0].Before.Kind)
	assert.Equal(t, Line, placements[0].After.Kind)

	require.Len(t, captures, 1)
	assert.Equal(t, Box, captures[0].Before.Kind)
	assert.Equal(t, Captured, captures[0].After.Kind)
	require.NotNil(t, captures[0].After.Turn)
	assert.Equal(t, Player("bob"), captures[0].After.Turn.Player)
}
