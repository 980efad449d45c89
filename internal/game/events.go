package game

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypePlacement    EventType = "placement"
	EventTypeCapture      EventType = "capture"
	EventTypeTurnStart    EventType = "turn_start"
	EventTypeMove         EventType = "move"
	EventTypeTurnEnd      EventType = "turn_end"
	EventTypeForfeit      EventType = "forfeit"
	EventTypeTimeout      EventType = "timeout"
	EventTypeComputeError EventType = "compute_error"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents any event that occurs during a match
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// PlacementEvent is published when a line is drawn, with before/after slot
// snapshots.
type PlacementEvent struct {
	Before    Slot
	After     Slot
	timestamp time.Time
}

func (e PlacementEvent) EventType() EventType { return EventTypePlacement }
func (e PlacementEvent) Timestamp() time.Time { return e.timestamp }

// NewPlacementEvent creates a new placement event
func NewPlacementEvent(before, after Slot) PlacementEvent {
	return PlacementEvent{Before: before, After: after, timestamp: time.Now()}
}

// CaptureEvent is published once per box captured, with before/after slot
// snapshots.
type CaptureEvent struct {
	Before    Slot
	After     Slot
	timestamp time.Time
}

func (e CaptureEvent) EventType() EventType { return EventTypeCapture }
func (e CaptureEvent) Timestamp() time.Time { return e.timestamp }

// NewCaptureEvent creates a new capture event
func NewCaptureEvent(before, after Slot) CaptureEvent {
	return CaptureEvent{Before: before, After: after, timestamp: time.Now()}
}

// TurnStartEvent is published when the session begins computing a turn.
type TurnStartEvent struct {
	Player    Player
	TurnIndex int
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(player Player, turnIndex int) TurnStartEvent {
	return TurnStartEvent{Player: player, TurnIndex: turnIndex, timestamp: time.Now()}
}

// MoveEvent is published when a candidate move has passed validation.
type MoveEvent struct {
	Player    Player
	TurnIndex int
	Move      Move
	timestamp time.Time
}

func (e MoveEvent) EventType() EventType { return EventTypeMove }
func (e MoveEvent) Timestamp() time.Time { return e.timestamp }

// NewMoveEvent creates a new move event
func NewMoveEvent(player Player, turnIndex int, move Move) MoveEvent {
	return MoveEvent{Player: player, TurnIndex: turnIndex, Move: move, timestamp: time.Now()}
}

// TurnEndEvent is published after a turn has been committed to the board,
// carrying the number of boxes it captured.
type TurnEndEvent struct {
	Player    Player
	TurnIndex int
	Captures  int
	timestamp time.Time
}

func (e TurnEndEvent) EventType() EventType { return EventTypeTurnEnd }
func (e TurnEndEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnEndEvent creates a new turn end event
func NewTurnEndEvent(player Player, turnIndex, captures int) TurnEndEvent {
	return TurnEndEvent{Player: player, TurnIndex: turnIndex, Captures: captures, timestamp: time.Now()}
}

// ForfeitEvent is published when a player capability declines to move.
type ForfeitEvent struct {
	Player    Player
	TurnIndex int
	timestamp time.Time
}

func (e ForfeitEvent) EventType() EventType { return EventTypeForfeit }
func (e ForfeitEvent) Timestamp() time.Time { return e.timestamp }

// NewForfeitEvent creates a new forfeit event
func NewForfeitEvent(player Player, turnIndex int) ForfeitEvent {
	return ForfeitEvent{Player: player, TurnIndex: turnIndex, timestamp: time.Now()}
}

// TimeoutEvent is published when a player capability misses its deadline.
type TimeoutEvent struct {
	Player    Player
	TurnIndex int
	Deadline  time.Duration
	timestamp time.Time
}

func (e TimeoutEvent) EventType() EventType { return EventTypeTimeout }
func (e TimeoutEvent) Timestamp() time.Time { return e.timestamp }

// NewTimeoutEvent creates a new timeout event
func NewTimeoutEvent(player Player, turnIndex int, deadline time.Duration) TimeoutEvent {
	return TimeoutEvent{Player: player, TurnIndex: turnIndex, Deadline: deadline, timestamp: time.Now()}
}

// ComputeErrorEvent is published when a player capability fails, carrying
// the underlying failure.
type ComputeErrorEvent struct {
	Player    Player
	TurnIndex int
	Err       error
	timestamp time.Time
}

func (e ComputeErrorEvent) EventType() EventType { return EventTypeComputeError }
func (e ComputeErrorEvent) Timestamp() time.Time { return e.timestamp }

// NewComputeErrorEvent creates a new compute error event
func NewComputeErrorEvent(player Player, turnIndex int, err error) ComputeErrorEvent {
	return ComputeErrorEvent{Player: player, TurnIndex: turnIndex, Err: err, timestamp: time.Now()}
}

// Subscriber can subscribe to game events
type Subscriber interface {
	OnEvent(event Event)
}

// Subscription is the disposable handle returned by Subscribe. Canceling it
// removes the subscriber from the bus; canceling twice is a no-op.
type Subscription struct {
	bus *EventBus
	id  int
}

// Cancel removes the subscription from its bus.
func (s *Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	for i, entry := range s.bus.entries {
		if entry.id == s.id {
			s.bus.entries = append(s.bus.entries[:i], s.bus.entries[i+1:]...)
			break
		}
	}
	s.bus = nil
}

type busEntry struct {
	id         int
	subscriber Subscriber
}

// EventBus is an ordered, synchronous observer registry. Publish invokes
// subscribers in subscription order on the caller's goroutine, so an
// observer always sees board state consistent with the event payload.
type EventBus struct {
	entries []busEntry
	nextID  int
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds a subscriber and returns its disposal handle.
func (bus *EventBus) Subscribe(subscriber Subscriber) *Subscription {
	bus.nextID++
	bus.entries = append(bus.entries, busEntry{id: bus.nextID, subscriber: subscriber})
	return &Subscription{bus: bus, id: bus.nextID}
}

// Publish sends an event to all current subscribers, in subscription order.
func (bus *EventBus) Publish(event Event) {
	// Snapshot so a subscriber canceling mid-dispatch does not skip others.
	entries := make([]busEntry, len(bus.entries))
	copy(entries, bus.entries)
	for _, entry := range entries {
		entry.subscriber.OnEvent(event)
	}
}
