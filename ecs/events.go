package ecs

// EventKind identifies gameplay signals.
type EventKind string

const (
	EventPlayerMoved  EventKind = "player_moved"
	EventReachedGoal  EventKind = "reached_goal"
	EventHitTrap      EventKind = "hit_trap"
	EventTimerExpired EventKind = "timer_expired"
)

// Event is a tagged signal raised during a frame. Entity is the goal or trap
// involved, or zero when the signal has no source entity.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a FIFO of the current frame's events. Readers do not consume
// events; the world clears the queue after every system has run.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each calls fn for every queued event of the given kind, in push order.
func (q *EventQueue) Each(kind EventKind, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Kind == kind {
			fn(evt)
		}
	}
}

// Count returns how many events of kind are queued.
func (q *EventQueue) Count(kind EventKind) int {
	n := 0
	q.Each(kind, func(Event) { n++ })
	return n
}

// All returns a copy of the queued events in push order.
func (q *EventQueue) All() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return append([]Event(nil), q.items...)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
