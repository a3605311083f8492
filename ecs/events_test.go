package ecs

import "testing"

func TestEventQueueOrder(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventReachedGoal, Entity: 1})
	q.Push(Event{Kind: EventHitTrap, Entity: 2})
	q.Push(Event{Kind: EventReachedGoal, Entity: 3})

	var goals []Entity
	q.Each(EventReachedGoal, func(e Event) { goals = append(goals, e.Entity) })
	if len(goals) != 2 || goals[0] != 1 || goals[1] != 3 {
		t.Fatalf("expected goals [1 3] in push order, got %v", goals)
	}
	if q.Count(EventHitTrap) != 1 || q.Count(EventTimerExpired) != 0 {
		t.Fatalf("unexpected counts")
	}
	if len(q.All()) != 3 {
		t.Fatalf("Each must not consume events")
	}
	drained := q.Drain()
	if len(drained) != 3 || len(q.All()) != 0 {
		t.Fatalf("drain should return all events and empty the queue")
	}
}

func TestNilEventQueue(t *testing.T) {
	var q *EventQueue
	q.Push(Event{Kind: EventHitTrap})
	if q.Count(EventHitTrap) != 0 || q.All() != nil || q.Drain() != nil {
		t.Fatalf("nil queue should be inert")
	}
}
