package ecs

import (
	"time"

	"github.com/milk9111/tricolor/ecs/component"
)

// Resources is the process-wide state shared by systems. Each field has a
// single writer per frame.
type Resources struct {
	Progress component.LevelProgress
	// Timer is nil while no countdown is running.
	Timer *component.Countdown
	Input component.Input
	Text  component.HUDText
	// Delta is the duration of the frame being updated.
	Delta time.Duration
	Frame uint64
}

// World owns entities, components, system order and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  Scheduler
	events   EventQueue
	res      Resources
}

// NewWorld creates an empty ECS world with no level selected.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		res: Resources{
			Progress: component.NewLevelProgress(),
		},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.systems.Add(s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	return w.systems.Systems()
}

// Update runs all systems once for a frame of length dt, then drops the
// frame's events.
func (w *World) Update(dt time.Duration) {
	if w == nil {
		return
	}
	w.res.Delta = dt
	w.res.Frame++
	w.systems.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Resources returns the shared state.
func (w *World) Resources() *Resources {
	if w == nil {
		return nil
	}
	return &w.res
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
