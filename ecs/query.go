package ecs

import (
	"sort"

	"github.com/milk9111/tricolor/ecs/component"
)

// Query returns the live entities that carry every given kind, ordered by
// slot id.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range sets[smallest].ids() {
		matched := true
		for _, s := range sets {
			if !s.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	sortEntities(out)
	return out
}

// First returns the lowest-slot live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only entity carrying kind. It fails when there are none
// or more than one.
func (w *World) Single(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) != 1 {
		return 0, false
	}
	return ents[0], true
}

// Count returns how many live entities carry kind.
func (w *World) Count(kind component.Kind) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

func sortEntities(ents []Entity) {
	sort.Slice(ents, func(i, j int) bool { return ents[i].id() < ents[j].id() })
}
