package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/tricolor/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestRecycledSlotInvalidatesStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ by generation")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle should not be alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle must not resolve components")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(7)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 7 {
					t.Fatalf("expected 7 on e1, got %v %v", v, ok)
				}
			},
		},
		{
			name: "add_both_to_e2",
			setup: func() error {
				if err := Add(w, e2, hInt.Kind(), intPtr(3)); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), stringPtr("two"))
			},
			check: func(t *testing.T) {
				got := w.Query(hInt.Kind(), hStr.Kind())
				if len(got) != 1 || got[0] != e2 {
					t.Fatalf("expected only e2 in query, got %v", got)
				}
			},
		},
		{
			name:  "add_string_to_e3",
			setup: func() error { return Add(w, e3, hStr.Kind(), stringPtr("three")) },
			check: func(t *testing.T) {
				got := w.Query(hStr.Kind())
				if len(got) != 2 || got[0] != e2 || got[1] != e3 {
					t.Fatalf("expected [e2 e3] ordered by slot, got %v", got)
				}
				if w.Count(hStr.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", w.Count(hStr.Kind()))
				}
			},
		},
		{
			name: "mutate_through_pointer",
			setup: func() error {
				v, _ := Get(w, e1, hInt.Kind())
				*v = 42
				return nil
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e1, hInt.Kind())
				if *v != 42 {
					t.Fatalf("expected mutation to be visible, got %d", *v)
				}
			},
		},
		{
			name: "remove_int_from_e1",
			setup: func() error {
				if !Remove(w, e1, hInt.Kind()) {
					return errors.New("remove returned false")
				}
				return nil
			},
			check: func(t *testing.T) {
				first, ok := w.First(hInt.Kind())
				if !ok || first != e2 {
					t.Fatalf("expected e2 to be first int holder, got %v", first)
				}
				if _, ok := w.Single(hStr.Kind()); ok {
					t.Fatalf("Single should fail with two holders")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := w.CreateEntity()

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil_value", func() error { return Add(w, e, h.Kind(), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
		{"dead_entity", func() error {
			dead := w.CreateEntity()
			w.DestroyEntity(dead)
			return Add(w, dead, h.Kind(), intPtr(1))
		}, component.ErrEntityNotAlive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		w.DestroyEntity(e)
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if w.Count(h.Kind()) != 0 || len(w.Entities()) != 0 {
		t.Fatalf("expected everything destroyed")
	}
}

func TestForEach2And3(t *testing.T) {
	w := NewWorld()
	hA := component.NewComponent[int]()
	hB := component.NewComponent[string]()
	hC := component.NewComponent[bool]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	_ = Add(w, e1, hA.Kind(), intPtr(1))
	_ = Add(w, e1, hB.Kind(), stringPtr("a"))
	_ = Add(w, e2, hA.Kind(), intPtr(2))
	_ = Add(w, e2, hB.Kind(), stringPtr("b"))
	flag := true
	_ = Add(w, e2, hC.Kind(), &flag)

	pairs := 0
	ForEach2(w, hA.Kind(), hB.Kind(), func(Entity, *int, *string) { pairs++ })
	if pairs != 2 {
		t.Fatalf("expected 2 pairs, got %d", pairs)
	}
	var triple []Entity
	ForEach3(w, hA.Kind(), hB.Kind(), hC.Kind(), func(e Entity, _ *int, _ *string, _ *bool) {
		triple = append(triple, e)
	})
	if len(triple) != 1 || triple[0] != e2 {
		t.Fatalf("expected only e2, got %v", triple)
	}
}

type recordSystem struct {
	name string
	log  *[]string
	emit EventKind
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	if s.emit != "" {
		w.Events().Push(Event{Kind: s.emit})
	}
	w.Events().Each(EventPlayerMoved, func(Event) {
		*s.log = append(*s.log, s.name+":saw_moved")
	})
}

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(recordSystem{name: "first", log: &log, emit: EventPlayerMoved})
	w.AddSystem(recordSystem{name: "second", log: &log})
	w.AddSystem(nil)

	w.Update(time.Second / 60)

	want := []string{"first", "first:saw_moved", "second", "second:saw_moved"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if len(w.Events().All()) != 0 {
		t.Fatalf("events must be cleared after the frame")
	}
	if res := w.Resources(); res.Delta != time.Second/60 || res.Frame != 1 {
		t.Fatalf("unexpected resources after update: %+v", res)
	}
	if len(w.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored")
	}
}

func TestNewWorldHasNoLevel(t *testing.T) {
	w := NewWorld()
	if w.Resources().Progress.State() != component.StateNoLevel {
		t.Fatalf("expected no level at startup")
	}
	if w.Resources().Timer != nil {
		t.Fatalf("expected no timer at startup")
	}
}
