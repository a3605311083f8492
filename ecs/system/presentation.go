package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// MeshSystem gives role-tagged entities their primitive: sphere for the
// player, torus for goals, cube for traps.
type MeshSystem struct{}

func NewMeshSystem() *MeshSystem {
	return &MeshSystem{}
}

func (m *MeshSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	assignMesh(w, component.PlayerTagComponent.Kind(), component.PlayerMesh)
	assignMesh(w, component.GoalTagComponent.Kind(), component.GoalMesh)
	assignMesh(w, component.TrapTagComponent.Kind(), component.TrapMesh)
}

func assignMesh[T any](w *ecs.World, tag component.ComponentKind[T], mesh component.Mesh) {
	ecs.ForEach(w, tag, func(e ecs.Entity, _ *T) {
		if ecs.Has(w, e, component.MeshComponent.Kind()) {
			return
		}
		m := mesh
		_ = ecs.Add(w, e, component.MeshComponent.Kind(), &m)
	})
}

// TransformSystem derives world positions from grid cells.
type TransformSystem struct{}

func NewTransformSystem() *TransformSystem {
	return &TransformSystem{}
}

func (t *TransformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.GridPosComponent.Kind(), func(e ecs.Entity, pos *component.GridPos) {
		translation := component.GridToWorld(*pos)
		if tf, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tf.Translation = translation
			return
		}
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Translation: translation})
	})
}

// VisibilitySystem maps each GameColor to a material tint and the set of
// views that draw the entity.
type VisibilitySystem struct{}

func NewVisibilitySystem() *VisibilitySystem {
	return &VisibilitySystem{}
}

func (v *VisibilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.GameColorComponent.Kind(), func(e ecs.Entity, c *component.GameColor) {
		mat := component.Material{Color: c.RGBA()}
		layers := c.Layers()
		if err := ecs.Add(w, e, component.MaterialComponent.Kind(), &mat); err != nil {
			return
		}
		_ = ecs.Add(w, e, component.RenderLayersComponent.Kind(), &layers)
	})
}
