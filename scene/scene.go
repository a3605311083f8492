// Package scene turns world state into per-view draw lists shared by the
// window renderer, the terminal frontend and the preview exporter.
package scene

import (
	"image/color"
	"sort"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/geom"
)

const (
	FloorSize = 0.95
	// FloorY is the height of floor tile centres; entities sit at 1.
	FloorY = 0
)

var FloorColor = color.RGBA{R: 204, G: 204, B: 204, A: 255}

// Item is one entity to draw in a view.
type Item struct {
	Entity ecs.Entity
	Mesh   component.Mesh
	Color  color.RGBA
	Center geom.Vec3
	Depth  float64
}

// Tile is one floor cell.
type Tile struct {
	Cell   component.GridPos
	Center geom.Vec3
	Depth  float64
}

// Collect returns the entities visible in layer, farthest first. Entities
// behind the camera are skipped.
func Collect(w *ecs.World, layer component.RenderLayers, cam geom.Camera) []Item {
	var items []Item
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.MeshComponent.Kind(), component.RenderLayersComponent.Kind(),
		func(e ecs.Entity, tf *component.Transform, mesh *component.Mesh, layers *component.RenderLayers) {
			if !layers.Has(layer) {
				return
			}
			depth, ok := cam.Depth(tf.Translation)
			if !ok {
				return
			}
			clr := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if mat, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok {
				clr = mat.Color
			}
			items = append(items, Item{
				Entity: e,
				Mesh:   *mesh,
				Color:  clr,
				Center: tf.Translation,
				Depth:  depth,
			})
		})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Depth != items[j].Depth {
			return items[i].Depth > items[j].Depth
		}
		return items[i].Entity < items[j].Entity
	})
	return items
}

// Floor returns every floor tile, farthest first. The floor is drawn in all
// views.
func Floor(cam geom.Camera) []Tile {
	tiles := make([]Tile, 0, component.GridWidth*component.GridHeight)
	for y := 0; y < component.GridHeight; y++ {
		for x := 0; x < component.GridWidth; x++ {
			cell := component.GridPos{X: x, Y: y}
			center := component.GridToWorld(cell)
			center.Y = FloorY
			depth, _ := cam.Depth(center)
			tiles = append(tiles, Tile{Cell: cell, Center: center, Depth: depth})
		}
	}
	sort.SliceStable(tiles, func(i, j int) bool { return tiles[i].Depth > tiles[j].Depth })
	return tiles
}
