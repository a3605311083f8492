package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tricolor/ecs/component"
)

// Keyboard reads WASD and the arrow keys. Only keys pressed this tick count,
// so holding a key moves one cell.
type Keyboard struct{}

func (Keyboard) Direction() component.Direction {
	return component.FirstDirection(
		justPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		justPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		justPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		justPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	)
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
