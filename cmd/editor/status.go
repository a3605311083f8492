package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const statusTTL = 3 * time.Second

// Status is a one-line message shown at the bottom of the canvas until it
// expires.
type Status struct {
	text  string
	until time.Time
}

func (s *Status) Set(text string) {
	s.text = text
	s.until = time.Now().Add(statusTTL)
}

func (s *Status) Draw(screen *ebiten.Image) {
	if s.text == "" || time.Now().After(s.until) {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, leftPanelWidth, float32(sh-28), float32(sw-leftPanelWidth), 28, color.RGBA{A: 0x88}, false)
	ebitenutil.DebugPrintAt(screen, s.text, leftPanelWidth+12, sh-22)
}
