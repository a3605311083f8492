package term

import (
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/scene"
)

const (
	cellW    = 2
	boardGap = 3
	boardTop = 1
)

var glyphs = map[component.Shape]rune{
	component.ShapeSphere: '@',
	component.ShapeCube:   '#',
	component.ShapeTorus:  'O',
}

var floorColor = scene.FloorColor

var viewNames = [len(component.ViewLayers)]string{"red", "green", "blue"}

// BoardLeft is the first column of view i.
func BoardLeft(i int) int {
	return i * (component.GridWidth*cellW + boardGap)
}

// CellAt is the screen position of grid cell p in view i. Row y = 0 is at
// the bottom, nearest the viewer.
func CellAt(i int, p component.GridPos) (int, int) {
	return BoardLeft(i) + p.X*cellW, boardTop + (component.GridHeight - 1 - p.Y)
}

// Draw renders every view and the HUD text.
func Draw(screen tcell.Screen, w *ecs.World, paused bool) {
	screen.Clear()

	for i, layer := range component.ViewLayers {
		drawText(screen, BoardLeft(i), 0, viewNames[i], tcell.StyleDefault.Foreground(tint(floorColor, layer)))
		board := scene.BuildBoard(w, layer)
		for y := 0; y < component.GridHeight; y++ {
			for x := 0; x < component.GridWidth; x++ {
				sx, sy := CellAt(i, component.GridPos{X: x, Y: y})
				cell := board[y][x]
				r, clr := '.', floorColor
				if !cell.Empty() {
					r, clr = glyphs[cell.Shape], cell.Color
				}
				screen.SetContent(sx, sy, r, nil, tcell.StyleDefault.Foreground(tint(clr, layer)))
			}
		}
	}

	hud := w.Resources().Text
	row := boardTop + component.GridHeight + 1
	timer := hud.Timer
	if timer == "" {
		timer = component.NoTimerText
	}
	drawText(screen, 0, row, timer, tcell.StyleDefault.Foreground(rgb(hud.TimerTone.RGBA())).Bold(true))
	row = drawText(screen, 0, row+2, component.ControlsText+"  (q quits, p pauses)", tcell.StyleDefault) + 1
	if paused {
		row = drawText(screen, 0, row, "Paused", tcell.StyleDefault.Bold(true)) + 1
	}
	if hud.ShowWin {
		drawText(screen, 0, row, component.WinText, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}

	screen.Show()
}

// drawText writes s from (x, y) and returns the row after its last line.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, line := range strings.Split(s, "\n") {
		for i, r := range []rune(line) {
			screen.SetContent(x+i, y, r, nil, style)
		}
		y++
	}
	return y
}

// tint keeps only the channel a view shows.
func tint(c color.RGBA, layer component.RenderLayers) tcell.Color {
	switch layer {
	case component.LayerRed:
		return tcell.NewRGBColor(int32(c.R), 0, 0)
	case component.LayerGreen:
		return tcell.NewRGBColor(0, int32(c.G), 0)
	case component.LayerBlue:
		return tcell.NewRGBColor(0, 0, int32(c.B))
	}
	return rgb(c)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
