package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// TextSystem refreshes the timer readout and the win flag.
type TextSystem struct{}

func NewTextSystem() *TextSystem {
	return &TextSystem{}
}

func (t *TextSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	res := w.Resources()
	res.Text.ShowWin = res.Progress.Finished()
	if res.Timer == nil {
		res.Text.Timer = component.NoTimerText
		res.Text.TimerTone = component.ToneWhite
		return
	}
	remaining := res.Timer.Remaining()
	res.Text.Timer = component.TimerText(remaining)
	res.Text.TimerTone = component.ToneFor(remaining)
}
