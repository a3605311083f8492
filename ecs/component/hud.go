package component

import (
	"fmt"
	"image/color"
	"time"
)

// Tone is the colour of the timer readout.
type Tone uint8

const (
	ToneWhite Tone = iota
	ToneYellow
	ToneRed
)

func (t Tone) RGBA() color.RGBA {
	switch t {
	case ToneYellow:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case ToneRed:
		return color.RGBA{R: 0xff, A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// ToneFor colours the remaining time: red at or under one second, yellow at
// or under two.
func ToneFor(remaining time.Duration) Tone {
	switch {
	case remaining <= time.Second:
		return ToneRed
	case remaining <= 2*time.Second:
		return ToneYellow
	}
	return ToneWhite
}

const (
	NoTimerText  = "Time: -"
	ControlsText = "Controls: WASD for movement\nReach the goal (ring) without hitting any walls"
	WinText      = "Congratulations! You win\n\nReload to play again"
)

// TimerText formats the readout for a running countdown.
func TimerText(remaining time.Duration) string {
	return fmt.Sprintf("Time: %.1f", remaining.Seconds())
}

// HUDText is the state the frontends draw as on-screen text.
type HUDText struct {
	Timer     string
	TimerTone Tone
	ShowWin   bool
}
