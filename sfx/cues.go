package sfx

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/milk9111/tricolor/ecs/component"
)

// SampleRate is shared by the synthesised cues and both audio backends.
const SampleRate = beep.SampleRate(44100)

const (
	moveDuration    = 60 * time.Millisecond
	noteDuration    = 110 * time.Millisecond
	trapDuration    = 260 * time.Millisecond
	timerStep       = 180 * time.Millisecond
	defaultAttack   = 5 * time.Millisecond
	defaultRelease  = 40 * time.Millisecond
	goalNoteRelease = 70 * time.Millisecond
)

// Streamer synthesises a finite cue for s at the given gain.
func Streamer(s component.Sound, rate beep.SampleRate, gain float64) beep.Streamer {
	var cue beep.Streamer
	switch s {
	case component.SoundGoalReached:
		cue = goalCue(rate)
	case component.SoundHitTrap:
		cue = trapCue(rate)
	case component.SoundPlayerMoved:
		cue = moveCue(rate)
	case component.SoundTimerExpired:
		cue = timerCue(rate)
	default:
		return beep.Silence(0)
	}
	return volume(cue, gain)
}

// Duration is the length of the cue for s.
func Duration(s component.Sound) time.Duration {
	switch s {
	case component.SoundGoalReached:
		return 3 * noteDuration
	case component.SoundHitTrap:
		return trapDuration
	case component.SoundPlayerMoved:
		return moveDuration
	case component.SoundTimerExpired:
		return 2 * timerStep
	}
	return 0
}

func moveCue(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, 660)
	if err != nil {
		sine = NewOscillator(660, moveDuration, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(moveDuration), sine), moveDuration, defaultAttack, defaultRelease, rate)
}

// goalCue is a rising C major arpeggio.
func goalCue(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, noteDuration, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, noteDuration, defaultAttack, goalNoteRelease, rate))
	}
	return beep.Seq(seq...)
}

func trapCue(rate beep.SampleRate) beep.Streamer {
	buzz := NewEnvelope(NewOscillator(110, trapDuration, WaveSaw, rate), trapDuration, defaultAttack, 120*time.Millisecond, rate)
	hiss := NewEnvelope(NewOscillator(0, trapDuration, WaveNoise, rate), trapDuration, defaultAttack, 200*time.Millisecond, rate)
	return beep.Mix(volume(buzz, 0.7), volume(hiss, 0.3))
}

func timerCue(rate beep.SampleRate) beep.Streamer {
	hi := NewEnvelope(NewOscillator(440, timerStep, WaveSquare, rate), timerStep, defaultAttack, defaultRelease, rate)
	lo := NewEnvelope(NewOscillator(220, timerStep, WaveSquare, rate), timerStep, defaultAttack, defaultRelease, rate)
	return volume(beep.Seq(hi, lo), 0.5)
}
