// Package speaker plays synthesised cues through the system audio device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/sfx"
)

// Player mixes cues into the beep speaker. The zero value is unusable; use
// New.
type Player struct {
	mu     sync.Mutex
	ready  bool
	volume map[component.Sound]float64
}

// New initialises the speaker. volumes maps each cue to a gain in [0, 1];
// missing cues play at full volume.
func New(volumes map[component.Sound]float64) (*Player, error) {
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: init: %w", err)
	}
	p := &Player{ready: true, volume: make(map[component.Sound]float64, len(volumes))}
	for s, v := range volumes {
		p.volume[s] = v
	}
	return p, nil
}

func (p *Player) Play(s component.Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	gain, ok := p.volume[s]
	if !ok {
		gain = 1
	}
	speaker.Play(sfx.Streamer(s, sfx.SampleRate, gain))
	log.Debug().Stringer("sound", s).Msg("play")
}

// Stop drops queued cues and ignores later Play calls. The device stays open.
func (p *Player) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}
