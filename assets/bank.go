package assets

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/config"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/sfx"
)

// Bank holds one player per cue. Cues whose file is missing or unreadable
// fall back to a synthesised tone.
type Bank struct {
	players map[component.Sound]*audio.Player
	muted   bool
}

func NewBank(cfg *config.Config, muted bool) *Bank {
	b := &Bank{players: make(map[component.Sound]*audio.Player), muted: muted}
	if muted {
		return b
	}

	for _, s := range component.Sounds {
		path := cfg.SoundPath(s)
		player, err := LoadAudioPlayer(path)
		if err != nil {
			log.Warn().Err(err).Stringer("sound", s).Str("path", path).Msg("using synthesised cue")
			player = AudioContext().NewPlayerFromBytes(sfx.PCM16(sfx.Streamer(s, sfx.SampleRate, 1)))
		}
		player.SetVolume(cfg.Sound(s).Volume)
		b.players[s] = player
	}
	return b
}

// Play restarts the cue from the beginning.
func (b *Bank) Play(s component.Sound) {
	if b == nil || b.muted {
		return
	}
	player := b.players[s]
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn().Err(err).Stringer("sound", s).Msg("rewind")
		return
	}
	player.Play()
}
