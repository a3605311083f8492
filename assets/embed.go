package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/milk9111/tricolor/sfx"
)

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	fontOnce sync.Once
	boldFont *text.GoTextFaceSource
	fontErr  error
)

// AudioContext returns the process audio context. Ebiten allows only one.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(int(sfx.SampleRate))
	})
	return audioContext
}

// LoadAudioPlayer reads an ogg or wav file from disk and creates a player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	reader := bytes.NewReader(b)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

// BoldFont is the HUD typeface.
func BoldFont() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("assets: load bold font: %w", fontErr)
		}
	})
	return boldFont, fontErr
}
