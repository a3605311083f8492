package render

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tricolor/ecs/component"
)

//go:embed channel.kage
var channelSrc []byte

func NewChannelShader() (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader(channelSrc)
	if err != nil {
		return nil, fmt.Errorf("render: compile channel shader: %w", err)
	}
	return shader, nil
}

// channelMask is the Channel uniform for a view layer.
func channelMask(layer component.RenderLayers) []float32 {
	switch layer {
	case component.LayerRed:
		return []float32{1, 0, 0}
	case component.LayerGreen:
		return []float32{0, 1, 0}
	case component.LayerBlue:
		return []float32{0, 0, 1}
	}
	return []float32{1, 1, 1}
}
