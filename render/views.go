package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/geom"
	"github.com/milk9111/tricolor/scene"
)

// Gap is the horizontal spacing between views in pixels.
const Gap = 5

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// Views renders the red, green and blue camera views into offscreen images
// and composites them side by side through the channel shader.
type Views struct {
	cam    geom.Camera
	shader *ebiten.Shader
	shapes *Shapes
	images [3]*ebiten.Image
	viewW  int
	viewH  int
}

func NewViews(cam geom.Camera) (*Views, error) {
	shader, err := NewChannelShader()
	if err != nil {
		return nil, err
	}
	return &Views{cam: cam, shader: shader, shapes: NewShapes(cam)}, nil
}

// Resize recreates the view images for a window of the given size. It
// reports whether anything changed.
func (v *Views) Resize(width, height int) bool {
	viewW := (width - 2*Gap) / 3
	if viewW < 1 {
		viewW = 1
	}
	if height < 1 {
		height = 1
	}
	if viewW == v.viewW && height == v.viewH && v.images[0] != nil {
		return false
	}
	for i, img := range v.images {
		if img != nil {
			img.Deallocate()
		}
		v.images[i] = ebiten.NewImage(viewW, height)
	}
	v.viewW, v.viewH = viewW, height
	log.Debug().Int("view_w", viewW).Int("view_h", height).Msg("views resized")
	return true
}

// Size is the size of one view.
func (v *Views) Size() (int, int) {
	return v.viewW, v.viewH
}

// View returns the unfiltered image of view i.
func (v *Views) View(i int) *ebiten.Image {
	if i < 0 || i >= len(v.images) {
		return nil
	}
	return v.images[i]
}

// Render draws the floor and every visible entity into each view.
func (v *Views) Render(w *ecs.World) {
	if v.images[0] == nil {
		return
	}
	floor := scene.Floor(v.cam)
	for i, layer := range component.ViewLayers {
		img := v.images[i]
		img.Fill(background)
		for _, t := range floor {
			v.shapes.Tile(img, t)
		}
		for _, item := range scene.Collect(w, layer, v.cam) {
			v.shapes.Item(img, item)
		}
	}
}

// Draw composites the filtered views onto screen from left to right.
func (v *Views) Draw(screen *ebiten.Image) {
	if v.images[0] == nil {
		return
	}
	for i, layer := range component.ViewLayers {
		opts := &ebiten.DrawRectShaderOptions{}
		opts.Images[0] = v.images[i]
		opts.GeoM.Translate(float64(i*(v.viewW+Gap)), 0)
		opts.Uniforms = map[string]any{
			"Channel": channelMask(layer),
		}
		screen.DrawRectShader(v.viewW, v.viewH, v.shader, opts)
	}
}
