package component

// RenderLayers is a bitmask of the camera views an entity is drawn in.
type RenderLayers uint8

const (
	LayerRed RenderLayers = 1 << (iota + 1)
	LayerGreen
	LayerBlue

	LayerAll = LayerRed | LayerGreen | LayerBlue
)

var RenderLayersComponent = NewComponent[RenderLayers]()

// ViewLayers is the view order, left to right.
var ViewLayers = [3]RenderLayers{LayerRed, LayerGreen, LayerBlue}

func (l RenderLayers) Has(layer RenderLayers) bool {
	return layer != 0 && l&layer == layer
}
