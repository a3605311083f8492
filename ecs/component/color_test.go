package component

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"
)

func TestGameColorLayers(t *testing.T) {
	cases := []struct {
		color GameColor
		red   bool
		green bool
		blue  bool
		rgba  color.RGBA
	}{
		{ColorRed, true, false, false, color.RGBA{255, 0, 0, 255}},
		{ColorGreen, false, true, false, color.RGBA{0, 255, 0, 255}},
		{ColorBlue, false, false, true, color.RGBA{0, 0, 255, 255}},
		{ColorYellow, true, true, false, color.RGBA{255, 255, 0, 255}},
		{ColorCyan, false, true, true, color.RGBA{0, 255, 255, 255}},
		{ColorPink, true, false, true, color.RGBA{255, 0, 255, 255}},
		{ColorWhite, true, true, true, color.RGBA{255, 255, 255, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.color.String(), func(t *testing.T) {
			l := tc.color.Layers()
			if l.Has(LayerRed) != tc.red || l.Has(LayerGreen) != tc.green || l.Has(LayerBlue) != tc.blue {
				t.Fatalf("unexpected layers %b for %s", l, tc.color)
			}
			if got := tc.color.RGBA(); got != tc.rgba {
				t.Fatalf("expected %v, got %v", tc.rgba, got)
			}
		})
	}
}

func TestGameColorJSONIsCaseSensitive(t *testing.T) {
	var c GameColor
	if err := json.Unmarshal([]byte(`"Cyan"`), &c); err != nil {
		t.Fatalf("unmarshal Cyan: %v", err)
	}
	if c != ColorCyan {
		t.Fatalf("expected Cyan, got %s", c)
	}
	err := json.Unmarshal([]byte(`"cyan"`), &c)
	if !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("expected ErrUnknownColor for lower-case name, got %v", err)
	}
	out, err := json.Marshal(ColorPink)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"Pink"` {
		t.Fatalf("expected \"Pink\", got %s", out)
	}
	if _, err := json.Marshal(ColorNone); err == nil {
		t.Fatalf("expected error marshalling ColorNone")
	}
}

func TestRenderLayersHasZero(t *testing.T) {
	if LayerAll.Has(0) {
		t.Fatalf("empty layer must not match")
	}
}
