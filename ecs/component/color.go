package component

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrUnknownColor = errors.New("component: unknown game color")

// GameColor is the logical colour of a level entity. It decides the material
// tint and which of the three views render the entity.
type GameColor uint8

const (
	ColorNone GameColor = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorPink
	ColorWhite
)

var GameColorComponent = NewComponent[GameColor]()

var colorNames = [...]string{
	ColorNone:   "",
	ColorRed:    "Red",
	ColorGreen:  "Green",
	ColorBlue:   "Blue",
	ColorYellow: "Yellow",
	ColorCyan:   "Cyan",
	ColorPink:   "Pink",
	ColorWhite:  "White",
}

// AllColors lists the playable colours in declaration order.
func AllColors() []GameColor {
	return []GameColor{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorCyan, ColorPink, ColorWhite}
}

func (c GameColor) Valid() bool {
	return c > ColorNone && c <= ColorWhite
}

func (c GameColor) String() string {
	if !c.Valid() {
		return fmt.Sprintf("GameColor(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseGameColor matches name exactly; "red" is not "Red".
func ParseGameColor(name string) (GameColor, error) {
	for _, c := range AllColors() {
		if colorNames[c] == name {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func (c GameColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *GameColor) UnmarshalText(b []byte) error {
	parsed, err := ParseGameColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RGBA returns the pure material colour.
func (c GameColor) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 0xff, A: 0xff}
	case ColorGreen:
		return color.RGBA{G: 0xff, A: 0xff}
	case ColorBlue:
		return color.RGBA{B: 0xff, A: 0xff}
	case ColorYellow:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case ColorCyan:
		return color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	case ColorPink:
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	case ColorWhite:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{A: 0xff}
}

// Layers returns the views the colour is visible in.
func (c GameColor) Layers() RenderLayers {
	switch c {
	case ColorRed:
		return LayerRed
	case ColorGreen:
		return LayerGreen
	case ColorBlue:
		return LayerBlue
	case ColorYellow:
		return LayerRed | LayerGreen
	case ColorCyan:
		return LayerGreen | LayerBlue
	case ColorPink:
		return LayerRed | LayerBlue
	case ColorWhite:
		return LayerAll
	}
	return 0
}
