package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tricolor/assets"
	"github.com/milk9111/tricolor/ecs/component"
)

const (
	timerSize    = 50
	controlsSize = 20
	hudMargin    = 20
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD draws the timer, the controls hint and the win message.
type HUD struct {
	timerFace ebtext.Face
	controls  *ebitenui.UI
	win       *ebitenui.UI
}

func NewHUD() (*HUD, error) {
	src, err := assets.BoldFont()
	if err != nil {
		return nil, err
	}
	var small ebtext.Face = &ebtext.GoTextFace{Source: src, Size: controlsSize}
	var large ebtext.Face = &ebtext.GoTextFace{Source: src, Size: timerSize}

	return &HUD{
		timerFace: large,
		controls:  newControlsUI(&small),
		win:       newWinUI(&large),
	}, nil
}

func newControlsUI(face *ebtext.Face) *ebitenui.UI {
	label := widget.NewText(
		widget.TextOpts.Text(component.ControlsText, face, white),
	)
	box := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: hudMargin, Right: hudMargin}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	box.AddChild(label)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(box)
	return &ebitenui.UI{Container: root}
}

func newWinUI(face *ebtext.Face) *ebitenui.UI {
	label := widget.NewText(
		widget.TextOpts.Text(component.WinText, face, white),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (h *HUD) Update(text component.HUDText) {
	h.controls.Update()
	if text.ShowWin {
		h.win.Update()
	}
}

// Draw places the timer at the bottom centre, tinted by its tone.
func (h *HUD) Draw(screen *ebiten.Image, text component.HUDText) {
	h.controls.Draw(screen)

	timer := text.Timer
	if timer == "" {
		timer = component.NoTimerText
	}
	w, th := ebtext.Measure(timer, h.timerFace, 0)
	bounds := screen.Bounds()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((float64(bounds.Dx())-w)/2, float64(bounds.Dy())-th-hudMargin)
	op.ColorScale.ScaleWithColor(text.TimerTone.RGBA())
	ebtext.Draw(screen, timer, h.timerFace, op)

	if text.ShowWin {
		h.win.Draw(screen)
	}
}
