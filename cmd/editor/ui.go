package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

const leftPanelWidth = 220

// EditorUI is the side panel: file name, level navigation, the kind and
// colour pickers and the action buttons.
type EditorUI struct {
	UI            *ebitenui.UI
	FileNameInput *widget.TextInput
	LevelLabel    *widget.Text
	kinds         *widget.RadioGroup
	kindButtons   []*widget.Button
}

type uiCallbacks struct {
	onKind     func(levels.Kind)
	onColor    func(component.GameColor)
	onPrev     func()
	onNext     func()
	onAdd      func()
	onDelete   func()
	onUndo     func()
	onSave     func()
	onCopy     func()
	onPaste    func()
	startColor component.GameColor
}

func BuildEditorUI(cb uiCallbacks) (*EditorUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 12, Right: 12, Bottom: 12}),
			),
		),
	)

	eui := &EditorUI{UI: ui}
	eui.FileNameInput = addFileNameSection(panel, &fontFace)

	eui.LevelLabel = widget.NewText(widget.TextOpts.Text("Level 1/1", &fontFace, color.White))
	panel.AddChild(eui.LevelLabel)
	panel.AddChild(buttonRow(ui.PrimaryTheme, &fontFace,
		action{"Prev", cb.onPrev}, action{"Next", cb.onNext}))
	panel.AddChild(buttonRow(ui.PrimaryTheme, &fontFace,
		action{"Add", cb.onAdd}, action{"Delete", cb.onDelete}))

	panel.AddChild(sectionLabel("Place", &fontFace))
	eui.addKindSection(panel, ui.PrimaryTheme, &fontFace, cb.onKind)

	panel.AddChild(sectionLabel("Color", &fontFace))
	addColorSection(panel, &fontFace, cb.onColor, cb.startColor)

	panel.AddChild(sectionLabel("Edit", &fontFace))
	panel.AddChild(buttonRow(ui.PrimaryTheme, &fontFace,
		action{"Undo", cb.onUndo}, action{"Save", cb.onSave}))
	panel.AddChild(buttonRow(ui.PrimaryTheme, &fontFace,
		action{"Copy", cb.onCopy}, action{"Paste", cb.onPaste}))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root
	return eui, nil
}

func addFileNameSection(parent *widget.Container, fontFace *text.Face) *widget.TextInput {
	fileLabel := widget.NewLabel(
		widget.LabelOpts.Text("File", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	fileNameInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth-24, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
	)
	parent.AddChild(fileLabel)
	parent.AddChild(fileNameInput)
	return fileNameInput
}

func sectionLabel(s string, fontFace *text.Face) *widget.Text {
	return widget.NewText(widget.TextOpts.Text(s, fontFace, color.RGBA{180, 180, 180, 255}))
}

type action struct {
	label string
	fn    func()
}

func buttonRow(theme *widget.Theme, fontFace *text.Face, actions ...action) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	for _, a := range actions {
		fn := a.fn
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}
	return row
}

var kinds = []levels.Kind{levels.KindPlayer, levels.KindGoal, levels.KindTrap}

func (e *EditorUI) addKindSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, onKind func(levels.Kind)) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	for _, k := range kinds {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(k.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 28)),
		)
		e.kindButtons = append(e.kindButtons, btn)
		row.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(e.kindButtons))
	for _, b := range e.kindButtons {
		elements = append(elements, b)
	}
	e.kinds = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range e.kindButtons {
				if args.Active == b && onKind != nil {
					onKind(kinds[i])
					return
				}
			}
		}),
	)
	parent.AddChild(row)
}

// SelectKind reflects a keyboard kind change in the toolbar.
func (e *EditorUI) SelectKind(k levels.Kind) {
	if int(k) < len(e.kindButtons) {
		e.kinds.SetActive(e.kindButtons[k])
	}
}

func addColorSection(parent *widget.Container, fontFace *text.Face, onColor func(component.GameColor), start component.GameColor) {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(4),
			widget.GridLayoutOpts.Spacing(4, 4),
			widget.GridLayoutOpts.Stretch([]bool{true, true, true, true}, nil),
		)),
	)

	var buttons []*widget.Button
	colors := component.AllColors()
	for _, c := range colors {
		rgba := c.RGBA()
		pressed := color.RGBA{R: rgba.R / 2, G: rgba.G / 2, B: rgba.B / 2, A: 255}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    solidNineSlice(rgba),
				Hover:   solidNineSlice(rgba),
				Pressed: solidNineSlice(pressed),
			}),
			widget.ButtonOpts.Text(c.String()[:1], fontFace, &widget.ButtonTextColor{Idle: color.Black, Pressed: color.White}),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(40, 28)),
		)
		buttons = append(buttons, btn)
		grid.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range buttons {
				if args.Active == b && onColor != nil {
					onColor(colors[i])
					return
				}
			}
		}),
	)
	for i, c := range colors {
		if c == start {
			group.SetActive(buttons[i])
		}
	}
	parent.AddChild(grid)
}
