package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

const (
	cellSize  = 48
	canvasTop = 48
)

var (
	gridLine  = color.RGBA{80, 80, 90, 255}
	gridFloor = color.RGBA{28, 28, 34, 255}
)

// EditorGame is the Ebiten game for the editor.
type EditorGame struct {
	draft     *levels.Draft
	ui        *EditorUI
	clip      *Clipboard
	status    Status
	kind      levels.Kind
	color     component.GameColor
	savePath  string
	canvasOff float64
}

func NewEditorGame(draft *levels.Draft, savePath string, clip *Clipboard) (*EditorGame, error) {
	g := &EditorGame{
		draft:    draft,
		clip:     clip,
		kind:     levels.KindTrap,
		color:    component.ColorRed,
		savePath: savePath,
	}
	ui, err := BuildEditorUI(uiCallbacks{
		onKind:     func(k levels.Kind) { g.kind = k },
		onColor:    func(c component.GameColor) { g.color = c },
		onPrev:     func() { g.selectLevel(g.draft.Index() - 1) },
		onNext:     func() { g.selectLevel(g.draft.Index() + 1) },
		onAdd:      g.addLevel,
		onDelete:   g.deleteLevel,
		onUndo:     g.undo,
		onSave:     g.save,
		onCopy:     g.copyLevel,
		onPaste:    g.pasteLevel,
		startColor: component.ColorRed,
	})
	if err != nil {
		return nil, err
	}
	g.ui = ui
	g.ui.SelectKind(g.kind)
	g.ui.FileNameInput.SetText(savePath)
	g.refreshLabel()
	return g, nil
}

func (g *EditorGame) refreshLabel() {
	g.ui.LevelLabel.Label = fmt.Sprintf("Level %d/%d", g.draft.Index()+1, g.draft.Len())
}

func (g *EditorGame) selectLevel(i int) {
	if g.draft.Select(i) {
		g.refreshLabel()
	}
}

func (g *EditorGame) addLevel() {
	g.draft.AddLevel()
	g.refreshLabel()
}

func (g *EditorGame) deleteLevel() {
	if !g.draft.DeleteLevel() {
		g.status.Set("cannot delete the last level")
		return
	}
	g.refreshLabel()
}

func (g *EditorGame) undo() {
	if g.draft.Undo() {
		g.refreshLabel()
	}
}

func (g *EditorGame) save() {
	path := g.ui.FileNameInput.GetText()
	if path == "" {
		path = g.savePath
	}
	if path == "" {
		g.status.Set("enter a file name first")
		return
	}
	if err := g.draft.Validate(); err != nil {
		g.status.Set(err.Error())
		return
	}
	data, err := levels.Encode(g.draft.Set())
	if err != nil {
		g.status.Set(err.Error())
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		g.status.Set(err.Error())
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		g.status.Set(err.Error())
		return
	}
	g.savePath = path
	log.Info().Str("path", path).Int("levels", g.draft.Len()).Msg("saved")
	g.status.Set("saved " + path)
}

func (g *EditorGame) copyLevel() {
	data, err := levels.EncodeLevel(*g.draft.Level())
	if err == nil {
		err = g.clip.Write(data)
	}
	if err != nil {
		g.status.Set("copy: " + err.Error())
		return
	}
	g.status.Set("level copied")
}

func (g *EditorGame) pasteLevel() {
	data, err := g.clip.Read()
	if err != nil {
		g.status.Set("paste: " + err.Error())
		return
	}
	lvl, err := levels.ParseLevel(data)
	if err == nil {
		err = g.draft.ReplaceLevel(lvl)
	}
	if err != nil {
		g.status.Set("paste: " + err.Error())
		return
	}
	g.status.Set("level pasted")
}

// cellAt maps a cursor position to a grid cell. Row 0 is at the bottom,
// matching the game views.
func (g *EditorGame) cellAt(x, y int) (component.GridPos, bool) {
	left := int(g.canvasOff)
	if x < left || y < canvasTop {
		return component.GridPos{}, false
	}
	cx := (x - left) / cellSize
	row := (y - canvasTop) / cellSize
	p := component.GridPos{X: cx, Y: component.GridHeight - 1 - row}
	return p, p.InBounds()
}

func (g *EditorGame) Update() error {
	g.ui.UI.Update()

	suppressHotkeys := false
	if fw := g.ui.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			suppressHotkeys = true
		}
	}

	if !suppressHotkeys {
		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
		switch {
		case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
			g.save()
		case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
			g.undo()
		case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
			g.copyLevel()
		case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
			g.pasteLevel()
		case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
			g.selectLevel(g.draft.Index() - 1)
		case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
			g.selectLevel(g.draft.Index() + 1)
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			g.ui.SelectKind(levels.KindPlayer)
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			g.ui.SelectKind(levels.KindGoal)
		case inpututil.IsKeyJustPressed(ebiten.Key3):
			g.ui.SelectKind(levels.KindTrap)
		}
	}

	mx, my := ebiten.CursorPosition()
	if p, ok := g.cellAt(mx, my); ok {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			g.draft.Place(g.kind, p, g.color)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			g.draft.Erase(p)
		}
	}
	return nil
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 18, 22, 255})
	g.drawCanvas(screen)
	g.ui.UI.Draw(screen)
	g.status.Draw(screen)
}

func (g *EditorGame) cellOrigin(p component.GridPos) (float32, float32) {
	row := component.GridHeight - 1 - p.Y
	return float32(g.canvasOff) + float32(p.X*cellSize), float32(canvasTop + row*cellSize)
}

func (g *EditorGame) drawCanvas(screen *ebiten.Image) {
	for y := 0; y < component.GridHeight; y++ {
		for x := 0; x < component.GridWidth; x++ {
			cx, cy := g.cellOrigin(component.GridPos{X: x, Y: y})
			vector.DrawFilledRect(screen, cx, cy, cellSize, cellSize, gridFloor, false)
			vector.StrokeRect(screen, cx, cy, cellSize, cellSize, 1, gridLine, false)
		}
	}

	lvl := g.draft.Level()
	const half = cellSize / 2
	for _, t := range lvl.Traps {
		cx, cy := g.cellOrigin(t.Pos())
		vector.DrawFilledRect(screen, cx+6, cy+6, cellSize-12, cellSize-12, t.Color.RGBA(), false)
	}
	for _, goal := range lvl.Goals {
		cx, cy := g.cellOrigin(goal.Pos())
		vector.StrokeCircle(screen, cx+half, cy+half, half-8, 4, goal.Color.RGBA(), true)
	}
	cx, cy := g.cellOrigin(lvl.Player.Pos())
	vector.DrawFilledCircle(screen, cx+half, cy+half, half-10, lvl.Player.Color.RGBA(), true)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	canvasW := component.GridWidth * cellSize
	free := outsideWidth - leftPanelWidth - canvasW
	if free < 0 {
		free = 0
	}
	g.canvasOff = float64(leftPanelWidth + free/2)
	return outsideWidth, outsideHeight
}
