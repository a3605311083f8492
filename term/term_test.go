package term

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

const frame = time.Second / 60

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func testSet() *levels.Set {
	return &levels.Set{Levels: []levels.Level{
		{
			Player: levels.Placement{X: 5, Y: 5, Color: component.ColorRed},
			Goals:  []levels.Placement{{X: 0, Y: 0, Color: component.ColorWhite}},
			Traps:  []levels.Placement{{X: 7, Y: 11, Color: component.ColorCyan}},
		},
	}}
}

func newApp(t *testing.T, src LevelSource) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := newScreen(t)
	app := NewApp(screen, Options{Levels: src}, nil)
	if err := app.Step(frame); err != nil {
		t.Fatalf("first step: %v", err)
	}
	return app, screen
}

func glyphAt(screen tcell.Screen, view int, p component.GridPos) (rune, tcell.Color) {
	x, y := CellAt(view, p)
	r, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return r, fg
}

func TestDrawFiltersViews(t *testing.T) {
	_, screen := newApp(t, levels.Ready(testSet()))

	cases := []struct {
		name  string
		view  int
		pos   component.GridPos
		glyph rune
		color tcell.Color
	}{
		{name: "red_player_in_red", view: 0, pos: component.GridPos{X: 5, Y: 5}, glyph: '@', color: tcell.NewRGBColor(255, 0, 0)},
		{name: "red_player_hidden_in_green", view: 1, pos: component.GridPos{X: 5, Y: 5}, glyph: '.'},
		{name: "white_goal_in_blue", view: 2, pos: component.GridPos{X: 0, Y: 0}, glyph: 'O', color: tcell.NewRGBColor(0, 0, 255)},
		{name: "cyan_trap_hidden_in_red", view: 0, pos: component.GridPos{X: 7, Y: 11}, glyph: '.'},
		{name: "cyan_trap_in_green", view: 1, pos: component.GridPos{X: 7, Y: 11}, glyph: '#', color: tcell.NewRGBColor(0, 255, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, fg := glyphAt(screen, tc.view, tc.pos)
			if r != tc.glyph {
				t.Fatalf("expected %q, got %q", tc.glyph, r)
			}
			if tc.color != 0 && fg != tc.color {
				t.Fatalf("expected colour %v, got %v", tc.color, fg)
			}
		})
	}
}

func TestCellAtPutsRowZeroAtTheBottom(t *testing.T) {
	_, top := CellAt(0, component.GridPos{X: 0, Y: component.GridHeight - 1})
	_, bottom := CellAt(0, component.GridPos{X: 0, Y: 0})
	if top != boardTop || bottom != boardTop+component.GridHeight-1 {
		t.Fatalf("unexpected rows top=%d bottom=%d", top, bottom)
	}
	x0, _ := CellAt(1, component.GridPos{})
	if x0 != component.GridWidth*cellW+boardGap {
		t.Fatalf("unexpected second board column %d", x0)
	}
}

func TestKeysMovePlayer(t *testing.T) {
	app, screen := newApp(t, levels.Ready(testSet()))

	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatalf("movement keys must not quit")
	}
	if err := app.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r, _ := glyphAt(screen, 0, component.GridPos{X: 5, Y: 6}); r != '@' {
		t.Fatalf("expected player at (5,6), got %q", r)
	}

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	app.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if err := app.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r, _ := glyphAt(screen, 0, component.GridPos{X: 5, Y: 7}); r != '@' {
		t.Fatalf("up has priority over right, expected player at (5,7), got %q", r)
	}
}

func TestPauseDropsKeys(t *testing.T) {
	app, screen := newApp(t, levels.Ready(testSet()))

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if err := app.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if err := app.Step(frame); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r, _ := glyphAt(screen, 0, component.GridPos{X: 5, Y: 5}); r != '@' {
		t.Fatalf("player should not move from keys pressed while paused, got %q", r)
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newApp(t, levels.Ready(testSet()))
	cases := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{name: "q", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{name: "ctrl_c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if app.HandleEvent(tc.ev) {
				t.Fatalf("expected %s to quit", tc.name)
			}
		})
	}
}

type failedLevels struct{ err error }

func (f failedLevels) Levels() (*levels.Set, bool) { return nil, false }
func (f failedLevels) Err() error                  { return f.err }

func TestStepSurfacesLoadError(t *testing.T) {
	want := errors.New("bad level file")
	app := NewApp(newScreen(t), Options{Levels: failedLevels{err: want}}, nil)
	if err := app.Step(frame); !errors.Is(err, want) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDrawWinMessage(t *testing.T) {
	app, screen := newApp(t, levels.Ready(&levels.Set{}))
	if !app.World().Resources().Text.ShowWin {
		t.Fatalf("empty set should be a win")
	}
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.HasPrefix(rowText(screen, y), "Congratulations! You win") {
			return
		}
	}
	t.Fatalf("expected the win message to be drawn")
}
