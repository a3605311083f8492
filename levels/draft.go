package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/tricolor/ecs/component"
)

var ErrOutOfBounds = errors.New("levels: placement outside the grid")

// Kind is what an edit places.
type Kind int

const (
	KindPlayer Kind = iota
	KindGoal
	KindTrap
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindGoal:
		return "Goal"
	case KindTrap:
		return "Trap"
	}
	return "Unknown"
}

const maxUndo = 100

type snapshot struct {
	levels []Level
	index  int
}

// Draft is a level set being edited. Every mutation can be undone.
type Draft struct {
	set   Set
	index int
	undo  []snapshot
}

// NewDraft copies set. An empty set starts with one blank level.
func NewDraft(set *Set) *Draft {
	d := &Draft{}
	if set != nil {
		d.set.Levels = cloneLevels(set.Levels)
	}
	if len(d.set.Levels) == 0 {
		d.set.Levels = []Level{blankLevel()}
	}
	return d
}

func blankLevel() Level {
	return Level{Player: Placement{X: 0, Y: 0, Color: component.ColorWhite}}
}

func cloneLevels(in []Level) []Level {
	out := make([]Level, len(in))
	for i, lvl := range in {
		out[i] = Level{
			Player: lvl.Player,
			Goals:  append([]Placement(nil), lvl.Goals...),
			Traps:  append([]Placement(nil), lvl.Traps...),
		}
	}
	return out
}

// Set returns a copy of the edited set.
func (d *Draft) Set() *Set {
	return &Set{Levels: cloneLevels(d.set.Levels)}
}

func (d *Draft) Index() int { return d.index }

func (d *Draft) Len() int { return len(d.set.Levels) }

// Level is the level being edited.
func (d *Draft) Level() *Level {
	return &d.set.Levels[d.index]
}

func (d *Draft) save() {
	d.undo = append(d.undo, snapshot{levels: cloneLevels(d.set.Levels), index: d.index})
	if len(d.undo) > maxUndo {
		d.undo = d.undo[len(d.undo)-maxUndo:]
	}
}

// Undo restores the state before the last edit.
func (d *Draft) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	last := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	d.set.Levels = last.levels
	d.index = last.index
	return true
}

// Select switches the edited level.
func (d *Draft) Select(i int) bool {
	if i < 0 || i >= len(d.set.Levels) {
		return false
	}
	d.index = i
	return true
}

// Place puts k at p. The player moves; a goal or trap replaces any of the
// same kind already in the cell.
func (d *Draft) Place(k Kind, p component.GridPos, c component.GameColor) bool {
	if !p.InBounds() || !c.Valid() {
		return false
	}
	d.save()
	lvl := d.Level()
	pl := Placement{X: p.X, Y: p.Y, Color: c}
	switch k {
	case KindPlayer:
		lvl.Player = pl
	case KindGoal:
		lvl.Goals = append(without(lvl.Goals, p), pl)
	case KindTrap:
		lvl.Traps = append(without(lvl.Traps, p), pl)
	default:
		d.undo = d.undo[:len(d.undo)-1]
		return false
	}
	return true
}

// Erase removes the goals and traps at p. The player cannot be erased.
func (d *Draft) Erase(p component.GridPos) bool {
	lvl := d.Level()
	goals, traps := without(lvl.Goals, p), without(lvl.Traps, p)
	if len(goals) == len(lvl.Goals) && len(traps) == len(lvl.Traps) {
		return false
	}
	d.save()
	lvl = d.Level()
	lvl.Goals, lvl.Traps = goals, traps
	return true
}

func without(ps []Placement, p component.GridPos) []Placement {
	out := make([]Placement, 0, len(ps))
	for _, pl := range ps {
		if pl.Pos() != p {
			out = append(out, pl)
		}
	}
	return out
}

// AddLevel inserts a blank level after the current one and selects it.
func (d *Draft) AddLevel() {
	d.save()
	i := d.index + 1
	d.set.Levels = append(d.set.Levels, Level{})
	copy(d.set.Levels[i+1:], d.set.Levels[i:])
	d.set.Levels[i] = blankLevel()
	d.index = i
}

// DeleteLevel removes the current level. The last level cannot be deleted.
func (d *Draft) DeleteLevel() bool {
	if len(d.set.Levels) <= 1 {
		return false
	}
	d.save()
	d.set.Levels = append(d.set.Levels[:d.index], d.set.Levels[d.index+1:]...)
	if d.index >= len(d.set.Levels) {
		d.index = len(d.set.Levels) - 1
	}
	return true
}

// ReplaceLevel swaps the current level for lvl after validating it.
func (d *Draft) ReplaceLevel(lvl Level) error {
	if err := validateLevel(lvl); err != nil {
		return err
	}
	d.save()
	d.set.Levels[d.index] = cloneLevels([]Level{lvl})[0]
	return nil
}

// Validate checks every level for colours and bounds.
func (d *Draft) Validate() error {
	for i, lvl := range d.set.Levels {
		if err := validateLevel(lvl); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}

func validateLevel(lvl Level) error {
	if err := checkColors(lvl); err != nil {
		return err
	}
	if !lvl.Player.Pos().InBounds() {
		return fmt.Errorf("player %s: %w", lvl.Player.Pos(), ErrOutOfBounds)
	}
	for _, p := range append(append([]Placement(nil), lvl.Goals...), lvl.Traps...) {
		if !p.Pos().InBounds() {
			return fmt.Errorf("%s: %w", p.Pos(), ErrOutOfBounds)
		}
	}
	return nil
}
