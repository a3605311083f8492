package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/tricolor/ecs/component"
)

var (
	ErrMissingPlayer = errors.New("levels: level has no player")
	ErrMissingColor  = errors.New("levels: placement has no color")
)

// Placement is one entity start cell and colour.
type Placement struct {
	X     int                 `json:"x"`
	Y     int                 `json:"y"`
	Color component.GameColor `json:"color"`
}

func (p Placement) Pos() component.GridPos {
	return component.GridPos{X: p.X, Y: p.Y}
}

type Level struct {
	Player Placement   `json:"player"`
	Goals  []Placement `json:"goals"`
	Traps  []Placement `json:"traps"`
}

// Set is an ordered level set.
type Set struct {
	Levels []Level `json:"levels"`
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Levels)
}

// At returns level i, or false when i is out of range.
func (s *Set) At(i int) (*Level, bool) {
	if s == nil || i < 0 || i >= len(s.Levels) {
		return nil, false
	}
	return &s.Levels[i], true
}

// rawLevel accepts the older single "goal" object alongside "goals".
type rawLevel struct {
	Player *Placement  `json:"player"`
	Goal   *Placement  `json:"goal,omitempty"`
	Goals  []Placement `json:"goals"`
	Traps  []Placement `json:"traps"`
}

type rawSet struct {
	Levels []rawLevel `json:"levels"`
}

// Parse decodes a level set document.
func Parse(data []byte) (*Set, error) {
	var raw rawSet
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	set := &Set{Levels: make([]Level, 0, len(raw.Levels))}
	for i, rl := range raw.Levels {
		lvl, err := rl.level()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		set.Levels = append(set.Levels, lvl)
	}
	return set, nil
}

// ParseLevel decodes a single level object.
func ParseLevel(data []byte) (Level, error) {
	var rl rawLevel
	if err := json.Unmarshal(data, &rl); err != nil {
		return Level{}, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return rl.level()
}

func (rl rawLevel) level() (Level, error) {
	if rl.Player == nil {
		return Level{}, ErrMissingPlayer
	}
	lvl := Level{
		Player: *rl.Player,
		Goals:  rl.Goals,
		Traps:  rl.Traps,
	}
	if rl.Goal != nil {
		lvl.Goals = append(lvl.Goals, *rl.Goal)
	}
	if err := checkColors(lvl); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func checkColors(lvl Level) error {
	if !lvl.Player.Color.Valid() {
		return fmt.Errorf("player: %w", ErrMissingColor)
	}
	for i, g := range lvl.Goals {
		if !g.Color.Valid() {
			return fmt.Errorf("goal %d: %w", i, ErrMissingColor)
		}
	}
	for i, t := range lvl.Traps {
		if !t.Color.Valid() {
			return fmt.Errorf("trap %d: %w", i, ErrMissingColor)
		}
	}
	return nil
}

// LoadFile reads and parses a level set from disk.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

// EncodeLevel renders one level as indented JSON.
func EncodeLevel(lvl Level) ([]byte, error) {
	if lvl.Goals == nil {
		lvl.Goals = []Placement{}
	}
	if lvl.Traps == nil {
		lvl.Traps = []Placement{}
	}
	data, err := json.MarshalIndent(lvl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("levels: encode: %w", err)
	}
	return data, nil
}

// Encode renders the set as indented JSON with empty lists kept as [].
func Encode(s *Set) ([]byte, error) {
	out := Set{}
	if s != nil {
		out.Levels = make([]Level, len(s.Levels))
		for i, lvl := range s.Levels {
			if lvl.Goals == nil {
				lvl.Goals = []Placement{}
			}
			if lvl.Traps == nil {
				lvl.Traps = []Placement{}
			}
			out.Levels[i] = lvl
		}
	} else {
		out.Levels = []Level{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("levels: encode: %w", err)
	}
	return buf.Bytes(), nil
}
