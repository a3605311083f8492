package levels

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tricolor/ecs/component"
)

var ErrNoLevel = errors.New("levels: placement before level()")

// RunScript builds a level set from a tengo program. The program starts each
// level with level() and places entities with player(x, y, color),
// goal(x, y, color) and trap(x, y, color). The fmt, math, rand and text
// stdlib modules are importable.
func RunScript(ctx context.Context, src []byte) (*Set, error) {
	b := &scriptBuilder{}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "rand", "text"))
	_ = script.Add("level", &tengo.UserFunction{Name: "level", Value: b.level})
	_ = script.Add("player", &tengo.UserFunction{Name: "player", Value: b.place("player")})
	_ = script.Add("goal", &tengo.UserFunction{Name: "goal", Value: b.place("goal")})
	_ = script.Add("trap", &tengo.UserFunction{Name: "trap", Value: b.place("trap")})
	_ = script.Add("width", component.GridWidth)
	_ = script.Add("height", component.GridHeight)

	if _, err := script.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("levels: script: %w", err)
	}

	set := &Set{Levels: make([]Level, 0, len(b.levels))}
	for i, sl := range b.levels {
		if !sl.hasPlayer {
			return nil, fmt.Errorf("level %d: %w", i, ErrMissingPlayer)
		}
		set.Levels = append(set.Levels, sl.Level)
	}
	return set, nil
}

type scriptLevel struct {
	Level
	hasPlayer bool
}

type scriptBuilder struct {
	levels []scriptLevel
}

func (b *scriptBuilder) level(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	b.levels = append(b.levels, scriptLevel{})
	return &tengo.Int{Value: int64(len(b.levels) - 1)}, nil
}

func (b *scriptBuilder) place(kind string) tengo.CallableFunc {
	return func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		if len(b.levels) == 0 {
			return nil, fmt.Errorf("%s: %w", kind, ErrNoLevel)
		}
		x, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[0].TypeName()}
		}
		y, ok := tengo.ToInt(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: args[1].TypeName()}
		}
		name, ok := tengo.ToString(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "color", Expected: "string", Found: args[2].TypeName()}
		}
		clr, err := component.ParseGameColor(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}

		p := Placement{X: x, Y: y, Color: clr}
		cur := &b.levels[len(b.levels)-1]
		switch kind {
		case "player":
			cur.Player = p
			cur.hasPlayer = true
		case "goal":
			cur.Goals = append(cur.Goals, p)
		case "trap":
			cur.Traps = append(cur.Traps, p)
		}
		return tengo.TrueValue, nil
	}
}
