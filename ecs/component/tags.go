package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()

type TrapTag struct{}

var TrapTagComponent = NewComponent[TrapTag]()

// GridTag marks every entity a level spawns; level changes despawn them all.
type GridTag struct{}

var GridTagComponent = NewComponent[GridTag]()

// Name is a debug label.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
