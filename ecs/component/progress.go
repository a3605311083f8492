package component

// NoLevel marks an unset level index.
const NoLevel = -1

// ProgressState is the lifecycle state derived from LevelProgress.
type ProgressState int

const (
	StateNoLevel ProgressState = iota
	StateLoaded
	StateTransitioning
	StateFinished
)

func (s ProgressState) String() string {
	switch s {
	case StateNoLevel:
		return "no_level"
	case StateLoaded:
		return "loaded"
	case StateTransitioning:
		return "transitioning"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// LevelProgress is the two-phase level index: Desired expresses intent and
// Current is what is actually spawned.
type LevelProgress struct {
	Current int
	Desired int
	Total   int
}

func NewLevelProgress() LevelProgress {
	return LevelProgress{Current: NoLevel, Desired: NoLevel}
}

// Request asks for level i to be loaded.
func (p *LevelProgress) Request(i int) {
	p.Desired = i
}

// Advance requests the level after the current one, or level 1 when nothing
// is loaded.
func (p *LevelProgress) Advance() {
	if p.Current == NoLevel {
		p.Desired = 1
		return
	}
	p.Desired = p.Current + 1
}

// Reload requests the current level again and unsets Current. A second reload
// before the first completes keeps the pending Desired index.
func (p *LevelProgress) Reload() {
	if p.Current != NoLevel {
		p.Desired = p.Current
	}
	p.Current = NoLevel
}

// NeedsLoad reports whether a transition is pending.
func (p LevelProgress) NeedsLoad() bool {
	return p.Desired != NoLevel && p.Desired != p.Current
}

// Commit records that Desired is now current out of total levels.
func (p *LevelProgress) Commit(total int) {
	p.Current = p.Desired
	p.Total = total
}

// Finished reports the win state: the current index is past the last level.
func (p LevelProgress) Finished() bool {
	return p.Current != NoLevel && p.Current >= p.Total
}

func (p LevelProgress) State() ProgressState {
	switch {
	case p.Finished():
		return StateFinished
	case p.NeedsLoad():
		return StateTransitioning
	case p.Current == NoLevel:
		return StateNoLevel
	}
	return StateLoaded
}
