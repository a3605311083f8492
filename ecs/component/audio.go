package component

// Sound is a logical audio cue.
type Sound uint8

const (
	SoundGoalReached Sound = iota
	SoundHitTrap
	SoundPlayerMoved
	SoundTimerExpired
)

// Sounds lists every cue.
var Sounds = [...]Sound{SoundGoalReached, SoundHitTrap, SoundPlayerMoved, SoundTimerExpired}

func (s Sound) String() string {
	switch s {
	case SoundGoalReached:
		return "goal_reached"
	case SoundHitTrap:
		return "hit_trap"
	case SoundPlayerMoved:
		return "player_moved"
	case SoundTimerExpired:
		return "timer_expired"
	}
	return "unknown"
}

// File is the asset path of the cue relative to the assets directory.
func (s Sound) File() string {
	switch s {
	case SoundGoalReached:
		return "sounds/level-reached.ogg"
	case SoundHitTrap:
		return "sounds/hit-trap.ogg"
	case SoundPlayerMoved:
		return "sounds/move.ogg"
	case SoundTimerExpired:
		return "sounds/timer.ogg"
	}
	return ""
}
