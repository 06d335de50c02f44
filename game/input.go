package game

import "unicode"

// Key is a single-character key code as delivered by the keyboard layer
type Key rune

// Action is what a key does to the car
type Action int

const (
	ActionNone Action = iota
	ActionAccelerate
	ActionBrake
	ActionSteerLeft
	ActionSteerRight
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAccelerate:
		return "Accelerate"
	case ActionBrake:
		return "Brake"
	case ActionSteerLeft:
		return "Steer left"
	case ActionSteerRight:
		return "Steer right"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// ActionFor maps a key to its action. Driving keys match either case;
// restart only answers to a lowercase 'r'.
func ActionFor(k Key) Action {
	if k == 'r' {
		return ActionRestart
	}
	switch unicode.ToLower(rune(k)) {
	case 'w':
		return ActionAccelerate
	case 's':
		return ActionBrake
	case 'a':
		return ActionSteerLeft
	case 'd':
		return ActionSteerRight
	default:
		return ActionNone
	}
}

// KeySet holds the keys currently held down
type KeySet map[Key]bool

// Press marks k as held
func (ks KeySet) Press(k Key) {
	ks[k] = true
}

// Release marks k as up
func (ks KeySet) Release(k Key) {
	delete(ks, k)
}

// Down reports whether k is held
func (ks KeySet) Down(k Key) bool {
	return ks[k]
}

// Active reports whether any held key maps to a
func (ks KeySet) Active(a Action) bool {
	for k, down := range ks {
		if down && ActionFor(k) == a {
			return true
		}
	}
	return false
}

// Clear releases every key
func (ks KeySet) Clear() {
	clear(ks)
}

// Clone returns an independent copy of the set
func (ks KeySet) Clone() KeySet {
	out := make(KeySet, len(ks))
	for k, down := range ks {
		if down {
			out[k] = true
		}
	}
	return out
}

// Keys builds a held set from the given keys
func Keys(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks.Press(k)
	}
	return ks
}
