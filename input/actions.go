// Package input turns keyboard and gamepad state into per-tick action snapshots.
package input

import (
	"github.com/jakecoffman/cp"
	"github.com/zyedidia/generic/mapset"
)

// Action is a logical input independent of the physical key bound to it.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Dash
	DebugDamage
	Pause
	ToggleDebug
	CopyDebug

	actionCount
)

var actionNames = [actionCount]string{
	MoveUp:      "up",
	MoveDown:    "down",
	MoveLeft:    "left",
	MoveRight:   "right",
	Dash:        "dash",
	DebugDamage: "damage",
	Pause:       "pause",
	ToggleDebug: "debug",
	CopyDebug:   "copy",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Snapshot is the input state of one tick: the actions held down and the
// subset that went down this tick.
type Snapshot struct {
	held    mapset.Set[Action]
	pressed mapset.Set[Action]
}

func NewSnapshot() Snapshot {
	return Snapshot{held: mapset.New[Action](), pressed: mapset.New[Action]()}
}

// Next builds the snapshot for a tick in which exactly the given actions are
// held, deriving presses from the previous snapshot.
func (s Snapshot) Next(held ...Action) Snapshot {
	next := NewSnapshot()
	for _, a := range held {
		next.held.Put(a)
		if !s.IsHeld(a) {
			next.pressed.Put(a)
		}
	}
	return next
}

func (s Snapshot) IsHeld(a Action) bool {
	return s.held.Size() > 0 && s.held.Has(a)
}

// JustPressed reports an up-to-down transition of a this tick.
func (s Snapshot) JustPressed(a Action) bool {
	return s.pressed.Size() > 0 && s.pressed.Has(a)
}

// Movement is the raw direction requested by the movement actions, Y up.
// Opposing keys cancel.
func (s Snapshot) Movement() cp.Vector {
	var v cp.Vector
	if s.IsHeld(MoveUp) {
		v.Y++
	}
	if s.IsHeld(MoveDown) {
		v.Y--
	}
	if s.IsHeld(MoveRight) {
		v.X++
	}
	if s.IsHeld(MoveLeft) {
		v.X--
	}
	return v
}

// Held returns the held actions in declaration order.
func (s Snapshot) Held() []Action {
	var out []Action
	for a := Action(0); a < actionCount; a++ {
		if s.IsHeld(a) {
			out = append(out, a)
		}
	}
	return out
}
