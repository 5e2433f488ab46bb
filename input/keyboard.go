package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ravenslike/config"
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]ebiten.Key

// BindingsFromConfig parses ebiten key names such as "W" or "ArrowUp".
func BindingsFromConfig(keys config.KeysSpec) (Bindings, error) {
	src := map[Action][]string{
		MoveUp:      keys.Up,
		MoveDown:    keys.Down,
		MoveLeft:    keys.Left,
		MoveRight:   keys.Right,
		Dash:        keys.Dash,
		DebugDamage: keys.Damage,
		Pause:       keys.Pause,
		ToggleDebug: keys.Debug,
		CopyDebug:   keys.Copy,
	}
	b := make(Bindings, len(src))
	for action, names := range src {
		for _, name := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("input: bind %s to %q: %w", action, name, err)
			}
			b[action] = append(b[action], k)
		}
	}
	return b, nil
}

// Keyboard polls bound keys and the first standard gamepad.
type Keyboard struct {
	bindings Bindings
	last     Snapshot
}

func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{bindings: b, last: NewSnapshot()}
}

// Poll samples the devices once. Call exactly once per tick.
func (k *Keyboard) Poll() Snapshot {
	var held []Action
	for a := Action(0); a < actionCount; a++ {
		if k.anyPressed(a) {
			held = append(held, a)
		}
	}
	held = append(held, gamepadActions()...)
	k.last = k.last.Next(held...)
	return k.last
}

func (k *Keyboard) anyPressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func gamepadActions() []Action {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return nil
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return nil
	}

	var out []Action
	x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	// stick Y grows downward
	if x < -0.3 {
		out = append(out, MoveLeft)
	} else if x > 0.3 {
		out = append(out, MoveRight)
	}
	if y < -0.3 {
		out = append(out, MoveUp)
	} else if y > 0.3 {
		out = append(out, MoveDown)
	}

	buttons := []struct {
		b ebiten.StandardGamepadButton
		a Action
	}{
		{ebiten.StandardGamepadButtonLeftTop, MoveUp},
		{ebiten.StandardGamepadButtonLeftBottom, MoveDown},
		{ebiten.StandardGamepadButtonLeftLeft, MoveLeft},
		{ebiten.StandardGamepadButtonLeftRight, MoveRight},
		{ebiten.StandardGamepadButtonRightBottom, Dash},
		{ebiten.StandardGamepadButtonCenterRight, Pause},
	}
	for _, btn := range buttons {
		if ebiten.IsStandardGamepadButtonPressed(gid, btn.b) {
			out = append(out, btn.a)
		}
	}
	return out
}
