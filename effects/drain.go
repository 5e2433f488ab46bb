// Package effects holds timed effects applied to the player between frames.
package effects

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/ravenslike/component"
)

var ErrNoAmount = errors.New("effects: drain script does not define amount")

// Drain removes health at a fixed interval. The amount removed on each
// trigger is computed by a tengo script that sees the globals current, max
// and ticks and must assign amount.
type Drain struct {
	Interval float64

	compiled *tengo.Compiled
	elapsed  float64
	ticks    int
}

// NewDrain compiles script and checks it once against a full health bar.
// An interval <= 0 disables the drain.
func NewDrain(interval float64, script string) (*Drain, error) {
	if script == "" {
		script = "amount := 1"
	}
	s := tengo.NewScript([]byte(script))
	for _, name := range []string{"current", "max", "ticks"} {
		if err := s.Add(name, 0); err != nil {
			return nil, fmt.Errorf("effects: declare %s: %w", name, err)
		}
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("effects: compile drain script: %w", err)
	}
	d := &Drain{Interval: interval, compiled: compiled}
	if _, err := d.amount(1, 1); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Drain) amount(current, maxHP int) (int, error) {
	if err := d.compiled.Set("current", current); err != nil {
		return 0, err
	}
	if err := d.compiled.Set("max", maxHP); err != nil {
		return 0, err
	}
	if err := d.compiled.Set("ticks", d.ticks); err != nil {
		return 0, err
	}
	if err := d.compiled.Run(); err != nil {
		return 0, fmt.Errorf("effects: run drain script: %w", err)
	}
	if !d.compiled.IsDefined("amount") {
		return 0, ErrNoAmount
	}
	return d.compiled.Get("amount").Int(), nil
}

// Update advances the drain timer and applies every trigger that fell due
// during dt. It returns the total damage applied.
func (d *Drain) Update(dt float64, h *component.Health) (int, error) {
	if d == nil || d.Interval <= 0 || dt <= 0 || !h.IsAlive() {
		return 0, nil
	}
	d.elapsed += dt
	total := 0
	for d.elapsed >= d.Interval {
		d.elapsed -= d.Interval
		d.ticks++
		n, err := d.amount(h.Current, h.Max)
		if err != nil {
			return total, err
		}
		total += h.ApplyDamage(n)
	}
	return total, nil
}

// Ticks is the number of times the drain has fired.
func (d *Drain) Ticks() int {
	if d == nil {
		return 0
	}
	return d.ticks
}

// Remaining is the time until the next trigger.
func (d *Drain) Remaining() float64 {
	if d == nil || d.Interval <= 0 {
		return 0
	}
	return d.Interval - d.elapsed
}
