// Package director evaluates the embedded difficulty script to tune each
// wave. Keeping the curve in a script means it can be edited on disk and
// hot-reloaded without recompiling the game.
package director

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/invaders/prefabs"
)

const scriptName = "difficulty.tengo"

// Tuning is what the script produces for one wave.
type Tuning struct {
	// SpeedScale multiplies the invader sweep speed.
	SpeedScale float64
	// CooldownScale multiplies the enemy fire cooldown; lower is meaner.
	CooldownScale float64
}

// DefaultTuning is used when the script is missing or fails.
func DefaultTuning() Tuning {
	return Tuning{SpeedScale: 1, CooldownScale: 1}
}

// Director owns the compiled difficulty script.
type Director struct {
	compiled *tengo.Compiled
}

// New loads and compiles the difficulty script.
func New() (*Director, error) {
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return nil, fmt.Errorf("director: load %s: %w", scriptName, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("wave", 1)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("director: compile %s: %w", scriptName, err)
	}
	return &Director{compiled: compiled}, nil
}

// Reload recompiles the script from disk/embed. The old program keeps
// running if the new one fails to compile.
func (d *Director) Reload() error {
	nd, err := New()
	if err != nil {
		return err
	}
	if d != nil {
		d.compiled = nd.compiled
	}
	return nil
}

// TuningForWave runs the script for a 1-based wave number. Script failures
// fall back to DefaultTuning so a bad edit never stops the game.
func (d *Director) TuningForWave(wave int) Tuning {
	t := DefaultTuning()
	if d == nil || d.compiled == nil {
		return t
	}
	if wave < 1 {
		wave = 1
	}

	c := d.compiled.Clone()
	if err := c.Set("wave", wave); err != nil {
		log.Printf("director: wave %d set error: %v", wave, err)
		return t
	}
	if err := c.Run(); err != nil {
		log.Printf("director: wave %d script error: %v", wave, err)
		return t
	}

	if v := c.Get("speed_scale"); v != nil {
		if f := v.Float(); f > 0 {
			t.SpeedScale = f
		}
	}
	if v := c.Get("cooldown_scale"); v != nil {
		if f := v.Float(); f > 0 {
			t.CooldownScale = f
		}
	}
	return t
}
