package obj

import "github.com/milk9111/invaders/common"

// Direction is the horizontal sweep direction of the formation.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Invader is one live cell of the formation grid. Its identity is the grid
// cell it occupies; a destroyed cell becomes nil in the grid rather than
// being spliced out, so row/column indices stay aligned.
type Invader struct {
	common.Rect
	Dir   Direction
	Speed float32
	Step  float32
	// Kind selects the sprite flavor by original spawn row.
	Kind int
}

// NewInvader creates an invader cell at (x, y).
func NewInvader(x, y, w, h, speed, step float32, kind int) *Invader {
	return &Invader{
		Rect:  common.Rect{X: x, Y: y, Width: w, Height: h},
		Dir:   DirLeft,
		Speed: speed,
		Step:  step,
		Kind:  kind,
	}
}

// Advance moves one sweep step in the current direction.
func (v *Invader) Advance() {
	if v == nil {
		return
	}
	if v.Dir == DirRight {
		v.X += v.Speed
	} else {
		v.X -= v.Speed
	}
}

// Descend drops one row step toward the player. Y never decreases.
func (v *Invader) Descend() {
	if v == nil {
		return
	}
	v.Y += v.Step
}

// SetDirection sets the sweep direction flag. Idempotent.
func (v *Invader) SetDirection(d Direction) {
	if v == nil {
		return
	}
	v.Dir = d
}
