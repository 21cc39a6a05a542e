package obj

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/invaders/assets"
	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/prefabs"
)

// invaderSheets maps Invader.Kind to its two-frame spritesheet.
var invaderSheets = []string{
	"invader_a-Sheet.png",
	"invader_b-Sheet.png",
	"invader_c-Sheet.png",
}

// animStepTicks is how many movement ticks pass between wiggle frames.
const animStepTicks = 12

// Formation owns the 2-D invader grid for one wave. Each tick it compacts
// empty rows/columns, sweeps the grid sideways with a descent on wall
// contact, and lets the bottom-most survivor of each column return fire.
//
// Destroyed cells become nil rather than being spliced out, so indices stay
// aligned for bounce and targeting logic; only a fully dead bottom row or a
// fully dead column is structurally removed.
type Formation struct {
	spec       prefabs.WaveSpec
	grid       [][]*Invader
	wave       int
	speedScale float64
	rng        *rand.Rand

	animTick    int
	anims       []*component.Animation
	placeholder *ebiten.Image
	assetsOnce  sync.Once
}

// NewFormation creates an empty formation; call Populate to start a wave.
func NewFormation(spec prefabs.WaveSpec) *Formation {
	return &Formation{
		spec: spec,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSpec swaps in reloaded tuning. Takes effect at the next Populate.
func (f *Formation) SetSpec(spec prefabs.WaveSpec) {
	if f == nil {
		return
	}
	f.spec = spec
}

// Populate builds a fresh rows x columns grid, replacing any prior wave.
// speedScale multiplies the sweep speed (difficulty director).
func (f *Formation) Populate(speedScale float64) {
	if f == nil {
		return
	}
	if speedScale <= 0 {
		speedScale = 1
	}
	f.wave++
	f.speedScale = speedScale
	speed := f.spec.Invader.MoveSpeed * float32(speedScale)

	f.grid = make([][]*Invader, f.spec.Rows)
	for r := range f.grid {
		row := make([]*Invader, f.spec.Columns)
		for c := range row {
			x := f.spec.SidePadding + f.spec.HorizontalSpacing*float32(c)
			y := f.spec.VerticalSpacing * float32(r)
			row[c] = NewInvader(
				x, y,
				f.spec.Invader.Width, f.spec.Invader.Height,
				speed, f.spec.Invader.DescendStep,
				r%len(invaderSheets),
			)
		}
		f.grid[r] = row
	}
}

// Update runs one tick: compaction, then movement and return fire while any
// cell is still alive. The wave ends cooperatively: the caller polls
// AnyAlive and starts the next wave.
func (f *Formation) Update(enemyShots *BulletPool) {
	if f == nil {
		return
	}
	f.compactBottomRow()
	f.compactColumns()
	if !f.AnyAlive() {
		return
	}
	f.move()
	f.shoot(enemyShots)
}

// Draw renders every live cell.
func (f *Formation) Draw(screen *ebiten.Image) {
	if f == nil || screen == nil {
		return
	}
	f.assetsOnce.Do(f.initAssets)
	for _, row := range f.grid {
		for _, inv := range row {
			if inv == nil {
				continue
			}
			f.drawInvader(screen, inv)
		}
	}
}

// AnyAlive reports whether any cell of the current wave survives.
func (f *Formation) AnyAlive() bool {
	if f == nil {
		return false
	}
	for _, row := range f.grid {
		for _, inv := range row {
			if inv != nil {
				return true
			}
		}
	}
	return false
}

// HasInvaded reports whether a live cell in the current bottom row has
// descended past the invasion line. Drives game over.
func (f *Formation) HasInvaded() bool {
	if f == nil || len(f.grid) == 0 {
		return false
	}
	line := float32(common.BaseHeight) - f.spec.BottomPadding
	for _, inv := range f.grid[len(f.grid)-1] {
		if inv != nil && inv.Bottom() > line {
			return true
		}
	}
	return false
}

// Rows returns the current (compacted) row count.
func (f *Formation) Rows() int {
	if f == nil {
		return 0
	}
	return len(f.grid)
}

// Columns returns the current (compacted) column count.
func (f *Formation) Columns() int {
	if f == nil || len(f.grid) == 0 {
		return 0
	}
	return len(f.grid[0])
}

// CellAt returns the invader at (row, col), or nil for tombstoned or
// out-of-range cells.
func (f *Formation) CellAt(row, col int) *Invader {
	if f == nil || row < 0 || row >= len(f.grid) {
		return nil
	}
	if col < 0 || col >= len(f.grid[row]) {
		return nil
	}
	return f.grid[row][col]
}

// KillAt tombstones the cell at (row, col). The cell never re-populates
// within the wave; structural removal happens on later compaction ticks.
func (f *Formation) KillAt(row, col int) {
	if f == nil || row < 0 || row >= len(f.grid) {
		return
	}
	if col < 0 || col >= len(f.grid[row]) {
		return
	}
	f.grid[row][col] = nil
}

// LiveCount returns the number of surviving cells.
func (f *Formation) LiveCount() int {
	n := 0
	if f == nil {
		return 0
	}
	for _, row := range f.grid {
		for _, inv := range row {
			if inv != nil {
				n++
			}
		}
	}
	return n
}

// Wave returns the 1-based wave number of the current grid.
func (f *Formation) Wave() int {
	if f == nil {
		return 0
	}
	return f.wave
}

// Snapshot returns a copy of the grid rows. Cell pointers are shared;
// callers must treat invaders as read-only.
func (f *Formation) Snapshot() [][]*Invader {
	if f == nil {
		return nil
	}
	out := make([][]*Invader, len(f.grid))
	for r, row := range f.grid {
		cp := make([]*Invader, len(row))
		copy(cp, row)
		out[r] = cp
	}
	return out
}

// compactBottomRow removes the bottom row if it is entirely dead. At most
// one row per tick; repeats are driven by later ticks.
func (f *Formation) compactBottomRow() {
	if len(f.grid) == 0 {
		return
	}
	last := f.grid[len(f.grid)-1]
	for _, inv := range last {
		if inv != nil {
			return
		}
	}
	f.grid = f.grid[:len(f.grid)-1]
}

// compactColumns removes every column that is dead across all remaining
// rows, shifting later columns left in a single pass so all rows keep
// identical length.
func (f *Formation) compactColumns() {
	if len(f.grid) == 0 || len(f.grid[0]) == 0 {
		return
	}
	cols := len(f.grid[0])
	keep := make([]bool, cols)
	kept := 0
	for c := 0; c < cols; c++ {
		for _, row := range f.grid {
			if c < len(row) && row[c] != nil {
				keep[c] = true
				kept++
				break
			}
		}
	}
	if kept == cols {
		return
	}
	for r, row := range f.grid {
		next := row[:0]
		for c, inv := range row {
			if keep[c] {
				next = append(next, inv)
			}
		}
		f.grid[r] = next
	}
}

// move sweeps the grid one tick: a bounce off either side flips every cell
// and descends one step, otherwise every cell advances. Each wall check is
// gated by the current sweep direction, so a cell parked exactly on a wall
// bounces once and then advances away instead of descending every tick.
// Left is checked first and at most one bounce fires per tick.
func (f *Formation) move() {
	minLeft, maxRight, any := f.liveExtents()
	if !any {
		return
	}
	dir := f.sweepDirection()

	switch {
	case dir == DirLeft && minLeft <= f.spec.SidePadding:
		f.eachLive(func(inv *Invader) {
			inv.SetDirection(DirRight)
			inv.Descend()
		})
	case dir == DirRight && maxRight >= float32(common.BaseWidth)-f.spec.SidePadding:
		f.eachLive(func(inv *Invader) {
			inv.SetDirection(DirLeft)
			inv.Descend()
		})
	default:
		f.eachLive(func(inv *Invader) {
			inv.Advance()
		})
	}

	f.animTick++
	if f.animTick%animStepTicks == 0 {
		for _, a := range f.anims {
			a.Step()
		}
	}
}

// shoot submits one return-fire request per column from its bottom-most
// survivor, each with a uniform random pre-fire delay.
func (f *Formation) shoot(enemyShots *BulletPool) {
	if enemyShots == nil || len(f.grid) == 0 {
		return
	}
	for c := 0; c < len(f.grid[0]); c++ {
		inv := f.bottomMostInColumn(c)
		if inv == nil {
			continue
		}
		enemyShots.Request(inv.MidX(), inv.Bottom(), f.rng.Intn(f.spec.FireDelayTicks))
	}
}

// sweepDirection returns the grid's current direction. Every live cell
// shares it; direction changes only apply grid-wide.
func (f *Formation) sweepDirection() Direction {
	for _, row := range f.grid {
		for _, inv := range row {
			if inv != nil {
				return inv.Dir
			}
		}
	}
	return DirLeft
}

// bottomMostInColumn scans upward from the last row past interior
// tombstones.
func (f *Formation) bottomMostInColumn(col int) *Invader {
	for r := len(f.grid) - 1; r >= 0; r-- {
		if col >= len(f.grid[r]) {
			continue
		}
		if inv := f.grid[r][col]; inv != nil {
			return inv
		}
	}
	return nil
}

// liveExtents returns the left-most left edge and right-most right edge
// over all live cells.
func (f *Formation) liveExtents() (minLeft, maxRight float32, any bool) {
	for _, row := range f.grid {
		for _, inv := range row {
			if inv == nil {
				continue
			}
			if !any {
				minLeft = inv.Left()
				maxRight = inv.Right()
				any = true
				continue
			}
			if inv.Left() < minLeft {
				minLeft = inv.Left()
			}
			if inv.Right() > maxRight {
				maxRight = inv.Right()
			}
		}
	}
	return minLeft, maxRight, any
}

func (f *Formation) eachLive(fn func(inv *Invader)) {
	for _, row := range f.grid {
		for _, inv := range row {
			if inv != nil {
				fn(inv)
			}
		}
	}
}

func (f *Formation) initAssets() {
	f.anims = make([]*component.Animation, len(invaderSheets))
	for i, name := range invaderSheets {
		sheet, err := assets.LoadImage(name)
		if err != nil {
			continue
		}
		frameW := sheet.Bounds().Dx() / 2
		f.anims[i] = component.NewAnimation(sheet, frameW, sheet.Bounds().Dy(), 2, 0, true)
	}
	f.placeholder = ebiten.NewImage(int(f.spec.Invader.Width), int(f.spec.Invader.Height))
	f.placeholder.Fill(color.RGBA{R: 0xdc, G: 0x50, B: 0xc8, A: 0xff})
}

func (f *Formation) drawInvader(screen *ebiten.Image, inv *Invader) {
	var frame *ebiten.Image
	if inv.Kind >= 0 && inv.Kind < len(f.anims) {
		frame = f.anims[inv.Kind].CurrentFrame()
	}
	if frame == nil {
		// Missing sheet: draw a flat block so the wave stays playable.
		frame = f.placeholder
	}
	if frame == nil {
		return
	}
	w := frame.Bounds().Dx()
	h := frame.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(inv.Width)/float64(w), float64(inv.Height)/float64(h))
	op.GeoM.Translate(float64(inv.X), float64(inv.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}
