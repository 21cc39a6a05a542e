package obj

import (
	"testing"

	"github.com/milk9111/invaders/prefabs"
)

func testWaveSpec() prefabs.WaveSpec {
	return prefabs.WaveSpec{
		Rows:              3,
		Columns:           4,
		SidePadding:       30,
		BottomPadding:     80,
		HorizontalSpacing: 60,
		VerticalSpacing:   50,
		Invader: prefabs.InvaderSpec{
			Width:       40,
			Height:      30,
			MoveSpeed:   2,
			DescendStep: 20,
		},
		FireDelayTicks: 1,
		KillScore:      250,
		ExtraLifeScore: 5000,
	}
}

func TestFormationPopulate(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	if got := f.LiveCount(); got != 12 {
		t.Fatalf("expected 12 live cells, got %d", got)
	}
	if f.Rows() != 3 || f.Columns() != 4 {
		t.Fatalf("expected 3x4 grid, got %dx%d", f.Rows(), f.Columns())
	}
	if f.Wave() != 1 {
		t.Fatalf("first populate should be wave 1, got %d", f.Wave())
	}

	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Columns(); c++ {
			inv := f.CellAt(r, c)
			if inv == nil {
				t.Fatalf("cell (%d,%d) should be populated", r, c)
			}
			wantX := float32(30 + 60*c)
			wantY := float32(50 * r)
			if inv.X != wantX || inv.Y != wantY {
				t.Fatalf("cell (%d,%d) at (%v,%v), want (%v,%v)", r, c, inv.X, inv.Y, wantX, wantY)
			}
			if inv.Kind != r%3 {
				t.Fatalf("cell (%d,%d) kind %d, want %d", r, c, inv.Kind, r%3)
			}
		}
	}

	f.Populate(1)
	if f.Wave() != 2 {
		t.Fatalf("second populate should be wave 2, got %d", f.Wave())
	}
}

func TestFormationLeftBounce(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	// Column 0 spawns exactly on the side padding while sweeping left, so the
	// first tick bounces: every cell flips right and descends one step with
	// no horizontal advance.
	f.Update(nil)
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Columns(); c++ {
			inv := f.CellAt(r, c)
			if inv.Dir != DirRight {
				t.Fatalf("cell (%d,%d) should sweep right after the bounce", r, c)
			}
			if inv.X != float32(30+60*c) {
				t.Fatalf("bounce tick must not advance, cell (%d,%d) X=%v", r, c, inv.X)
			}
			if inv.Y != float32(50*r+20) {
				t.Fatalf("bounce tick should descend one step, cell (%d,%d) Y=%v", r, c, inv.Y)
			}
		}
	}

	// Clear of both walls: plain advance, no descent.
	f.Update(nil)
	inv := f.CellAt(0, 0)
	if inv.X != 32 || inv.Y != 20 {
		t.Fatalf("advance tick moved cell to (%v,%v), want (32,20)", inv.X, inv.Y)
	}
}

func TestFormationRightBounce(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	// Leave a single survivor and park it on the right wall.
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Columns(); c++ {
			if r != 0 || c != 0 {
				f.KillAt(r, c)
			}
		}
	}
	inv := f.CellAt(0, 0)
	inv.SetDirection(DirRight)
	inv.X = 730 // right edge at 770 = width - padding

	f.Update(nil)
	if inv.Dir != DirLeft {
		t.Fatalf("right-wall contact should flip the sweep left")
	}
	if inv.Y != 20 {
		t.Fatalf("right bounce should descend one step, Y=%v", inv.Y)
	}
	if inv.X != 730 {
		t.Fatalf("bounce tick must not advance, X=%v", inv.X)
	}
}

func TestFormationColumnCompaction(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	for r := 0; r < f.Rows(); r++ {
		f.KillAt(r, 1)
	}
	f.Update(nil)

	if got := f.Columns(); got != 3 {
		t.Fatalf("dead column should be removed, got %d columns", got)
	}
	// The former column 2 shifts into index 1 keeping its position (the
	// first tick bounces, so X is unmoved).
	if inv := f.CellAt(0, 1); inv == nil || inv.X != 150 {
		t.Fatalf("column 2 should shift left to index 1, got %+v", inv)
	}
	if got := f.LiveCount(); got != 9 {
		t.Fatalf("expected 9 survivors, got %d", got)
	}
}

func TestFormationInteriorTombstoneKeepsColumn(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	f.KillAt(1, 1)
	f.Update(nil)

	if got := f.Columns(); got != 4 {
		t.Fatalf("column with survivors must not be removed, got %d", got)
	}
	if f.CellAt(1, 1) != nil {
		t.Fatalf("tombstoned cell must stay empty")
	}
	if f.CellAt(0, 1) == nil || f.CellAt(2, 1) == nil {
		t.Fatalf("neighbors of a tombstone should survive")
	}
}

func TestFormationBottomRowCompaction(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	for c := 0; c < f.Columns(); c++ {
		f.KillAt(2, c)
		f.KillAt(1, c)
	}

	// One structural row removal per tick.
	f.Update(nil)
	if got := f.Rows(); got != 2 {
		t.Fatalf("expected one row removed per tick, got %d rows", got)
	}
	f.Update(nil)
	if got := f.Rows(); got != 1 {
		t.Fatalf("expected second dead row removed, got %d rows", got)
	}
	if got := f.LiveCount(); got != 4 {
		t.Fatalf("top row should survive intact, got %d", got)
	}
}

func TestFormationBottomMostInColumn(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	// Kill the bottom cell of column 0; the shooter scan must skip past the
	// tombstone to the row above.
	f.KillAt(2, 0)
	inv := f.bottomMostInColumn(0)
	if inv == nil || inv.Y != 50 {
		t.Fatalf("bottom-most survivor of column 0 should be row 1, got %+v", inv)
	}

	for r := 0; r < f.Rows(); r++ {
		f.KillAt(r, 1)
	}
	if f.bottomMostInColumn(1) != nil {
		t.Fatalf("dead column has no shooter")
	}
}

func TestFormationShootOneAdmissionPerTick(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	// FireDelayTicks=1 makes every pre-fire delay zero, so all four column
	// requests race the same cooldown and exactly one wins.
	pool := NewBulletPool(CategoryEnemy, testEnemyDef())
	f.shoot(pool)
	if got := len(pool.Items()); got != 1 {
		t.Fatalf("expected one admitted shot, got %d", got)
	}
	if got := pool.PendingCount(); got != 0 {
		t.Fatalf("zero-delay requests must not queue, got %d", got)
	}

	b := pool.Items()[0]
	inv := f.CellAt(2, 0)
	if b.X != inv.MidX()-3 || b.Y != inv.Bottom() {
		t.Fatalf("shot should leave the bottom shooter's muzzle, got (%v,%v)", b.X, b.Y)
	}
}

func TestFormationSnapshot(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)
	f.KillAt(1, 2)

	snap := f.Snapshot()
	if len(snap) != 3 || len(snap[0]) != 4 {
		t.Fatalf("snapshot should mirror the grid shape, got %dx%d", len(snap), len(snap[0]))
	}
	if snap[1][2] != nil {
		t.Fatalf("snapshot should carry tombstones")
	}

	// The rows are copies: mutating the snapshot leaves the grid intact.
	snap[0][0] = nil
	if f.CellAt(0, 0) == nil {
		t.Fatalf("snapshot mutation must not reach the grid")
	}
}

func TestFormationHasInvaded(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)
	if f.HasInvaded() {
		t.Fatalf("fresh wave should not have invaded")
	}

	// Invasion line is height - bottom padding = 520.
	f.CellAt(2, 0).Y = 495
	if !f.HasInvaded() {
		t.Fatalf("bottom-row cell past the line should trigger invasion")
	}
}

func TestFormationAnyAliveAfterFullClear(t *testing.T) {
	f := NewFormation(testWaveSpec())
	f.Populate(1)

	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Columns(); c++ {
			f.KillAt(r, c)
		}
	}
	if f.AnyAlive() {
		t.Fatalf("all cells killed, AnyAlive should be false")
	}

	// Updates on a dead grid only compact; they never panic or move.
	f.Update(nil)
	f.Update(nil)
	f.Update(nil)
	if got := f.Rows(); got != 0 {
		t.Fatalf("dead rows should compact away, got %d", got)
	}
	if f.HasInvaded() {
		t.Fatalf("empty grid cannot invade")
	}
}
