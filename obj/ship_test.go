package obj

import (
	"testing"

	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/component"
)

func TestShipMoveClampsToScreen(t *testing.T) {
	in := &Input{}
	ship := NewShip(testShipSpec(), in, component.NewHealth(3))

	in.MoveX = -1
	for i := 0; i < 200; i++ {
		ship.Update(nil)
	}
	if ship.X != 0 {
		t.Fatalf("ship should stop at the left edge, got X=%v", ship.X)
	}

	in.MoveX = 1
	for i := 0; i < 400; i++ {
		ship.Update(nil)
	}
	if want := float32(common.BaseWidth) - ship.Width; ship.X != want {
		t.Fatalf("ship should stop at the right edge, got X=%v want %v", ship.X, want)
	}
}

func TestShipFireUsesPlayerPool(t *testing.T) {
	in := &Input{FireHeld: true}
	ship := NewShip(testShipSpec(), in, component.NewHealth(3))
	pool := NewBulletPool(CategoryPlayer, testPlayerDef())

	ship.Update(pool)
	if got := len(pool.Items()); got != 1 {
		t.Fatalf("held fire should spawn one shot, got %d", got)
	}

	// Holding fire across the cooldown yields no extra shots.
	ship.Update(pool)
	ship.Update(pool)
	if got := len(pool.Items()); got != 1 {
		t.Fatalf("cooldown should gate held fire, got %d", got)
	}

	b := pool.Items()[0]
	if b.X != ship.MidX()-3 {
		t.Fatalf("shot should center on the ship, got X=%v", b.X)
	}
	if b.Bottom() != ship.Top() {
		t.Fatalf("shot should leave from the ship's nose, got bottom=%v", b.Bottom())
	}
}

func TestShipHitStartsIFrames(t *testing.T) {
	health := component.NewHealth(3)
	ship := NewShip(testShipSpec(), nil, health)

	if !ship.Hit() {
		t.Fatalf("first hit should land")
	}
	if health.Current != 2 {
		t.Fatalf("hit should cost one life, got %d", health.Current)
	}
	if ship.Hit() {
		t.Fatalf("hit during i-frames should be absorbed")
	}

	for i := 0; i < 90; i++ {
		health.Tick()
	}
	if !ship.Hit() {
		t.Fatalf("hit after i-frames expire should land")
	}
}
