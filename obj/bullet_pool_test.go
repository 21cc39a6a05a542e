package obj

import "testing"

func testPlayerDef() BulletDef {
	return BulletDef{Width: 6, Height: 16, Speed: -8, CooldownTicks: 5}
}

func testEnemyDef() BulletDef {
	return BulletDef{Width: 6, Height: 16, Speed: 5, CooldownTicks: 5}
}

func TestBulletPoolCooldownGate(t *testing.T) {
	p := NewBulletPool(CategoryPlayer, testPlayerDef())

	if !p.Request(100, 300, 0) {
		t.Fatalf("first request should be admitted")
	}
	if p.Request(100, 300, 0) {
		t.Fatalf("second request should be blocked by the cooldown")
	}
	if got := p.CooldownRemaining(); got != 5 {
		t.Fatalf("cooldown should be rearmed to 5, got %d", got)
	}

	for i := 0; i < 5; i++ {
		if p.Request(100, 300, 0) {
			t.Fatalf("request admitted with cooldown still at %d", p.CooldownRemaining())
		}
		p.Update()
	}
	if !p.Request(100, 300, 0) {
		t.Fatalf("request should be admitted once the cooldown hits zero")
	}
	if got := len(p.Items()); got != 2 {
		t.Fatalf("expected 2 live bullets, got %d", got)
	}
}

func TestBulletPoolSpawnGeometry(t *testing.T) {
	up := NewBulletPool(CategoryPlayer, testPlayerDef())
	up.Request(100, 300, 0)
	b := up.Items()[0]
	if b.X != 97 {
		t.Fatalf("bullet should center on the firing line, got X=%v", b.X)
	}
	if b.Y != 284 {
		t.Fatalf("upward bullet should spawn above the muzzle, got Y=%v", b.Y)
	}

	down := NewBulletPool(CategoryEnemy, testEnemyDef())
	down.Request(100, 300, 0)
	b = down.Items()[0]
	if b.Y != 300 {
		t.Fatalf("downward bullet should spawn at the muzzle, got Y=%v", b.Y)
	}
}

func TestBulletPoolPendingDelay(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())

	p.Request(100, 100, 3)
	if got := p.PendingCount(); got != 1 {
		t.Fatalf("delayed request should queue, got %d pending", got)
	}
	if got := len(p.Items()); got != 0 {
		t.Fatalf("delayed request must not spawn immediately, got %d items", got)
	}

	p.Update()
	p.Update()
	if got := len(p.Items()); got != 0 {
		t.Fatalf("request fired before its delay elapsed")
	}
	p.Update()
	if got := len(p.Items()); got != 1 {
		t.Fatalf("request should fire on the third tick, got %d items", got)
	}
	if got := p.PendingCount(); got != 0 {
		t.Fatalf("fired request should leave the queue, got %d", got)
	}
}

func TestBulletPoolMaturedRequestDroppedWhileCooling(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())

	p.Request(100, 100, 0) // rearms the cooldown
	p.Request(200, 100, 1)

	p.Update()
	if got := len(p.Items()); got != 1 {
		t.Fatalf("matured request should be dropped during cooldown, got %d items", got)
	}
	if got := p.PendingCount(); got != 0 {
		t.Fatalf("dropped request must not requeue, got %d pending", got)
	}
}

func TestBulletPoolPrunesOffScreen(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())
	p.Request(100, 598, 0)
	p.Update()
	if got := len(p.Items()); got != 0 {
		t.Fatalf("bullet past the bottom should be pruned, got %d items", got)
	}

	up := NewBulletPool(CategoryPlayer, testPlayerDef())
	up.Request(100, 10, 0)
	up.Update()
	up.Update()
	if got := len(up.Items()); got != 0 {
		t.Fatalf("bullet past the top should be pruned, got %d items", got)
	}
}

func TestBulletPoolDestroy(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())
	p.Request(100, 100, 0)
	b := p.Items()[0]

	p.Destroy(b)
	if got := len(p.Items()); got != 0 {
		t.Fatalf("destroy should remove the bullet, got %d items", got)
	}
	if b.Active {
		t.Fatalf("destroyed bullet should be inactive")
	}

	// Destroying again is a no-op.
	p.Destroy(b)
}

func TestBulletPoolClear(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())
	p.Request(100, 100, 0)
	p.Request(200, 100, 10)

	p.Clear()
	if len(p.Items()) != 0 || p.PendingCount() != 0 {
		t.Fatalf("clear should drop items and pending requests")
	}
	if p.CooldownRemaining() != 0 {
		t.Fatalf("clear should reset the cooldown")
	}
	if !p.Request(100, 100, 0) {
		t.Fatalf("pool should fire again after clear")
	}
}

func TestBulletPoolSetCooldownTicks(t *testing.T) {
	p := NewBulletPool(CategoryEnemy, testEnemyDef())
	p.SetCooldownTicks(2)
	p.Request(100, 100, 0)
	if got := p.CooldownRemaining(); got != 2 {
		t.Fatalf("override should drive the rearm interval, got %d", got)
	}
	if got := p.BaseCooldownTicks(); got != 5 {
		t.Fatalf("base interval should stay at the prefab value, got %d", got)
	}

	p.SetCooldownTicks(0)
	p.Clear()
	p.Request(100, 100, 0)
	if got := p.CooldownRemaining(); got != 2 {
		t.Fatalf("non-positive override should be ignored, got %d", got)
	}
}
