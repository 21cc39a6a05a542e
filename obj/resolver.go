package obj

import (
	"github.com/milk9111/invaders/component"
)

// Resolver matches each live projectile from one pool against all live
// entities of the opposing category. Only the first target found in scan
// order takes the hit; the grid scans row-major, top-to-bottom then
// left-to-right.
type Resolver struct {
	Score   *component.Score
	Emitter *component.CombatEventEmitter

	// KillScore is the bonus for one destroyed invader.
	KillScore int
}

// NewResolver creates a resolver crediting score to the given collaborator.
func NewResolver(score *component.Score, killScore int) *Resolver {
	return &Resolver{
		Score:     score,
		Emitter:   &component.CombatEventEmitter{},
		KillScore: killScore,
	}
}

// ResolvePlayerShots tests every live player bullet against the formation
// grid. A hit destroys the bullet, tombstones the cell, and credits score.
func (r *Resolver) ResolvePlayerShots(pool *BulletPool, f *Formation) {
	if r == nil || pool == nil || f == nil {
		return
	}
	items := append([]*Bullet(nil), pool.Items()...)
	for _, b := range items {
		if b == nil || !b.Active {
			continue
		}
		row, col, inv := r.firstHit(b, f)
		if inv == nil {
			continue
		}
		pool.Destroy(b)
		f.KillAt(row, col)
		if r.Score != nil {
			r.Score.Add(r.KillScore)
		}
		r.Emitter.Emit(component.CombatEvent{
			Type:     component.EventDeath,
			Attacker: component.FactionPlayer,
			Points:   r.KillScore,
			Row:      row,
			Col:      col,
			PosX:     inv.MidX(),
			PosY:     inv.Top(),
		})
	}
}

// ResolveEnemyShots tests every live enemy bullet against the ship. A hit
// destroys the bullet and costs one life (absorbed silently during
// i-frames).
func (r *Resolver) ResolveEnemyShots(pool *BulletPool, ship *Ship) {
	if r == nil || pool == nil || ship == nil {
		return
	}
	items := append([]*Bullet(nil), pool.Items()...)
	for _, b := range items {
		if b == nil || !b.Active {
			continue
		}
		if !b.Intersects(&ship.Rect) {
			continue
		}
		pool.Destroy(b)
		if !ship.Hit() {
			continue
		}
		r.Emitter.Emit(component.CombatEvent{
			Type:     component.EventHit,
			Attacker: component.FactionEnemy,
			Row:      -1,
			Col:      -1,
			PosX:     ship.MidX(),
			PosY:     ship.Top(),
		})
	}
}

// firstHit returns the first overlapping live cell in row-major order.
func (r *Resolver) firstHit(b *Bullet, f *Formation) (int, int, *Invader) {
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Columns(); col++ {
			inv := f.CellAt(row, col)
			if inv == nil {
				continue
			}
			if b.Intersects(&inv.Rect) {
				return row, col, inv
			}
		}
	}
	return -1, -1, nil
}
