package obj

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/invaders/assets"
)

// fireRequest is a queued shot waiting out its pre-fire delay.
type fireRequest struct {
	x, y  float32
	delay int
}

// BulletPool owns every live projectile for one shooter category and
// enforces the per-category fire-rate cooldown. The cooldown decrements
// once per tick regardless of who is asking to fire.
type BulletPool struct {
	category Category
	def      BulletDef

	items         []*Bullet
	pending       []fireRequest
	cooldown      int
	cooldownTicks int

	free sync.Pool

	img         *ebiten.Image
	placeholder *ebiten.Image
	assetsOnce  sync.Once
}

// NewBulletPool creates an empty pool for one shooter category.
func NewBulletPool(category Category, def BulletDef) *BulletPool {
	return &BulletPool{
		category:      category,
		def:           def,
		cooldownTicks: def.CooldownTicks,
	}
}

// Request asks the pool to fire from (x, y), where x is the shooter's
// firing-line center and y its muzzle edge. delayTicks > 0 queues the shot;
// a request whose delay has elapsed is admitted only while the cooldown is
// not running, and admission rearms the cooldown.
func (p *BulletPool) Request(x, y float32, delayTicks int) bool {
	if p == nil {
		return false
	}
	if delayTicks > 0 {
		p.pending = append(p.pending, fireRequest{x: x, y: y, delay: delayTicks})
		return true
	}
	return p.admit(x, y)
}

// Update runs one tick: decrements the cooldown, matures pending requests,
// advances live bullets, and prunes bullets that left the screen.
func (p *BulletPool) Update() {
	if p == nil {
		return
	}

	if p.cooldown > 0 {
		p.cooldown--
	}

	if len(p.pending) > 0 {
		writeIdx := 0
		for _, req := range p.pending {
			req.delay--
			if req.delay > 0 {
				p.pending[writeIdx] = req
				writeIdx++
				continue
			}
			// Matured requests that lose the cooldown race are dropped,
			// not requeued; the shooter will ask again.
			p.admit(req.x, req.y)
		}
		p.pending = p.pending[:writeIdx]
	}

	if len(p.items) == 0 {
		return
	}
	writeIdx := 0
	for _, b := range p.items {
		if b == nil {
			continue
		}
		b.Update()
		if b.OffScreen() {
			p.release(b)
			continue
		}
		p.items[writeIdx] = b
		writeIdx++
	}
	p.items = p.items[:writeIdx]
}

// Draw renders all live bullets.
func (p *BulletPool) Draw(screen *ebiten.Image) {
	if p == nil || screen == nil || len(p.items) == 0 {
		return
	}
	p.assetsOnce.Do(p.initAssets)
	img := p.img
	if img == nil {
		img = p.placeholder
	}
	if img == nil {
		return
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	for _, b := range p.items {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(b.Width)/float64(w), float64(b.Height)/float64(h))
		op.GeoM.Translate(float64(b.X), float64(b.Y))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
}

// Destroy removes a specific live bullet. No-op if the bullet is not in the
// pool (it may already have been pruned this tick).
func (p *BulletPool) Destroy(target *Bullet) {
	if p == nil || target == nil {
		return
	}
	for idx, b := range p.items {
		if b == target {
			p.items = append(p.items[:idx], p.items[idx+1:]...)
			p.release(b)
			return
		}
	}
}

// Clear drops every live bullet and pending request. Used on wave
// transitions so stale projectiles cannot collide into the next wave.
func (p *BulletPool) Clear() {
	if p == nil {
		return
	}
	for _, b := range p.items {
		p.release(b)
	}
	p.items = p.items[:0]
	p.pending = p.pending[:0]
	p.cooldown = 0
}

// Items returns the live bullets. The slice is owned by the pool and valid
// until the next Update, Destroy, or Clear.
func (p *BulletPool) Items() []*Bullet {
	if p == nil {
		return nil
	}
	return p.items
}

// CooldownRemaining returns the ticks left before a new shot is admitted.
func (p *BulletPool) CooldownRemaining() int {
	if p == nil {
		return 0
	}
	return p.cooldown
}

// PendingCount returns the number of queued fire requests.
func (p *BulletPool) PendingCount() int {
	if p == nil {
		return 0
	}
	return len(p.pending)
}

// SetCooldownTicks overrides the rearm interval; the difficulty director
// uses this to scale enemy fire rate per wave.
func (p *BulletPool) SetCooldownTicks(ticks int) {
	if p == nil || ticks <= 0 {
		return
	}
	p.cooldownTicks = ticks
}

// BaseCooldownTicks returns the unscaled rearm interval from the prefab.
func (p *BulletPool) BaseCooldownTicks() int {
	if p == nil {
		return 0
	}
	return p.def.CooldownTicks
}

func (p *BulletPool) admit(x, y float32) bool {
	if p.cooldown > 0 {
		return false
	}
	b := p.getFromPool()
	b.Category = p.category
	b.Width = p.def.Width
	b.Height = p.def.Height
	b.VelY = p.def.Speed
	b.Active = true
	b.X = x - p.def.Width/2
	if p.def.Speed < 0 {
		// Upward shots leave from the muzzle edge going up.
		b.Y = y - p.def.Height
	} else {
		b.Y = y
	}
	p.items = append(p.items, b)
	p.cooldown = p.cooldownTicks
	return true
}

func (p *BulletPool) getFromPool() *Bullet {
	if p.free.New == nil {
		p.free.New = func() any { return &Bullet{} }
	}
	return p.free.Get().(*Bullet)
}

func (p *BulletPool) release(b *Bullet) {
	if b == nil {
		return
	}
	b.Active = false
	b.VelY = 0
	p.free.Put(b)
}

func (p *BulletPool) initAssets() {
	if im, err := assets.LoadImage(p.def.Image); err == nil {
		p.img = im
	}
	if p.img == nil {
		img := ebiten.NewImage(int(p.def.Width), int(p.def.Height))
		img.Fill(p.def.PlaceholderFill)
		p.placeholder = img
	}
}
