package obj

import (
	"image/color"

	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/prefabs"
)

// Category selects which shooter a projectile stream belongs to. It drives
// a small lookup into the prefab bullet table (sprite, speed sign, cooldown)
// instead of branching on a runtime tag.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
)

func (c Category) String() string {
	if c == CategoryPlayer {
		return "player"
	}
	return "enemy"
}

// BulletDef is one category's resolved projectile tuning. Speed is signed:
// negative travels up the screen.
type BulletDef struct {
	Image           string
	Width           float32
	Height          float32
	Speed           float32
	CooldownTicks   int
	PlaceholderFill color.RGBA
}

// DefForCategory resolves a category's tuning from the prefab table.
func DefForCategory(c Category, spec *prefabs.BulletsSpec) BulletDef {
	var src prefabs.BulletSpec
	fill := color.RGBA{R: 0xff, G: 0x78, B: 0x5a, A: 0xff}
	if c == CategoryPlayer {
		src = spec.Player
		fill = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	} else {
		src = spec.Enemy
	}
	return BulletDef{
		Image:           src.Image,
		Width:           src.Width,
		Height:          src.Height,
		Speed:           src.Speed,
		CooldownTicks:   src.CooldownTicks,
		PlaceholderFill: fill,
	}
}

// Bullet is a single projectile: fixed horizontal offset, vertical-only
// velocity, axis-aligned bounding box.
type Bullet struct {
	common.Rect
	VelY     float32
	Category Category
	Active   bool
}

// Update advances the bullet by its vertical velocity.
func (b *Bullet) Update() {
	if b == nil || !b.Active {
		return
	}
	b.Y += b.VelY
}

// OffScreen reports whether the bullet has exited the visible vertical band.
func (b *Bullet) OffScreen() bool {
	if b == nil {
		return true
	}
	return b.Bottom() < 0 || b.Top() > common.BaseHeight
}
