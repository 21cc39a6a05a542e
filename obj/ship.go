package obj

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/invaders/assets"
	"github.com/milk9111/invaders/common"
	"github.com/milk9111/invaders/component"
	"github.com/milk9111/invaders/prefabs"
)

// Ship is the player sprite: horizontal movement clamped to the screen and
// upward fire through the player bullet pool.
type Ship struct {
	common.Rect
	Speed  float32
	Input  *Input
	Health *component.Health

	iframeTicks int
	flashFrames int
	sprite      string

	img         *ebiten.Image
	placeholder *ebiten.Image
	assetsOnce  sync.Once
}

// NewShip creates the ship centered on the bottom of the screen.
func NewShip(spec prefabs.ShipSpec, input *Input, health *component.Health) *Ship {
	s := &Ship{
		Rect: common.Rect{
			Width:  spec.Width,
			Height: spec.Height,
		},
		Speed:       spec.MoveSpeed,
		Input:       input,
		Health:      health,
		iframeTicks: spec.HitIFrame,
		sprite:      spec.Sprite,
	}
	s.Reset()
	return s
}

// Reset recenters the ship for a new run or after a hit.
func (s *Ship) Reset() {
	if s == nil {
		return
	}
	s.X = (float32(common.BaseWidth) - s.Width) / 2
	s.Y = float32(common.BaseHeight) - s.Height - 20
	s.flashFrames = 0
}

// Update applies the input snapshot: move, clamp, and fire.
func (s *Ship) Update(shots *BulletPool) {
	if s == nil || s.Input == nil {
		return
	}
	s.X = common.Clamp(s.X+s.Input.MoveX*s.Speed, 0, float32(common.BaseWidth)-s.Width)

	if s.Input.FireHeld && shots != nil {
		shots.Request(s.MidX(), s.Top(), 0)
	}

	if s.flashFrames > 0 {
		s.flashFrames--
	}
}

// Hit applies one hit of damage. Returns false while i-frames are running.
func (s *Ship) Hit() bool {
	if s == nil || s.Health == nil {
		return false
	}
	if !s.Health.Damage(1) {
		return false
	}
	s.Health.StartIFrames(s.iframeTicks)
	s.flashFrames = s.iframeTicks
	return true
}

// Draw renders the ship, blinking while the post-hit flash runs.
func (s *Ship) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	if s.flashFrames > 0 && (s.flashFrames/4)%2 == 0 {
		return
	}
	s.assetsOnce.Do(s.initAssets)
	img := s.img
	if img == nil {
		img = s.placeholder
	}
	if img == nil {
		return
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.Width)/float64(w), float64(s.Height)/float64(h))
	op.GeoM.Translate(float64(s.X), float64(s.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (s *Ship) initAssets() {
	if im, err := assets.LoadImage(s.sprite); err == nil {
		s.img = im
	}
	if s.img == nil {
		img := ebiten.NewImage(int(s.Width), int(s.Height))
		img.Fill(color.RGBA{R: 0x50, G: 0xdc, B: 0x78, A: 0xff})
		s.placeholder = img
	}
}
