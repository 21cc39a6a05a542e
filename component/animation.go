package component

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is a frame-based animator for a horizontal spritesheet.
// Frames are laid out left-to-right.
type Animation struct {
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	FPS        int
	Loop       bool

	current     int
	tick        int
	ticksPerFrm int
	frames      []*ebiten.Image
}

// NewAnimation creates an Animation. frameCount 0 infers the count from the
// sheet width. fps defaults to 12 if <= 0.
func NewAnimation(sheet *ebiten.Image, frameW, frameH, frameCount, fps int, loop bool) *Animation {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return &Animation{}
	}
	if fps <= 0 {
		fps = 12
	}
	cols := sheet.Bounds().Dx() / frameW
	if frameCount <= 0 || frameCount > cols {
		frameCount = cols
	}
	ticks := int(math.Max(1, math.Round(60.0/float64(fps))))
	a := &Animation{
		Sheet:       sheet,
		FrameW:      frameW,
		FrameH:      frameH,
		FrameCount:  frameCount,
		FPS:         fps,
		Loop:        loop,
		ticksPerFrm: ticks,
	}
	a.frames = make([]*ebiten.Image, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		r := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		a.frames = append(a.frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return a
}

// Update advances the animation by one game tick.
func (a *Animation) Update() {
	if a == nil || len(a.frames) == 0 {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= a.FrameCount {
		if a.Loop {
			a.current = 0
		} else {
			a.current = a.FrameCount - 1
		}
	}
}

// Step advances to the next frame immediately, ignoring the FPS timer. The
// formation uses this to tie the invader wiggle to movement instead of time.
func (a *Animation) Step() {
	if a == nil || len(a.frames) == 0 {
		return
	}
	a.current = (a.current + 1) % a.FrameCount
	a.tick = 0
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
}

// CurrentFrame returns the frame image to draw, or nil if the animation is
// empty.
func (a *Animation) CurrentFrame() *ebiten.Image {
	if a == nil || len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.current]
}

// Size returns the per-frame pixel size.
func (a *Animation) Size() (int, int) {
	if a == nil {
		return 0, 0
	}
	return a.FrameW, a.FrameH
}
