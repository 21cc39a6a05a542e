package common

// Rect is an axis-aligned bounding box in screen pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Intersects reports whether two rects have positive-area overlap on both
// axes. Boundary touching counts as a miss.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Left returns the left edge of the rect.
func (r *Rect) Left() float32 { return r.X }

// Right returns the right edge of the rect.
func (r *Rect) Right() float32 { return r.X + r.Width }

// Top returns the top edge of the rect.
func (r *Rect) Top() float32 { return r.Y }

// Bottom returns the bottom edge of the rect.
func (r *Rect) Bottom() float32 { return r.Y + r.Height }

// MidX returns the horizontal center of the rect.
func (r *Rect) MidX() float32 { return r.X + r.Width/2 }
