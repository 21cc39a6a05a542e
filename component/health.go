package component

// Health tracks remaining lives for an entity that can take damage.
// It is passed into the tick by reference instead of living in a global,
// so a game restart can simply Reset it.
type Health struct {
	Max     int
	Current int
	IFrames int

	OnDamage      func(h *Health)
	OnDeath       func(h *Health)
	OnIFrameStart func(h *Health)
	OnIFrameEnd   func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Alive reports whether the entity still has lives left.
func (h *Health) Alive() bool {
	return h != nil && h.Current > 0
}

// Damage removes lives if not in i-frames. Returns true if damage was applied.
func (h *Health) Damage(amount int) bool {
	if h == nil || h.Current <= 0 || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h)
	}
	if h.Current <= 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}

// Heal restores lives up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Current <= 0 || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// StartIFrames sets invulnerability frames.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	if h.IFrames <= 0 && h.OnIFrameStart != nil {
		h.OnIFrameStart(h)
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
	if h.IFrames <= 0 {
		h.IFrames = 0
		if h.OnIFrameEnd != nil {
			h.OnIFrameEnd(h)
		}
	}
}

// Reset restores full lives and clears i-frames.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.IFrames = 0
}
