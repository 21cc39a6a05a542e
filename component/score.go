package component

// Score accumulates points for one run and remembers the best run.
// Crossing an extra-life threshold invokes OnExtraLife once per threshold.
type Score struct {
	Current int
	High    int

	// ExtraLifeStep is the score interval between bonus lives. <= 0 disables
	// the bonus entirely.
	ExtraLifeStep int

	OnExtraLife func()

	nextLifeAt int
}

// NewScore creates a Score with the given extra-life interval.
func NewScore(extraLifeStep int) *Score {
	return &Score{ExtraLifeStep: extraLifeStep, nextLifeAt: extraLifeStep}
}

// Add credits points to the current run and fires extra-life callbacks for
// every threshold crossed.
func (s *Score) Add(amount int) {
	if s == nil || amount <= 0 {
		return
	}
	s.Current += amount
	if s.Current > s.High {
		s.High = s.Current
	}
	if s.ExtraLifeStep <= 0 {
		return
	}
	for s.Current >= s.nextLifeAt {
		s.nextLifeAt += s.ExtraLifeStep
		if s.OnExtraLife != nil {
			s.OnExtraLife()
		}
	}
}

// Reset starts a new run. The high score survives until the process exits.
func (s *Score) Reset() {
	if s == nil {
		return
	}
	s.Current = 0
	s.nextLifeAt = s.ExtraLifeStep
}
