package panes

// Scroller is a bounded cursor over [0, max]. It backs scroll offsets,
// history indices and list selection alike.
type Scroller struct {
	position int
	max      int
}

// NewScroller creates a scroller at position 0 with the given upper bound.
// Negative bounds are treated as 0.
func NewScroller(bound int) Scroller {
	if bound < 0 {
		bound = 0
	}
	return Scroller{max: bound}
}

// Next advances the position, saturating at max.
func (s *Scroller) Next() {
	if s.position < s.max {
		s.position++
	}
}

// Prev moves the position back, saturating at 0.
func (s *Scroller) Prev() {
	if s.position > 0 {
		s.position--
	}
}

// SetMax updates the upper bound and clamps the position into range.
func (s *Scroller) SetMax(bound int) {
	if bound < 0 {
		bound = 0
	}
	s.max = bound
	if s.position > bound {
		s.position = bound
	}
}

// SetPosition moves to p only when p is within [0, max]; otherwise the call is ignored.
// Callers that need to land past the current bound must call SetMax first.
func (s *Scroller) SetPosition(p int) {
	if p < 0 || p > s.max {
		return
	}
	s.position = p
}

// Position returns the current position.
func (s Scroller) Position() int { return s.position }

// Max returns the current upper bound.
func (s Scroller) Max() int { return s.max }
