package gamemath

// Mask is the per-tick contact summary of a moving box against static
// geometry. It is recomputed every tick and passed by value.
type Mask uint8

const (
	Left Mask = 1 << iota
	Right
	Down
	Up
	HookDown
	HookUp
)

// DefaultEpsilon is the overlap depth below which an axis counts as a
// corner clip.
const DefaultEpsilon = 5.0

// Has reports whether every bit in bits is set.
func (m Mask) Has(bits Mask) bool { return m&bits == bits }

// Any reports whether at least one bit in bits is set.
func (m Mask) Any(bits Mask) bool { return m&bits != 0 }

// CanHook reports whether both hook zones have wall to grip.
func (m Mask) CanHook() bool { return m.Has(HookUp | HookDown) }

// Side returns Left or Right for a side contact, preferring Left.
func (m Mask) Side() Mask {
	if m.Any(Left) {
		return Left
	}
	if m.Any(Right) {
		return Right
	}
	return 0
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	names := []struct {
		bit  Mask
		name string
	}{
		{Left, "left"}, {Right, "right"}, {Down, "down"}, {Up, "up"},
		{HookDown, "hook-down"}, {HookUp, "hook-up"},
	}
	s := ""
	for _, n := range names {
		if m&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// classifyOne returns the contribution of a single static box.
func classifyOne(m, s AABB, eps float64) Mask {
	if !Overlaps(m, s) {
		return 0
	}
	var mask Mask
	mx, my := Margins(m, s)

	// Sides resolve only when the boxes share enough height; a thin
	// vertical overlap is a corner clip.
	if my >= eps {
		if m.X >= s.CenterX() {
			mask |= Left
		} else {
			mask |= Right
		}
	}
	if mx >= eps {
		if m.Y >= s.CenterY() {
			mask |= Down
		} else {
			mask |= Up
		}
	}

	if m.Y+m.H*2/3 <= s.Top() {
		mask |= HookUp
	}
	if m.Y+m.H/3 >= s.Y {
		mask |= HookDown
	}
	return mask
}

// Classify ORs the contact directions of moving against every static box.
// It never moves anything.
func Classify(moving AABB, statics []AABB, eps float64) Mask {
	var mask Mask
	for _, s := range statics {
		mask |= classifyOne(moving, s, eps)
	}
	return mask
}

// ResolveAndPush classifies like Classify and also moves the box out of each
// static box on every resolved axis. Boxes are processed in order against the
// already corrected position.
func ResolveAndPush(moving *AABB, statics []AABB, eps float64) Mask {
	var mask Mask
	for _, s := range statics {
		c := classifyOne(*moving, s, eps)
		switch {
		case c&Left != 0:
			moving.X += s.Right() - moving.X
		case c&Right != 0:
			moving.X -= moving.Right() - s.X
		}
		switch {
		case c&Down != 0:
			moving.Y += s.Top() - moving.Y
		case c&Up != 0:
			moving.Y -= moving.Top() - s.Y
		}
		mask |= c
	}
	return mask
}
