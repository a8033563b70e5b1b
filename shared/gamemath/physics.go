package gamemath

// Approach moves value toward target by at most step and never overshoots.
func Approach(value, target, step float64) float64 {
	if value < target {
		return min(value+step, target)
	}
	if value > target {
		return max(value-step, target)
	}
	return value
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Decay counts a timer down by dt, clamping at zero.
func Decay(timer, dt float64) float64 {
	if timer <= dt {
		return 0
	}
	return timer - dt
}

// InputDirection returns the held direction on each axis (y-up). With
// opposite keys held, right beats left and up beats down.
func InputDirection(left, right, up, down bool) (x, y float64) {
	switch {
	case right:
		x = 1
	case left:
		x = -1
	}
	switch {
	case up:
		y = 1
	case down:
		y = -1
	}
	return x, y
}
