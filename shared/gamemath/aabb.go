package gamemath

import "math"

// AABB is an axis-aligned box in world units. The world is y-up, so (X, Y)
// is the bottom-left corner.
type AABB struct {
	X, Y, W, H float64
}

func (b AABB) Right() float64   { return b.X + b.W }
func (b AABB) Top() float64     { return b.Y + b.H }
func (b AABB) CenterX() float64 { return b.X + b.W/2 }
func (b AABB) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether two boxes intersect, edges included. Zero-sized
// boxes behave as segments or points.
func Overlaps(a, b AABB) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Top() && b.Y <= a.Top()
}

// Margins returns the penetration margin on each axis: the smaller of the two
// distances between opposing edges.
func Margins(a, b AABB) (mx, my float64) {
	mx = math.Min(math.Abs(a.Right()-b.X), math.Abs(a.X-b.Right()))
	my = math.Min(math.Abs(a.Top()-b.Y), math.Abs(a.Y-b.Top()))
	return mx, my
}

// Union returns the smallest box containing every box. The zero box is
// returned for an empty slice.
func Union(boxes ...AABB) AABB {
	if len(boxes) == 0 {
		return AABB{}
	}
	minX, minY := boxes[0].X, boxes[0].Y
	maxX, maxY := boxes[0].Right(), boxes[0].Top()
	for _, b := range boxes[1:] {
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Top())
	}
	return AABB{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
