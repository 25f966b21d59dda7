package arena

// Vec2 is a point or extent in world units. Y grows upwards.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect is an axis-aligned box described by its centre and full size.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.Center.X - r.Size.X/2, Y: r.Center.Y - r.Size.Y/2}
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.Center.X + r.Size.X/2, Y: r.Center.Y + r.Size.Y/2}
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	if rMin.X >= oMax.X || oMin.X >= rMax.X {
		return false
	}
	if rMin.Y >= oMax.Y || oMin.Y >= rMax.Y {
		return false
	}
	return true
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Clamp restricts v to [lo, hi]. When lo > hi the midpoint is returned.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
