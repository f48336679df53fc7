package eulerbend

// Bend holds a computed bend along with the sequences it was assembled from.
type Bend struct {
	Params

	// Center has 2·Points samples, Inner and Outer one per centerline sample.
	Center []Point
	Inner  []Point
	Outer  []Point
	// Outline is the closed ring assembled from Inner and Outer.
	Outline Polygon
	// Pivot is the end of the first half-curve, where the curvature is 1/RMin.
	Pivot Point
}

// NewBend validates p and computes the bend.
func NewBend(p Params) (*Bend, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	center, pivot := centerline(p.RMin, p.Theta, p.Points)
	inner, outer := Offsets(center, p.Theta, p.Width, p.Points)
	b := &Bend{
		Params:  p,
		Center:  center,
		Inner:   inner,
		Outer:   outer,
		Outline: AssembleOutline(inner, outer),
		Pivot:   pivot,
	}
	Logger().Debug("computed bend",
		"rmin", p.RMin,
		"theta", p.Theta,
		"width", p.Width,
		"points", p.Points,
		"outline", len(b.Outline))
	return b, nil
}

// TangentAngle returns the tangent angle of centerline sample i.
func (b *Bend) TangentAngle(i int) float64 {
	return TangentAngle(b.Theta, b.Points, i)
}

// Curvature returns the curvature of the spiral at centerline sample i, using
// the same parametrization as [Bend.TangentAngle]. It grows from 0 at sample 0
// to 1/RMin at sample Points and falls off again.
func (b *Bend) Curvature(i int) float64 {
	n := b.Points
	ds := StepSize(b.Theta, n)
	k := i
	if i >= n {
		k = 2*n - i
	}
	return 2 * float64(k) * ds * ScaleFactor(b.RMin, b.Theta)
}

// Length returns the arc length of the centerline, 2·θ·RMin.
func (b *Bend) Length() float64 {
	return 2 * b.Theta * b.RMin
}

// Mirror returns the reflection that maps the first half of the bend onto
// the second.
func (b *Bend) Mirror() Affine {
	return mirrorTransform(b.Pivot, b.Theta/2)
}

// End returns the exit point of the centerline and its tangent direction.
func (b *Bend) End() (Point, Vec2) {
	return b.Center[len(b.Center)-1], VecFromAngle(b.TangentAngle(len(b.Center) - 1))
}
