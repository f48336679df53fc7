package eulerbend

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float64) Point {
	v := l.P1.Sub(l.P0)
	return l.P0.Translate(v.Mul(t))
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// LineIntersection describes where two segments meet. LineT is the parameter
// on the probe line, SegmentT the parameter on the receiver.
type LineIntersection struct {
	LineT    float64
	SegmentT float64
}

// IntersectLine computes the intersection of the receiver with the segment o.
// Coincident and parallel segments don't intersect.
func (l Line) IntersectLine(o Line) ([1]LineIntersection, int) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return [1]LineIntersection{}, 0
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on probe line
		u :=
			(l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return [1]LineIntersection{{u, t}}, 1
		}
	}
	return [1]LineIntersection{}, 0
}

// winding is the contribution of the segment to the winding number of pt,
// counting upward crossings of the ray from pt in the positive x direction
// positively.
func (l Line) winding(pt Point) int {
	if l.P0.Y <= pt.Y {
		if l.P1.Y > pt.Y && l.P1.Sub(l.P0).Cross(pt.Sub(l.P0)) > 0 {
			return 1
		}
	} else if l.P1.Y <= pt.Y && l.P1.Sub(l.P0).Cross(pt.Sub(l.P0)) < 0 {
		return -1
	}
	return 0
}
