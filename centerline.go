package eulerbend

import (
	"math"
)

// StepSize returns the normalized arc length step sqrt(θ/2)/n used to sample
// both halves of a bend.
func StepSize(theta float64, n int) float64 {
	return math.Sqrt(theta/2) / float64(n)
}

// ScaleFactor returns the factor a that the unit spiral is divided by so that
// the radius of curvature at the end of the half-curve is rMin.
//
// The normalized spiral has curvature 2s at arc length s. Dividing lengths by
// a multiplies curvature by a, and at s = sqrt(θ/2) we want 2·s·a = 1/rMin.
func ScaleFactor(rMin, theta float64) float64 {
	return math.Sqrt(1/(theta/2)) / (2 * rMin)
}

// Centerline returns the 2n samples of the centerline of a bend with minimum
// radius rMin that turns by theta.
//
// The first n samples are a forward Euler integration of the Euler spiral,
// starting at the origin with tangent angle 0. The last n samples are those
// same samples, in reverse order, reflected about the normal line at the end
// of the half-curve, where the tangent angle is exactly θ/2 and the curvature
// peaks. Sample i and sample 2n-1-i are mirror images.
//
// Centerline does not validate its arguments, see [Params.Validate].
func Centerline(rMin, theta float64, n int) []Point {
	pts, _ := centerline(rMin, theta, n)
	return pts
}

// centerline additionally returns the mirror pivot, the end of the
// half-curve. The pivot itself is not a sample.
func centerline(rMin, theta float64, n int) ([]Point, Point) {
	halfTheta := theta / 2
	ds := StepSize(theta, n)
	a := ScaleFactor(rMin, theta)

	// half[n] is the pivot.
	half := make([]Point, n+1)
	var x, y float64
	for i := 1; i <= n; i++ {
		s := float64(i) * ds
		sin, cos := math.Sincos(s * s)
		x += cos * ds
		y += sin * ds
		half[i] = Pt(x/a, y/a)
	}

	pivot := half[n]
	mirror := mirrorTransform(pivot, halfTheta)
	out := make([]Point, 2*n)
	copy(out, half[:n])
	for i := 1; i <= n; i++ {
		out[n-1+i] = half[n-i].Transform(mirror)
	}
	return out, pivot
}

// mirrorTransform reflects about the line through pivot perpendicular to the
// tangent direction halfTheta.
func mirrorTransform(pivot Point, halfTheta float64) Affine {
	return Reflect(pivot, VecFromAngle(halfTheta).Normal())
}
