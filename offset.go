package eulerbend

import (
	"fmt"
	"math"
)

// TangentAngle returns the tangent angle of centerline sample i of a bend
// that turns by theta with n samples per half-curve.
//
// The angle follows from the spiral's parametrization, (i·ds)² on the first
// half and θ − ((2n−i)·ds)² on the second, and is not affected by the error
// that the centerline integration accumulates.
func TangentAngle(theta float64, n, i int) float64 {
	ds := StepSize(theta, n)
	if i < n {
		s := float64(i) * ds
		return s * s
	}
	s := float64(2*n-i) * ds
	return theta - s*s
}

// Offsets returns the rails of a ribbon of the given width around the
// centerline of a bend that turns by theta with n samples per half-curve.
//
// Each sample is displaced by width/2 along the local normal, computed from
// [TangentAngle]. The inner rail lies on the left of the direction of travel,
// which is the side of the center of curvature. inner[i] and outer[i] are
// exactly width apart.
//
// Offsets panics if len(center) != 2n.
func Offsets(center []Point, theta, width float64, n int) (inner, outer []Point) {
	if len(center) != 2*n {
		panic(fmt.Sprintf("got %d centerline samples, want %d", len(center), 2*n))
	}
	inner = make([]Point, len(center))
	outer = make([]Point, len(center))
	hw := width / 2
	for i, c := range center {
		sin, cos := math.Sincos(TangentAngle(theta, n, i))
		d := Vec(hw*sin, -hw*cos)
		outer[i] = c.Translate(d)
		inner[i] = c.Translate(d.Negate())
	}
	return inner, outer
}
