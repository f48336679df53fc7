package eulerbend

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(2, 4).Midpoint(Pt(4, 8)), Pt(3, 6))
	diff(t, Pt(1.5, -2.5).Round(), Pt(2, -3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecFromAngle(t *testing.T) {
	const epsilon = 1e-12
	for _, th := range []float64{0, math.Pi / 6, math.Pi / 2, 2, math.Pi} {
		v := VecFromAngle(th)
		if h := v.Hypot(); !approxEqual(h, 1, epsilon) {
			t.Errorf("angle %g: got magnitude %g, want 1", th, h)
		}
		if a := v.Angle(); !approxEqual(a, th, epsilon) {
			t.Errorf("got angle %g, want %g", a, th)
		}
		if d := v.Dot(v.Normal()); !approxEqual(d, 0, epsilon) {
			t.Errorf("normal of %s isn't perpendicular: dot = %g", v, d)
		}
		if c := v.Cross(v.Normal()); !approxEqual(c, 1, epsilon) {
			t.Errorf("normal of %s isn't to the left: cross = %g", v, c)
		}
	}
}
