package eulerbend

import (
	"math"
	"testing"
)

func TestTangentAngle(t *testing.T) {
	const n = 10
	theta := math.Pi / 2
	ds := StepSize(theta, n)
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{1, ds * ds},
		{n - 1, float64((n-1)*(n-1)) * ds * ds},
		{n, theta / 2},
		{n + 1, theta - float64((n-1)*(n-1))*ds*ds},
		{2*n - 1, theta - ds*ds},
	}
	for _, tt := range tests {
		if got := TangentAngle(theta, n, tt.i); !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("TangentAngle(%g, %d, %d) = %g, want %g", theta, n, tt.i, got, tt.want)
		}
	}
}

func TestOffsetsWidth(t *testing.T) {
	for _, width := range []float64{0.01, 1, 19.9} {
		b, err := NewBend(Params{RMin: 10, Theta: 2, Width: width, Points: 30})
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range b.Center {
			if d := b.Inner[i].Distance(b.Outer[i]); !approxEqual(d, width, 1e-9) {
				t.Errorf("sample %d: rails are %g apart, want %g", i, d, width)
			}
			assertNear(t, b.Inner[i].Midpoint(b.Outer[i]), c, 1e-9)
		}
	}
}

func TestOffsetsAlongNormal(t *testing.T) {
	b, err := NewBend(Params{RMin: 3, Theta: math.Pi, Width: 2, Points: 25})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range b.Center {
		tangent := VecFromAngle(b.TangentAngle(i))
		off := b.Inner[i].Sub(c)
		if d := tangent.Dot(off); !approxEqual(d, 0, 1e-9) {
			t.Errorf("sample %d: offset isn't perpendicular to the tangent, dot = %g", i, d)
		}
		// The bend turns left, the inner rail is on the left.
		if cr := tangent.Cross(off); !(cr > 0) {
			t.Errorf("sample %d: inner rail is on the right, cross = %g", i, cr)
		}
	}
}

// The rails follow the analytic tangent. Offsetting along differenced
// tangents would instead produce rails whose spacing drifts with the
// integration error, so the two approaches must not coincide at the pivot.
func TestOffsetsUseAnalyticAngle(t *testing.T) {
	const n = 5
	theta := math.Pi
	center := Centerline(1, theta, n)
	inner, _ := Offsets(center, theta, 0.5, n)
	got := inner[n].Sub(center[n]).Angle() - math.Pi/2
	if !approxEqual(got, theta/2, 1e-12) {
		t.Errorf("got normal angle %g at sample %d, want %g", got, n, theta/2)
	}
	differenced := center[n+1].Sub(center[n-1]).Angle()
	if approxEqual(differenced, theta/2, 1e-3) {
		t.Errorf("differenced tangent %g unexpectedly matches the analytic one", differenced)
	}
}

func TestOffsetsPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Offsets(make([]Point, 5), 1, 1, 3)
}
