package eulerbend

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func approxEqual(x, y, epsilon float64) bool {
	return math.Abs(x-y) <= epsilon
}

// circumCurvature returns the signed curvature of the circle through a, b and
// c, positive for left turns.
func circumCurvature(a, b, c Point) float64 {
	return 2 * b.Sub(a).Cross(c.Sub(b)) / (a.Distance(b) * b.Distance(c) * a.Distance(c))
}
