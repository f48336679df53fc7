package eulerbend

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestComputeBendOutline(t *testing.T) {
	const width = 1
	p, err := ComputeBendOutline(10, math.Pi/2, width, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 201 {
		t.Fatalf("got %d points, want 201", len(p))
	}
	if !p.IsClosed() {
		t.Errorf("outline isn't closed: %s != %s", p[0], p[len(p)-1])
	}
	if i, j, ok := p.SelfIntersection(); ok {
		t.Errorf("edges %d and %d intersect", i, j)
	}
	diff(t, Pt(0, width/2.0), p[0])

	// The ring runs forward along the inner rail and back along the outer
	// one, which is clockwise for a left turn. The enclosed area is the
	// ribbon's width times the centerline length.
	area := p.SignedArea()
	if want := -width * 2 * math.Pi / 2 * 10; !approxEqual(area, want, 0.01*math.Abs(want)) {
		t.Errorf("got signed area %g, want ≈ %g", area, want)
	}

	b, _ := NewBend(Params{RMin: 10, Theta: math.Pi / 2, Width: width, Points: 50})
	for i := 1; i < len(b.Center)-1; i++ {
		if !p.Contains(b.Center[i]) {
			t.Errorf("centerline sample %d %s is outside the outline", i, b.Center[i])
		}
	}
}

func TestAssembleOutline(t *testing.T) {
	inner := []Point{Pt(0, 1), Pt(1, 1), Pt(2, 1)}
	outer := []Point{Pt(0, -1), Pt(1, -1), Pt(2, -1)}
	want := Polygon{
		Pt(0, 1), Pt(1, 1), Pt(2, 1),
		Pt(2, -1), Pt(1, -1), Pt(0, -1),
		Pt(0, 1),
	}
	diff(t, want, AssembleOutline(inner, outer))
}

func TestOutlineIsSimple(t *testing.T) {
	for _, theta := range []float64{0.05, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4, math.Pi} {
		for _, ratio := range []float64{0.1, 1, 1.5} {
			for _, n := range []int{10, 50, 200} {
				p, err := ComputeBendOutline(1, theta, ratio, n)
				if err != nil {
					t.Fatal(err)
				}
				if len(p) != 4*n+1 || !p.IsClosed() {
					t.Errorf("θ = %g, w = %g, n = %d: got %d points, closed = %t", theta, ratio, n, len(p), p.IsClosed())
				}
				if i, j, ok := p.SelfIntersection(); ok {
					t.Errorf("θ = %g, w = %g, n = %d: edges %d and %d intersect", theta, ratio, n, i, j)
				}
			}
		}
	}
}

func TestOutlineMinimalResolution(t *testing.T) {
	p, err := ComputeBendOutline(10, math.Pi/2, 1, MinPoints)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 4*MinPoints+1 {
		t.Fatalf("got %d points, want %d", len(p), 4*MinPoints+1)
	}
	if !p.IsSimple() {
		t.Error("outline isn't simple")
	}
}

func TestComputeBendOutlineErrors(t *testing.T) {
	tests := []struct {
		rMin, theta, width float64
		n                  int
		want               error
	}{
		{-1, 1, 1, 10, ErrInvalidRadius},
		{0, 1, 1, 10, ErrInvalidRadius},
		{math.NaN(), 1, 1, 10, ErrInvalidRadius},
		{math.Inf(1), 1, 1, 10, ErrInvalidRadius},
		{1, 0, 1, 10, ErrInvalidAngle},
		{1, -1, 1, 10, ErrInvalidAngle},
		{1, math.Pi + 1e-9, 1, 10, ErrInvalidAngle},
		{1, math.NaN(), 1, 10, ErrInvalidAngle},
		{1, 1, 3, 10, ErrInvalidWidth},
		{1, 1, 2, 10, ErrInvalidWidth},
		{1, 1, 0, 10, ErrInvalidWidth},
		{1, 1, -1, 10, ErrInvalidWidth},
		{1, 1, 1, 1, ErrInvalidResolution},
		{1, 1, 1, 0, ErrInvalidResolution},
		{1, 1, 1, -5, ErrInvalidResolution},
		// Radius is checked first.
		{-1, -1, -1, 0, ErrInvalidRadius},
	}
	for _, tt := range tests {
		p, err := ComputeBendOutline(tt.rMin, tt.theta, tt.width, tt.n)
		if !errors.Is(err, tt.want) {
			t.Errorf("ComputeBendOutline(%g, %g, %g, %d): got error %v, want %v", tt.rMin, tt.theta, tt.width, tt.n, err, tt.want)
		}
		if p != nil {
			t.Errorf("got %d points alongside error", len(p))
		}
		var perr *ParamError
		if !errors.As(err, &perr) {
			t.Errorf("error %v isn't a *ParamError", err)
		}
	}
}

func TestComputeBendOutlineConcurrent(t *testing.T) {
	want, err := ComputeBendOutline(5, 1, 0.5, 64)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	results := make([]Polygon, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = ComputeBendOutline(5, 1, 0.5, 64)
		}()
	}
	wg.Wait()
	for _, got := range results {
		diff(t, want, got)
	}
}
