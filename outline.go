package eulerbend

import (
	"fmt"
)

// AssembleOutline joins the two rails into a closed ring: the inner rail
// forward, the outer rail backward and the first inner point again. The
// result has 2·len(inner)+1 points.
//
// AssembleOutline panics if the rails differ in length or are empty.
func AssembleOutline(inner, outer []Point) Polygon {
	if len(inner) != len(outer) || len(inner) == 0 {
		panic(fmt.Sprintf("mismatched rails: %d inner and %d outer points", len(inner), len(outer)))
	}
	out := make(Polygon, 0, 2*len(inner)+1)
	out = append(out, inner...)
	for i := len(outer) - 1; i >= 0; i-- {
		out = append(out, outer[i])
	}
	return append(out, inner[0])
}

// ComputeBendOutline computes the closed outline of an Euler bend with minimum
// radius rMin, total turning angle theta, ribbon width width and pointCount
// samples per half-curve. The outline has 4·pointCount+1 points, in the units
// of rMin and width, and starts at the inner rail of the entry.
//
// Invalid arguments are rejected before any work is done, with a
// [*ParamError].
func ComputeBendOutline(rMin, theta, width float64, pointCount int) (Polygon, error) {
	b, err := NewBend(Params{RMin: rMin, Theta: theta, Width: width, Points: pointCount})
	if err != nil {
		return nil, err
	}
	return b.Outline, nil
}
