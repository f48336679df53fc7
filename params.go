package eulerbend

import (
	"errors"
	"fmt"
	"math"
)

// MinPoints is the smallest accepted number of samples per half-curve.
const MinPoints = 2

var (
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrInvalidAngle      = errors.New("invalid angle")
	ErrInvalidWidth      = errors.New("invalid width")
	ErrInvalidResolution = errors.New("invalid resolution")
)

// ParamError describes a rejected bend parameter. Err is one of
// [ErrInvalidRadius], [ErrInvalidAngle], [ErrInvalidWidth] and
// [ErrInvalidResolution], so callers can use errors.Is.
type ParamError struct {
	Param  string
	Value  float64
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g %s", e.Err, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return e.Err }

// Params are the inputs of a bend.
type Params struct {
	// RMin is the minimum radius of curvature, reached at the midpoint of the bend.
	RMin float64
	// Theta is the total turning angle in radians, in (0, π].
	Theta float64
	// Width is the width of the ribbon. It must be less than 2·RMin, or the
	// inner rail would fold over itself.
	Width float64
	// Points is the number of samples per half-curve. The centerline has
	// 2·Points samples and the outline 4·Points+1.
	Points int
}

// Validate checks the parameters in the order radius, angle, width,
// resolution and returns a [*ParamError] for the first violation.
func (p Params) Validate() error {
	// Comparisons are phrased so that NaN fails them.
	switch {
	case !(p.RMin > 0) || math.IsInf(p.RMin, 0):
		return &ParamError{Param: "rmin", Value: p.RMin, Reason: "must be positive and finite", Err: ErrInvalidRadius}
	case !(p.Theta > 0 && p.Theta <= math.Pi):
		return &ParamError{Param: "theta", Value: p.Theta, Reason: "must be in (0, π]", Err: ErrInvalidAngle}
	case !(p.Width > 0):
		return &ParamError{Param: "width", Value: p.Width, Reason: "must be positive", Err: ErrInvalidWidth}
	case p.Width >= 2*p.RMin:
		return &ParamError{
			Param:  "width",
			Value:  p.Width,
			Reason: fmt.Sprintf("must be less than 2·rmin = %g", 2*p.RMin),
			Err:    ErrInvalidWidth,
		}
	case p.Points < MinPoints:
		return &ParamError{
			Param:  "points",
			Value:  float64(p.Points),
			Reason: fmt.Sprintf("must be at least %d", MinPoints),
			Err:    ErrInvalidResolution,
		}
	}
	return nil
}
