// Package eulerbend generates the outline of Euler bends: curved ribbons whose
// centerline is an Euler spiral (clothoid) instead of a circular arc. The
// curvature of such a bend grows linearly with arc length from zero at the
// entry to 1/rMin at the midpoint and falls back to zero at the exit, which
// keeps mode mismatch low when the bend is used as a waveguide.
//
// # Construction
//
// [Centerline] integrates the normalized spiral, whose tangent angle at
// normalized arc length s is s², with a forward Euler step, scales it so that
// the radius of curvature at the end of the half-curve is exactly rMin, and
// mirrors it across the normal line at that point to complete a symmetric
// bend that turns by theta.
//
// [Offsets] displaces every centerline sample by half the ribbon width along
// the local normal. The tangent angle of each sample is recomputed from the
// spiral's parametrization rather than differenced from neighboring samples,
// so the rails don't pick up the integration error of the centerline.
//
// [AssembleOutline] joins the inner rail, the reversed outer rail and a
// closing point into a [Polygon]. [ComputeBendOutline] does all three steps
// after validating its arguments, and [NewBend] additionally keeps the
// intermediate sequences around.
//
// # Units
//
// The package is unit-agnostic. Coordinates are in whatever unit rMin and the
// width are given in. Converting to a host's database grid is the business of
// a [Sink], see package pcell for an in-memory layout host.
//
// # Literature
//
//   - [Euler spiral]
//   - [Fresnel integral]
//
// [Euler spiral]: https://en.wikipedia.org/wiki/Euler_spiral
// [Fresnel integral]: https://en.wikipedia.org/wiki/Fresnel_integral
package eulerbend
