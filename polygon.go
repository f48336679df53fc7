package eulerbend

import (
	"iter"
)

// Polygon is an ordered ring of points. A closed polygon repeats its first
// point at the end, which is how [AssembleOutline] returns outlines and how
// layout hosts expect them.
type Polygon []Point

// IsClosed reports whether the last point equals the first.
func (p Polygon) IsClosed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Edges returns the polygon's edges, including the implicit closing edge of
// an open ring.
func (p Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if len(p) < 2 {
			return
		}
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
		if !p.IsClosed() {
			yield(Line{p[len(p)-1], p[0]})
		}
	}
}

// ring returns the vertices without the repeated closing point.
func (p Polygon) ring() []Point {
	if p.IsClosed() {
		return p[:len(p)-1]
	}
	return p
}

// SignedArea returns the area enclosed by the polygon using the shoelace
// formula. It is positive for counter-clockwise rings in y-up space.
func (p Polygon) SignedArea() float64 {
	var area float64
	for l := range p.Edges() {
		area += Vec2(l.P0).Cross(Vec2(l.P1))
	}
	return 0.5 * area
}

// Perimeter returns the total length of the polygon's edges.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for l := range p.Edges() {
		sum += l.Length()
	}
	return sum
}

// BoundingBox returns the smallest rectangle that encloses the polygon.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Winding returns the winding number of pt with respect to the polygon. It is
// +1 inside a counter-clockwise ring.
func (p Polygon) Winding(pt Point) int {
	var w int
	for l := range p.Edges() {
		w += l.winding(pt)
	}
	return w
}

// Contains reports whether pt lies inside the polygon, using the nonzero rule.
func (p Polygon) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// SelfIntersection finds a pair of non-adjacent edges that touch or cross.
// Edges are numbered from 0, edge i running from vertex i to vertex i+1. Zero
// length edges are ignored.
func (p Polygon) SelfIntersection() (i, j int, ok bool) {
	var edges []Line
	for l := range p.Edges() {
		edges = append(edges, l)
	}
	boxes := make([]Rect, len(edges))
	for k, e := range edges {
		boxes[k] = e.BoundingBox()
	}
	n := len(edges)
	for i := 0; i < n; i++ {
		if edges[i].Length() == 0 {
			continue
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// The closing edge is adjacent to the first.
				continue
			}
			if edges[j].Length() == 0 || !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			if _, hits := edges[i].IntersectLine(edges[j]); hits > 0 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// IsSimple reports whether no two non-adjacent edges of the polygon meet.
func (p Polygon) IsSimple() bool {
	_, _, ok := p.SelfIntersection()
	return !ok
}

// Transform applies aff to every point.
func (p Polygon) Transform(aff Affine) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Round rounds every point to the integer grid, dropping points that collapse
// onto their predecessor. The closing point is kept.
func (p Polygon) Round() Polygon {
	out := make(Polygon, 0, len(p))
	for i, pt := range p {
		pt = pt.Round()
		if len(out) > 0 && out[len(out)-1] == pt && i != len(p)-1 {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// PathElements expresses the polygon as a move, a series of lines and, for
// closed polygons, a close command.
func (p Polygon) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		ring := p.ring()
		if len(ring) == 0 {
			return
		}
		if !yield(MoveTo(ring[0])) {
			return
		}
		for _, pt := range ring[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		if p.IsClosed() {
			yield(ClosePath())
		}
	}
}

// SVG returns the polygon as SVG path data.
func (p Polygon) SVG(opts SVGOptions) string {
	return SVG(p.PathElements(), opts)
}

func (p Polygon) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

func (p Polygon) IsInf() bool {
	for _, pt := range p {
		if pt.IsInf() {
			return true
		}
	}
	return false
}
