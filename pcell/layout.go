package pcell

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"honnef.co/go/eulerbend"
)

// Point is a position on the database grid.
type Point struct {
	X, Y int32
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Polygon is a closed ring on the database grid. The closing point is not
// repeated.
type Polygon []Point

// Float returns p in database units as a closed [eulerbend.Polygon].
func (p Polygon) Float() eulerbend.Polygon {
	out := make(eulerbend.Polygon, 0, len(p)+1)
	for _, pt := range p {
		out = append(out, eulerbend.Pt(float64(pt.X), float64(pt.Y)))
	}
	if len(p) > 0 {
		out = append(out, out[0])
	}
	return out
}

var (
	ErrInvalidDBU = errors.New("database unit must be positive and finite")
	ErrOutOfRange = errors.New("coordinate out of database range")
)

// Layout is a collection of cells sharing a database unit. DBU is the size of
// one grid step in user units (microns), so 0.001 means a nanometer grid.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	DBU float64

	cells  []*Cell
	byName map[string]*Cell
}

func NewLayout(dbu float64) (*Layout, error) {
	if !(dbu > 0) || math.IsInf(dbu, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidDBU, dbu)
	}
	return &Layout{DBU: dbu, byName: map[string]*Cell{}}, nil
}

// ToDBU converts a length in user units to database units.
func (l *Layout) ToDBU(v float64) float64 { return v / l.DBU }

// FromDBU converts a length in database units to user units.
func (l *Layout) FromDBU(v float64) float64 { return v * l.DBU }

// CreateCell adds an empty cell. If name is taken, a suffix "$1", "$2" and so
// on is appended until it is unique.
func (l *Layout) CreateCell(name string) *Cell {
	unique := name
	for i := 1; l.byName[unique] != nil; i++ {
		unique = name + "$" + strconv.Itoa(i)
	}
	c := &Cell{Name: unique, layout: l, shapes: map[eulerbend.Layer][]Polygon{}}
	l.cells = append(l.cells, c)
	l.byName[unique] = c
	return c
}

// Cell returns the cell with the given name.
func (l *Layout) Cell(name string) (*Cell, bool) {
	c, ok := l.byName[name]
	return c, ok
}

// Cells returns all cells in creation order.
func (l *Layout) Cells() []*Cell { return slices.Clone(l.cells) }

func (l *Layout) deleteCell(c *Cell) {
	delete(l.byName, c.Name)
	l.cells = slices.DeleteFunc(l.cells, func(o *Cell) bool { return o == c })
}

// Cell holds polygons per layer. It implements [eulerbend.Sink]: inserted
// outlines are expected in database units and are snapped to the grid.
type Cell struct {
	Name string
	// DisplayText is the label hosts show for the cell.
	DisplayText string

	layout *Layout
	shapes map[eulerbend.Layer][]Polygon
}

var _ eulerbend.Sink = (*Cell)(nil)

// Layout returns the layout the cell belongs to.
func (c *Cell) Layout() *Layout { return c.layout }

func (c *Cell) InsertPolygon(layer eulerbend.Layer, outline eulerbend.Polygon) error {
	if err := eulerbend.CheckPolygon(outline); err != nil {
		return err
	}
	snapped := outline.Round()
	for len(snapped) > 1 && snapped[len(snapped)-1] == snapped[0] {
		snapped = snapped[:len(snapped)-1]
	}
	if len(snapped) < 3 {
		return fmt.Errorf("polygon collapses to %d points on the database grid", len(snapped))
	}
	poly := make(Polygon, len(snapped))
	for i, pt := range snapped {
		if pt.X < math.MinInt32 || pt.X > math.MaxInt32 || pt.Y < math.MinInt32 || pt.Y > math.MaxInt32 {
			return fmt.Errorf("%w: %v", ErrOutOfRange, pt)
		}
		poly[i] = Point{int32(pt.X), int32(pt.Y)}
	}
	c.shapes[layer] = append(c.shapes[layer], poly)
	return nil
}

// Shapes returns the polygons on layer.
func (c *Cell) Shapes(layer eulerbend.Layer) []Polygon { return c.shapes[layer] }

// Layers returns the layers that hold at least one polygon, ordered by layer
// and then datatype.
func (c *Cell) Layers() []eulerbend.Layer {
	out := make([]eulerbend.Layer, 0, len(c.shapes))
	for l, s := range c.shapes {
		if len(s) > 0 {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b eulerbend.Layer) int {
		if a.Layer != b.Layer {
			return a.Layer - b.Layer
		}
		return a.Datatype - b.Datatype
	})
	return out
}

// BoundingBox returns the bounding box of all polygons in database units.
func (c *Cell) BoundingBox() eulerbend.Rect {
	var bbox eulerbend.Rect
	first := true
	for _, l := range c.Layers() {
		for _, p := range c.shapes[l] {
			b := p.Float().BoundingBox()
			if first {
				bbox, first = b, false
			} else {
				bbox = bbox.Union(b)
			}
		}
	}
	return bbox
}

// Emit inserts every polygon of c into sink, converted to user units.
func (c *Cell) Emit(sink eulerbend.Sink) error {
	toUser := eulerbend.Scale(c.layout.DBU, c.layout.DBU)
	for _, l := range c.Layers() {
		for _, p := range c.shapes[l] {
			if err := sink.InsertPolygon(l, p.Float().Transform(toUser)); err != nil {
				return fmt.Errorf("cell %s, layer %s: %w", c.Name, l, err)
			}
		}
	}
	return nil
}
