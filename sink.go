package eulerbend

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Layer identifies a layer of a layout by layer and datatype number, the way
// GDSII does.
type Layer struct {
	Layer    int
	Datatype int
}

func (l Layer) String() string {
	return strconv.Itoa(l.Layer) + "/" + strconv.Itoa(l.Datatype)
}

// Sink consumes finished outlines. Implementations render or store the
// polygon as a filled shape on the given layer and are responsible for any
// snapping to their own grid.
type Sink interface {
	InsertPolygon(layer Layer, outline Polygon) error
}

var errDegenerate = errors.New("degenerate polygon")

// CheckPolygon returns an error if outline can't be stored as a filled shape:
// fewer than three distinct points, or NaN or infinite coordinates.
func CheckPolygon(outline Polygon) error {
	if n := len(outline.ring()); n < 3 {
		return fmt.Errorf("%w: %d points", errDegenerate, n)
	}
	if outline.IsNaN() || outline.IsInf() {
		return fmt.Errorf("%w: non-finite coordinates", errDegenerate)
	}
	return nil
}

// Emit computes the outline of p and inserts it into sink on layer.
func Emit(sink Sink, layer Layer, p Params) error {
	b, err := NewBend(p)
	if err != nil {
		return err
	}
	return sink.InsertPolygon(layer, b.Outline)
}

// DefaultFill is the fill color used by [SVGSink] for layers without an entry
// in Colors.
const DefaultFill = "#4682b4"

type svgShape struct {
	layer   Layer
	outline Polygon
}

// SVGSink collects polygons and writes them as an SVG document. Bends are
// computed in y-up space, the document flips them so they appear the same way
// up.
type SVGSink struct {
	Options SVGOptions
	// Colors maps layers to fill colors.
	Colors map[Layer]string
	// Margin is added around the bounding box of all shapes.
	Margin float64

	shapes []svgShape
}

var _ Sink = (*SVGSink)(nil)

func (s *SVGSink) InsertPolygon(layer Layer, outline Polygon) error {
	if err := CheckPolygon(outline); err != nil {
		return err
	}
	s.shapes = append(s.shapes, svgShape{layer, outline.Transform(FlipY)})
	Logger().Debug("svg: inserted polygon", "layer", layer, "points", len(outline))
	return nil
}

// Len returns the number of collected polygons.
func (s *SVGSink) Len() int { return len(s.shapes) }

// BoundingBox returns the bounding box of all collected polygons in document
// (y-down) space.
func (s *SVGSink) BoundingBox() Rect {
	if len(s.shapes) == 0 {
		return Rect{}
	}
	bbox := s.shapes[0].outline.BoundingBox()
	for _, sh := range s.shapes[1:] {
		bbox = bbox.Union(sh.outline.BoundingBox())
	}
	return bbox
}

// WriteSVG writes the document to w.
func (s *SVGSink) WriteSVG(w io.Writer) error {
	bbox := s.BoundingBox().Inflate(s.Margin, s.Margin)
	f := func(n float64) string { return strconv.FormatFloat(n, 'g', -1, 64) }
	if _, err := fmt.Fprintf(w, `<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		f(bbox.X0), f(bbox.Y0), f(bbox.Width()), f(bbox.Height())); err != nil {
		return err
	}
	for _, sh := range s.shapes {
		fill, ok := s.Colors[sh.layer]
		if !ok {
			fill = DefaultFill
		}
		if _, err := fmt.Fprintf(w, `<path data-layer="%s" fill="%s" fill-rule="nonzero" d="`, sh.layer, fill); err != nil {
			return err
		}
		if err := WriteSVG(w, sh.outline.PathElements(), s.Options); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\" />\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
