// Package wkt exports bend outlines as Well-Known Text, validated as OGC
// simple features.
package wkt

import (
	"fmt"
	"io"
	"slices"

	"github.com/peterstace/simplefeatures/geom"

	"honnef.co/go/eulerbend"
)

// Polygon converts outline to a simple features polygon and validates it.
// The ring is closed if outline doesn't repeat its first point, and oriented
// counter-clockwise.
func Polygon(outline eulerbend.Polygon) (geom.Polygon, error) {
	if err := eulerbend.CheckPolygon(outline); err != nil {
		return geom.Polygon{}, err
	}
	coords := make([]float64, 0, 2*(len(outline)+1))
	for _, pt := range outline {
		coords = append(coords, pt.X, pt.Y)
	}
	if !outline.IsClosed() {
		coords = append(coords, outline[0].X, outline[0].Y)
	}
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	poly := geom.NewPolygon([]geom.LineString{ring})
	if err := poly.Validate(); err != nil {
		return geom.Polygon{}, fmt.Errorf("invalid outline: %w", err)
	}
	return poly.ForceCCW(), nil
}

// Sink collects validated polygons per layer.
type Sink struct {
	layers []eulerbend.Layer
	polys  map[eulerbend.Layer][]geom.Polygon
}

var _ eulerbend.Sink = (*Sink)(nil)

func (s *Sink) InsertPolygon(layer eulerbend.Layer, outline eulerbend.Polygon) error {
	poly, err := Polygon(outline)
	if err != nil {
		return err
	}
	if s.polys == nil {
		s.polys = map[eulerbend.Layer][]geom.Polygon{}
	}
	if _, ok := s.polys[layer]; !ok {
		s.layers = append(s.layers, layer)
	}
	s.polys[layer] = append(s.polys[layer], poly)
	eulerbend.Logger().Debug("wkt: inserted polygon", "layer", layer, "points", len(outline))
	return nil
}

// Layers returns the layers in the order they were first used.
func (s *Sink) Layers() []eulerbend.Layer { return slices.Clone(s.layers) }

// MultiPolygon returns all polygons on layer. Overlapping polygons are kept
// as separate members.
func (s *Sink) MultiPolygon(layer eulerbend.Layer) geom.MultiPolygon {
	return geom.NewMultiPolygon(s.polys[layer])
}

// WriteTo writes one line per layer: the layer, a tab and the layer's
// MULTIPOLYGON in WKT.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range s.layers {
		n, err := fmt.Fprintf(w, "%s\t%s\n", l, s.MultiPolygon(l).AsText())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
