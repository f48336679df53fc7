// Package raster renders bend outlines into images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/eulerbend"
)

// DefaultFill is the fill color for layers without an entry in Sink.Colors.
var DefaultFill = color.RGBA{0x46, 0x82, 0xb4, 0xff}

type shape struct {
	layer   eulerbend.Layer
	outline eulerbend.Polygon
}

// Sink collects polygons and fills them into an RGBA image. The image is
// sized to the bounding box of all polygons and oriented y-up.
type Sink struct {
	// Scale is the number of pixels per unit. Zero means 1.
	Scale float64
	// Margin is the number of pixels added around the shapes.
	Margin int

	Colors     map[eulerbend.Layer]color.Color
	Background color.Color

	shapes []shape
}

var _ eulerbend.Sink = (*Sink)(nil)

func (s *Sink) InsertPolygon(layer eulerbend.Layer, outline eulerbend.Polygon) error {
	if err := eulerbend.CheckPolygon(outline); err != nil {
		return err
	}
	s.shapes = append(s.shapes, shape{layer, outline})
	eulerbend.Logger().Debug("raster: inserted polygon", "layer", layer, "points", len(outline))
	return nil
}

func (s *Sink) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// Transform returns the mapping from shape coordinates to pixel coordinates.
func (s *Sink) Transform() eulerbend.Affine {
	bbox := s.boundingBox()
	sc := s.scale()
	m := float64(s.Margin)
	return eulerbend.FlipY.ThenScale(sc, sc).ThenTranslate(eulerbend.Vec(m-sc*bbox.X0, m+sc*bbox.Y1))
}

func (s *Sink) boundingBox() eulerbend.Rect {
	if len(s.shapes) == 0 {
		return eulerbend.Rect{}
	}
	bbox := s.shapes[0].outline.BoundingBox()
	for _, sh := range s.shapes[1:] {
		bbox = bbox.Union(sh.outline.BoundingBox())
	}
	return bbox
}

// Bounds returns the bounds of the image Render produces.
func (s *Sink) Bounds() image.Rectangle {
	bbox := s.boundingBox()
	sc := s.scale()
	w := int(math.Ceil(bbox.Width()*sc)) + 2*s.Margin
	h := int(math.Ceil(bbox.Height()*sc)) + 2*s.Margin
	return image.Rect(0, 0, max(w, 1), max(h, 1))
}

// Render draws all polygons in insertion order.
func (s *Sink) Render() *image.RGBA {
	bounds := s.Bounds()
	img := image.NewRGBA(bounds)
	if s.Background != nil {
		draw.Draw(img, bounds, image.NewUniform(s.Background), image.Point{}, draw.Src)
	}
	aff := s.Transform()
	for _, sh := range s.shapes {
		fill, ok := s.Colors[sh.layer]
		if !ok {
			fill = DefaultFill
		}
		z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
		z.DrawOp = draw.Over
		fillPath(z, eulerbend.TransformElements(sh.outline.PathElements(), aff))
		z.Draw(img, bounds, image.NewUniform(fill), image.Point{})
	}
	return img
}

func fillPath(z *vector.Rasterizer, elements iter.Seq[eulerbend.PathElement]) {
	for el := range elements {
		switch el.Kind {
		case eulerbend.MoveToKind:
			z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case eulerbend.LineToKind:
			z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		}
	}
	// Polygons are filled whether or not they repeat their first point.
	z.ClosePath()
}

// WritePNG renders the image and encodes it as PNG.
func (s *Sink) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Render())
}
