package pcell

import (
	"fmt"
	"strconv"

	"honnef.co/go/eulerbend"
)

const (
	DefaultLibraryName = "EBend"
	EulerBendName      = "Euler Bend"
)

// NewDefaultLibrary returns a library named [DefaultLibraryName] that
// declares [EulerBend] as [EulerBendName].
func NewDefaultLibrary() *Library {
	lib := NewLibrary(DefaultLibraryName, "Euler bend waveguides")
	lib.Declare(EulerBendName, EulerBend{})
	return lib
}

// EulerBend declares an Euler bend waveguide. Lengths are in user units.
// Parameter n is the total number of centerline samples, so the half-curve
// resolution is n/2.
type EulerBend struct{}

var _ Declaration = EulerBend{}

func (EulerBend) Params() []ParamDecl {
	return []ParamDecl{
		{Name: "l", Type: TypeLayer, Description: "Layer", Default: eulerbend.Layer{Layer: 1}},
		{Name: "s", Type: TypeShape, Description: "Origin", Default: eulerbend.Pt(0, 0)},
		{Name: "rmin", Type: TypeDouble, Description: "Minimum radius", Default: 1.0},
		{Name: "w", Type: TypeDouble, Description: "Width", Default: 1.0},
		{Name: "theta", Type: TypeDouble, Description: "Total bending angle", Default: 3.14},
		{Name: "n", Type: TypeInt, Description: "Number of points", Default: 50},
	}
}

func (EulerBend) DisplayText(v Values) string {
	return "Euler Bend(W=" + strconv.FormatFloat(v.Float("w"), 'g', -1, 64) +
		",Rmin=" + strconv.FormatFloat(v.Float("rmin"), 'f', 3, 64) + ")"
}

func (EulerBend) Produce(layout *Layout, cell *Cell, v Values) error {
	p := eulerbend.Params{
		RMin:   layout.ToDBU(v.Float("rmin")),
		Theta:  v.Float("theta"),
		Width:  layout.ToDBU(v.Float("w")),
		Points: v.Int("n") / 2,
	}
	b, err := eulerbend.NewBend(p)
	if err != nil {
		return err
	}
	origin := v.Point("s")
	outline := b.Outline.Transform(eulerbend.Translate(eulerbend.Vec(layout.ToDBU(origin.X), layout.ToDBU(origin.Y))))
	if err := cell.InsertPolygon(v.Layer("l"), outline); err != nil {
		return fmt.Errorf("inserting outline: %w", err)
	}
	return nil
}
