// Package pcell is a small in-memory model of a layout host for parametric
// cells. It provides what the geometry engine in package eulerbend leaves to
// its caller: parameter declarations with defaults, conversion to the
// integer database grid, cells that hold polygons per layer, and libraries of
// cell declarations that are registered with a [Registry] under a name.
//
// The Euler bend is available as the [EulerBend] declaration. A typical host
// sets up a registry once and creates cells from it:
//
//	reg := pcell.NewRegistry()
//	reg.Register(pcell.NewDefaultLibrary())
//
//	layout, _ := pcell.NewLayout(0.001)
//	lib, _ := reg.Lookup(pcell.DefaultLibraryName)
//	cell, err := lib.CreateCell(layout, pcell.EulerBendName, pcell.Values{"rmin": 10.0, "w": 0.5})
package pcell
