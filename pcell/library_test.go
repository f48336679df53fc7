package pcell

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/eulerbend"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	eulerbend.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { eulerbend.SetLogger(nil) })
	return &buf
}

func TestCreateEulerBendCell(t *testing.T) {
	layout, err := NewLayout(0.001)
	require.NoError(t, err)
	lib := NewDefaultLibrary()

	cell, err := lib.CreateCell(layout, EulerBendName, Values{
		"l":     eulerbend.Layer{Layer: 2},
		"rmin":  10.0,
		"w":     0.5,
		"theta": math.Pi / 2,
		"n":     100,
	})
	require.NoError(t, err)
	assert.Equal(t, EulerBendName, cell.Name)
	assert.Equal(t, "Euler Bend(W=0.5,Rmin=10.000)", cell.DisplayText)

	shapes := cell.Shapes(eulerbend.Layer{Layer: 2})
	require.Len(t, shapes, 1)
	poly := shapes[0]
	// 4·50 vertices, the closing point is implicit
	assert.Len(t, poly, 200)
	assert.Equal(t, Point{0, 250}, poly[0])
	assert.Contains(t, poly, Point{0, -250})

	// the ribbon area is width times arc length
	area := math.Abs(poly.Float().SignedArea())
	want := 500 * 2 * (math.Pi / 2) * 10000
	assert.InEpsilon(t, want, area, 0.01)
}

func TestCreateEulerBendCellOrigin(t *testing.T) {
	layout, err := NewLayout(0.001)
	require.NoError(t, err)
	cell, err := NewDefaultLibrary().CreateCell(layout, EulerBendName, Values{
		"s": eulerbend.Pt(1, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Euler Bend(W=1,Rmin=1.000)", cell.DisplayText)
	poly := cell.Shapes(eulerbend.Layer{Layer: 1})[0]
	assert.Len(t, poly, 100)
	assert.Equal(t, Point{1000, 2500}, poly[0])
}

func TestCreateCellErrors(t *testing.T) {
	layout, err := NewLayout(0.001)
	require.NoError(t, err)
	lib := NewDefaultLibrary()

	_, err = lib.CreateCell(layout, "Straight", nil)
	assert.ErrorIs(t, err, ErrUnknownDeclaration)

	_, err = lib.CreateCell(layout, EulerBendName, Values{"w": 3.0})
	assert.ErrorIs(t, err, eulerbend.ErrInvalidWidth)
	var perr *eulerbend.ParamError
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, "width", perr.Param)
	}

	_, err = lib.CreateCell(layout, EulerBendName, Values{"n": 3})
	assert.ErrorIs(t, err, eulerbend.ErrInvalidResolution)

	_, err = lib.CreateCell(layout, EulerBendName, Values{"rmin": "big"})
	assert.Error(t, err)

	// failed cells don't linger
	assert.Empty(t, layout.Cells())
}

func TestLibraryDeclare(t *testing.T) {
	lib := NewLibrary("L", "test")
	lib.Declare("a", EulerBend{})
	lib.Declare("b", EulerBend{})
	lib.Declare("a", EulerBend{})
	assert.Equal(t, []string{"a", "b"}, lib.Names())
	_, ok := lib.Declaration("b")
	assert.True(t, ok)
	_, ok = lib.Declaration("c")
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	logs := captureLogs(t)
	reg := NewRegistry()
	first := NewDefaultLibrary()
	second := NewDefaultLibrary()

	assert.False(t, reg.Register(first))
	assert.NotContains(t, logs.String(), "replaced library")
	assert.True(t, reg.Register(second))
	assert.Contains(t, logs.String(), "replaced library")

	got, ok := reg.Lookup(DefaultLibraryName)
	require.True(t, ok)
	assert.Same(t, second, got)

	reg.Register(NewLibrary("Alpha", ""))
	assert.Equal(t, []string{"Alpha", DefaultLibraryName}, reg.Names())

	reg.Unregister("Alpha")
	_, ok = reg.Lookup("Alpha")
	assert.False(t, ok)
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewDefaultLibrary())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if j%10 == 0 {
					reg.Register(NewDefaultLibrary())
				}
				lib, ok := reg.Lookup(DefaultLibraryName)
				if !ok || lib == nil {
					t.Error("library vanished")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCreateCellLogs(t *testing.T) {
	logs := captureLogs(t)
	layout, err := NewLayout(0.001)
	require.NoError(t, err)
	_, err = NewDefaultLibrary().CreateCell(layout, EulerBendName, nil)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "produced cell")
	assert.Contains(t, logs.String(), "computed bend")
}
