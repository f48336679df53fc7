package pcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/eulerbend"
)

func TestResolveDefaults(t *testing.T) {
	v, err := Resolve(EulerBend{}.Params(), nil)
	require.NoError(t, err)
	assert.Equal(t, eulerbend.Layer{Layer: 1, Datatype: 0}, v.Layer("l"))
	assert.Equal(t, eulerbend.Pt(0, 0), v.Point("s"))
	assert.Equal(t, 1.0, v.Float("rmin"))
	assert.Equal(t, 1.0, v.Float("w"))
	assert.Equal(t, 3.14, v.Float("theta"))
	assert.Equal(t, 50, v.Int("n"))
}

func TestResolveConversions(t *testing.T) {
	v, err := Resolve(EulerBend{}.Params(), Values{
		"l":    "2/5",
		"rmin": 10,
		"w":    float32(0.5),
		"n":    100.0,
	})
	require.NoError(t, err)
	assert.Equal(t, eulerbend.Layer{Layer: 2, Datatype: 5}, v.Layer("l"))
	assert.Equal(t, 10.0, v.Float("rmin"))
	assert.Equal(t, 0.5, v.Float("w"))
	assert.Equal(t, 100, v.Int("n"))
	// untouched parameters keep their defaults
	assert.Equal(t, 3.14, v.Float("theta"))
}

func TestResolveErrors(t *testing.T) {
	decls := EulerBend{}.Params()

	_, err := Resolve(decls, Values{"radius": 1.0})
	assert.ErrorIs(t, err, ErrUnknownParam)

	_, err = Resolve(decls, Values{"w": "wide"})
	assert.ErrorContains(t, err, `parameter "w"`)

	_, err = Resolve(decls, Values{"n": 50.5})
	assert.Error(t, err)

	_, err = Resolve(decls, Values{"s": 3.0})
	assert.Error(t, err)

	_, err = Resolve(decls, Values{"l": "metal"})
	assert.ErrorContains(t, err, "invalid layer")
}

func TestParseLayer(t *testing.T) {
	tests := []struct {
		in   string
		want eulerbend.Layer
		ok   bool
	}{
		{"1/0", eulerbend.Layer{Layer: 1}, true},
		{"7", eulerbend.Layer{Layer: 7}, true},
		{" 31/2 ", eulerbend.Layer{Layer: 31, Datatype: 2}, true},
		{"a/0", eulerbend.Layer{}, false},
		{"1/x", eulerbend.Layer{}, false},
		{"1/-1", eulerbend.Layer{}, false},
		{"-1", eulerbend.Layer{}, false},
		{"", eulerbend.Layer{}, false},
	}
	for _, tt := range tests {
		got, err := ParseLayer(tt.in)
		if !tt.ok {
			assert.Error(t, err, "ParseLayer(%q)", tt.in)
			continue
		}
		if assert.NoError(t, err, "ParseLayer(%q)", tt.in) {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestParamTypeString(t *testing.T) {
	assert.Equal(t, "layer", TypeLayer.String())
	assert.Equal(t, "shape", TypeShape.String())
	assert.Equal(t, "double", TypeDouble.String())
	assert.Equal(t, "int", TypeInt.String())
	assert.Equal(t, "ParamType(9)", ParamType(9).String())
}
