package pcell

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/eulerbend"
)

type ParamType int

const (
	// TypeLayer parameters hold an [eulerbend.Layer].
	TypeLayer ParamType = iota + 1
	// TypeShape parameters hold an [eulerbend.Point] in user units, the
	// position of the guiding shape.
	TypeShape
	// TypeDouble parameters hold a float64.
	TypeDouble
	// TypeInt parameters hold an int.
	TypeInt
)

func (t ParamType) String() string {
	switch t {
	case TypeLayer:
		return "layer"
	case TypeShape:
		return "shape"
	case TypeDouble:
		return "double"
	case TypeInt:
		return "int"
	default:
		return fmt.Sprintf("ParamType(%d)", int(t))
	}
}

// ParamDecl declares a parameter of a cell.
type ParamDecl struct {
	Name        string
	Type        ParamType
	Description string
	Default     any
}

var ErrUnknownParam = errors.New("unknown parameter")

// Values maps parameter names to values. After [Resolve], every declared
// parameter is present with the Go type of its [ParamType], and the typed
// getters can be used.
type Values map[string]any

// Float returns the value of a TypeDouble parameter.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Int returns the value of a TypeInt parameter.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Layer returns the value of a TypeLayer parameter.
func (v Values) Layer(name string) eulerbend.Layer {
	l, _ := v[name].(eulerbend.Layer)
	return l
}

// Point returns the value of a TypeShape parameter.
func (v Values) Point(name string) eulerbend.Point {
	p, _ := v[name].(eulerbend.Point)
	return p
}

// Resolve returns the values for decls, taking v where present and the
// declared default elsewhere. Values are converted to the declared type where
// that is lossless: integers are accepted for doubles, integral doubles for
// ints, and strings like "1/0" for layers.
func Resolve(decls []ParamDecl, v Values) (Values, error) {
	known := make(map[string]bool, len(decls))
	out := make(Values, len(decls))
	for _, d := range decls {
		known[d.Name] = true
		raw, ok := v[d.Name]
		if !ok {
			raw = d.Default
		}
		val, err := convert(d.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", d.Name, err)
		}
		out[d.Name] = val
	}
	for name := range v {
		if !known[name] {
			return nil, fmt.Errorf("%w %q", ErrUnknownParam, name)
		}
	}
	return out, nil
}

func convert(typ ParamType, raw any) (any, error) {
	switch typ {
	case TypeDouble:
		switch x := raw.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		case int:
			return float64(x), nil
		case int64:
			return float64(x), nil
		}
	case TypeInt:
		switch x := raw.(type) {
		case int:
			return x, nil
		case int64:
			return int(x), nil
		case float64:
			if x == math.Trunc(x) && math.Abs(x) <= math.MaxInt32 {
				return int(x), nil
			}
		}
	case TypeLayer:
		switch x := raw.(type) {
		case eulerbend.Layer:
			return x, nil
		case string:
			return ParseLayer(x)
		}
	case TypeShape:
		if x, ok := raw.(eulerbend.Point); ok {
			return x, nil
		}
	default:
		return nil, fmt.Errorf("unsupported type %s", typ)
	}
	return nil, fmt.Errorf("can't use %v (%T) as %s", raw, raw, typ)
}

// ParseLayer parses layer specifications of the form "layer/datatype" or
// "layer", the latter implying datatype 0.
func ParseLayer(s string) (eulerbend.Layer, error) {
	ls, ds, hasDatatype := strings.Cut(strings.TrimSpace(s), "/")
	l, err := strconv.Atoi(ls)
	if err != nil || l < 0 {
		return eulerbend.Layer{}, fmt.Errorf("invalid layer %q", s)
	}
	var d int
	if hasDatatype {
		d, err = strconv.Atoi(ds)
		if err != nil || d < 0 {
			return eulerbend.Layer{}, fmt.Errorf("invalid datatype in layer %q", s)
		}
	}
	return eulerbend.Layer{Layer: l, Datatype: d}, nil
}
