package pcell

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"honnef.co/go/eulerbend"
)

// Declaration describes a parametric cell.
type Declaration interface {
	// Params returns the declared parameters, in the order hosts should
	// present them.
	Params() []ParamDecl
	// DisplayText returns the label for a cell with resolved values v.
	DisplayText(v Values) string
	// Produce fills cell with the geometry for resolved values v.
	Produce(layout *Layout, cell *Cell, v Values) error
}

var ErrUnknownDeclaration = errors.New("unknown cell declaration")

// Library is a named collection of cell declarations.
type Library struct {
	Name        string
	Description string

	names []string
	decls map[string]Declaration
}

func NewLibrary(name, description string) *Library {
	return &Library{Name: name, Description: description, decls: map[string]Declaration{}}
}

// Declare adds d under name, replacing any declaration of the same name.
func (lib *Library) Declare(name string, d Declaration) {
	if _, ok := lib.decls[name]; !ok {
		lib.names = append(lib.names, name)
	}
	lib.decls[name] = d
}

// Declaration returns the declaration registered under name.
func (lib *Library) Declaration(name string) (Declaration, bool) {
	d, ok := lib.decls[name]
	return d, ok
}

// Names returns the declaration names in declaration order.
func (lib *Library) Names() []string { return slices.Clone(lib.names) }

// CreateCell creates a cell in layout from the declaration named declName.
// Values missing from v take their declared defaults. The cell is named after
// the declaration. If producing the geometry fails, the cell is removed again.
func (lib *Library) CreateCell(layout *Layout, declName string, v Values) (*Cell, error) {
	d, ok := lib.decls[declName]
	if !ok {
		return nil, fmt.Errorf("%w %q in library %q", ErrUnknownDeclaration, declName, lib.Name)
	}
	resolved, err := Resolve(d.Params(), v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", declName, err)
	}
	cell := layout.CreateCell(declName)
	cell.DisplayText = d.DisplayText(resolved)
	if err := d.Produce(layout, cell, resolved); err != nil {
		layout.deleteCell(cell)
		return nil, fmt.Errorf("%s: %w", declName, err)
	}
	eulerbend.Logger().Info("pcell: produced cell",
		"library", lib.Name, "cell", cell.Name, "display", cell.DisplayText)
	return cell, nil
}

// Registry holds libraries by name. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	libs map[string]*Library
}

func NewRegistry() *Registry {
	return &Registry{libs: map[string]*Library{}}
}

// Register makes lib available under lib.Name. A library already registered
// under that name is replaced, and Register reports whether that happened.
func (r *Registry) Register(lib *Library) (replaced bool) {
	r.mu.Lock()
	_, replaced = r.libs[lib.Name]
	r.libs[lib.Name] = lib
	r.mu.Unlock()
	if replaced {
		eulerbend.Logger().Warn("pcell: replaced library", "library", lib.Name)
	}
	return replaced
}

// Unregister removes the library registered under name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.libs, name)
	r.mu.Unlock()
}

// Lookup returns the library registered under name.
func (r *Registry) Lookup(name string) (*Library, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lib, ok := r.libs[name]
	return lib, ok
}

// Names returns the names of all registered libraries, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.libs))
	for name := range r.libs {
		out = append(out, name)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}
