package passindex

import (
	"fmt"
	"strings"
)

// Method names.
const (
	methodGrid   = "grid"
	methodPlace  = "place"
	methodCustom = "custom"
)

// MethodFunc is a custom method. It is called once, before any automatic
// derivation, with the caller's recording and a working copy of the
// options, and fills in whatever parameters it wants to supply. A custom
// method has no defaults of its own, so every parameter must be concrete
// once it returns.
type MethodFunc func(rec Recording, opts *Options) error

// Method selects the defaults used to derive "auto" parameters. The zero
// value is the library default, grid.
type Method struct {
	name string
	fn   MethodFunc
}

// Built-in methods.
var (
	// MethodGrid tunes defaults for grid cells.
	MethodGrid = Method{name: methodGrid}

	// MethodPlace derives the spatial band from the cell's own rate map.
	MethodPlace = Method{name: methodPlace}

	// MethodCustom has no defaults: every parameter must be supplied.
	MethodCustom = Method{name: methodCustom}
)

// CustomMethod returns a custom method backed by fn.
func CustomMethod(fn MethodFunc) Method {
	return Method{name: methodCustom, fn: fn}
}

// ParseMethod returns the built-in method with the given name.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case methodGrid:
		return MethodGrid, nil
	case methodPlace:
		return MethodPlace, nil
	case methodCustom:
		return MethodCustom, nil
	default:
		return Method{}, fmt.Errorf("%w: method must be one of grid, place, custom; got %q", ErrInvalidArgument, name)
	}
}

// Name returns the method name; the zero value reports "grid".
func (m Method) Name() string {
	if m.name == "" {
		return methodGrid
	}
	return m.name
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m.fn != nil {
		return methodCustom + "(func)"
	}
	return m.Name()
}

// HasDefaults reports whether the method derives auto parameters (grid or
// place).
func (m Method) HasDefaults() bool {
	n := m.Name()
	return n == methodGrid || n == methodPlace
}

// IsPlace reports whether this is the place method.
func (m Method) IsPlace() bool { return m.Name() == methodPlace }

func (m Method) supplied() bool { return m.name != "" }

func (m Method) validate() error {
	switch m.Name() {
	case methodGrid, methodPlace:
		if m.fn != nil {
			return fmt.Errorf("%w: method %s cannot carry a custom function", ErrInvalidArgument, m.name)
		}
		return nil
	case methodCustom:
		return nil
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, m.name)
	}
}

// withoutFunc drops the custom function, keeping the name.
func (m Method) withoutFunc() Method {
	return Method{name: m.name}
}
