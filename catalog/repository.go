package catalog

import "strings"

// DefaultPrimaryClass is the class whose methods are projected into the
// derived-functions view when no override is configured.
const DefaultPrimaryClass = "OpenReviewClient"

const (
	privateMarker   = "_"
	constructorName = "__init__"
)

// Snapshot is the complete literal dataset: every catalogued class, every
// standalone utility function, and the known module paths. A Snapshot is
// defined once at build time and never mutated.
type Snapshot struct {
	Classes []Class
	Tools   []Function
	Modules []string
}

// Options configures a Repository.
type Options struct {
	// PrimaryClass names the class whose public methods are projected
	// into the derived-functions view. Defaults to DefaultPrimaryClass.
	PrimaryClass string
}

// Repository is a read-only view over one immutable Snapshot. All accessors
// return fresh copies, so a Repository is safe for concurrent use.
type Repository struct {
	snapshot     Snapshot
	primaryClass string
}

// New creates a Repository over the given snapshot.
func New(snapshot Snapshot, opts Options) *Repository {
	primary := opts.PrimaryClass
	if primary == "" {
		primary = DefaultPrimaryClass
	}
	return &Repository{
		snapshot:     snapshot,
		primaryClass: primary,
	}
}

// NewDefault creates a Repository over the built-in openreview-py dataset
// with the default primary class.
func NewDefault() *Repository {
	return New(DefaultSnapshot(), Options{})
}

// PrimaryClass returns the configured primary class name.
func (r *Repository) PrimaryClass() string {
	return r.primaryClass
}

// Classes returns the ordered class catalog. The returned slice and its
// methods are independent copies.
func (r *Repository) Classes() []Class {
	return copyClasses(r.snapshot.Classes)
}

// Tools returns the standalone utility functions from openreview.tools.
func (r *Repository) Tools() []Function {
	return copyFunctions(r.snapshot.Tools)
}

// Modules returns the known module paths of the catalogued library.
func (r *Repository) Modules() []string {
	out := make([]string, len(r.snapshot.Modules))
	copy(out, r.snapshot.Modules)
	return out
}

// Functions returns the derived-functions view: every method of the primary
// class whose name is not private-marked and is not the constructor,
// projected into a Function record. Source order is preserved. If the
// primary class is absent from the snapshot, Functions returns an empty
// slice; that is a documented degraded mode, not an error.
func (r *Repository) Functions() []Function {
	var primary *Class
	for i := range r.snapshot.Classes {
		if r.snapshot.Classes[i].Name == r.primaryClass {
			primary = &r.snapshot.Classes[i]
			break
		}
	}
	if primary == nil {
		return []Function{}
	}

	module := primary.Module + "." + primary.Name
	functions := make([]Function, 0, len(primary.Methods))
	for _, method := range primary.Methods {
		if strings.HasPrefix(method.Name, privateMarker) {
			continue
		}
		if method.Name == constructorName {
			continue
		}
		functions = append(functions, Function{
			Name:      method.Name,
			Docstring: method.Docstring,
			Module:    module,
			Signature: method.Signature,
			Type:      TypeMethod,
		})
	}
	return functions
}

func copyClasses(classes []Class) []Class {
	out := make([]Class, len(classes))
	for i, class := range classes {
		out[i] = class
		out[i].Methods = make([]Method, len(class.Methods))
		copy(out[i].Methods, class.Methods)
	}
	return out
}

func copyFunctions(functions []Function) []Function {
	out := make([]Function, len(functions))
	for i, fn := range functions {
		out[i] = fn
		if fn.Parameters != nil {
			out[i].Parameters = make([]Parameter, len(fn.Parameters))
			copy(out[i].Parameters, fn.Parameters)
		}
	}
	return out
}
