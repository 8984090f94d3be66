package catalog

// FunctionType tags how a Function record entered the catalog.
type FunctionType string

const (
	// TypeMethod marks a function derived from a class method.
	TypeMethod FunctionType = "method"

	// TypeFunction marks a standalone utility function.
	TypeFunction FunctionType = "function"
)

// Parameter describes a single parameter of a utility function.
// Parameter detail is only available for standalone tools; derived
// method functions carry signature strings instead.
type Parameter struct {
	// Name is the parameter name as it appears in the signature.
	Name string `json:"name"`

	// Type is a free-form type label (e.g. "list[str]", "bool").
	Type string `json:"type"`

	// Required reports whether the parameter has no default.
	Required bool `json:"required"`

	// Default is the default value for optional parameters, if any.
	Default any `json:"default,omitempty"`

	// Description is a one-line explanation of the parameter.
	Description string `json:"description,omitempty"`
}

// Method describes one method of a catalogued class. A Method has no
// identity outside its owning Class.
type Method struct {
	// Name is the method name (may carry the "_" private marker or be
	// the "__init__" constructor; the derived view filters those out).
	Name string `json:"name"`

	// Signature is the full parameter list with defaults, as a string.
	Signature string `json:"signature"`

	// Docstring is the method documentation; may be empty.
	Docstring string `json:"docstring"`
}

// Class describes one catalogued class of the openreview-py library.
type Class struct {
	// Name is the class name, e.g. "OpenReviewClient".
	Name string `json:"name"`

	// Docstring is the class-level documentation.
	Docstring string `json:"docstring"`

	// Module is the dotted module path, e.g. "openreview.api".
	Module string `json:"module"`

	// Methods is the ordered method list. Omitted from JSON when the
	// caller asked for classes without methods.
	Methods []Method `json:"methods,omitempty"`
}

// Function describes a callable exposed to catalog consumers: either a
// standalone utility function or a class method projected into function
// form.
type Function struct {
	// Name is the function name.
	Name string `json:"name"`

	// Docstring is the function documentation; empty string if absent.
	Docstring string `json:"docstring"`

	// Module is the dotted module path. For derived functions this is
	// "<class module>.<class name>".
	Module string `json:"module"`

	// Signature is the full parameter list with defaults, as a string.
	Signature string `json:"signature"`

	// Type reports whether this record is a derived method or a
	// standalone utility function.
	Type FunctionType `json:"function_type"`

	// Parameters holds per-parameter documentation when available
	// (utility tools only); nil for derived functions.
	Parameters []Parameter `json:"parameters,omitempty"`
}
