// Package types defines the closed set of value types known to the Locus code
// generator and the mapping from source type names onto them.
package types

// Type is the tag of a Locus value type.
type Type int

// Enumeration of types.  Unknown is the type of anything the mapper could not
// resolve; it is lowered as Int32.
const (
	Unknown Type = iota
	Int32
	Int64
	Float32
	Float64
	Bool
	Void
)

// primitives maps the primitive type names to their types.
var primitives = map[string]Type{
	"i32":  Int32,
	"i64":  Int64,
	"f32":  Float32,
	"f64":  Float64,
	"bool": Bool,
	"void": Void,
}

// MapType maps a source type name onto a type.  It is total: any name which is
// not primitive maps to Int32.
func MapType(name string) Type {
	if typ, ok := primitives[name]; ok {
		return typ
	}

	return Int32
}

// Lookup returns the primitive type named by name, if any.
func Lookup(name string) (Type, bool) {
	typ, ok := primitives[name]
	return typ, ok
}

// Lowered returns the type used to represent t in generated code.
func (t Type) Lowered() Type {
	if t == Unknown {
		return Int32
	}

	return t
}

// IsInteger returns whether t is lowered to an integer of any width.
func (t Type) IsInteger() bool {
	switch t.Lowered() {
	case Int32, Int64, Bool:
		return true
	}

	return false
}

// IsFloating returns whether t is a floating point type.
func (t Type) IsFloating() bool {
	return t == Float32 || t == Float64
}

// Size returns the size of t in bits.
func (t Type) Size() int {
	switch t.Lowered() {
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	case Bool:
		return 1
	}

	return 0
}

// Wider returns the wider of the two numeric types: floating types win over
// integer types and larger sizes win over smaller ones.
func Wider(a, b Type) Type {
	a, b = a.Lowered(), b.Lowered()

	if a.IsFloating() != b.IsFloating() {
		if a.IsFloating() {
			return a
		}

		return b
	}

	if b.Size() > a.Size() {
		return b
	}

	return a
}

// String returns the LLVM spelling of the type.
func (t Type) String() string {
	switch t.Lowered() {
	case Int64:
		return "i64"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case Bool:
		return "i1"
	case Void:
		return "void"
	default:
		return "i32"
	}
}

// Repr returns the source spelling of the type.
func (t Type) Repr() string {
	switch t {
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Bool:
		return "bool"
	case Void:
		return "void"
	}

	return "<unknown>"
}
