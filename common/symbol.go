package common

import (
	"locus/report"
	"locus/types"

	"github.com/llir/llvm/ir/value"
)

// Symbol represents a semantic symbol: a named value or definition.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The scope depth at which the symbol was declared.
	Depth int

	// Where the symbol was defined.
	DefSpan *report.TextSpan

	// The type of the value stored in the symbol.  For functions, this is the
	// return type.
	Type types.Type

	// The type name as written in source.
	TypeName string

	// The enum the symbol's type names, if any.
	EnumName string

	// The symbol's kind: what kind of things does this symbol represent. This
	// must be one the enumerated definition kinds.
	DefKind int

	// How the symbol's value is stored.
	Storage StorageRef

	// The declared locality and uniqueness of the symbol.
	Modes Modes

	// The parameter types of a function symbol.
	ParamTypes []types.Type

	// The symbol's LLVM value.  This is set during code generation: for slot
	// symbols it is the memory cell, for register symbols it is the value.
	Value value.Value
}

// Enumeration of different symbol kinds.
const (
	DefKindValue = iota
	DefKindFunc
	DefKindEnum
)

// StorageRef describes how the value of a symbol is held.
type StorageRef int

const (
	// StorageSlot symbols live in a memory cell which must be loaded before
	// use and stored into on assignment.
	StorageSlot StorageRef = iota

	// StorageRegister symbols are bound directly to an IR value.
	StorageRegister
)

func (sr StorageRef) String() string {
	if sr == StorageRegister {
		return "register"
	}

	return "slot"
}

// Assignable returns whether the symbol can be the target of an assignment.
func (s *Symbol) Assignable() bool {
	return s.DefKind == DefKindValue && s.Storage == StorageSlot
}

// -----------------------------------------------------------------------------

// Locality is the locality qualifier of a declaration.
type Locality int

const (
	LocalityDefault Locality = iota
	LocalityLocal
	LocalityGlobal
)

// Uniqueness is the uniqueness qualifier of a declaration.
type Uniqueness int

const (
	UniquenessDefault Uniqueness = iota
	UniquenessUnique
	UniquenessShared
)

// Modes is the pair of qualifiers which can precede a declaration.  Modes
// are recorded for reporting only: they have no effect on generated code.
type Modes struct {
	Locality   Locality
	Uniqueness Uniqueness
}

func (m Modes) String() string {
	s := ""
	switch m.Locality {
	case LocalityLocal:
		s = "local"
	case LocalityGlobal:
		s = "global"
	}

	var u string
	switch m.Uniqueness {
	case UniquenessUnique:
		u = "unique"
	case UniquenessShared:
		u = "shared"
	}

	if s == "" {
		if u == "" {
			return "default"
		}

		return u
	} else if u == "" {
		return s
	}

	return s + " " + u
}
