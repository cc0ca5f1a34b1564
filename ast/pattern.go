package ast

// Pattern is the interface implemented by all match patterns.
type Pattern interface {
	ASTNode

	patternNode()
}

// WildcardPattern is `_`: it matches anything and binds nothing.
type WildcardPattern struct {
	ASTBase
}

// LiteralPattern matches a value equal to a literal.  The literal is always an
// *IntLit, *FloatLit or *BoolLit.
type LiteralPattern struct {
	ASTBase

	Value ASTExpr
}

// IdentPattern matches anything and binds the matched value to Name.
type IdentPattern struct {
	ASTBase

	Name string
}

// EnumVariantPattern matches one variant of an enum.
type EnumVariantPattern struct {
	ASTBase

	Enum    string
	Variant string

	// The sub-patterns written after the variant, if any.
	Args []Pattern
}

func (*WildcardPattern) patternNode()    {}
func (*LiteralPattern) patternNode()     {}
func (*IdentPattern) patternNode()       {}
func (*EnumVariantPattern) patternNode() {}

// IsIrrefutable returns whether the pattern matches every value.
func IsIrrefutable(pat Pattern) bool {
	switch pat.(type) {
	case *WildcardPattern, *IdentPattern:
		return true
	}

	return false
}
