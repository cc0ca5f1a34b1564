package ast

import (
	"locus/common"
	"locus/report"
)

// Def represents a top level definition in user source code.
type Def interface {
	ASTNode

	// Accept dispatches the definition to the matching visitor method.
	Accept(v Visitor)
}

// EnumDef is an AST node for an enumeration.
type EnumDef struct {
	ASTBase

	Name     string
	Variants []string
}

func (ed *EnumDef) Accept(v Visitor) {
	v.VisitEnumDef(ed)
}

// FuncDef is an AST node for a function.
type FuncDef struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan
	Params   []*Param

	// The declared return type.  This is nil if the function returns nothing.
	ReturnType *TypeLabel

	Body *Block
}

func (fd *FuncDef) Accept(v Visitor) {
	v.VisitFuncDef(fd)
}

// Param represents a function parameter.
type Param struct {
	ASTBase

	Modes common.Modes
	Name  string
	Type  *TypeLabel
}

// TypeLabel is a type name as written in source: eg. `i32` or `List<T>`.
type TypeLabel struct {
	ASTBase

	Name string
	Args []*TypeLabel
}

// IsGeneric returns whether the label has type arguments.
func (tl *TypeLabel) IsGeneric() bool {
	return len(tl.Args) > 0
}

func (tl *TypeLabel) String() string {
	if !tl.IsGeneric() {
		return tl.Name
	}

	s := tl.Name + "<"
	for i, arg := range tl.Args {
		if i > 0 {
			s += ", "
		}

		s += arg.String()
	}

	return s + ">"
}
