// Package ast defines the shapes of the Locus syntax tree.  Trees are built once
// by the parser and are never mutated by the passes that walk them.
package ast

import "locus/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Program is the root of a parsed source file.
type Program struct {
	// The definitions of the program in source order.
	Defs []Def
}

// Funcs returns the function definitions of the program in source order.
func (p *Program) Funcs() []*FuncDef {
	var funcs []*FuncDef
	for _, def := range p.Defs {
		if fd, ok := def.(*FuncDef); ok {
			funcs = append(funcs, fd)
		}
	}

	return funcs
}

// Visitor is implemented once per compiler pass.  Definitions and statements
// dispatch to it through their Accept methods.  Expressions and patterns are
// closed sets and are handled by type switches inside the passes.
type Visitor interface {
	VisitEnumDef(*EnumDef)
	VisitFuncDef(*FuncDef)

	VisitBlock(*Block)
	VisitVarDecl(*VarDecl)
	VisitIfStmt(*IfStmt)
	VisitWhileLoop(*WhileLoop)
	VisitMatchStmt(*MatchStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitExprStmt(*ExprStmt)
}

// Walk dispatches every definition of the program to the visitor in order.
func Walk(v Visitor, prog *Program) {
	for _, def := range prog.Defs {
		def.Accept(v)
	}
}
