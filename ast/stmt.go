package ast

import (
	"locus/common"
	"locus/report"
)

// Stmt is a statement appearing inside a block.
type Stmt interface {
	ASTNode

	// Accept dispatches the statement to the matching visitor method.
	Accept(v Visitor)
}

// Block represents a list of AST statements.  Every block opens a new scope.
type Block struct {
	ASTBase

	Stmts []Stmt
}

func (b *Block) Accept(v Visitor) {
	v.VisitBlock(b)
}

// VarDecl represents a local variable declaration.
type VarDecl struct {
	ASTBase

	Modes    common.Modes
	Name     string
	NameSpan *report.TextSpan
	Type     *TypeLabel

	// The (optional) initializer.
	Init ASTExpr
}

func (vd *VarDecl) Accept(v Visitor) {
	v.VisitVarDecl(vd)
}

// IfStmt represents an if/else if/else chain.
type IfStmt struct {
	ASTBase

	Cond ASTExpr
	Then *Block

	// The (optional) else branch: either a *Block or an *IfStmt.
	Else Stmt
}

func (is *IfStmt) Accept(v Visitor) {
	v.VisitIfStmt(is)
}

// WhileLoop represents a while loop.
type WhileLoop struct {
	ASTBase

	Cond ASTExpr
	Body *Block
}

func (wl *WhileLoop) Accept(v Visitor) {
	v.VisitWhileLoop(wl)
}

// MatchStmt is a match used in statement position.  Its arms may have block
// bodies and its result is discarded.
type MatchStmt struct {
	ASTBase

	Match *Match
}

func (ms *MatchStmt) Accept(v Visitor) {
	v.VisitMatchStmt(ms)
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	ASTBase

	// The (optional) returned value.
	Value ASTExpr
}

func (rs *ReturnStmt) Accept(v Visitor) {
	v.VisitReturnStmt(rs)
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	ASTBase

	Expr ASTExpr
}

func (es *ExprStmt) Accept(v Visitor) {
	v.VisitExprStmt(es)
}
