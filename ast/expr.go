package ast

// ASTExpr is the interface implemented by all expression nodes.
type ASTExpr interface {
	ASTNode

	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	ASTBase

	Value int64
}

// FloatLit is a floating point literal.
type FloatLit struct {
	ASTBase

	Value float64
}

// BoolLit is a boolean literal.
type BoolLit struct {
	ASTBase

	Value bool
}

// Identifier is a reference to a named symbol.
type Identifier struct {
	ASTBase

	Name string
}

// EnumAccess is an access to an enum variant: eg. `Color.Red`.
type EnumAccess struct {
	ASTBase

	Enum    string
	Variant string
}

// BinaryOp is the application of a binary operator.
type BinaryOp struct {
	ASTBase

	Op       OpKind
	Lhs, Rhs ASTExpr
}

// Assignment stores the value of Rhs into Target.  Assignments are
// expressions: they evaluate to the stored value.
type Assignment struct {
	ASTBase

	Target ASTExpr
	Rhs    ASTExpr
}

// Call is a function call.
type Call struct {
	ASTBase

	Func ASTExpr
	Args []ASTExpr
}

// Paren is a parenthesized expression.
type Paren struct {
	ASTBase

	Inner ASTExpr
}

// Match is a pattern match over a scrutinee.
type Match struct {
	ASTBase

	Scrutinee ASTExpr
	Arms      []*MatchArm
}

// MatchArm is a single case of a match.  Exactly one of Body and Value is set.
type MatchArm struct {
	ASTBase

	Pattern Pattern

	// The block body of the arm (statement matches only).
	Body *Block

	// The value of the arm.
	Value ASTExpr
}

func (*IntLit) exprNode()     {}
func (*FloatLit) exprNode()   {}
func (*BoolLit) exprNode()    {}
func (*Identifier) exprNode() {}
func (*EnumAccess) exprNode() {}
func (*BinaryOp) exprNode()   {}
func (*Assignment) exprNode() {}
func (*Call) exprNode()       {}
func (*Paren) exprNode()      {}
func (*Match) exprNode()      {}

// -----------------------------------------------------------------------------

// OpKind is the kind of a binary operator.
type OpKind int

// Enumeration of binary operators.
const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "==",
	OpNe:  "!=",
	OpLt:  "<",
	OpGt:  ">",
	OpLe:  "<=",
	OpGe:  ">=",
}

func (op OpKind) String() string {
	return opSymbols[op]
}

// IsComparison returns whether the operator yields a boolean.
func (op OpKind) IsComparison() bool {
	return op >= OpEq
}
