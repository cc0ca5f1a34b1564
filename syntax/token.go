package syntax

import "locus/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_FN = iota
	TOK_ENUM

	TOK_LET
	TOK_LOCAL
	TOK_GLOBAL
	TOK_UNIQUE
	TOK_SHARED

	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_MATCH
	TOK_RETURN

	TOK_TRUE
	TOK_FALSE

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ
	TOK_NOT

	TOK_ASSIGN
	TOK_ARROW
	TOK_FATARROW

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA
	TOK_DOT
	TOK_DCOLON
	TOK_SEMI
	TOK_COLON

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT

	TOK_EOF
)
