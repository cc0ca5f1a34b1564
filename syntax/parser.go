package syntax

import (
	"bufio"
	"fmt"
	"io"

	"locus/ast"
	"locus/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a Locus source file.  It is a recursive descent
// parser: all parsing functions assume that they begin with the parser
// centered on the first token of their production and must consume all tokens
// (including the last) of their production, leaving the parser on the next
// token.  Errors are raised as panics carrying a *report.LocalCompileError and
// are recovered by Parse.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token the parser was positioned on before tok.
	lookbehind *Token
}

// NewParser creates a new parser reading from r.
func NewParser(r io.Reader) *Parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Parser{lexer: NewLexer(br)}
}

// Parse parses a whole source file.
func Parse(r io.Reader) (*ast.Program, error) {
	return NewParser(r).Parse()
}

// Parse runs the parser over its input.  Syntax errors are returned as
// *report.LocalCompileError values.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if x := recover(); x != nil {
			if perr, ok := x.(error); ok {
				prog, err = nil, perr
			} else {
				panic(x)
			}
		}
	}()

	p.next()
	return p.parseFile(), nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.lookbehind = p.tok
	p.tok = tok
}

// has returns whether the parser is on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// hasOneOf returns whether the parser is on a token of one of the given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of the given kind, moves past it
// and returns it.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	p.next()
	return p.lookbehind
}

// -----------------------------------------------------------------------------

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.has(TOK_EOF) {
		p.error(p.tok.Span, "unexpected end of file")
	}

	p.error(p.tok.Span, "unexpected token: `%s`", p.tok.Value)
}

// error raises a syntax error over the given span.
func (p *Parser) error(span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(span, "%s", fmt.Sprintf(msg, args...)))
}
