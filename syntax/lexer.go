package syntax

import (
	"bufio"
	"io"
	"unicode"

	"locus/report"
)

// cursor is a position in the source text.  Lines and columns are zero-based
// and a tab advances the column by four.
type cursor struct {
	line, col int
}

// advance moves the cursor past r.
func (c *cursor) advance(r rune) {
	switch r {
	case '\n':
		c.line++
		c.col = 0
	case '\t':
		c.col += 4
	default:
		c.col++
	}
}

// eof is returned in place of a rune once the source is exhausted.
const eof rune = -1

// Lexer splits a Locus source file into tokens.
type Lexer struct {
	src *bufio.Reader

	// The runes of the token being scanned.
	text []rune

	// The start of the token being scanned and the current position.
	start, here cursor
}

// NewLexer creates a lexer reading from src.
func NewLexer(src *bufio.Reader) *Lexer {
	return &Lexer{src: src}
}

// NextToken scans the next token of the source.  Once the source is exhausted
// every call returns an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	if tok, err := l.skipTrivia(); tok != nil || err != nil {
		return tok, err
	}

	l.begin()

	c, err := l.lookahead()
	switch {
	case err != nil:
		return nil, err
	case c == eof:
		return l.emit(TOK_EOF), nil
	case isDecimalDigit(c):
		return l.scanNumber()
	case c == '_' || unicode.IsLetter(c):
		return l.scanWord()
	}

	return l.scanSymbol()
}

// skipTrivia skips whitespace and line comments.  A slash which does not
// begin a comment is the division operator and is returned as a token.
func (l *Lexer) skipTrivia() (*Token, error) {
	for {
		c, err := l.lookahead()
		if err != nil || c == eof {
			return nil, err
		}

		if unicode.IsSpace(c) {
			l.drop()
			continue
		}

		if c != '/' {
			return nil, nil
		}

		l.begin()
		l.take()

		if c, err = l.lookahead(); err != nil {
			return nil, err
		} else if c != '/' {
			return l.emit(TOK_DIV), nil
		}

		for c != '\n' && c != eof {
			if c, err = l.drop(); err != nil {
				return nil, err
			}
		}
	}
}

// -----------------------------------------------------------------------------

// symbols maps operator and punctuation spellings to their token kinds.  `/`
// is scanned separately since it can begin a comment.
var symbols = map[string]int{
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,
	"*":  TOK_STAR,
	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,
	"!":  TOK_NOT,
	"=":  TOK_ASSIGN,
	"->": TOK_ARROW,
	"=>": TOK_FATARROW,
	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"{":  TOK_LBRACE,
	"}":  TOK_RBRACE,
	",":  TOK_COMMA,
	".":  TOK_DOT,
	"::": TOK_DCOLON,
	";":  TOK_SEMI,
	":":  TOK_COLON,
}

// scanSymbol scans an operator or punctuation token.  Two-rune symbols take
// precedence over their one-rune prefixes.
func (l *Lexer) scanSymbol() (*Token, error) {
	first, err := l.take()
	if err != nil {
		return nil, err
	}

	kind, ok := symbols[string(first)]
	if !ok {
		return nil, report.Raise(l.span(), "unexpected character `%c`", first)
	}

	second, err := l.lookahead()
	if err != nil {
		return nil, err
	}

	if pairKind, ok := symbols[string([]rune{first, second})]; ok {
		l.take()
		kind = pairKind
	}

	return l.emit(kind), nil
}

// -----------------------------------------------------------------------------

// keywords maps reserved words to their token kinds.  Type names are ordinary
// identifiers.
var keywords = map[string]int{
	"fn":     TOK_FN,
	"enum":   TOK_ENUM,
	"let":    TOK_LET,
	"local":  TOK_LOCAL,
	"global": TOK_GLOBAL,
	"unique": TOK_UNIQUE,
	"shared": TOK_SHARED,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"while":  TOK_WHILE,
	"match":  TOK_MATCH,
	"return": TOK_RETURN,
	"true":   TOK_TRUE,
	"false":  TOK_FALSE,
}

// scanWord scans an identifier or a keyword.
func (l *Lexer) scanWord() (*Token, error) {
	for {
		c, err := l.lookahead()
		if err != nil {
			return nil, err
		}

		if c != '_' && !unicode.IsLetter(c) && !isDecimalDigit(c) {
			break
		}

		l.take()
	}

	if kind, ok := keywords[string(l.text)]; ok {
		return l.emit(kind), nil
	}

	return l.emit(TOK_IDENT), nil
}

// -----------------------------------------------------------------------------

// scanNumber scans a decimal integer or float literal.  A float has a
// fraction, an exponent or both: `1.5`, `2e10`, `1.5e-3`.  Underscores
// between digits are ignored.
func (l *Lexer) scanNumber() (*Token, error) {
	if _, err := l.scanDigits(); err != nil {
		return nil, err
	}

	kind := TOK_INTLIT

	c, err := l.lookahead()
	if err != nil {
		return nil, err
	}

	if c == '.' {
		l.take()
		kind = TOK_FLOATLIT

		if err := l.expectDigits(); err != nil {
			return nil, err
		}

		if c, err = l.lookahead(); err != nil {
			return nil, err
		}
	}

	if c == 'e' || c == 'E' {
		l.take()
		kind = TOK_FLOATLIT

		if c, err = l.lookahead(); err != nil {
			return nil, err
		} else if c == '-' || c == '+' {
			l.take()
		}

		if err := l.expectDigits(); err != nil {
			return nil, err
		}
	}

	return l.emit(kind), nil
}

// scanDigits scans a run of digits and underscores and returns the number of
// digits it contained.
func (l *Lexer) scanDigits() (int, error) {
	n := 0
	for {
		c, err := l.lookahead()
		if err != nil {
			return n, err
		}

		switch {
		case c == '_':
			l.drop()
		case isDecimalDigit(c):
			l.take()
			n++
		default:
			return n, nil
		}
	}
}

// expectDigits scans a run of digits which must not be empty.
func (l *Lexer) expectDigits() error {
	n, err := l.scanDigits()
	if err != nil {
		return err
	} else if n == 0 {
		return report.Raise(l.span(), "incomplete numeric literal")
	}

	return nil
}

// -----------------------------------------------------------------------------

// begin starts a new token at the current position.
func (l *Lexer) begin() {
	l.start = l.here
	l.text = l.text[:0]
}

// emit produces a token of the given kind spanning the runes scanned since the
// last call to begin.
func (l *Lexer) emit(kind int) *Token {
	return &Token{Kind: kind, Value: string(l.text), Span: l.span()}
}

func (l *Lexer) span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.start.line,
		StartCol:  l.start.col,
		EndLine:   l.here.line,
		EndCol:    l.here.col,
	}
}

// take consumes the next rune and appends it to the token text.
func (l *Lexer) take() (rune, error) {
	c, err := l.drop()
	if err == nil && c != eof {
		l.text = append(l.text, c)
	}

	return c, err
}

// drop consumes the next rune without adding it to the token text.
func (l *Lexer) drop() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return eof, nil
	} else if err != nil {
		return 0, err
	}

	l.here.advance(c)
	return c, nil
}

// lookahead returns the next rune without consuming it.
func (l *Lexer) lookahead() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return eof, nil
	} else if err != nil {
		return 0, err
	}

	return c, l.src.UnreadRune()
}

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
