package syntax

import (
	"errors"
	"strings"
	"testing"

	"locus/ast"
	"locus/common"
	"locus/report"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	return prog
}

func TestLexerTokens(t *testing.T) {
	src := "fn f(x: i32) -> f64 { x == 1.5e-3 != y <= z => a::b; } // trailing"
	l := NewLexer(bufioReader(src))

	want := []int{
		TOK_FN, TOK_IDENT, TOK_LPAREN, TOK_IDENT, TOK_COLON, TOK_IDENT, TOK_RPAREN,
		TOK_ARROW, TOK_IDENT, TOK_LBRACE, TOK_IDENT, TOK_EQ, TOK_FLOATLIT, TOK_NEQ,
		TOK_IDENT, TOK_LTEQ, TOK_IDENT, TOK_FATARROW, TOK_IDENT, TOK_DCOLON, TOK_IDENT,
		TOK_SEMI, TOK_RBRACE, TOK_EOF,
	}

	for i, kind := range want {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}

		if tok.Kind != kind {
			t.Fatalf("token %d: got kind %d (%q), want %d", i, tok.Kind, tok.Value, kind)
		}
	}
}

func TestLexerSpans(t *testing.T) {
	l := NewLexer(bufioReader("let\n  count"))

	l.NextToken()
	tok, _ := l.NextToken()

	if tok.Value != "count" || tok.Span.StartLine != 1 || tok.Span.StartCol != 2 || tok.Span.EndCol != 7 {
		t.Fatalf("unexpected token %q at %+v", tok.Value, tok.Span)
	}
}

func TestLexerSlashes(t *testing.T) {
	l := NewLexer(bufioReader("a / b // c / d\n/e"))

	var got []string
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lex failed: %v", err)
		}

		if tok.Kind == TOK_EOF {
			break
		}

		got = append(got, tok.Value)
	}

	if want := "a / b / e"; strings.Join(got, " ") != want {
		t.Fatalf("got %q, want %q", strings.Join(got, " "), want)
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		src   string
		kind  int
		value string
	}{
		{"42", TOK_INTLIT, "42"},
		{"3_000_000", TOK_INTLIT, "3000000"},
		{"1.25", TOK_FLOATLIT, "1.25"},
		{"2e10", TOK_FLOATLIT, "2e10"},
		{"1.5E-3", TOK_FLOATLIT, "1.5E-3"},
		{"6e+2", TOK_FLOATLIT, "6e+2"},
	}

	for _, tt := range tests {
		tok, err := NewLexer(bufioReader(tt.src)).NextToken()
		if err != nil {
			t.Errorf("%q: %v", tt.src, err)
			continue
		}

		if tok.Kind != tt.kind || tok.Value != tt.value {
			t.Errorf("%q: got kind %d value %q", tt.src, tok.Kind, tok.Value)
		}
	}

	for _, src := range []string{"1.", "1.x", "3e", "3e-"} {
		if _, err := NewLexer(bufioReader(src)).NextToken(); err == nil {
			t.Errorf("%q: expected an incomplete literal error", src)
		}
	}
}

func TestParseFunction(t *testing.T) {
	prog := mustParse(t, `
fn add(a: i32, local unique b: i32) -> i32 {
	return a + b;
}

fn main() {
	let x: i32 = 2;
	print(add(x, 3));
}
`)

	funcs := prog.Funcs()
	if len(funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(funcs))
	}

	add := funcs[0]
	if add.Name != "add" || len(add.Params) != 2 || add.ReturnType.Name != "i32" {
		t.Fatalf("unexpected signature for add")
	}

	if add.Params[1].Modes != (common.Modes{Locality: common.LocalityLocal, Uniqueness: common.UniquenessUnique}) {
		t.Fatalf("unexpected modes: %v", add.Params[1].Modes)
	}

	ret, ok := add.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected return statement, got %T", add.Body.Stmts[0])
	}

	if bop, ok := ret.Value.(*ast.BinaryOp); !ok || bop.Op != ast.OpAdd {
		t.Fatalf("expected addition, got %T", ret.Value)
	}

	main := funcs[1]
	if main.ReturnType != nil {
		t.Fatalf("main should have no return type")
	}

	decl := main.Body.Stmts[0].(*ast.VarDecl)
	if decl.Name != "x" || decl.Type.Name != "i32" {
		t.Fatalf("unexpected declaration %s: %s", decl.Name, decl.Type)
	}

	call := main.Body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Call)
	if len(call.Args) != 1 {
		t.Fatalf("expected one argument to print")
	}

	if _, ok := call.Args[0].(*ast.Call); !ok {
		t.Fatalf("expected nested call, got %T", call.Args[0])
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a + b < c * d", "((a + b) < (c * d))"},
		{"a < b == c > d", "((a < b) == (c > d))"},
		{"x = y = 1 + 2", "(x = (y = (1 + 2)))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"-3 + -x", "(-3 + (0 - x))"},
		{"f(a, b) / Color.Red", "(f(a, b) / Color.Red)"},
	}

	for _, tt := range tests {
		prog := mustParse(t, "fn f() { "+tt.src+"; }")
		expr := prog.Funcs()[0].Body.Stmts[0].(*ast.ExprStmt).Expr

		if got := exprString(expr); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestParseControlFlow(t *testing.T) {
	prog := mustParse(t, `
fn f(n: i32) -> i32 {
	if n < 0 {
		return 0;
	} else if n == 0 {
		return 1;
	} else {
		while n > 10 {
			n = n - 1;
		}
	}

	{
		let inner: i64;
	}

	return n;
}
`)

	body := prog.Funcs()[0].Body
	ifStmt := body.Stmts[0].(*ast.IfStmt)

	elseIf, ok := ifStmt.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected else if, got %T", ifStmt.Else)
	}

	elseBlock, ok := elseIf.Else.(*ast.Block)
	if !ok {
		t.Fatalf("expected else block, got %T", elseIf.Else)
	}

	if _, ok := elseBlock.Stmts[0].(*ast.WhileLoop); !ok {
		t.Fatalf("expected while loop, got %T", elseBlock.Stmts[0])
	}

	nested, ok := body.Stmts[1].(*ast.Block)
	if !ok || nested.Stmts[0].(*ast.VarDecl).Init != nil {
		t.Fatalf("expected nested block with an uninitialized declaration")
	}
}

func TestParseEnumsAndMatch(t *testing.T) {
	prog := mustParse(t, `
enum Shape { Circle, Square, }

fn name(c: Color) -> i32 {
	match c {
		Color.Red => print(1),
		Color::Green => { print(2); }
		_ => print(3),
	}

	let v: i32 = match c { Color.Red => -1, x => 2 };
	return v;
}
`)

	enum := prog.Defs[0].(*ast.EnumDef)
	if enum.Name != "Shape" || len(enum.Variants) != 2 || enum.Variants[1] != "Square" {
		t.Fatalf("unexpected enum %s %v", enum.Name, enum.Variants)
	}

	fn := prog.Funcs()[0]
	match := fn.Body.Stmts[0].(*ast.MatchStmt).Match
	if len(match.Arms) != 3 {
		t.Fatalf("expected 3 arms, got %d", len(match.Arms))
	}

	if pat := match.Arms[1].Pattern.(*ast.EnumVariantPattern); pat.Enum != "Color" || pat.Variant != "Green" {
		t.Fatalf("unexpected pattern %s.%s", pat.Enum, pat.Variant)
	}

	if match.Arms[1].Body == nil || match.Arms[0].Value == nil {
		t.Fatalf("arm bodies not recorded")
	}

	if _, ok := match.Arms[2].Pattern.(*ast.WildcardPattern); !ok {
		t.Fatalf("expected wildcard, got %T", match.Arms[2].Pattern)
	}

	valueMatch := fn.Body.Stmts[1].(*ast.VarDecl).Init.(*ast.Match)
	if lit := valueMatch.Arms[0].Value.(*ast.IntLit); lit.Value != -1 {
		t.Fatalf("expected -1, got %d", lit.Value)
	}

	if pat, ok := valueMatch.Arms[1].Pattern.(*ast.IdentPattern); !ok || pat.Name != "x" {
		t.Fatalf("expected binding pattern")
	}
}

func TestParsePatterns(t *testing.T) {
	prog := mustParse(t, `
fn f(n: i32) {
	match n {
		-1 => 0,
		2.5 => 0,
		true => 0,
		Status.Error(code, _) => 0,
		Status.Warning() => 0,
	}
}
`)

	arms := prog.Funcs()[0].Body.Stmts[0].(*ast.MatchStmt).Match.Arms

	if lit := arms[0].Pattern.(*ast.LiteralPattern).Value.(*ast.IntLit); lit.Value != -1 {
		t.Fatalf("expected -1 pattern, got %d", lit.Value)
	}

	if lit := arms[1].Pattern.(*ast.LiteralPattern).Value.(*ast.FloatLit); lit.Value != 2.5 {
		t.Fatalf("expected 2.5 pattern, got %f", lit.Value)
	}

	if lit := arms[2].Pattern.(*ast.LiteralPattern).Value.(*ast.BoolLit); !lit.Value {
		t.Fatalf("expected true pattern")
	}

	withArgs := arms[3].Pattern.(*ast.EnumVariantPattern)
	if len(withArgs.Args) != 2 {
		t.Fatalf("expected 2 sub-patterns, got %d", len(withArgs.Args))
	}

	empty := arms[4].Pattern.(*ast.EnumVariantPattern)
	if empty.Args == nil || len(empty.Args) != 0 {
		t.Fatalf("expected empty, non-nil arguments")
	}
}

func TestParseGenericType(t *testing.T) {
	prog := mustParse(t, "fn f(xs: Map<i32, List<f64>>) {}")

	typ := prog.Funcs()[0].Params[0].Type
	if !typ.IsGeneric() || typ.String() != "Map<i32, List<f64>>" {
		t.Fatalf("unexpected type label %s", typ)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
	}{
		{"fn f() { let x i32; }", 0},
		{"fn f() {\n  return 1\n}", 2},
		{"fn f() { x = $; }", 0},
		{"fn f() {", 0},
		{"fn f() { let y: i32 = match y { _ => { 1; } }; }", 0},
		{"let x: i32;", 0},
	}

	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.src))
		if err == nil {
			t.Errorf("%q: expected a syntax error", tt.src)
			continue
		}

		var lce *report.LocalCompileError
		if !errors.As(err, &lce) {
			t.Errorf("%q: expected a compile error, got %T", tt.src, err)
			continue
		}

		if lce.Span == nil || lce.Span.StartLine != tt.line {
			t.Errorf("%q: error reported at %v, want line %d", tt.src, lce.Span, tt.line)
		}
	}
}
