package walk

import (
	"strings"
	"testing"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/syntax"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := syntax.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	return prog
}

func analyze(t *testing.T, src string) *Result {
	t.Helper()
	return Analyze(mustParse(t, src), DefaultOptions())
}

func kinds(res *Result) []report.DiagKind {
	var ks []report.DiagKind
	for _, diag := range res.Diagnostics {
		ks = append(ks, diag.Kind)
	}

	return ks
}

func TestCleanProgram(t *testing.T) {
	res := analyze(t, `
fn add(a: i32, b: i32) -> i32 {
	return a + b;
}

fn main() {
	let x: i32 = 2;
	let y: i32;
	y = x + 3;
	if y > 4 {
		print(add(x, y));
	}
}
`)

	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}

	if _, ok := res.Funcs["add"]; !ok {
		t.Fatalf("add not declared")
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want report.DiagKind
	}{
		{"unresolved name", "fn f() -> i32 { return z; }", report.UnresolvedName},
		{"unresolved function", "fn f() { g(); }", report.UnresolvedName},
		{"not a function", "fn f(a: i32) { a(); }", report.UnresolvedName},
		{"unresolved type", "fn f() { let x: Shape; }", report.UnresolvedType},
		{"generic type", "fn f(xs: List<i32>) {}", report.UnresolvedType},
		{"void variable", "fn f() { let x: void; }", report.UnresolvedType},
		{"unknown variant", "fn f() -> i32 { return Color.Purple; }", report.UnresolvedName},
		{"unknown enum", "fn f() -> i32 { return Hue.Red; }", report.UnresolvedName},
		{"assign to parameter", "fn f(a: i32) { a = 1; }", report.InvalidAssignmentTarget},
		{"assign to literal", "fn f() { 1 = 2; }", report.InvalidAssignmentTarget},
		{"assign to function", "fn g() {} fn f() { g = 1; }", report.InvalidAssignmentTarget},
		{"assign to binding", "fn f(a: i32) { match a { x => x = 2 } }", report.InvalidAssignmentTarget},
		{"call arity", "fn g(a: i32) {} fn f() { g(1, 2); }", report.InvalidCallArity},
		{"print arity", "fn f() { print(); }", report.InvalidCallArity},
		{"duplicate function", "fn f() {} fn f() {}", report.DuplicateDefinition},
		{"duplicate parameter", "fn f(a: i32, a: i32) {}", report.DuplicateDefinition},
		{"duplicate enum", "enum A { X } enum A { Y }", report.DuplicateDefinition},
		{"duplicate variant", "enum A { X, X }", report.DuplicateDefinition},
		{"runtime name", "fn printf() {}", report.DuplicateDefinition},
		{"missing return value", "fn f() -> i32 { return; }", report.InvalidReturn},
		{"unexpected return value", "fn f() { return 1; }", report.InvalidReturn},
		{"pattern arity", "fn f(c: Color) { match c { Color.Red(x) => 1, _ => 2 } }", report.InvalidPatternArity},
		{"non exhaustive", "fn f(c: Color) { match c { Color.Red => 1 } }", report.NonExhaustiveMatch},
		{"overflowing initializer", "fn f() { let y: i32 = 3000000000; }", report.InvalidLiteral},
		{"overflowing argument", "fn g(a: i32) {} fn f() { g(2147483648); }", report.InvalidLiteral},
		{"overflowing return", "fn f() -> i32 { return 4294967296; }", report.InvalidLiteral},
		{"float pattern on integer", "fn f(x: i32) -> i32 { return match x { 1.5 => 1, _ => 0 }; }", report.InvalidLiteral},
		{"integer pattern on bool", "fn f(b: bool) -> i32 { return match b { 2 => 1, _ => 0 }; }", report.InvalidLiteral},
		{"bool pattern on integer", "fn f(x: i64) -> i32 { return match x { true => 1, _ => 0 }; }", report.InvalidLiteral},
		{"bool pattern on float", "fn f(x: f64) -> i32 { return match x { false => 1, _ => 0 }; }", report.InvalidLiteral},
		{"overflowing pattern", "fn f(x: i32) -> i32 { return match x { 3000000000 => 1, _ => 0 }; }", report.InvalidLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := analyze(t, tt.src)

			if !res.HasErrors() {
				t.Fatalf("expected an error, got %v", res.Diagnostics)
			}

			for _, diag := range res.Errors() {
				if diag.Kind == tt.want {
					if diag.Span == nil {
						t.Fatalf("diagnostic has no span")
					}

					return
				}
			}

			t.Fatalf("expected %s, got %v", tt.want, kinds(res))
		})
	}
}

func TestUnresolvedNameAbortsOnlyItsFunction(t *testing.T) {
	res := analyze(t, `
fn f() -> i32 {
	return missing + other;
}

fn g() {
	let x: Nope;
}
`)

	want := []report.DiagKind{report.UnresolvedName, report.UnresolvedType}
	got := kinds(res)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExhaustiveMatches(t *testing.T) {
	tests := []string{
		"fn f(c: Color) -> i32 { return match c { Color.Red => 0, Color.Green => 1, Color.Blue => 2 }; }",
		"fn f(c: Color) -> i32 { return match c { Color.Red => 0, _ => 1 }; }",
		"fn f(n: i32) -> i32 { return match n { 0 => 1, other => other }; }",
		"fn f(b: bool) -> i32 { return match b { true => 1, false => 0 }; }",
		"fn f(x: f64) -> i32 { return match x { 1 => 1, 2.5 => 2, _ => 0 }; }",
		"fn f(x: i64) -> i32 { return match x { 3000000000 => 1, _ => 0 }; }",
		"fn f() { let y: i64 = 3000000000; let z: i32 = 2147483647; }",
		"enum Dir { Up, Down } fn f(d: Dir) { match d { Dir.Up => print(1), Dir::Down => { print(2); } } }",
	}

	for _, src := range tests {
		res := analyze(t, src)
		if len(res.Diagnostics) != 0 {
			t.Errorf("%s: unexpected diagnostics %v", src, res.Diagnostics)
		}
	}
}

func TestNonExhaustiveMessages(t *testing.T) {
	res := analyze(t, "fn f(c: Color) -> i32 { return match c { Color.Green => 1 }; }")

	errs := res.Errors()
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "Color.Red, Color.Blue") {
		t.Fatalf("unexpected diagnostics %v", res.Diagnostics)
	}

	res = analyze(t, "fn f(n: i32) -> i32 { return match n { 1 => 1, 2 => 4 }; }")
	if errs := res.Errors(); len(errs) != 1 || errs[0].Kind != report.NonExhaustiveMatch {
		t.Fatalf("literal match without fallback should be non-exhaustive: %v", res.Diagnostics)
	}

	// Variant patterns say nothing about the values of a plain integer.
	res = analyze(t, "fn f(n: i32) -> i32 { return match n { Color.Red => 1, Color.Green => 2, Color.Blue => 3 }; }")
	if errs := res.Errors(); len(errs) != 1 || errs[0].Kind != report.NonExhaustiveMatch || !strings.Contains(errs[0].Message, "`_`") {
		t.Fatalf("variant match on an i32 should be non-exhaustive: %v", res.Diagnostics)
	}

	res = analyze(t, "fn f(c: Color) -> i32 { return match c { Status.Success => 0, Status.Warning => 1, Status.Error => 2 }; }")
	if errs := res.Errors(); len(errs) != 1 || !strings.Contains(errs[0].Message, "Color.Red, Color.Green, Color.Blue") {
		t.Fatalf("variants of another enum should not cover the scrutinee: %v", res.Diagnostics)
	}

	res = analyze(t, "fn f(b: bool) { match b { true => print(1) } }")
	if errs := res.Errors(); len(errs) != 1 || !strings.Contains(errs[0].Message, "`true` or `false`") {
		t.Fatalf("unexpected diagnostics %v", res.Diagnostics)
	}
}

func TestLenientMatch(t *testing.T) {
	prog := mustParse(t, "fn f(c: Color) { match c { Color.Red => print(1) } }")
	res := Analyze(prog, Options{StrictMatch: false})

	if res.HasErrors() {
		t.Fatalf("lenient mode should not report errors: %v", res.Diagnostics)
	}

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != report.NonExhaustiveMatch {
		t.Fatalf("expected a non-exhaustive warning, got %v", res.Diagnostics)
	}
}

func TestUserEnumOverridesPrelude(t *testing.T) {
	res := analyze(t, `
enum Color { Cyan, Magenta }

fn f(c: Color) -> i32 {
	return match c { Color.Cyan => 0, Color.Magenta => 1 };
}
`)

	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", res.Diagnostics)
	}

	if n, ok := res.Enums.Discriminant("Color", "Magenta"); !ok || n != 1 {
		t.Fatalf("Color.Magenta = %d, %v", n, ok)
	}
}

func TestShadowingWarnings(t *testing.T) {
	res := analyze(t, `
fn f(a: i32) {
	let a: i32 = 1;
	let b: i32 = 2;
	let b: i32 = a;
	{
		let b: i32 = 3;
	}
}
`)

	if res.HasErrors() {
		t.Fatalf("shadowing should not be an error: %v", res.Diagnostics)
	}

	if len(res.Diagnostics) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Diagnostics)
	}

	for _, diag := range res.Diagnostics {
		if diag.Kind != report.DuplicateDefinition {
			t.Fatalf("unexpected warning %v", diag)
		}
	}
}

func TestBlockScopes(t *testing.T) {
	res := analyze(t, `
fn f() -> i32 {
	{
		let inner: i32 = 1;
	}
	return inner;
}
`)

	if got := kinds(res); len(got) != 1 || got[0] != report.UnresolvedName {
		t.Fatalf("block declarations should not escape: %v", res.Diagnostics)
	}
}

func TestForwardCalls(t *testing.T) {
	res := analyze(t, `
fn f() -> i32 { return g(2); }
fn g(x: i32) -> i32 { return x; }
`)

	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", res.Diagnostics)
	}
}

func TestSymbolsAndTrace(t *testing.T) {
	res := analyze(t, `
fn f(local unique a: i32) {
	let global shared b: f64 = 1;
	match a { n => print(n) }
}
`)

	var names []string
	for _, sym := range res.Symbols {
		names = append(names, sym.Name)
	}

	if strings.Join(names, ",") != "f,a,b,n" {
		t.Fatalf("unexpected symbols %v", names)
	}

	for _, sym := range res.Symbols {
		switch sym.Name {
		case "a":
			if sym.Storage != common.StorageRegister || sym.Depth != 1 {
				t.Fatalf("parameter a: storage %s depth %d", sym.Storage, sym.Depth)
			}
		case "b":
			if sym.Storage != common.StorageSlot || sym.Depth != 2 {
				t.Fatalf("variable b: storage %s depth %d", sym.Storage, sym.Depth)
			}
		case "n":
			if sym.Storage != common.StorageRegister {
				t.Fatalf("binding n should be a register")
			}
		}
	}

	want := []string{
		"Entering function: f",
		"Parameter: local unique i32 a",
		"Variable declaration: global shared f64 b",
		"Exiting function: f",
	}

	if strings.Join(res.Info, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected trace:\n%s", strings.Join(res.Info, "\n"))
	}
}
