// Package walk performs semantic analysis of Locus programs: it resolves names
// and types against the scope table and collects diagnostics for the code
// generator.
package walk

import (
	"fmt"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
)

// Options configures the analyzer.
type Options struct {
	// StrictMatch makes non-exhaustive matches errors instead of warnings.
	StrictMatch bool
}

// DefaultOptions returns the options used when none are specified.
func DefaultOptions() Options {
	return Options{StrictMatch: true}
}

// Result is the outcome of analyzing a program.
type Result struct {
	// The diagnostics reported in source order.
	Diagnostics []*report.Diagnostic

	// The enums visible to the program.
	Enums *common.EnumTable

	// The function symbols by name, including builtins.
	Funcs map[string]*common.Symbol

	// Every symbol declared by the program in declaration order.
	Symbols []*common.Symbol

	// The result type of every match.  Matches in statement position have
	// the type Void.
	MatchTypes map[*ast.Match]types.Type

	// A trace of the declarations the analyzer processed.
	Info []string
}

// HasErrors returns whether any error diagnostics were reported.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error diagnostics.
func (r *Result) ErrorCount() int {
	n := 0
	for _, diag := range r.Diagnostics {
		if diag.IsError() {
			n++
		}
	}

	return n
}

// Errors returns the error diagnostics.
func (r *Result) Errors() []*report.Diagnostic {
	var errs []*report.Diagnostic
	for _, diag := range r.Diagnostics {
		if diag.IsError() {
			errs = append(errs, diag)
		}
	}

	return errs
}

// -----------------------------------------------------------------------------

// Walker is responsible for walking a program and performing semantic analysis
// on its definitions.  It implements ast.Visitor.
type Walker struct {
	opts Options
	res  *Result

	// The scopes used to lookup symbols.
	scopes *common.ScopeTable

	// The symbols of the successfully declared functions.
	funcDefs map[*ast.FuncDef]*common.Symbol

	// The return type of the enclosing function.
	enclosingReturnType types.Type
}

// Analyze semantically analyzes a program.
func Analyze(prog *ast.Program, opts Options) *Result {
	w := &Walker{
		opts: opts,
		res: &Result{
			Enums:      common.NewEnumTable(),
			Funcs:      make(map[string]*common.Symbol),
			MatchTypes: make(map[*ast.Match]types.Type),
		},
		scopes:   common.NewScopeTable(),
		funcDefs: make(map[*ast.FuncDef]*common.Symbol),
	}

	w.declareBuiltins()
	w.collectEnums(prog)
	w.declareFuncs(prog)

	ast.Walk(w, prog)

	return w.res
}

// -----------------------------------------------------------------------------

// lookup looks up a symbol by name in all visible scopes.  If no symbol by the
// given name can be found, then an error is raised which aborts the
// definition.
func (w *Walker) lookup(name string, span *report.TextSpan) *common.Symbol {
	if sym, ok := w.scopes.Resolve(name); ok {
		return sym
	}

	w.error(report.UnresolvedName, span, "undefined symbol: `%s`", name)
	return nil
}

// defineLocal defines a local symbol in the current scope.
func (w *Walker) defineLocal(sym *common.Symbol) {
	if prev, ok := w.scopes.DeclaredLocally(sym.Name); ok {
		if prev.Storage == common.StorageRegister && sym.Storage == common.StorageRegister {
			w.recError(report.DuplicateDefinition, sym.DefSpan, "multiple symbols named `%s` defined in the same scope", sym.Name)
		} else {
			w.warn(report.DuplicateDefinition, sym.DefSpan, "`%s` redeclared in the same scope", sym.Name)
		}
	} else if w.scopes.Depth() > 1 {
		if param, ok := w.scopes.ResolveAt(sym.Name, 1); ok && param.Storage == common.StorageRegister {
			w.warn(report.DuplicateDefinition, sym.DefSpan, "declaration of `%s` shadows a parameter", sym.Name)
		}
	}

	w.scopes.Declare(sym)
	w.res.Symbols = append(w.res.Symbols, sym)
}

// resolveType resolves a type label to a type and the name of the enum it
// denotes, if any.  Unresolvable labels produce a recoverable error and the
// Unknown type.
func (w *Walker) resolveType(label *ast.TypeLabel) (types.Type, string) {
	typ, enumName := w.labelType(label)

	if typ == types.Unknown {
		if label.IsGeneric() {
			w.recError(report.UnresolvedType, label.Span(), "generic type `%s` is not supported", label)
		} else {
			w.recError(report.UnresolvedType, label.Span(), "undefined type: `%s`", label.Name)
		}
	}

	return typ, enumName
}

// labelType resolves a type label without reporting anything.  A nil label
// denotes the void type.
func (w *Walker) labelType(label *ast.TypeLabel) (types.Type, string) {
	if label == nil {
		return types.Void, ""
	}

	if label.IsGeneric() {
		return types.Unknown, ""
	}

	if typ, ok := types.Lookup(label.Name); ok {
		return typ, ""
	}

	if _, ok := w.res.Enums.Lookup(label.Name); ok {
		return types.Int32, label.Name
	}

	return types.Unknown, ""
}

// -----------------------------------------------------------------------------

// error reports an error on the given span that should abort walking of the
// current definition.
func (w *Walker) error(kind report.DiagKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.NewDiagnostic(kind, span, msg, args...))
}

// recError reports a recoverable error on the given span.
func (w *Walker) recError(kind report.DiagKind, span *report.TextSpan, msg string, args ...interface{}) {
	w.res.Diagnostics = append(w.res.Diagnostics, report.NewDiagnostic(kind, span, msg, args...))
}

// warn reports a warning on the given span.
func (w *Walker) warn(kind report.DiagKind, span *report.TextSpan, msg string, args ...interface{}) {
	w.res.Diagnostics = append(w.res.Diagnostics, report.NewWarning(kind, span, msg, args...))
}

// info records a line of the declaration trace.
func (w *Walker) info(msg string, args ...interface{}) {
	w.res.Info = append(w.res.Info, fmt.Sprintf(msg, args...))
}

// catchErrors catches an error raised while walking a definition and records
// it.  It must always be deferred.
func (w *Walker) catchErrors() {
	if x := recover(); x != nil {
		if diag, ok := x.(*report.Diagnostic); ok {
			w.res.Diagnostics = append(w.res.Diagnostics, diag)
		} else {
			panic(x)
		}
	}
}
