package walk

import (
	"math"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
)

// walkExpr walks an expression and returns its type.  The expected type is the
// type the context requires, or Unknown if there is none: literals adopt it
// when they can represent it.
func (w *Walker) walkExpr(expr ast.ASTExpr, expected types.Type) types.Type {
	switch v := expr.(type) {
	case *ast.IntLit:
		if expected.IsFloating() || expected == types.Int64 {
			return expected
		}

		if expected == types.Int32 && !fitsInt32(v.Value) {
			w.recError(report.InvalidLiteral, v.Span(), "integer literal `%d` overflows i32", v.Value)
		}

		return types.Int32
	case *ast.FloatLit:
		if expected == types.Float32 {
			return types.Float32
		}

		return types.Float64
	case *ast.BoolLit:
		return types.Bool
	case *ast.Identifier:
		sym := w.lookup(v.Name, v.Span())
		if sym.DefKind == common.DefKindFunc {
			w.recError(report.UnresolvedName, v.Span(), "function `%s` cannot be used as a value", v.Name)
		}

		return sym.Type
	case *ast.EnumAccess:
		w.checkVariant(v.Enum, v.Variant, v.Span())
		return types.Int32
	case *ast.BinaryOp:
		lhsType := w.walkExpr(v.Lhs, types.Unknown)
		rhsType := w.walkExpr(v.Rhs, types.Unknown)

		if v.Op.IsComparison() {
			return types.Bool
		}

		return types.Wider(lhsType, rhsType)
	case *ast.Assignment:
		return w.walkAssignment(v)
	case *ast.Call:
		return w.walkCall(v)
	case *ast.Paren:
		return w.walkExpr(v.Inner, expected)
	case *ast.Match:
		return w.walkMatch(v, expected)
	}

	report.ReportICE("unexpected expression node: %T", expr)
	return types.Unknown
}

// walkAssignment walks an assignment.  Only local variables can be assigned.
func (w *Walker) walkAssignment(asn *ast.Assignment) types.Type {
	ident, ok := asn.Target.(*ast.Identifier)
	if !ok {
		w.recError(report.InvalidAssignmentTarget, asn.Target.Span(), "can only assign to variables")
		return w.walkExpr(asn.Rhs, types.Unknown)
	}

	sym := w.lookup(ident.Name, ident.Span())
	if !sym.Assignable() {
		switch {
		case sym.DefKind == common.DefKindFunc:
			w.recError(report.InvalidAssignmentTarget, ident.Span(), "cannot assign to function `%s`", sym.Name)
		default:
			w.recError(report.InvalidAssignmentTarget, ident.Span(), "cannot assign to `%s`: it is not a variable", sym.Name)
		}
	}

	w.walkExpr(asn.Rhs, sym.Type)
	return sym.Type
}

// walkCall walks a function call.
func (w *Walker) walkCall(call *ast.Call) types.Type {
	ident, ok := call.Func.(*ast.Identifier)
	if !ok {
		w.recError(report.UnresolvedName, call.Func.Span(), "only named functions can be called")

		for _, arg := range call.Args {
			w.walkExpr(arg, types.Unknown)
		}

		return types.Unknown
	}

	sym := w.lookup(ident.Name, ident.Span())
	if sym.DefKind != common.DefKindFunc {
		w.error(report.UnresolvedName, ident.Span(), "`%s` is not a function", ident.Name)
	}

	if len(call.Args) != len(sym.ParamTypes) {
		w.recError(
			report.InvalidCallArity,
			call.Span(),
			"`%s` expects %d arguments but got %d",
			sym.Name,
			len(sym.ParamTypes),
			len(call.Args),
		)
	}

	for i, arg := range call.Args {
		expected := types.Unknown
		if i < len(sym.ParamTypes) {
			expected = sym.ParamTypes[i]
		}

		w.walkExpr(arg, expected)
	}

	return sym.Type
}

// checkVariant checks that `enum.variant` names an existing variant.
func (w *Walker) checkVariant(enum, variant string, span *report.TextSpan) bool {
	e, ok := w.res.Enums.Lookup(enum)
	if !ok {
		w.recError(report.UnresolvedName, span, "undefined enum: `%s`", enum)
		return false
	}

	if _, ok := e.Discriminant(variant); !ok {
		w.recError(report.UnresolvedName, span, "enum `%s` has no variant named `%s`", enum, variant)
		return false
	}

	return true
}

// exprEnum returns the name of the enum an expression evaluates to, if it is
// known.
func (w *Walker) exprEnum(expr ast.ASTExpr) string {
	switch v := expr.(type) {
	case *ast.Identifier:
		if sym, ok := w.scopes.Resolve(v.Name); ok && sym.DefKind == common.DefKindValue {
			return sym.EnumName
		}
	case *ast.EnumAccess:
		return v.Enum
	case *ast.Call:
		if ident, ok := v.Func.(*ast.Identifier); ok {
			if sym, ok := w.scopes.Resolve(ident.Name); ok && sym.DefKind == common.DefKindFunc {
				return sym.EnumName
			}
		}
	case *ast.Paren:
		return w.exprEnum(v.Inner)
	case *ast.Assignment:
		return w.exprEnum(v.Target)
	}

	return ""
}

// fitsInt32 returns whether n can be represented as an i32.
func fitsInt32(n int64) bool {
	return math.MinInt32 <= n && n <= math.MaxInt32
}
