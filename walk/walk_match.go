package walk

import (
	"strings"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
)

// walkMatch walks a match and returns the type of its value.  Matches in
// statement position are walked with an expected type of Void.
func (w *Walker) walkMatch(m *ast.Match, expected types.Type) types.Type {
	scrutType := w.walkExpr(m.Scrutinee, types.Unknown)
	scrutEnum := w.exprEnum(m.Scrutinee)

	resultType := types.Unknown
	for _, arm := range m.Arms {
		w.scopes.PushBlock()

		w.walkPattern(arm.Pattern, scrutType, scrutEnum)

		if arm.Body != nil {
			w.VisitBlock(arm.Body)
		} else {
			armExpected := expected
			if expected == types.Void {
				armExpected = types.Unknown
			}

			armType := w.walkExpr(arm.Value, armExpected)
			if armType != types.Void {
				if resultType == types.Unknown {
					resultType = armType
				} else {
					resultType = types.Wider(resultType, armType)
				}
			}
		}

		w.scopes.PopBlock()
	}

	w.checkExhaustive(m, scrutType, scrutEnum)

	if expected != types.Unknown {
		resultType = expected
	}

	w.res.MatchTypes[m] = resultType
	return resultType
}

// walkPattern walks a single pattern, declaring any binding it introduces.
func (w *Walker) walkPattern(pat ast.Pattern, scrutType types.Type, scrutEnum string) {
	switch v := pat.(type) {
	case *ast.WildcardPattern:
	case *ast.LiteralPattern:
		w.checkLiteralPattern(v, scrutType)
	case *ast.IdentPattern:
		w.defineLocal(&common.Symbol{
			Name:     v.Name,
			DefSpan:  v.Span(),
			Type:     scrutType,
			EnumName: scrutEnum,
			DefKind:  common.DefKindValue,
			Storage:  common.StorageRegister,
		})
	case *ast.EnumVariantPattern:
		if !w.checkVariant(v.Enum, v.Variant, v.Span()) {
			return
		}

		if scrutEnum != "" && scrutEnum != v.Enum {
			w.warn(report.UnresolvedType, v.Span(), "pattern of enum `%s` can never match a value of enum `%s`", v.Enum, scrutEnum)
		}

		if len(v.Args) > 0 {
			w.recError(
				report.InvalidPatternArity,
				v.Span(),
				"variant `%s.%s` has no fields but the pattern has %d",
				v.Enum,
				v.Variant,
				len(v.Args),
			)
		}
	default:
		report.ReportICE("unexpected pattern node: %T", pat)
	}
}

// checkLiteralPattern reports a literal pattern whose value cannot be
// represented in the type of the scrutinee.
func (w *Walker) checkLiteralPattern(pat *ast.LiteralPattern, scrutType types.Type) {
	var ok bool
	switch lit := pat.Value.(type) {
	case *ast.BoolLit:
		ok = scrutType == types.Bool
	case *ast.IntLit:
		switch scrutType {
		case types.Int32:
			ok = fitsInt32(lit.Value)
		case types.Int64, types.Float32, types.Float64:
			ok = true
		}
	case *ast.FloatLit:
		ok = scrutType.IsFloating()
	}

	switch {
	case ok, scrutType == types.Unknown:
	case scrutType == types.Void:
		w.recError(report.InvalidLiteral, pat.Span(), "cannot match a literal against a void value")
	default:
		w.recError(report.InvalidLiteral, pat.Span(), "literal pattern can never match a value of type `%s`", scrutType.Repr())
	}
}

// checkExhaustive reports a match whose arms do not cover every possible
// value of the scrutinee.  A match is exhaustive if it has an irrefutable arm,
// if it covers every variant of the scrutinee's enum or if it covers both
// boolean values.  Variant patterns only count towards coverage when the
// scrutinee is known to be a value of their enum.
func (w *Walker) checkExhaustive(m *ast.Match, scrutType types.Type, scrutEnum string) {
	covered := make(map[string]struct{})
	var hasTrue, hasFalse bool

	for _, arm := range m.Arms {
		switch v := arm.Pattern.(type) {
		case *ast.WildcardPattern, *ast.IdentPattern:
			return
		case *ast.EnumVariantPattern:
			if scrutEnum != "" && v.Enum == scrutEnum && len(v.Args) == 0 {
				covered[v.Variant] = struct{}{}
			}
		case *ast.LiteralPattern:
			if lit, ok := v.Value.(*ast.BoolLit); ok {
				if lit.Value {
					hasTrue = true
				} else {
					hasFalse = true
				}
			}
		}
	}

	var missing string
	if e, ok := w.res.Enums.Lookup(scrutEnum); ok && scrutEnum != "" {
		var names []string
		for _, variant := range e.Variants {
			if _, ok := covered[variant]; !ok {
				names = append(names, scrutEnum+"."+variant)
			}
		}

		if len(names) == 0 {
			return
		}

		missing = "missing " + strings.Join(names, ", ")
	} else if scrutType == types.Bool {
		if hasTrue && hasFalse {
			return
		}

		missing = "missing a case for `true` or `false`"
	} else {
		missing = "add a `_` arm to cover the remaining values"
	}

	if w.opts.StrictMatch {
		w.recError(report.NonExhaustiveMatch, m.Span(), "match is not exhaustive: %s", missing)
	} else {
		w.warn(report.NonExhaustiveMatch, m.Span(), "match is not exhaustive: %s", missing)
	}
}
