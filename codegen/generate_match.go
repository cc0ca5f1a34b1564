package codegen

import (
	"fmt"

	"locus/ast"
	"locus/report"
	"locus/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// VisitMatchStmt generates a match whose value is unused.
func (g *Generator) VisitMatchStmt(ms *ast.MatchStmt) {
	g.genMatch(ms.Match, types.Void)
}

// genMatch generates a match as a chain of tests, one per arm in source order.
// Each test branches to its arm or to the next test; the last test falls
// through to a block which traps.  If the match has a value of the given
// type, every arm stores its value into a result slot which is loaded once
// all arms rejoin.
func (g *Generator) genMatch(m *ast.Match, typ types.Type) value.Value {
	n := g.nextLabel()
	scrut := g.genExpr(m.Scrutinee)
	scrutType := typeOf(scrut.Type())

	var result *ir.InstAlloca
	if typ != types.Void && typ != types.Unknown {
		result = g.newAlloca(fmt.Sprintf("match.result.%d", n), typ)
	}

	failBlock := ir.NewBlock(fmt.Sprintf("match.fail.%d", n))
	endBlock := ir.NewBlock(fmt.Sprintf("match.end.%d", n))

	testBlock := failBlock
	if len(m.Arms) > 0 {
		testBlock = ir.NewBlock(fmt.Sprintf("match.test.%d.0", n))
	}

	g.block.NewBr(testBlock)

	for k, arm := range m.Arms {
		armBlock := ir.NewBlock(fmt.Sprintf("match.arm.%d.%d", n, k))

		next := failBlock
		if k < len(m.Arms)-1 {
			next = ir.NewBlock(fmt.Sprintf("match.test.%d.%d", n, k+1))
		}

		// The arm scope holds the pattern's binding.
		g.scopes.PushBlock()

		g.placeBlock(testBlock)
		cond := g.genPatternTest(arm.Pattern, scrut, scrutType)
		g.block.NewCondBr(cond, armBlock, next)

		g.placeBlock(armBlock)
		if arm.Body != nil {
			g.VisitBlock(arm.Body)
		} else {
			val := g.genExpr(arm.Value)

			if result != nil {
				g.block.NewStore(g.convert(val, typ), result)
			}
		}

		if g.block.Term == nil {
			g.block.NewBr(endBlock)
		}

		g.scopes.PopBlock()

		testBlock = next
	}

	g.placeBlock(failBlock)
	g.block.NewUnreachable()

	g.placeBlock(endBlock)

	if result != nil {
		return g.block.NewLoad(result.ElemType, result)
	}

	return constant.NewInt(lltypes.I32, 0)
}

// genPatternTest generates the test of a pattern against the scrutinee and
// binds the pattern's identifier, if any.  It returns an i1.
func (g *Generator) genPatternTest(pat ast.Pattern, scrut value.Value, scrutType types.Type) value.Value {
	switch v := pat.(type) {
	case *ast.WildcardPattern:
		return constant.True
	case *ast.IdentPattern:
		g.bindRegister(v.Name, scrutType, scrut)
		return constant.True
	case *ast.LiteralPattern:
		return g.genEquals(scrut, g.convert(g.genExpr(v.Value), scrutType), scrutType)
	case *ast.EnumVariantPattern:
		disc, ok := g.res.Enums.Discriminant(v.Enum, v.Variant)
		if !ok {
			report.ReportICE("unknown variant `%s.%s` during code generation", v.Enum, v.Variant)
		}

		want := g.convert(constant.NewInt(lltypes.I32, int64(disc)), scrutType)
		return g.genEquals(scrut, want, scrutType)
	}

	report.ReportICE("codegen for pattern %T not implemented", pat)
	return nil
}

// genEquals compares two values of the same type for equality.
func (g *Generator) genEquals(lhs, rhs value.Value, typ types.Type) value.Value {
	if typ.IsFloating() {
		return g.block.NewFCmp(enum.FPredOEQ, lhs, rhs)
	}

	return g.block.NewICmp(enum.IPredEQ, lhs, rhs)
}
