package codegen

import (
	"fmt"
	"math"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
	"locus/walk"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression into the current block and returns its
// value.
func (g *Generator) genExpr(expr ast.ASTExpr) value.Value {
	switch v := expr.(type) {
	case *ast.IntLit:
		if v.Value < math.MinInt32 || v.Value > math.MaxInt32 {
			return constant.NewInt(lltypes.I64, v.Value)
		}

		return constant.NewInt(lltypes.I32, v.Value)
	case *ast.FloatLit:
		return constant.NewFloat(lltypes.Double, v.Value)
	case *ast.BoolLit:
		return constant.NewBool(v.Value)
	case *ast.Identifier:
		sym := g.lookup(v.Name)
		if sym.Storage == common.StorageSlot {
			return g.block.NewLoad(convType(sym.Type), sym.Value)
		}

		return sym.Value
	case *ast.EnumAccess:
		n, ok := g.res.Enums.Discriminant(v.Enum, v.Variant)
		if !ok {
			report.ReportICE("unknown variant `%s.%s` during code generation", v.Enum, v.Variant)
		}

		return constant.NewInt(lltypes.I32, int64(n))
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.Assignment:
		return g.genAssignment(v)
	case *ast.Call:
		return g.genCall(v)
	case *ast.Paren:
		return g.genExpr(v.Inner)
	case *ast.Match:
		return g.genMatch(v, g.res.MatchTypes[v])
	}

	report.ReportICE("codegen for expression %T not implemented", expr)
	return nil
}

// genBinaryOp generates a binary operation.  Both operands are converted to the
// wider of their types before the operation is applied.
func (g *Generator) genBinaryOp(bop *ast.BinaryOp) value.Value {
	lhs := g.genExpr(bop.Lhs)
	rhs := g.genExpr(bop.Rhs)

	opType := types.Wider(typeOf(lhs.Type()), typeOf(rhs.Type()))
	if opType == types.Bool && !bop.Op.IsComparison() {
		opType = types.Int32
	}

	lhs = g.convert(lhs, opType)
	rhs = g.convert(rhs, opType)

	if opType.IsFloating() {
		switch bop.Op {
		case ast.OpAdd:
			return g.block.NewFAdd(lhs, rhs)
		case ast.OpSub:
			return g.block.NewFSub(lhs, rhs)
		case ast.OpMul:
			return g.block.NewFMul(lhs, rhs)
		case ast.OpDiv:
			return g.block.NewFDiv(lhs, rhs)
		case ast.OpEq:
			return g.block.NewFCmp(enum.FPredOEQ, lhs, rhs)
		case ast.OpNe:
			return g.block.NewFCmp(enum.FPredONE, lhs, rhs)
		case ast.OpLt:
			return g.block.NewFCmp(enum.FPredOLT, lhs, rhs)
		case ast.OpGt:
			return g.block.NewFCmp(enum.FPredOGT, lhs, rhs)
		case ast.OpLe:
			return g.block.NewFCmp(enum.FPredOLE, lhs, rhs)
		case ast.OpGe:
			return g.block.NewFCmp(enum.FPredOGE, lhs, rhs)
		}
	} else {
		switch bop.Op {
		case ast.OpAdd:
			return g.block.NewAdd(lhs, rhs)
		case ast.OpSub:
			return g.block.NewSub(lhs, rhs)
		case ast.OpMul:
			return g.block.NewMul(lhs, rhs)
		case ast.OpDiv:
			return g.block.NewSDiv(lhs, rhs)
		case ast.OpEq:
			return g.block.NewICmp(enum.IPredEQ, lhs, rhs)
		case ast.OpNe:
			return g.block.NewICmp(enum.IPredNE, lhs, rhs)
		case ast.OpLt:
			return g.block.NewICmp(enum.IPredSLT, lhs, rhs)
		case ast.OpGt:
			return g.block.NewICmp(enum.IPredSGT, lhs, rhs)
		case ast.OpLe:
			return g.block.NewICmp(enum.IPredSLE, lhs, rhs)
		case ast.OpGe:
			return g.block.NewICmp(enum.IPredSGE, lhs, rhs)
		}
	}

	report.ReportICE("codegen for operator `%s` not implemented", bop.Op)
	return nil
}

// genAssignment generates an assignment and returns the stored value.
func (g *Generator) genAssignment(asn *ast.Assignment) value.Value {
	ident, ok := asn.Target.(*ast.Identifier)
	if !ok {
		report.ReportICE("assignment to %T reached code generation", asn.Target)
	}

	sym := g.lookup(ident.Name)
	if sym.Storage != common.StorageSlot {
		report.ReportICE("assignment to register `%s` reached code generation", sym.Name)
	}

	val := g.convert(g.genExpr(asn.Rhs), sym.Type)
	g.block.NewStore(val, sym.Value)
	return val
}

// genCall generates a function call.  The arguments are generated left to
// right and converted to the parameter types of the callee.  Calls to void
// functions evaluate to a zero i32.
func (g *Generator) genCall(call *ast.Call) value.Value {
	ident, ok := call.Func.(*ast.Identifier)
	if !ok {
		report.ReportICE("call of %T reached code generation", call.Func)
	}

	if ident.Name == walk.PrintFunc {
		return g.genPrint(call.Args[0])
	}

	sym := g.lookup(ident.Name)

	args := make([]value.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = g.convert(g.genExpr(arg), sym.ParamTypes[i])
	}

	result := g.block.NewCall(sym.Value, args...)

	if sym.Type == types.Void {
		return constant.NewInt(lltypes.I32, 0)
	}

	return result
}

// genPrint generates a call to the print builtin: the value is printed by
// printf on its own line.
func (g *Generator) genPrint(arg ast.ASTExpr) value.Value {
	val := g.genExpr(arg)

	format := "%d\n"
	switch typeOf(val.Type()) {
	case types.Int64:
		format = "%ld\n"
	case types.Float32:
		format = "%f\n"
		val = g.convert(val, types.Float64)
	case types.Float64:
		format = "%f\n"
	case types.Bool:
		val = g.convert(val, types.Int32)
	}

	g.block.NewCall(g.runtimeFunc("printf"), g.formatString(format), val)
	return constant.NewInt(lltypes.I32, 0)
}

// formatString returns a pointer to the first character of a private global
// holding the null terminated format string.  Each format is emitted once per
// module.
func (g *Generator) formatString(format string) constant.Constant {
	glob, ok := g.formats[format]
	if !ok {
		glob = g.mod.NewGlobalDef(
			fmt.Sprintf("fmt.%d", len(g.formats)),
			constant.NewCharArrayFromString(format+"\x00"),
		)
		glob.Immutable = true
		glob.Linkage = enum.LinkagePrivate

		g.formats[format] = glob
	}

	zero := constant.NewInt(lltypes.I64, 0)
	return constant.NewGetElementPtr(glob.ContentType, glob, zero, zero)
}

// genCond generates a branch condition as an i1.
func (g *Generator) genCond(expr ast.ASTExpr) value.Value {
	return g.convert(g.genExpr(expr), types.Bool)
}

// zeroValue returns the zero constant of a type.
func zeroValue(typ types.Type) constant.Constant {
	return numericConst(typ.Lowered(), 0, 0)
}
