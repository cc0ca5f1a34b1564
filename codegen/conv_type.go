package codegen

import (
	"locus/types"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// convType converts a type to its LLVM type.
func convType(typ types.Type) lltypes.Type {
	switch typ.Lowered() {
	case types.Int64:
		return lltypes.I64
	case types.Float32:
		return lltypes.Float
	case types.Float64:
		return lltypes.Double
	case types.Bool:
		return lltypes.I1
	case types.Void:
		return lltypes.Void
	default:
		return lltypes.I32
	}
}

// intType returns the LLVM integer type of an integral type.
func intType(typ types.Type) *lltypes.IntType {
	switch typ.Lowered() {
	case types.Int64:
		return lltypes.I64
	case types.Bool:
		return lltypes.I1
	default:
		return lltypes.I32
	}
}

// floatType returns the LLVM floating point type of a floating type.
func floatType(typ types.Type) *lltypes.FloatType {
	if typ == types.Float32 {
		return lltypes.Float
	}

	return lltypes.Double
}

// typeOf returns the type of values of an LLVM type.
func typeOf(llType lltypes.Type) types.Type {
	switch v := llType.(type) {
	case *lltypes.IntType:
		switch v.BitSize {
		case 1:
			return types.Bool
		case 64:
			return types.Int64
		}
	case *lltypes.FloatType:
		if v.Kind == lltypes.FloatKindFloat {
			return types.Float32
		}

		return types.Float64
	case *lltypes.VoidType:
		return types.Void
	}

	return types.Int32
}

// -----------------------------------------------------------------------------

// convert converts a value to the given type.  Constants are folded; other
// values are converted with a cast or, for booleans, a comparison against
// zero.
func (g *Generator) convert(val value.Value, to types.Type) value.Value {
	from := typeOf(val.Type())
	to = to.Lowered()

	if from == to || to == types.Void {
		return val
	}

	if c, ok := val.(constant.Constant); ok {
		if folded := foldConst(c, to); folded != nil {
			return folded
		}
	}

	switch {
	case to == types.Bool:
		if from.IsFloating() {
			return g.block.NewFCmp(enum.FPredONE, val, constant.NewFloat(floatType(from), 0))
		}

		return g.block.NewICmp(enum.IPredNE, val, constant.NewInt(intType(from), 0))
	case from == types.Bool:
		if to.IsFloating() {
			return g.block.NewUIToFP(val, convType(to))
		}

		return g.block.NewZExt(val, convType(to))
	case from.IsFloating() && to.IsFloating():
		if to.Size() > from.Size() {
			return g.block.NewFPExt(val, convType(to))
		}

		return g.block.NewFPTrunc(val, convType(to))
	case from.IsFloating():
		return g.block.NewFPToSI(val, convType(to))
	case to.IsFloating():
		return g.block.NewSIToFP(val, convType(to))
	case to.Size() > from.Size():
		return g.block.NewSExt(val, convType(to))
	default:
		return g.block.NewTrunc(val, convType(to))
	}
}

// foldConst converts a constant to the given type.  It returns nil if the
// constant cannot be folded.  Boolean constants are i1 integers.
func foldConst(c constant.Constant, to types.Type) constant.Constant {
	switch v := c.(type) {
	case *constant.Int:
		n := v.X.Int64()
		return numericConst(to, n, float64(n))
	case *constant.Float:
		f, _ := v.X.Float64()
		return numericConst(to, int64(f), f)
	}

	return nil
}

// numericConst creates a constant of the given type from either its integral
// or its floating point representation.
func numericConst(to types.Type, n int64, f float64) constant.Constant {
	switch to {
	case types.Bool:
		return constant.NewBool(f != 0)
	case types.Float32:
		return constant.NewFloat(lltypes.Float, float64(float32(f)))
	case types.Float64:
		return constant.NewFloat(lltypes.Double, f)
	case types.Int64:
		return constant.NewInt(lltypes.I64, n)
	default:
		return constant.NewInt(lltypes.I32, int64(int32(n)))
	}
}
