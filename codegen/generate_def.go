package codegen

import (
	"fmt"

	"locus/ast"
	"locus/common"
	"locus/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// declareFuncs declares every function of the program in the module before
// any body is generated so calls can refer to later functions.
func (g *Generator) declareFuncs(prog *ast.Program) {
	for _, fd := range prog.Funcs() {
		fsym := g.res.Funcs[fd.Name]

		params := make([]*ir.Param, len(fd.Params))
		for i, param := range fd.Params {
			name := param.Name

			// Parameter names share the function's local namespace with its
			// block labels.
			if name == "entry" {
				name = "entry.arg"
			}

			params[i] = ir.NewParam(name, convType(fsym.ParamTypes[i]))
		}

		fn := g.mod.NewFunc(fd.Name, convType(fsym.Type), params...)

		g.scopes.Declare(&common.Symbol{
			Name:       fd.Name,
			Type:       fsym.Type.Lowered(),
			DefKind:    common.DefKindFunc,
			Storage:    common.StorageRegister,
			ParamTypes: fsym.ParamTypes,
			Value:      fn,
		})
	}
}

// -----------------------------------------------------------------------------

// VisitEnumDef does nothing: enum variants are lowered to their discriminants.
func (g *Generator) VisitEnumDef(ed *ast.EnumDef) {}

// VisitFuncDef generates the body of a function.
func (g *Generator) VisitFuncDef(fd *ast.FuncDef) {
	fsym := g.lookup(fd.Name)

	g.fn = fsym.Value.(*ir.Func)
	g.retType = fsym.Type
	g.allocaCount = 0

	g.entry = g.fn.NewBlock("entry")
	g.block = g.entry

	g.scopes.EnterFunction()
	defer g.scopes.ExitFunction()

	for i, param := range fd.Params {
		g.scopes.Declare(&common.Symbol{
			Name:    param.Name,
			Type:    fsym.ParamTypes[i].Lowered(),
			DefKind: common.DefKindValue,
			Storage: common.StorageRegister,
			Modes:   param.Modes,
			Value:   g.fn.Params[i],
		})
	}

	g.VisitBlock(fd.Body)

	// A function whose last block is still open falls off its end: that is an
	// implicit return for void functions and unreachable otherwise.
	if g.block.Term == nil {
		if g.retType == types.Void {
			g.block.NewRet(nil)
		} else {
			g.block.NewUnreachable()
		}
	}
}

// VisitVarDecl generates a local variable: a slot in the entry block
// initialized with the initializer or the zero value of its type.
func (g *Generator) VisitVarDecl(vd *ast.VarDecl) {
	typ := types.MapType(vd.Type.Name)

	var init value.Value = zeroValue(typ)
	if vd.Init != nil {
		init = g.convert(g.genExpr(vd.Init), typ)
	}

	slot := g.newAlloca(fmt.Sprintf("%s.%d", vd.Name, g.allocaCount), typ)
	g.block.NewStore(init, slot)

	g.scopes.Declare(&common.Symbol{
		Name:    vd.Name,
		Type:    typ,
		DefKind: common.DefKindValue,
		Storage: common.StorageSlot,
		Modes:   vd.Modes,
		Value:   slot,
	})
}

// VisitReturnStmt generates a return statement.
func (g *Generator) VisitReturnStmt(rs *ast.ReturnStmt) {
	if rs.Value == nil {
		g.block.NewRet(nil)
		return
	}

	g.block.NewRet(g.convert(g.genExpr(rs.Value), g.retType))
}

// VisitExprStmt generates an expression whose value is unused.
func (g *Generator) VisitExprStmt(es *ast.ExprStmt) {
	g.genExpr(es.Expr)
}
