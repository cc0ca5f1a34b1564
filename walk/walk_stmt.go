package walk

import (
	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
)

// VisitBlock walks a block in its own scope.
func (w *Walker) VisitBlock(b *ast.Block) {
	w.scopes.PushBlock()
	defer w.scopes.PopBlock()

	for _, stmt := range b.Stmts {
		stmt.Accept(w)
	}
}

// VisitVarDecl walks a local variable declaration.
func (w *Walker) VisitVarDecl(vd *ast.VarDecl) {
	typ, enumName := w.resolveType(vd.Type)
	if typ == types.Void {
		w.recError(report.UnresolvedType, vd.Type.Span(), "variable `%s` cannot be of type void", vd.Name)
		typ = types.Unknown
	}

	// The initializer is walked before the variable is declared so that it
	// refers to any outer symbol of the same name.
	if vd.Init != nil {
		w.walkExpr(vd.Init, typ)
	}

	w.defineLocal(&common.Symbol{
		Name:     vd.Name,
		DefSpan:  vd.NameSpan,
		Type:     typ,
		TypeName: vd.Type.String(),
		EnumName: enumName,
		DefKind:  common.DefKindValue,
		Storage:  common.StorageSlot,
		Modes:    vd.Modes,
	})

	w.info("Variable declaration: %s %s %s", vd.Modes, vd.Type, vd.Name)
}

// VisitIfStmt walks an if/else chain.
func (w *Walker) VisitIfStmt(is *ast.IfStmt) {
	w.walkExpr(is.Cond, types.Bool)
	w.VisitBlock(is.Then)

	if is.Else != nil {
		is.Else.Accept(w)
	}
}

// VisitWhileLoop walks a while loop.
func (w *Walker) VisitWhileLoop(wl *ast.WhileLoop) {
	w.walkExpr(wl.Cond, types.Bool)
	w.VisitBlock(wl.Body)
}

// VisitMatchStmt walks a match used as a statement.
func (w *Walker) VisitMatchStmt(ms *ast.MatchStmt) {
	w.walkMatch(ms.Match, types.Void)
}

// VisitReturnStmt walks a return statement.
func (w *Walker) VisitReturnStmt(rs *ast.ReturnStmt) {
	if rs.Value == nil {
		if w.enclosingReturnType != types.Void {
			w.recError(report.InvalidReturn, rs.Span(), "missing return value")
		}

		return
	}

	if w.enclosingReturnType == types.Void {
		w.recError(report.InvalidReturn, rs.Value.Span(), "cannot return a value from a function with no return type")
		w.walkExpr(rs.Value, types.Unknown)
		return
	}

	w.walkExpr(rs.Value, w.enclosingReturnType)
}

// VisitExprStmt walks an expression statement.
func (w *Walker) VisitExprStmt(es *ast.ExprStmt) {
	w.walkExpr(es.Expr, types.Unknown)
}
