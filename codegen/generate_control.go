package codegen

import (
	"fmt"

	"locus/ast"

	"github.com/llir/llvm/ir"
)

// VisitBlock generates a block of statements in its own scope.  Statements
// following a terminator are dead and are not generated.
func (g *Generator) VisitBlock(b *ast.Block) {
	g.scopes.PushBlock()
	defer g.scopes.PopBlock()

	for _, stmt := range b.Stmts {
		stmt.Accept(g)

		if g.block.Term != nil {
			return
		}
	}
}

// VisitIfStmt generates an if statement.  The condition branches to the then
// block and to either the else block or, if there is none, the end block.
// Both branches jump to the end block unless they terminate on their own.
func (g *Generator) VisitIfStmt(is *ast.IfStmt) {
	n := g.nextLabel()
	cond := g.genCond(is.Cond)

	thenBlock := ir.NewBlock(fmt.Sprintf("if.then.%d", n))
	endBlock := ir.NewBlock(fmt.Sprintf("if.end.%d", n))

	if is.Else == nil {
		g.block.NewCondBr(cond, thenBlock, endBlock)
		g.genBranch(thenBlock, is.Then, endBlock)
	} else {
		elseBlock := ir.NewBlock(fmt.Sprintf("if.else.%d", n))
		g.block.NewCondBr(cond, thenBlock, elseBlock)
		g.genBranch(thenBlock, is.Then, endBlock)
		g.genBranch(elseBlock, is.Else, endBlock)
	}

	// The end block is emitted even if no branch reaches it: the function
	// epilogue terminates it in that case.
	g.placeBlock(endBlock)
}

// VisitWhileLoop generates a while loop.
func (g *Generator) VisitWhileLoop(wl *ast.WhileLoop) {
	n := g.nextLabel()

	condBlock := ir.NewBlock(fmt.Sprintf("while.cond.%d", n))
	bodyBlock := ir.NewBlock(fmt.Sprintf("while.body.%d", n))
	endBlock := ir.NewBlock(fmt.Sprintf("while.end.%d", n))

	g.block.NewBr(condBlock)

	g.placeBlock(condBlock)
	cond := g.genCond(wl.Cond)
	g.block.NewCondBr(cond, bodyBlock, endBlock)

	g.genBranch(bodyBlock, wl.Body, condBlock)

	g.placeBlock(endBlock)
}

// genBranch generates a statement into a new block which jumps to exit when
// the statement does not terminate it.
func (g *Generator) genBranch(block *ir.Block, stmt ast.Stmt, exit *ir.Block) {
	g.placeBlock(block)
	stmt.Accept(g)

	if g.block.Term == nil {
		g.block.NewBr(exit)
	}
}
