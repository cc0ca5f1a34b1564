// Package codegen lowers analyzed Locus programs to LLVM IR.
package codegen

import (
	"errors"
	"fmt"

	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
	"locus/walk"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// ErrDiagnosticsPresent is returned by Generate when the program it is given
// failed analysis.
var ErrDiagnosticsPresent = errors.New("cannot generate code for a program with errors")

// Generator is responsible for lowering a program to an LLVM module.  It
// implements ast.Visitor: it is the second, read-only traversal of the tree.
type Generator struct {
	// The LLVM module being generated.
	mod *ir.Module

	// The result of analyzing the program.
	res *walk.Result

	// The scopes of the symbols bound to IR values.
	scopes *common.ScopeTable

	// The format string globals used by print, keyed by their format.
	formats map[string]*ir.Global

	// The counter used to number the labels of the module's control flow
	// constructs.
	labelCounter int

	// The LLVM function being generated.
	fn *ir.Func

	// The return type of the function being generated.
	retType types.Type

	// The entry block of the function being generated.  All allocas are placed
	// at its start.
	entry *ir.Block

	// The number of allocas in the entry block.
	allocaCount int

	// The block instructions are currently appended to.
	block *ir.Block
}

// Generate lowers an analyzed program to an LLVM module.  The program must
// have been analyzed without errors.
func Generate(prog *ast.Program, res *walk.Result, opts Options) (*ir.Module, error) {
	if res.HasErrors() {
		return nil, fmt.Errorf("%w: %d errors", ErrDiagnosticsPresent, res.ErrorCount())
	}

	g := &Generator{
		mod:     NewModule(opts),
		res:     res,
		scopes:  common.NewScopeTable(),
		formats: make(map[string]*ir.Global),
	}

	g.declareFuncs(prog)

	ast.Walk(g, prog)

	return g.mod, nil
}

// -----------------------------------------------------------------------------

// nextLabel returns the number identifying the labels of a new control flow
// construct.
func (g *Generator) nextLabel() int {
	n := g.labelCounter
	g.labelCounter++
	return n
}

// placeBlock appends a block created with ir.NewBlock to the current function
// and positions the generator over it.
func (g *Generator) placeBlock(block *ir.Block) {
	block.Parent = g.fn
	g.fn.Blocks = append(g.fn.Blocks, block)
	g.block = block
}

// newAlloca creates a named alloca at the start of the entry block.
func (g *Generator) newAlloca(name string, typ types.Type) *ir.InstAlloca {
	alloca := ir.NewAlloca(convType(typ))
	alloca.SetName(name)

	insts := append(g.entry.Insts, nil)
	copy(insts[g.allocaCount+1:], insts[g.allocaCount:])
	insts[g.allocaCount] = alloca
	g.entry.Insts = insts

	g.allocaCount++
	return alloca
}

// lookup looks up a symbol by name.  The analyzer has already resolved every
// name so a failed lookup is an internal error.
func (g *Generator) lookup(name string) *common.Symbol {
	sym, ok := g.scopes.Resolve(name)
	if !ok {
		report.ReportICE("no value bound to `%s` during code generation", name)
	}

	return sym
}

// bindRegister binds a name directly to an IR value in the current scope.
func (g *Generator) bindRegister(name string, typ types.Type, val value.Value) {
	g.scopes.Declare(&common.Symbol{
		Name:    name,
		Type:    typ,
		DefKind: common.DefKindValue,
		Storage: common.StorageRegister,
		Value:   val,
	})
}

// runtimeFunc returns the runtime function declared in the module header.
func (g *Generator) runtimeFunc(name string) *ir.Func {
	for _, fn := range g.mod.Funcs {
		if fn.Name() == name {
			return fn
		}
	}

	report.ReportICE("missing runtime declaration for `%s`", name)
	return nil
}
