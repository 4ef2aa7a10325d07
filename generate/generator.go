// Package generate compiles a SimpleLang program into an LLVM IR module.  The
// whole program becomes the body of `main`: every variable is a 64-bit stack
// slot and every statement is lowered in source order.
package generate

import (
	"fmt"

	"slc/ast"
	"slc/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// Generator is responsible for converting a SimpleLang AST into LLVM IR.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// mainFunc is the function enclosing all generated code.
	mainFunc *ir.Func

	// varBlock is the entry block of `main`.  It holds all the variable
	// allocations so that they dominate every use.
	varBlock *ir.Block

	// block is the current block being generated.
	block *ir.Block

	// vars maps each declared variable name to its stack slot.
	vars map[string]*ir.InstAlloca

	// ifCounter is used to give the blocks of each if statement unique names.
	ifCounter int
}

// Generate generates the LLVM module for a program.  The name is recorded as
// the module's source file name.  Semantic errors in the program such as uses
// of undeclared variables are returned as compile errors.
func Generate(prog *ast.Block, name string) (mod *ir.Module, err error) {
	defer report.Catch(&err)

	g := &Generator{
		mod:  ir.NewModule(),
		vars: make(map[string]*ir.InstAlloca),
	}
	g.mod.SourceFilename = name

	g.mainFunc = g.mod.NewFunc("main", types.I32)
	g.varBlock = g.mainFunc.NewBlock("entry")

	firstBlock := g.mainFunc.NewBlock("body")
	g.block = firstBlock

	g.genBlock(prog)

	// The program has no return statements: `main` always succeeds.
	g.block.NewRet(constant.NewInt(types.I32, 0))

	// Terminate the variable block into the first code block.
	g.varBlock.NewBr(firstBlock)

	return g.mod, nil
}

// -----------------------------------------------------------------------------

// declare allocates a new variable initialized to zero.
func (g *Generator) declare(vd *ast.VarDecl) {
	if _, ok := g.vars[vd.Name]; ok {
		panic(report.Raise(vd.Span(), "variable `%s` declared multiple times", vd.Name))
	}

	slot := g.varBlock.NewAlloca(types.I64)
	slot.SetName(vd.Name + ".addr")
	g.varBlock.NewStore(constant.NewInt(types.I64, 0), slot)

	g.vars[vd.Name] = slot
}

// lookup returns the stack slot of a declared variable.
func (g *Generator) lookup(node ast.ASTNode, name string) *ir.InstAlloca {
	slot, ok := g.vars[name]
	if !ok {
		panic(report.Raise(node.Span(), "undeclared variable `%s`", name))
	}

	return slot
}

// appendBlock adds a new named basic block to `main`.  It does *not* set the
// current block to this new block.
func (g *Generator) appendBlock(name string, n int) *ir.Block {
	return g.mainFunc.NewBlock(fmt.Sprintf("%s%d", name, n))
}
