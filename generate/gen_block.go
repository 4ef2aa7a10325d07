package generate

import (
	"slc/ast"
	"slc/report"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// genBlock generates a block of statements.
func (g *Generator) genBlock(block *ast.Block) {
	if block == nil {
		return
	}

	for _, stmt := range block.Stmts {
		g.genStmt(stmt)
	}
}

// genStmt generates a statement.
func (g *Generator) genStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		g.declare(v)
	case *ast.Assignment:
		val := g.genExpr(v.Value)
		g.block.NewStore(val, g.lookup(v, v.Target))
	case *ast.IfStmt:
		g.genIfStmt(v)
	case *ast.Block:
		g.genBlock(v)
	default:
		panic(report.Raise(stmt.Span(), "unsupported statement %T", stmt))
	}
}

// genIfStmt generates an if statement: the body runs when the condition is
// non-zero and control always continues in a fresh exit block.
func (g *Generator) genIfStmt(ifStmt *ast.IfStmt) {
	n := g.ifCounter
	g.ifCounter++

	thenBlock := g.appendBlock("if.then", n)
	endBlock := g.appendBlock("if.end", n)

	cond := g.genExpr(ifStmt.Cond)
	isTrue := g.block.NewICmp(enum.IPredNE, cond, constant.NewInt(types.I64, 0))
	g.block.NewCondBr(isTrue, thenBlock, endBlock)

	g.block = thenBlock
	g.genBlock(ifStmt.Body)
	g.block.NewBr(endBlock)

	g.block = endBlock
}
