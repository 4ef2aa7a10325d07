package generate

import (
	"strconv"

	"slc/ast"
	"slc/report"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression and returns its i64 value.
func (g *Generator) genExpr(expr ast.ASTExpr) value.Value {
	switch v := expr.(type) {
	case *ast.Literal:
		return g.genLiteral(v)
	case *ast.Identifier:
		return g.block.NewLoad(types.I64, g.lookup(v, v.Name))
	case *ast.BinaryOp:
		lhs := g.genExpr(v.Lhs)
		rhs := g.genExpr(v.Rhs)

		switch v.Op {
		case ast.OpAdd:
			return g.block.NewAdd(lhs, rhs)
		case ast.OpSub:
			return g.block.NewSub(lhs, rhs)
		case ast.OpEq:
			// Comparisons produce an i1 which is widened so that every
			// expression has the same type.
			return g.block.NewZExt(g.block.NewICmp(enum.IPredEQ, lhs, rhs), types.I64)
		}

		panic(report.Raise(v.Span(), "unsupported operator `%s`", ast.OpSymbol(v.Op)))
	}

	panic(report.Raise(expr.Span(), "unsupported expression %T", expr))
}

// genLiteral generates a number literal.  The language allows arbitrarily
// large literals, but compiled programs only have 64-bit integers.
func (g *Generator) genLiteral(lit *ast.Literal) value.Value {
	x, err := strconv.ParseInt(lit.Value, 10, 64)
	if err != nil {
		panic(report.Raise(lit.Span(), "integer literal `%s` does not fit in 64 bits", lit.Value))
	}

	return constant.NewInt(types.I64, x)
}
