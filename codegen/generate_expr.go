package codegen

import "slc/ast"

// binaryOps maps AST operators to the instruction applying them.
var binaryOps = map[int]string{
	ast.OpAdd: OpAdd,
	ast.OpSub: OpSub,
	ast.OpEq:  OpEq,
}

// generateExpr generates an expression leaving its value on the stack.  Nil
// expressions, typed or not, generate nothing.
func (g *Generator) generateExpr(expr ast.ASTExpr) {
	switch v := expr.(type) {
	case nil:
		return
	case *ast.BinaryOp:
		if v == nil {
			return
		}

		op, ok := binaryOps[v.Op]
		if !ok {
			g.unknown(v)
			return
		}

		g.generateExpr(v.Lhs)
		g.generateExpr(v.Rhs)
		g.emit(op, "")
	case *ast.Literal:
		if v != nil {
			g.emit(OpLoad, v.Value)
		}
	case *ast.Identifier:
		if v != nil {
			g.emit(OpLoad, v.Name)
		}
	default:
		g.unknown(expr)
	}
}
