package codegen

import "slc/ast"

// generateBlock generates each statement of a block in order.
func (g *Generator) generateBlock(block *ast.Block) {
	if block == nil {
		return
	}

	for _, stmt := range block.Stmts {
		g.generateNode(stmt)
	}
}

// generateVarDecl generates a variable declaration.
func (g *Generator) generateVarDecl(vd *ast.VarDecl) {
	if vd == nil {
		return
	}

	g.emit(OpDeclare, vd.Name)
}

// generateAssignment generates an assignment: the value is computed before
// it is stored.
func (g *Generator) generateAssignment(asn *ast.Assignment) {
	if asn == nil {
		return
	}

	g.generateExpr(asn.Value)
	g.emit(OpStore, asn.Target)
}

// generateIfStmt generates an if statement.  The body is skipped by a single
// forward jump when the condition is zero.
func (g *Generator) generateIfStmt(ifStmt *ast.IfStmt) {
	if ifStmt == nil {
		return
	}

	endLabel := g.newLabel()

	g.generateExpr(ifStmt.Cond)
	g.emit(OpJumpIfZero, endLabel)

	g.generateBlock(ifStmt.Body)

	g.emit(OpLabel, endLabel)
}
