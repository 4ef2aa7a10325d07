// Package codegen lowers a SimpleLang AST into a flat stream of stack-based
// pseudo-assembly instructions.
package codegen

import (
	"fmt"

	"slc/ast"
)

// Generator is responsible for converting an AST into an instruction listing.
// Generators are created once per listing: labels are numbered per generator.
type Generator struct {
	// The listing being generated.
	listing *Listing

	// The number of labels created so far.
	labelCounter int
}

// Generate generates the instruction listing for an AST node.  Generation
// never fails: unsupported nodes produce a placeholder line and a warning.
func Generate(node ast.ASTNode) *Listing {
	g := &Generator{listing: &Listing{}}
	g.generateNode(node)
	return g.listing
}

// generateNode generates a single AST node.
func (g *Generator) generateNode(node ast.ASTNode) {
	switch v := node.(type) {
	case nil:
		return
	case *ast.Block:
		g.generateBlock(v)
	case *ast.VarDecl:
		g.generateVarDecl(v)
	case *ast.Assignment:
		g.generateAssignment(v)
	case *ast.IfStmt:
		g.generateIfStmt(v)
	case ast.ASTExpr:
		g.generateExpr(v)
	default:
		g.unknown(node)
	}
}

// -----------------------------------------------------------------------------

// emit appends an instruction to the listing.
func (g *Generator) emit(op, operand string) {
	g.listing.Instrs = append(g.listing.Instrs, Instruction{Op: op, Operand: operand})
}

// newLabel returns a new label unique within the generator.
func (g *Generator) newLabel() string {
	label := fmt.Sprintf("L%d", g.labelCounter)
	g.labelCounter++
	return label
}

// unknown emits a placeholder line for a node that cannot be generated.
func (g *Generator) unknown(node ast.ASTNode) {
	msg := fmt.Sprintf("unknown AST node %T", node)

	g.emit(OpComment, msg)
	g.listing.Warnings = append(g.listing.Warnings, msg)
}
