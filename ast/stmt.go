package ast

import "slc/report"

// Block represents a list of AST statements.  The root of every program is a
// block.
type Block struct {
	ASTBase

	// The statements of the block in declaration order.
	Stmts []ASTNode
}

// NewBlock creates an empty block beginning at the given span.
func NewBlock(start *report.TextSpan) *Block {
	return &Block{ASTBase: NewASTBaseOn(start)}
}

// Append adds a statement to the end of the block.
func (b *Block) Append(stmt ASTNode) {
	b.Stmts = append(b.Stmts, stmt)
}

// Close extends the block's span to the end of the given span.
func (b *Block) Close(end *report.TextSpan) {
	b.span = report.NewSpanOver(b.span, end)
}

// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration: `int name;`.
type VarDecl struct {
	ASTBase

	// The name of the declared variable.
	Name string
}

// Assignment represents an assignment statement: `name = expr;`.
type Assignment struct {
	ASTBase

	// The name of the variable being assigned to.
	Target string

	// The value being assigned.
	Value ASTExpr
}

// IfStmt represents an `if` statement.  There is no else branch.
type IfStmt struct {
	ASTBase

	// The condition of the statement.
	Cond ASTExpr

	// The body of the statement.
	Body *Block
}
