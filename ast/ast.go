// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the code generators.  Every node variant is its own struct
// holding exactly the children its grammatical position requires.  Nodes own
// their children: the tree is never shared or cyclic.
package ast

import "slc/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// The abstract interface for all AST expressions.
type ASTExpr interface {
	ASTNode

	// exprNode marks the node as an expression.
	exprNode()
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

func (ExprBase) exprNode() {}
