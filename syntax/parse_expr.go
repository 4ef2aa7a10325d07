package syntax

import (
	"slc/ast"
	"slc/report"
)

// condition := expr ['==' expr] ;
func (p *Parser) parseCondition() ast.ASTExpr {
	lhs := p.parseExpr()

	if p.has(TOK_EQ) {
		p.next()
		rhs := p.parseExpr()

		return &ast.BinaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       ast.OpEq,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// additiveOps maps the additive operator tokens to their AST operators.
var additiveOps = map[int]int{
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
}

// expr := operand [('+' | '-') expr] ;
//
// The operator is right associative: `a - b - c` is `a - (b - c)`.
func (p *Parser) parseExpr() ast.ASTExpr {
	lhs := p.parseOperand()

	if op, ok := additiveOps[p.tok.Kind]; ok {
		p.next()
		rhs := p.parseExpr()

		return &ast.BinaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       op,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// operand := NUMBER | IDENTIFIER ;
func (p *Parser) parseOperand() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_NUMLIT:
		p.next()
		return &ast.Literal{
			ExprBase: ast.NewExprBase(p.lookbehind.Span),
			Value:    p.lookbehind.Value,
		}
	case TOK_IDENT:
		p.next()
		return &ast.Identifier{
			ExprBase: ast.NewExprBase(p.lookbehind.Span),
			Name:     p.lookbehind.Value,
		}
	}

	p.reject("number or identifier")
	return nil
}
