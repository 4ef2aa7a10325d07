package syntax

import "slc/ast"

// program := {stmt} EOF ;
func (p *Parser) parseProgram() *ast.Block {
	prog := ast.NewBlock(p.tok.Span)

	for !p.has(TOK_EOF) {
		prog.Append(p.parseStmt())
	}

	prog.Close(p.tok.Span)
	return prog
}

// stmt := var_decl | assignment | if_stmt ;
func (p *Parser) parseStmt() ast.ASTNode {
	switch p.tok.Kind {
	case TOK_INT:
		return p.parseVarDecl()
	case TOK_IDENT:
		return p.parseAssignment()
	case TOK_IF:
		return p.parseIfStmt()
	}

	p.reject("statement")
	return nil
}

// var_decl := 'int' IDENTIFIER ';' ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	startSpan := p.want(TOK_INT).Span
	name := p.want(TOK_IDENT).Value
	endSpan := p.want(TOK_SEMI).Span

	return &ast.VarDecl{
		ASTBase: ast.NewASTBaseOver(startSpan, endSpan),
		Name:    name,
	}
}

// assignment := IDENTIFIER '=' expr ';' ;
func (p *Parser) parseAssignment() *ast.Assignment {
	target := p.want(TOK_IDENT)
	p.want(TOK_ASSIGN)
	value := p.parseExpr()
	endSpan := p.want(TOK_SEMI).Span

	return &ast.Assignment{
		ASTBase: ast.NewASTBaseOver(target.Span, endSpan),
		Target:  target.Value,
		Value:   value,
	}
}

// if_stmt := 'if' '(' condition ')' block ;
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startSpan := p.want(TOK_IF).Span

	p.want(TOK_LPAREN)
	cond := p.parseCondition()
	p.want(TOK_RPAREN)

	body := p.parseBlock()

	return &ast.IfStmt{
		ASTBase: ast.NewASTBaseOver(startSpan, body.Span()),
		Cond:    cond,
		Body:    body,
	}
}

// block := '{' {stmt} '}' ;
func (p *Parser) parseBlock() *ast.Block {
	block := ast.NewBlock(p.want(TOK_LBRACE).Span)

	for !p.has(TOK_RBRACE) {
		// Running out of input inside a block means the closing brace is
		// missing rather than another statement.
		if p.has(TOK_EOF) {
			p.reject(expectedNames[TOK_RBRACE])
		}

		block.Append(p.parseStmt())
	}

	block.Close(p.want(TOK_RBRACE).Span)
	return block
}
