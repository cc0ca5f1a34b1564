package syntax

import "locus/ast"

// block := '{' {stmt} '}' ;
func (p *Parser) parseBlock() *ast.Block {
	startSpan := p.want(TOK_LBRACE).Span

	var stmts []ast.Stmt
	for !p.has(TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	p.next()

	return &ast.Block{
		ASTBase: ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Stmts:   stmts,
	}
}

// stmt := var_decl | if_stmt | while_loop | match_stmt | return_stmt | block
//
//	| expr ';' ;
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_LET:
		return p.parseVarDecl()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileLoop()
	case TOK_MATCH:
		return p.parseMatchStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_LBRACE:
		return p.parseBlock()
	}

	expr := p.parseExpr()
	p.want(TOK_SEMI)

	return &ast.ExprStmt{
		ASTBase: ast.NewASTBaseOn(p.spanFrom(expr.Span())),
		Expr:    expr,
	}
}

// var_decl := 'let' modes 'IDENT' ':' type_label ['=' expr] ';' ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	startSpan := p.want(TOK_LET).Span

	modes := p.parseModes()
	name := p.want(TOK_IDENT)

	p.want(TOK_COLON)
	typ := p.parseTypeLabel()

	var init ast.ASTExpr
	if p.has(TOK_ASSIGN) {
		p.next()
		init = p.parseExpr()
	}

	p.want(TOK_SEMI)

	return &ast.VarDecl{
		ASTBase:  ast.NewASTBaseOn(p.spanFrom(startSpan)),
		Modes:    modes,
		Name:     name.Value,
		NameSpan: name.Span,
		Type:     typ,
		Init:     init,
	}
}

// if_stmt := 'if' expr block ['else' (block | if_stmt)] ;
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startSpan := p.want(TOK_IF).Span

	cond := p.parseExpr()
	then := p.parseBlock()

	var elseStmt ast.Stmt
	if p.has(TOK_ELSE) {
		p.next()

		if p.has(TOK_IF) {
			elseStmt = p.parseIfStmt()
		} else {
			elseStmt = p.parseBlock()
		}
	}

	return &ast.IfStmt{
		ASTBase: ast.NewASTBaseOn(p.spanFrom(startSpan)),
		Cond:    cond,
		Then:    then,
		Else:    elseStmt,
	}
}

// while_loop := 'while' expr block ;
func (p *Parser) parseWhileLoop() *ast.WhileLoop {
	startSpan := p.want(TOK_WHILE).Span

	cond := p.parseExpr()
	body := p.parseBlock()

	return &ast.WhileLoop{
		ASTBase: ast.NewASTBaseOn(p.spanFrom(startSpan)),
		Cond:    cond,
		Body:    body,
	}
}

// match_stmt := match [';'] ;
func (p *Parser) parseMatchStmt() *ast.MatchStmt {
	match := p.parseMatch(true)

	if p.has(TOK_SEMI) {
		p.next()
	}

	return &ast.MatchStmt{
		ASTBase: ast.NewASTBaseOn(match.Span()),
		Match:   match,
	}
}

// return_stmt := 'return' [expr] ';' ;
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	startSpan := p.want(TOK_RETURN).Span

	var value ast.ASTExpr
	if !p.has(TOK_SEMI) {
		value = p.parseExpr()
	}

	p.want(TOK_SEMI)

	return &ast.ReturnStmt{
		ASTBase: ast.NewASTBaseOn(p.spanFrom(startSpan)),
		Value:   value,
	}
}
