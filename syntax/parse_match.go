package syntax

import "locus/ast"

// match := 'match' expr '{' {match_arm} '}' ;
// match_arm := pattern '=>' (block | expr) [','] ;
//
// Block bodies are only permitted when the match is used as a statement.
func (p *Parser) parseMatch(allowBlocks bool) *ast.Match {
	startSpan := p.want(TOK_MATCH).Span

	scrutinee := p.parseExpr()

	p.want(TOK_LBRACE)

	var arms []*ast.MatchArm
	for !p.has(TOK_RBRACE) {
		pat := p.parsePattern()
		p.want(TOK_FATARROW)

		arm := &ast.MatchArm{Pattern: pat}
		if p.has(TOK_LBRACE) {
			if !allowBlocks {
				p.error(p.tok.Span, "match arms used as values cannot have block bodies")
			}

			arm.Body = p.parseBlock()
		} else {
			arm.Value = p.parseExpr()
		}

		arm.ASTBase = ast.NewASTBaseOn(p.spanFrom(pat.Span()))
		arms = append(arms, arm)

		if p.has(TOK_COMMA) {
			p.next()
		} else if arm.Body == nil && !p.has(TOK_RBRACE) {
			p.reject()
		}
	}

	p.next()

	return &ast.Match{
		ASTBase:   ast.NewASTBaseOn(p.spanFrom(startSpan)),
		Scrutinee: scrutinee,
		Arms:      arms,
	}
}

// pattern := '_' | ['-'] ('INTLIT' | 'FLOATLIT') | 'true' | 'false' | 'IDENT'
//
//	| 'IDENT' ('.' | '::') 'IDENT' ['(' [pattern {',' pattern}] ')'] ;
func (p *Parser) parsePattern() ast.Pattern {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_FLOATLIT, TOK_TRUE, TOK_FALSE:
		lit := p.parseLiteral()
		return &ast.LiteralPattern{ASTBase: ast.NewASTBaseOn(lit.Span()), Value: lit}
	case TOK_MINUS:
		{
			startSpan := p.want(TOK_MINUS).Span
			if !p.hasOneOf(TOK_INTLIT, TOK_FLOATLIT) {
				p.reject()
			}

			lit := p.parseLiteral()
			span := p.spanFrom(startSpan)

			var value ast.ASTExpr
			switch v := lit.(type) {
			case *ast.IntLit:
				value = &ast.IntLit{ASTBase: ast.NewASTBaseOn(span), Value: -v.Value}
			case *ast.FloatLit:
				value = &ast.FloatLit{ASTBase: ast.NewASTBaseOn(span), Value: -v.Value}
			}

			return &ast.LiteralPattern{ASTBase: ast.NewASTBaseOn(span), Value: value}
		}
	case TOK_IDENT:
		{
			name := p.want(TOK_IDENT)

			if p.hasOneOf(TOK_DOT, TOK_DCOLON) {
				p.next()
				variant := p.want(TOK_IDENT)

				pat := &ast.EnumVariantPattern{
					Enum:    name.Value,
					Variant: variant.Value,
				}

				if p.has(TOK_LPAREN) {
					p.next()

					// `Red()` is recorded with empty, non-nil arguments.
					pat.Args = []ast.Pattern{}
					if !p.has(TOK_RPAREN) {
						for {
							pat.Args = append(pat.Args, p.parsePattern())

							if p.has(TOK_COMMA) {
								p.next()
								continue
							}

							break
						}
					}

					p.want(TOK_RPAREN)
				}

				pat.ASTBase = ast.NewASTBaseOn(p.spanFrom(name.Span))
				return pat
			}

			if name.Value == "_" {
				return &ast.WildcardPattern{ASTBase: ast.NewASTBaseOn(name.Span)}
			}

			return &ast.IdentPattern{ASTBase: ast.NewASTBaseOn(name.Span), Name: name.Value}
		}
	}

	p.reject()
	return nil
}
