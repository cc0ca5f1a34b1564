package syntax

import (
	"strconv"

	"locus/ast"
)

// expr := bin_op_expr ['=' expr] ;
func (p *Parser) parseExpr() ast.ASTExpr {
	lhs := p.parseBinOpExpr()

	if p.has(TOK_ASSIGN) {
		p.next()
		rhs := p.parseExpr()

		return &ast.Assignment{
			ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span()),
			Target:  lhs,
			Rhs:     rhs,
		}
	}

	return lhs
}

// eq_expr := comp_expr {('==' | '!=') comp_expr} ;
// comp_expr := arith_expr {('<' | '>' | '<=' | '>=') arith_expr} ;
// arith_expr := term {('+' | '-') term} ;
// term := unary_expr {('*' | '/') unary_expr} ;
func (p *Parser) parseBinOpExpr() ast.ASTExpr {
	lhs := p.parseUnaryExpr()

	return p.precedenceParse(lhs, len(precTable))
}

// precTable is the operator precedence table for binary operators. The table is
// ordered highest to lowest precedence.
var precTable = [][]int{
	{TOK_STAR, TOK_DIV},
	{TOK_PLUS, TOK_MINUS},
	{TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ},
	{TOK_EQ, TOK_NEQ},
}

// binOpKinds maps operator tokens to the binary operators they denote.
var binOpKinds = map[int]ast.OpKind{
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
	TOK_STAR:  ast.OpMul,
	TOK_DIV:   ast.OpDiv,
	TOK_EQ:    ast.OpEq,
	TOK_NEQ:   ast.OpNe,
	TOK_LT:    ast.OpLt,
	TOK_GT:    ast.OpGt,
	TOK_LTEQ:  ast.OpLe,
	TOK_GTEQ:  ast.OpGe,
}

// precedenceParse performs operator precedence parsing for binary operators:
// it is essentially an augmented implementation of a Pratt parser.  All
// operators are left associative.
func (p *Parser) precedenceParse(lhs ast.ASTExpr, maxPrec int) ast.ASTExpr {
	for {
		// Check to see if the lookahead matches any of the operators at or
		// above our precedence level.
		var op *Token
		var opPrec int
		for prec, precLevel := range precTable[:maxPrec] {
			if p.hasOneOf(precLevel...) {
				op = p.tok
				opPrec = prec
				break
			}
		}

		// No matching operator.
		if op == nil {
			break
		}

		p.next()

		rhs := p.parseUnaryExpr()

	nextOpLoop:
		for {
			// Only operators which bind tighter than op extend the rhs.
			for _, precLevel := range precTable[:opPrec] {
				if p.hasOneOf(precLevel...) {
					rhs = p.precedenceParse(rhs, opPrec)
					continue nextOpLoop
				}
			}

			break nextOpLoop
		}

		lhs = &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span()),
			Op:      binOpKinds[op.Kind],
			Lhs:     lhs,
			Rhs:     rhs,
		}
	}

	return lhs
}

// unary_expr := ['-'] atom_expr ;
func (p *Parser) parseUnaryExpr() ast.ASTExpr {
	if !p.has(TOK_MINUS) {
		return p.parseAtomExpr()
	}

	startSpan := p.want(TOK_MINUS).Span
	operand := p.parseUnaryExpr()
	span := p.spanFrom(startSpan)

	// Negated literals are folded so that `-1` is a literal.
	switch v := operand.(type) {
	case *ast.IntLit:
		return &ast.IntLit{ASTBase: ast.NewASTBaseOn(span), Value: -v.Value}
	case *ast.FloatLit:
		return &ast.FloatLit{ASTBase: ast.NewASTBaseOn(span), Value: -v.Value}
	}

	return &ast.BinaryOp{
		ASTBase: ast.NewASTBaseOn(span),
		Op:      ast.OpSub,
		Lhs:     &ast.IntLit{ASTBase: ast.NewASTBaseOn(startSpan)},
		Rhs:     operand,
	}
}

// atom_expr := atom {'(' [expr {',' expr}] ')'} ;
func (p *Parser) parseAtomExpr() ast.ASTExpr {
	atom := p.parseAtom()

	for p.has(TOK_LPAREN) {
		p.next()

		var args []ast.ASTExpr
		if !p.has(TOK_RPAREN) {
			for {
				args = append(args, p.parseExpr())

				if p.has(TOK_COMMA) {
					p.next()
					continue
				}

				break
			}
		}

		p.want(TOK_RPAREN)

		atom = &ast.Call{
			ASTBase: ast.NewASTBaseOn(p.spanFrom(atom.Span())),
			Func:    atom,
			Args:    args,
		}
	}

	return atom
}

// atom := 'INTLIT' | 'FLOATLIT' | 'true' | 'false'
//
//	| 'IDENT' [('.' | '::') 'IDENT'] | '(' expr ')' | match ;
func (p *Parser) parseAtom() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_FLOATLIT, TOK_TRUE, TOK_FALSE:
		return p.parseLiteral()
	case TOK_IDENT:
		{
			name := p.want(TOK_IDENT)

			if p.hasOneOf(TOK_DOT, TOK_DCOLON) {
				p.next()
				variant := p.want(TOK_IDENT)

				return &ast.EnumAccess{
					ASTBase: ast.NewASTBaseOver(name.Span, variant.Span),
					Enum:    name.Value,
					Variant: variant.Value,
				}
			}

			return &ast.Identifier{
				ASTBase: ast.NewASTBaseOn(name.Span),
				Name:    name.Value,
			}
		}
	case TOK_LPAREN:
		{
			startSpan := p.want(TOK_LPAREN).Span
			inner := p.parseExpr()
			p.want(TOK_RPAREN)

			return &ast.Paren{
				ASTBase: ast.NewASTBaseOn(p.spanFrom(startSpan)),
				Inner:   inner,
			}
		}
	case TOK_MATCH:
		return p.parseMatch(false)
	}

	p.reject()
	return nil
}

// literal := 'INTLIT' | 'FLOATLIT' | 'true' | 'false' ;
func (p *Parser) parseLiteral() ast.ASTExpr {
	tok := p.tok

	switch tok.Kind {
	case TOK_INTLIT:
		p.next()

		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			p.error(tok.Span, "integer literal out of range")
		}

		return &ast.IntLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: value}
	case TOK_FLOATLIT:
		p.next()

		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			p.error(tok.Span, "malformed float literal")
		}

		return &ast.FloatLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: value}
	case TOK_TRUE, TOK_FALSE:
		p.next()

		return &ast.BoolLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: tok.Kind == TOK_TRUE}
	}

	p.reject()
	return nil
}
