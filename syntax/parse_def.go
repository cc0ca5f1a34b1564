package syntax

import (
	"locus/ast"
	"locus/common"
	"locus/report"
)

// file := {enum_def | func_def} ;
func (p *Parser) parseFile() *ast.Program {
	prog := &ast.Program{}

	for !p.has(TOK_EOF) {
		switch p.tok.Kind {
		case TOK_ENUM:
			prog.Defs = append(prog.Defs, p.parseEnumDef())
		case TOK_FN:
			prog.Defs = append(prog.Defs, p.parseFuncDef())
		default:
			p.reject()
		}
	}

	return prog
}

// enum_def := 'enum' 'IDENT' '{' 'IDENT' {',' 'IDENT'} [','] '}' ;
func (p *Parser) parseEnumDef() *ast.EnumDef {
	startSpan := p.want(TOK_ENUM).Span
	name := p.want(TOK_IDENT)

	p.want(TOK_LBRACE)

	var variants []string
	for {
		variants = append(variants, p.want(TOK_IDENT).Value)

		if p.has(TOK_COMMA) {
			p.next()

			if p.has(TOK_IDENT) {
				continue
			}
		}

		break
	}

	p.want(TOK_RBRACE)

	return &ast.EnumDef{
		ASTBase:  ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Name:     name.Value,
		Variants: variants,
	}
}

// func_def := 'fn' 'IDENT' '(' [param {',' param}] ')' ['->' type_label] block ;
func (p *Parser) parseFuncDef() *ast.FuncDef {
	startSpan := p.want(TOK_FN).Span
	name := p.want(TOK_IDENT)

	p.want(TOK_LPAREN)

	var params []*ast.Param
	if !p.has(TOK_RPAREN) {
		for {
			params = append(params, p.parseParam())

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	p.want(TOK_RPAREN)

	var retType *ast.TypeLabel
	if p.has(TOK_ARROW) {
		p.next()
		retType = p.parseTypeLabel()
	}

	body := p.parseBlock()

	return &ast.FuncDef{
		ASTBase:    ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Name:       name.Value,
		NameSpan:   name.Span,
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}
}

// param := modes 'IDENT' ':' type_label ;
func (p *Parser) parseParam() *ast.Param {
	startSpan := p.tok.Span
	modes := p.parseModes()
	name := p.want(TOK_IDENT)

	p.want(TOK_COLON)
	typ := p.parseTypeLabel()

	return &ast.Param{
		ASTBase: ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Modes:   modes,
		Name:    name.Value,
		Type:    typ,
	}
}

// modes := ['local' | 'global'] ['unique' | 'shared'] ;
func (p *Parser) parseModes() common.Modes {
	var modes common.Modes

	switch p.tok.Kind {
	case TOK_LOCAL:
		modes.Locality = common.LocalityLocal
		p.next()
	case TOK_GLOBAL:
		modes.Locality = common.LocalityGlobal
		p.next()
	}

	switch p.tok.Kind {
	case TOK_UNIQUE:
		modes.Uniqueness = common.UniquenessUnique
		p.next()
	case TOK_SHARED:
		modes.Uniqueness = common.UniquenessShared
		p.next()
	}

	return modes
}

// type_label := 'IDENT' ['<' type_label {',' type_label} '>'] ;
func (p *Parser) parseTypeLabel() *ast.TypeLabel {
	name := p.want(TOK_IDENT)

	var args []*ast.TypeLabel
	if p.has(TOK_LT) {
		p.next()

		for {
			args = append(args, p.parseTypeLabel())

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}

		p.want(TOK_GT)
	}

	return &ast.TypeLabel{
		ASTBase: ast.NewASTBaseOver(name.Span, p.lookbehind.Span),
		Name:    name.Value,
		Args:    args,
	}
}

// spanFrom returns the span from start to the end of the last consumed token.
func (p *Parser) spanFrom(start *report.TextSpan) *report.TextSpan {
	return report.NewSpanOver(start, p.lookbehind.Span)
}
