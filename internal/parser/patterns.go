// C7: the pattern parser shared by `when` clauses and destructuring `let`
// (spec §4.5).
//
// Grounded on the teacher's expression-as-fallback approach to pattern
// matching (no separate pattern-lexing mode): a pattern is parsed by trying
// progressively more specific shapes and falling back to a plain expression
// guard when nothing more specific matches.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/token"
)

// parsePattern parses one `when`-clause pattern, including a trailing
// `if cond` guard (spec §4.5).
func (p *Parser) parsePattern() ast.Pattern {
	old := p.inWhenPattern
	p.inWhenPattern = true
	defer func() { p.inWhenPattern = old }()

	inner := p.parsePatternCore()
	if p.check(token.KW_IF) {
		ifTok := p.advance()
		cond := p.parseExpression(config.LOWEST)
		return &ast.GuardPattern{NodeBase: p.nb(ifTok), Inner: inner, Condition: cond}
	}
	return inner
}

func (p *Parser) parsePatternCore() ast.Pattern {
	t := p.cur_()
	switch {
	case t.Kind == token.UNDERSCORE:
		p.advance()
		return &ast.WildcardPattern{NodeBase: p.nb(t)}

	case t.Kind == token.LPAREN:
		p.advance()
		bindings := p.parseDestructureBindingList()
		p.expect(token.RPAREN, "')'")
		return &ast.DestructuringPattern{NodeBase: p.nb(t), Bindings: bindings}

	case t.Kind == token.TYPE_IDENT:
		typ := p.parseType()
		if p.match(token.LPAREN) {
			bindings := p.parseDestructureBindingList()
			p.expect(token.RPAREN, "')'")
			return &ast.TypeDestructuringPattern{NodeBase: p.nb(t), Type: typ, Bindings: bindings}
		}
		if p.check(token.IDENT) {
			name := p.advance()
			return &ast.TypePattern{NodeBase: p.nb(t), Type: typ, Binding: name.Text}
		}
		return &ast.TypePattern{NodeBase: p.nb(t), Type: typ}

	case t.Kind == token.IDENT && !isLiteralFollow(p.peek(1).Kind):
		p.advance()
		return &ast.IdentifierPattern{NodeBase: p.nb(t), Name: t.Text}

	case isPatternLiteralStart(t.Kind):
		val := p.parseExpression(config.IS_EXPRESSION)
		return &ast.LiteralPattern{NodeBase: p.nb(t), Value: val}

	default:
		val := p.parseExpression(config.LOWEST)
		return &ast.ExpressionPattern{NodeBase: p.nb(t), Value: val}
	}
}

func isPatternLiteralStart(k token.Kind) bool {
	switch k {
	case token.INT_LIT, token.FLOAT_LIT, token.BOOL_LIT, token.NONE_LIT, token.LETTER_LIT,
		token.TEXT_LIT, token.TEXT_RAW, token.MINUS:
		return true
	}
	return false
}

// isLiteralFollow exists only to keep a bare identifier from being read as
// an IdentifierPattern when it is actually the start of a larger expression
// guard (e.g. `x + 1`); a following operator routes to the expression
// fallback instead.
func isLiteralFollow(k token.Kind) bool {
	switch k {
	case token.DOT, token.LPAREN, token.LBRACKET:
		return true
	}
	return false
}

// parseDestructureBindingList parses the comma-separated contents of a
// destructuring `(...)`: `_`, `name`, `field: binding`, `field: (...)`, and
// bare nested `(...)` entries (spec §4.5).
func (p *Parser) parseDestructureBindingList() []*ast.DestructureBinding {
	var out []*ast.DestructureBinding
	for !p.check(token.RPAREN) {
		out = append(out, p.parseDestructureBinding())
		if !p.match(token.COMMA) {
			break
		}
	}
	return out
}

func (p *Parser) parseDestructureBinding() *ast.DestructureBinding {
	t := p.cur_()

	if t.Kind == token.LPAREN {
		p.advance()
		nested := &ast.DestructuringPattern{NodeBase: p.nb(t), Bindings: p.parseDestructureBindingList()}
		p.expect(token.RPAREN, "')'")
		return &ast.DestructureBinding{NodeBase: p.nb(t), Nested: nested}
	}

	if t.Kind == token.UNDERSCORE {
		p.advance()
		return &ast.DestructureBinding{NodeBase: p.nb(t)}
	}

	name := p.expect(token.IDENT, "binding name")
	if !p.match(token.COLON) {
		return &ast.DestructureBinding{NodeBase: p.nb(name), BindingName: name.Text}
	}

	if p.check(token.LPAREN) {
		lp := p.advance()
		nested := &ast.DestructuringPattern{NodeBase: p.nb(lp), Bindings: p.parseDestructureBindingList()}
		p.expect(token.RPAREN, "')'")
		return &ast.DestructureBinding{NodeBase: p.nb(name), FieldName: name.Text, Nested: nested}
	}

	bindingName := p.expect(token.IDENT, "binding name")
	return &ast.DestructureBinding{NodeBase: p.nb(name), FieldName: name.Text, BindingName: bindingName.Text}
}
