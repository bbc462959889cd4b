// C5: the type expression parser, including the `>>`-split problem (spec
// §4.3).
//
// Grounded on the teacher's internal/parser/types.go splitRshift handling,
// generalized from a single stream-splice flag into a reusable cursor
// pushback (internal/cursor) so any caller, not just the type parser, can
// un-consume half of a `>>`.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/token"
)

// parseType parses one TypeExpression: a name (possibly `__Tuple`-producing
// parenthesized list, `Me`/`MyType`, or `Routine<...>`) followed by an
// optional `<...>` generic argument list (spec §4.3, §3.3).
func (p *Parser) parseType() *ast.TypeExpression {
	base := p.parseAtomicType()
	if p.check(token.LT) {
		base.GenericArgs = p.parseGenericArgsList()
	}
	return base
}

func (p *Parser) parseAtomicType() *ast.TypeExpression {
	t := p.cur_()
	switch t.Kind {
	case token.LPAREN:
		return p.parseTupleType()
	case token.KW_ME, token.KW_MYTYPE:
		p.advance()
		return &ast.TypeExpression{NodeBase: p.nb(t), Name: t.Text}
	case token.TYPE_IDENT:
		p.advance()
		name := t.Text
		if name == "Routine" {
			return p.parseRoutineType(t)
		}
		return &ast.TypeExpression{NodeBase: p.nb(t), Name: name}
	case token.IDENT:
		// lower-case generic parameter reference, or a const-generic
		// argument written as a bare identifier.
		p.advance()
		return &ast.TypeExpression{NodeBase: p.nb(t), Name: t.Text}
	case token.INT_LIT, token.BOOL_LIT, token.LETTER_LIT:
		// const generic argument (spec §4.4): represented as a
		// TypeExpression whose Name is the literal's source text.
		p.advance()
		return &ast.TypeExpression{NodeBase: p.nb(t), Name: t.Text}
	default:
		p.fail(diagnostics.ErrUnexpectedToken, p.curLoc(), t.Kind)
		panic(bailout{})
	}
}

// parseTupleType handles `(T, U, ...)`: zero args or two-or-more args
// produce a TypeExpression named TupleTypeName; exactly one parenthesized
// type is just that type, unwrapped (Open Question resolved in SPEC_FULL.md §6).
func (p *Parser) parseTupleType() *ast.TypeExpression {
	lp := p.advance()
	if p.match(token.RPAREN) {
		return &ast.TypeExpression{NodeBase: p.nb(lp), Name: ast.TupleTypeName}
	}
	first := p.parseType()
	if !p.check(token.COMMA) {
		p.expect(token.RPAREN, "')'")
		return first
	}
	args := []*ast.TypeExpression{first}
	for p.match(token.COMMA) {
		if p.check(token.RPAREN) {
			break
		}
		args = append(args, p.parseType())
	}
	p.expect(token.RPAREN, "')'")
	return &ast.TypeExpression{NodeBase: p.nb(lp), Name: ast.TupleTypeName, GenericArgs: args}
}

// parseRoutineType reads `Routine<P1, P2, ..., R>`: arity is derived from
// the argument count, the last argument is the return type (spec §4.3).
func (p *Parser) parseRoutineType(nameTok token.Token) *ast.TypeExpression {
	base := &ast.TypeExpression{NodeBase: p.nb(nameTok), Name: "Routine"}
	if !p.check(token.LT) {
		return base
	}
	base.GenericArgs = p.parseGenericArgsList()
	return base
}

// parseGenericArgsList consumes the already-pending `<` and everything up
// to its matching closer, which may be a real `>` or the left half of an
// `>>` token that lexes as one SHR. In the latter case the cursor splices
// a synthetic `>` back onto the stream via Insert so the caller sees an
// ordinary, fully-consumed closer either way (spec §4.3).
func (p *Parser) parseGenericArgsList() []*ast.TypeExpression {
	p.expect(token.LT, "'<'")
	var args []*ast.TypeExpression
	for !p.check(token.GT) && !p.check(token.SHR) {
		args = append(args, p.parseType())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeGenericArgsList()
	return args
}

// closeGenericArgsList consumes one logical `>`, splitting a lexed `>>`
// into two closers when the outer context needs only one of them.
func (p *Parser) closeGenericArgsList() {
	if p.check(token.GT) {
		p.advance()
		return
	}
	if p.check(token.SHR_LOGICAL) {
		// `>>>` closes three lists: keep two synthetic `>` for the outer ones.
		shr3 := p.advance()
		for i := 2; i >= 1; i-- {
			p.cur.Insert(token.Token{Kind: token.GT, Text: ">", Line: shr3.Line, Column: shr3.Column + i, Position: shr3.Position + i})
		}
		return
	}
	shr := p.expect(token.SHR, "'>' or '>>'")
	synthetic := token.Token{Kind: token.GT, Text: ">", Line: shr.Line, Column: shr.Column + 1, Position: shr.Position + 1}
	p.cur.Insert(synthetic)
}
