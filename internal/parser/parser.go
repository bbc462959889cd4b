// Package parser implements C1–C12: the shared recursive-descent driver,
// Pratt expression engine, type/generic/pattern sub-grammars, and the three
// dialect entry points, all operating over one token.Token vector per file
// (spec §1, §2, §5).
//
// Grounded on the teacher's internal/parser package: one Parser struct
// holding cursor state and a handful of context flags, precedence-driven
// expression parsing, and a declaration/statement dispatch loop that
// recovers per-item rather than aborting the whole file.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/cursor"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/token"
)

// Parser is constructed once per file and is not reusable (spec §5).
type Parser struct {
	cur     *cursor.Cursor
	dialect config.Descriptor
	diags   *diagnostics.Sink
	file    string

	// Context flags (spec §5, §4.2, §4.6.1), saved and restored with defer
	// at every recursive entry point that toggles them, including error
	// paths (SPEC_FULL §6 Open Question 4).
	inWhenPattern            bool
	inWhenClauseBody         bool
	parsingRecordBody        bool
	parsingInlineConditional bool

	// Parser-scoped mutable caches used only for disambiguation heuristics
	// (spec §9 Design Notes); reset per parse by New, never touched from
	// outside.
	knownTypeNames     map[string]bool
	importedNamespaces map[string]bool
	genericScopeStack  [][]string

	// indentDepth counts net Indent tokens consumed but not yet matched by
	// a Dedent, used to check the C10 balance invariant (spec §3.4, §8.1.5).
	indentDepth int
}

// bailout is the sentinel recovered at the declaration/statement loop
// boundary. It is not a general exception-for-control-flow mechanism (spec
// §9 Design Notes explicitly rules that out) — p.fail is the only place
// that panics, and parseDeclarationRecovering / parseStatementRecovering are
// the only places that recover, mirroring the note's "the only point where
// an error bubbles is to the nearest declaration- or statement-loop
// iteration" without threading an error return through every one of the
// mutually recursive parse* helpers.
type bailout struct{}

// New constructs a Parser over a complete token vector for one dialect.
func New(file string, dialect config.Descriptor, tokens []token.Token) *Parser {
	return &Parser{
		cur:                cursor.New(file, tokens),
		dialect:            dialect,
		diags:              diagnostics.NewSink(),
		file:               file,
		knownTypeNames:     map[string]bool{},
		importedNamespaces: map[string]bool{},
	}
}

// Diagnostics returns the accumulated error/warning sink (spec §6.2).
func (p *Parser) Diagnostics() *diagnostics.Sink { return p.diags }

// ---- cursor convenience wrappers ------------------------------------------

func (p *Parser) cur_() token.Token  { return p.cur.Current() }
func (p *Parser) check(k token.Kind) bool { return p.cur.Check(k) }
func (p *Parser) checkAny(ks ...token.Kind) bool { return p.cur.CheckAny(ks...) }
func (p *Parser) match(k token.Kind) bool { return p.cur.Match(k) }
func (p *Parser) matchAny(ks ...token.Kind) bool { return p.cur.MatchAny(ks...) }
func (p *Parser) advance() token.Token { return p.cur.Advance() }
func (p *Parser) peek(offset int) token.Token { return p.cur.Peek(offset) }
func (p *Parser) loc(t token.Token) token.Location { return p.cur.Loc(t) }
func (p *Parser) curLoc() token.Location { return p.loc(p.cur_()) }

// consume requires kind k, raising a ParseError with code on mismatch.
func (p *Parser) consume(k token.Kind, code diagnostics.ErrorCode, args ...any) token.Token {
	if t, ok := p.cur.Consume(k, ""); ok {
		return t
	}
	p.fail(code, p.curLoc(), args...)
	panic(bailout{}) // unreachable; fail already panics
}

// expect is consume specialized to the common "expected X got Y" shape.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if t, ok := p.cur.Consume(k, ""); ok {
		return t
	}
	p.fail(diagnostics.ErrExpectedGot, p.curLoc(), what, p.cur_().Kind)
	panic(bailout{})
}

func (p *Parser) fail(code diagnostics.ErrorCode, loc token.Location, args ...any) {
	p.diags.AddError(code, loc, args...)
	panic(bailout{})
}

func (p *Parser) warn(code diagnostics.WarningCode, sev diagnostics.Severity, message string) {
	t := p.cur_()
	p.diags.AddWarning(code, sev, t.Line, t.Column, message)
}

// skipStatementSeparators consumes any run of Newline tokens (and, in
// brace dialects, stray semicolons) between top-level items.
func (p *Parser) skipStatementSeparators() {
	for p.match(token.NEWLINE) || p.match(token.SEMICOLON) {
	}
}

// ---- generic-parameter scope stack -----------------------------------

func (p *Parser) pushGenericScope(names []string) {
	p.genericScopeStack = append(p.genericScopeStack, names)
}

func (p *Parser) popGenericScope() {
	p.genericScopeStack = p.genericScopeStack[:len(p.genericScopeStack)-1]
}

func (p *Parser) isDeclaredGeneric(name string) bool {
	for _, scope := range p.genericScopeStack {
		for _, n := range scope {
			if n == name {
				return true
			}
		}
	}
	return false
}

// ---- visibility ---------------------------------------------------------

var visibilityKeywords = map[token.Kind]ast.Visibility{
	token.KW_PUBLIC:   ast.VisPublic,
	token.KW_INTERNAL: ast.VisInternal,
	token.KW_MODULE:   ast.VisInternal,
	token.KW_PRIVATE:  ast.VisPrivate,
	token.KW_FAMILY:   ast.VisFamily,
	token.KW_PROTECTED: ast.VisFamily,
	token.KW_COMMON:   ast.VisCommon,
	token.KW_GLOBAL:   ast.VisGlobal,
	token.KW_EXTERNAL: ast.VisExternal,
}

// parseVisibility consumes a leading visibility modifier if present,
// returning VisUnspecified otherwise (spec §4.7).
func (p *Parser) parseVisibility() ast.Visibility {
	if vis, ok := visibilityKeywords[p.cur_().Kind]; ok {
		p.advance()
		return vis
	}
	return ast.VisUnspecified
}

// parseSetterVisibility consumes an optional trailing `<modifier>(set)`
// immediately following the getter's own visibility modifier (spec §4.7),
// e.g. `public private(set) var x: Int`. Returns nil if no setter-visibility
// clause is present. The lexer never reserves `set` as a keyword, so it is
// recognized here as a contextual identifier rather than a token.Kind.
func (p *Parser) parseSetterVisibility(getter ast.Visibility) *ast.Visibility {
	vis, ok := visibilityKeywords[p.cur_().Kind]
	if !ok {
		return nil
	}
	if !(p.peek(1).Kind == token.LPAREN && p.peek(2).Kind == token.IDENT && p.peek(2).Text == "set" && p.peek(3).Kind == token.RPAREN) {
		return nil
	}
	kwTok := p.advance()
	p.advance() // (
	p.advance() // set
	p.advance() // )
	if visibilityRank(vis) > visibilityRank(getter) {
		p.fail(diagnostics.ErrInvalidSetterVis, p.loc(kwTok), vis, getter)
	}
	return &vis
}

// visibilityRank orders visibilities from most to least restrictive, used
// to validate that a setter is at least as restrictive as its getter
// (spec §4.7, diagnostics.ErrInvalidSetterVis).
func visibilityRank(v ast.Visibility) int {
	switch v {
	case ast.VisPrivate:
		return 0
	case ast.VisFamily:
		return 1
	case ast.VisInternal:
		return 2
	case ast.VisCommon:
		return 2
	case ast.VisPublic:
		return 3
	case ast.VisGlobal:
		return 3
	case ast.VisExternal:
		return 3
	default:
		return 3
	}
}

// ---- attributes -----------------------------------------------------------

// parseAttributes consumes zero or more leading `@name` / `@name(args)` /
// pre-tokenized `@intrinsic` attributes (spec §4.7).
func (p *Parser) parseAttributes() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.check(token.AT) || p.check(token.ATTR_INTRINSIC) {
		if p.check(token.ATTR_INTRINSIC) {
			t := p.advance()
			attrs = append(attrs, &ast.Attribute{NodeBase: p.nb(t), Name: "intrinsic"})
			continue
		}
		at := p.advance()
		name := p.expect(token.IDENT, "attribute name")
		attr := &ast.Attribute{NodeBase: p.nb(at), Name: name.Text}
		if p.match(token.LPAREN) {
			for !p.check(token.RPAREN) {
				attr.Args = append(attr.Args, p.parseAttributeArg())
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN, "')'")
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (p *Parser) parseAttributeArg() ast.Expression {
	return p.parsePrimary()
}

// nb is shorthand for constructing the embedded ast.NodeBase every
// node-literal across this package needs.
func (p *Parser) nb(t token.Token) ast.NodeBase {
	return ast.NodeBase{Loc: p.loc(t)}
}
