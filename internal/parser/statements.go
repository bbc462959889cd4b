// C8: the statement parser (spec §4.6, §4.6.1).
//
// Grounded on the teacher's internal/parser/statements.go dispatch-by-
// leading-token switch, generalized to read a block by brace or by
// indentation depending on the active dialect.Descriptor rather than always
// assuming braces.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/token"
)

// parseBlock reads one block in the active dialect's delimiter style:
// brace-delimited for Forge, indent-delimited for Suflae and Cake (spec
// §4.9).
func (p *Parser) parseBlock() *ast.BlockStmt {
	if p.dialect.BlockStyle == config.BraceDelimited {
		return p.parseBraceBlock()
	}
	return p.parseIndentBlock()
}

func (p *Parser) parseBraceBlock() *ast.BlockStmt {
	lb := p.expect(token.LBRACE, "'{'")
	p.skipStatementSeparators()
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmts = append(stmts, p.parseStatementRecovering())
		p.skipStatementSeparators()
	}
	p.expect(token.RBRACE, "'}'")
	return &ast.BlockStmt{NodeBase: p.nb(lb), Statements: stmts}
}

// parseIndentBlock reads a Suflae/Cake block as Newline Indent
// statement* Dedent, using the C10 balance tracking in indent.go. An
// optional stray closing brace (a carried-over habit from brace dialects)
// is tolerated with a CK001 style warning rather than a hard error.
func (p *Parser) parseIndentBlock() *ast.BlockStmt {
	start := p.curLoc()
	p.skipStatementSeparators()
	p.expect(token.INDENT, "indented block")
	p.pushIndent()
	var stmts []ast.Statement
	for !p.check(token.DEDENT) && !p.check(token.EOF) {
		if p.check(token.RBRACE) {
			p.warn(diagnostics.CK001, diagnostics.StyleViolation, "unnecessary closing brace in an indentation-delimited block")
			p.advance()
			continue
		}
		stmts = append(stmts, p.parseStatementRecovering())
		p.skipStatementSeparators()
	}
	p.expect(token.DEDENT, "dedent")
	p.popIndent()
	return &ast.BlockStmt{NodeBase: ast.NodeBase{Loc: start}, Statements: stmts}
}

// parseStatement dispatches on the leading token (spec §4.6).
func (p *Parser) parseStatement() ast.Statement {
	attrs := p.parseAttributes()
	_ = attrs // statement-level attributes are rare; carried for future members, not yet surfaced on any Statement node

	t := p.cur_()
	switch {
	case t.Kind == token.KW_IF:
		return p.parseIfStmt()
	case t.Kind == token.KW_UNLESS:
		return p.parseUnlessStmt()
	case t.Kind == token.KW_WHILE:
		return p.parseWhileStmt()
	case t.Kind == token.KW_LOOP:
		return p.parseLoopStmt()
	case t.Kind == token.KW_FOR:
		return p.parseForStmt()
	case t.Kind == token.KW_WHEN:
		return p.parseWhenStmt()
	case t.Kind == token.KW_RETURN:
		return p.parseReturnStmt()
	case t.Kind == token.KW_BREAK:
		p.advance()
		return &ast.BreakStmt{NodeBase: p.nb(t)}
	case t.Kind == token.KW_CONTINUE:
		p.advance()
		return &ast.ContinueStmt{NodeBase: p.nb(t)}
	case t.Kind == token.KW_THROW:
		p.advance()
		val := p.parseExpression(config.LOWEST)
		return &ast.ThrowStmt{NodeBase: p.nb(t), Value: val}
	case t.Kind == token.KW_ABSENT:
		p.advance()
		return &ast.AbsentStmt{NodeBase: p.nb(t)}
	case t.Kind == token.KW_PASS:
		p.advance()
		return &ast.PassStmt{NodeBase: p.nb(t)}
	case t.Kind == token.KW_VAR || t.Kind == token.KW_LET:
		return p.parseVarOrLetStmt()
	case t.Kind == token.KW_PRESET:
		return p.parsePresetStmt()
	case t.Kind == token.KW_VIEWING, t.Kind == token.KW_HIJACKING, t.Kind == token.KW_INSPECTING, t.Kind == token.KW_SEIZING:
		return p.parseScopedAccessStmt()
	case t.Kind == token.KW_DANGER:
		return p.parseDangerStmt()
	case t.Kind == token.KW_MAYHEM:
		return p.parseMayhemStmt()
	case t.Kind == token.LBRACE:
		blk := p.parseBraceBlock()
		return blk
	case p.dialect.DisplaySugar && t.Kind == token.IDENT && t.Text == "display" && p.peek(1).Kind == token.LPAREN:
		return p.parseDisplaySugar()
	default:
		expr := p.parseExpression(config.LOWEST)
		return &ast.ExpressionStmt{NodeBase: p.nb(t), Expr: expr}
	}
}

// parseDisplaySugar desugars Cake's `display(args...)` statement into a
// call to the shared `print` routine (spec §1 dialect differences).
func (p *Parser) parseDisplaySugar() ast.Statement {
	nameTok := p.advance()
	callee := &ast.Identifier{NodeBase: p.nb(nameTok), Name: "print"}
	call := p.parseCallArgs(callee, false)
	return &ast.ExpressionStmt{NodeBase: p.nb(nameTok), Expr: call}
}

func (p *Parser) parseIfStmt() ast.Statement {
	ifTok := p.advance()
	cond := p.parseExpression(config.LOWEST)
	then := p.parseBlock()
	stmt := &ast.IfStmt{NodeBase: p.nb(ifTok), Cond: cond, Then: then}
	if p.check(token.KW_ELSEIF) {
		stmt.Else = p.parseElseIf()
	} else if p.match(token.KW_ELSE) {
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseElseIf() ast.Statement {
	elseifTok := p.advance()
	cond := p.parseExpression(config.LOWEST)
	then := p.parseBlock()
	stmt := &ast.IfStmt{NodeBase: p.nb(elseifTok), Cond: cond, Then: then}
	if p.check(token.KW_ELSEIF) {
		stmt.Else = p.parseElseIf()
	} else if p.match(token.KW_ELSE) {
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// parseUnlessStmt desugars `unless cond { a } else { b }` into
// `if not cond { a } else { b }` (spec §4.6 dialect differences).
func (p *Parser) parseUnlessStmt() ast.Statement {
	unlessTok := p.advance()
	cond := p.parseExpression(config.LOWEST)
	negated := &ast.UnaryExpr{NodeBase: p.nb(unlessTok), Op: token.KW_NOT, Operand: cond}
	then := p.parseBlock()
	stmt := &ast.IfStmt{NodeBase: p.nb(unlessTok), Cond: negated, Then: then}
	if p.match(token.KW_ELSE) {
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhileStmt() ast.Statement {
	whileTok := p.advance()
	cond := p.parseExpression(config.LOWEST)
	body := p.parseBlock()
	return &ast.WhileStmt{NodeBase: p.nb(whileTok), Cond: cond, Body: body}
}

// parseLoopStmt models `loop { ... }` as while-true (spec §3.3).
func (p *Parser) parseLoopStmt() ast.Statement {
	loopTok := p.advance()
	body := p.parseBlock()
	trueLit := &ast.BoolLiteral{NodeBase: p.nb(loopTok), Value: true}
	return &ast.WhileStmt{NodeBase: p.nb(loopTok), Cond: trueLit, Body: body}
}

func (p *Parser) parseForStmt() ast.Statement {
	forTok := p.advance()
	nameTok := p.expect(token.IDENT, "loop variable")
	p.expect(token.KW_IN, "'in'")
	iterable := p.parseExpression(config.LOWEST)
	body := p.parseBlock()
	return &ast.ForStmt{NodeBase: p.nb(forTok), VarName: nameTok.Text, Iterable: iterable, Body: body}
}

// parseWhenStmt implements spec §4.6.1: subject is optional (defaults to a
// synthetic `true` literal), each clause is `pattern => body`, and the
// inWhenPattern/inWhenClauseBody flags are saved and restored with defer so
// a guard's own nested `is`/lambda expressions see ordinary precedence.
func (p *Parser) parseWhenStmt() ast.Statement {
	whenTok := p.advance()
	var subject ast.Expression
	if !p.check(token.LBRACE) && !p.check(token.INDENT) && !p.check(token.NEWLINE) {
		subject = p.parseExpression(config.LOWEST)
	} else {
		subject = &ast.BoolLiteral{NodeBase: p.nb(whenTok), Value: true}
	}

	open := p.dialect.BlockStyle == config.BraceDelimited
	if open {
		p.expect(token.LBRACE, "'{'")
	} else {
		p.skipStatementSeparators()
		p.expect(token.INDENT, "indented when-block")
		p.pushIndent()
	}
	p.skipStatementSeparators()

	var clauses []*ast.WhenClause
	closer := token.RBRACE
	if !open {
		closer = token.DEDENT
	}
	for !p.check(closer) && !p.check(token.EOF) {
		clauses = append(clauses, p.parseWhenClause())
		p.match(token.COMMA)
		p.skipStatementSeparators()
	}
	p.expect(closer, "end of when block")
	if !open {
		p.popIndent()
	}

	if len(clauses) == 1 {
		if _, ok := clauses[0].Pattern.(*ast.WildcardPattern); ok {
			p.warn(diagnostics.CK002, diagnostics.Info, "when clause consists only of a wildcard else")
		}
	}
	return &ast.WhenStmt{NodeBase: p.nb(whenTok), Subject: subject, Clauses: clauses}
}

// parseWhenClause reads one `pattern => body` clause (spec §4.6.1). A
// leading `is` is sugar that simply selects pattern context before falling
// into the ordinary pattern grammar (§4.5 already produces a TypePattern for
// a bare type-identifier); a leading `else` binds an optional name and
// always matches (an IdentifierPattern when named, else a WildcardPattern).
func (p *Parser) parseWhenClause() *ast.WhenClause {
	startTok := p.cur_()
	oldPat, oldBody := p.inWhenPattern, p.inWhenClauseBody
	defer func() { p.inWhenPattern, p.inWhenClauseBody = oldPat, oldBody }()
	p.inWhenPattern = true

	var pat ast.Pattern
	switch {
	case p.check(token.KW_ELSE):
		p.advance()
		if p.check(token.IDENT) {
			name := p.advance()
			pat = &ast.IdentifierPattern{NodeBase: p.nb(startTok), Name: name.Text}
		} else {
			pat = &ast.WildcardPattern{NodeBase: p.nb(startTok)}
		}
		if p.check(token.KW_IF) {
			ifTok := p.advance()
			cond := p.parseExpression(config.LOWEST)
			pat = &ast.GuardPattern{NodeBase: p.nb(ifTok), Inner: pat, Condition: cond}
		}
	case p.check(token.KW_IS):
		p.advance()
		pat = p.parsePattern()
	default:
		pat = p.parsePattern()
	}
	p.inWhenPattern = oldPat

	p.expect(token.FAT_ARROW, "'=>'")

	p.inWhenClauseBody = true
	var body ast.Statement
	if p.check(token.LBRACE) {
		body = p.parseBraceBlock()
	} else {
		body = p.parseStatement()
	}
	p.inWhenClauseBody = oldBody

	return &ast.WhenClause{NodeBase: p.nb(startTok), Pattern: pat, Body: body}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	retTok := p.advance()
	if p.check(token.NEWLINE) || p.check(token.RBRACE) || p.check(token.DEDENT) || p.check(token.EOF) || p.check(token.SEMICOLON) {
		return &ast.ReturnStmt{NodeBase: p.nb(retTok)}
	}
	val := p.parseExpression(config.LOWEST)
	return &ast.ReturnStmt{NodeBase: p.nb(retTok), Value: val}
}

// parseVarOrLetStmt covers `var`/`let name [: T] [= expr]` and the
// destructuring form `let (a, b) = expr` (spec §4.6, S7).
func (p *Parser) parseVarOrLetStmt() ast.Statement {
	kwTok := p.advance()
	mutable := kwTok.Kind == token.KW_VAR

	if p.check(token.LPAREN) {
		lp := p.advance()
		bindings := p.parseDestructureBindingList()
		p.expect(token.RPAREN, "')'")
		pat := &ast.DestructuringPattern{NodeBase: p.nb(lp), Bindings: bindings}
		p.expect(token.ASSIGN, "'='")
		val := p.parseExpression(config.LOWEST)
		return &ast.DestructuringStmt{NodeBase: p.nb(kwTok), Pattern: pat, Value: val, Mutable: mutable}
	}

	nameTok := p.expect(token.IDENT, "variable name")
	var typ *ast.TypeExpression
	if p.match(token.COLON) {
		typ = p.parseType()
	}
	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseExpression(config.LOWEST)
	}
	return &ast.VariableDecl{NodeBase: p.nb(kwTok), Name: nameTok.Text, Type: typ, Initializer: init, Mutable: mutable}
}

func (p *Parser) parsePresetStmt() ast.Statement {
	presetTok := p.advance()
	nameTok := p.expect(token.IDENT, "constant name")
	var typ *ast.TypeExpression
	if p.match(token.COLON) {
		typ = p.parseType()
	}
	p.expect(token.ASSIGN, "'='")
	val := p.parseExpression(config.LOWEST)
	return &ast.PresetDecl{NodeBase: p.nb(presetTok), Name: nameTok.Text, Type: typ, Value: val}
}

var scopedAccessKeywordKind = map[token.Kind]ast.ScopedAccessKind{
	token.KW_VIEWING:    ast.ScopedViewing,
	token.KW_HIJACKING:  ast.ScopedHijacking,
	token.KW_INSPECTING: ast.ScopedInspecting,
	token.KW_SEIZING:    ast.ScopedSeizing,
}

// parseScopedAccessStmt covers both scoped-access orderings (spec §4.6,
// GLOSSARY): `viewing/hijacking <source> as <handle> { ... }`, and
// `inspecting/seizing <handle> from <source> { ... }`, the latter pair
// naming the handle first since they bind a borrowed view rather than an
// owned alias.
func (p *Parser) parseScopedAccessStmt() ast.Statement {
	kwTok := p.advance()
	var source ast.Expression
	var handle token.Token
	switch kwTok.Kind {
	case token.KW_INSPECTING, token.KW_SEIZING:
		handle = p.expect(token.IDENT, "handle name")
		p.expect(token.KW_FROM, "'from'")
		source = p.parseExpression(config.ASSIGNMENT)
	default:
		source = p.parseExpression(config.ASSIGNMENT)
		p.expect(token.KW_AS, "'as'")
		handle = p.expect(token.IDENT, "handle name")
	}
	body := p.parseBlock()
	return &ast.ScopedAccessStmt{
		NodeBase: p.nb(kwTok), Kind: scopedAccessKeywordKind[kwTok.Kind],
		Source: source, Handle: handle.Text, Body: body,
	}
}

func (p *Parser) parseDangerStmt() ast.Statement {
	kwTok := p.advance()
	p.expect(token.BANG, "'!'")
	body := p.parseBlock()
	return &ast.DangerStmt{NodeBase: p.nb(kwTok), Body: body}
}

func (p *Parser) parseMayhemStmt() ast.Statement {
	kwTok := p.advance()
	p.expect(token.BANG, "'!'")
	body := p.parseBlock()
	return &ast.MayhemStmt{NodeBase: p.nb(kwTok), Body: body}
}
