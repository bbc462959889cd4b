// C9: the top-level declaration parser (spec §4.7) and the Program entry
// point (spec §3.5 lifecycle: construct once, call Parse once).
//
// Grounded on the teacher's internal/parser/declarations.go dispatch table
// keyed by leading keyword, generalized to route the routine/variant
// keyword choice through dialect.Descriptor instead of a hardcoded keyword.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/lexer"
	"github.com/forgelang/forge-parser/internal/token"
)

// Parse consumes the whole token vector and returns the Program root (spec
// §3.5, §6.1). It is not safe to call more than once on the same Parser.
func (p *Parser) Parse() *ast.Program {
	start := p.curLoc()
	p.skipStatementSeparators()
	var decls []ast.Declaration
	for !p.check(token.EOF) {
		if d := p.parseDeclarationRecovering(); d != nil {
			decls = append(decls, d)
		}
		p.skipStatementSeparators()
	}
	if !p.indentBalanced() {
		p.warn(diagnostics.CK001, diagnostics.Warning, "unbalanced indentation at end of file")
	}
	return &ast.Program{NodeBase: ast.NodeBase{Loc: start}, Declarations: decls}
}

// parseDeclaration dispatches on the leading token, after visibility and
// attributes have been peeled off (spec §4.7).
func (p *Parser) parseDeclaration() ast.Declaration {
	vis := p.parseVisibility()
	setterVis := p.parseSetterVisibility(vis)
	attrs := p.parseAttributes()
	t := p.cur_()

	switch {
	case t.Kind == token.KW_NAMESPACE:
		return p.parseNamespaceDecl()
	case t.Kind == token.KW_IMPORT:
		return p.parseImportDecl()
	case t.Kind == token.KW_DEFINE:
		return p.parseDefineDecl()
	case t.Kind == token.KW_USING:
		return p.parseUsingDecl(vis)
	case t.Kind == token.KW_PRESET:
		d := p.parsePresetStmt().(*ast.PresetDecl)
		d.Visibility = vis
		return d
	case t.Kind == token.KW_VAR || t.Kind == token.KW_LET:
		d := p.parseVarOrLetStmt()
		if vd, ok := d.(*ast.VariableDecl); ok {
			vd.Visibility = vis
			vd.GetterVis = vis
			vd.SetterVis = setterVis
			return vd
		}
		p.fail(diagnostics.ErrUnexpectedToken, p.curLoc(), t.Kind)
		panic(bailout{})
	case p.dialect.IsRoutineKeyword(t.Kind):
		return p.parseRoutineDecl(vis, attrs)
	case t.Kind == token.KW_ENTITY:
		return p.parseEntityDecl(vis)
	case t.Kind == token.KW_RECORD:
		return p.parseRecordDecl(vis)
	case t.Kind == token.KW_RESIDENT:
		return p.parseResidentDecl(vis)
	case t.Kind == token.KW_CHOICE:
		return p.parseChoiceDecl(vis)
	case t.Kind == token.KW_VARIANT || t.Kind == p.dialect.VariantMutationKeyword:
		return p.parseVariantDecl(vis)
	case t.Kind == token.KW_PROTOCOL:
		return p.parseProtocolDecl(vis)
	case t.Kind == token.KW_IMPORTED:
		return p.parseImportedDecl(attrs)
	default:
		p.fail(diagnostics.ErrUnexpectedToken, p.curLoc(), t.Kind)
		panic(bailout{})
	}
}

func (p *Parser) parseNamespaceDecl() ast.Declaration {
	nsTok := p.advance()
	path := []string{p.expect(token.TYPE_IDENT, "namespace segment").Text}
	for p.match(token.DOT) {
		path = append(path, p.expect(token.TYPE_IDENT, "namespace segment").Text)
	}
	return &ast.NamespaceDecl{NodeBase: p.nb(nsTok), Path: path}
}

func (p *Parser) parseImportDecl() ast.Declaration {
	impTok := p.advance()
	var specific []string
	if p.match(token.LBRACE) {
		for !p.check(token.RBRACE) {
			specific = append(specific, p.expect(token.IDENT, "imported name").Text)
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RBRACE, "'}'")
		p.expect(token.KW_FROM, "'from'")
	}
	pathTok := p.expect(token.TEXT_LIT, "module path")
	decl := &ast.ImportDecl{NodeBase: p.nb(impTok), ModulePath: pathTok.Text, SpecificImports: specific}
	if p.match(token.KW_AS) {
		decl.Alias = p.expect(token.TYPE_IDENT, "import alias").Text
	}
	return decl
}

func (p *Parser) parseDefineDecl() ast.Declaration {
	defTok := p.advance()
	newName := p.expect(token.TYPE_IDENT, "new type name")
	p.expect(token.ASSIGN, "'='")
	oldName := p.parseType()
	return &ast.DefineDecl{NodeBase: p.nb(defTok), OldName: oldName.Name, NewName: newName.Text}
}

// parseUsingDecl parses a type alias binding; UsingDecl carries no
// Visibility field (spec §3.3), so vis is accepted for dispatch symmetry
// with its sibling declaration forms and otherwise discarded.
func (p *Parser) parseUsingDecl(vis ast.Visibility) ast.Declaration {
	_ = vis
	usingTok := p.advance()
	typ := p.parseType()
	alias := ""
	if p.match(token.KW_AS) {
		alias = p.expect(token.IDENT, "using alias").Text
	}
	return &ast.UsingDecl{NodeBase: p.nb(usingTok), Type: typ, Alias: alias}
}

// parseRoutineDecl covers spec §4.7's full routine header complexity:
// namespace-qualified names, generics before or after the final dot,
// failable `!` suffix, `me` parameter, default values, and a body that is
// nil for @intrinsic/protocol-signature routines.
func (p *Parser) parseRoutineDecl(vis ast.Visibility, attrs []*ast.Attribute) *ast.RoutineDecl {
	routineTok := p.advance()
	namePath := []string{p.expect(token.IDENT, "routine name").Text}
	var methodGenerics []*ast.GenericParam
	var generics []*ast.GenericParam

	if p.check(token.LT) {
		generics = p.parseGenericParamList()
	}
	for p.check(token.DOT) {
		p.advance()
		namePath = append(namePath, p.expect(token.IDENT, "routine name segment").Text)
		if p.check(token.LT) {
			methodGenerics = p.parseGenericParamList()
		}
	}

	failable := p.match(token.BANG)
	p.expect(token.LPAREN, "'('")
	params := p.parseParameterList()
	p.expect(token.RPAREN, "')'")

	var retType *ast.TypeExpression
	if p.match(token.ARROW) {
		retType = p.parseType()
	}

	var trailing []*ast.Constraint
	if p.dialect.IsConstraintClauseKeyword(p.cur_().Kind) {
		trailing = p.parseConstraintClause()
	}

	decl := &ast.RoutineDecl{
		NodeBase: p.nb(routineTok), NamePath: namePath,
		GenericParams: generics, MethodGenericParams: methodGenerics,
		IsFailable: failable, Parameters: params, ReturnType: retType,
		Constraints: mergeConstraints(append(append([]*ast.GenericParam{}, generics...), methodGenerics...), trailing),
		Visibility:  vis, Attributes: attrs,
	}
	if len(generics) > 0 {
		defer p.popGenericScope()
	}
	if len(methodGenerics) > 0 {
		defer p.popGenericScope()
	}

	if p.dialect.BlockStyle == config.IndentDelimited {
		p.match(token.COLON)
	}
	if p.hasUpcomingBody() {
		decl.Body = p.parseBlock()
	}
	return decl
}

// hasUpcomingBody reports whether a block follows the current position: an
// immediate '{' in brace dialects, or a run of Newlines followed by an
// Indent in indentation dialects. A signature-only routine (@intrinsic,
// protocol member, ImportedDecl) is followed by a same-level Newline with
// no Indent and is left body-less (spec §4.7).
func (p *Parser) hasUpcomingBody() bool {
	if p.dialect.BlockStyle == config.BraceDelimited {
		return p.check(token.LBRACE)
	}
	i := 0
	for p.peek(i).Kind == token.NEWLINE {
		i++
	}
	return p.peek(i).Kind == token.INDENT
}

// parseParameterList parses a routine/lambda parameter list body (spec
// §4.7): an optional leading `me`, typed parameters with optional defaults,
// and a variadic trailing parameter. A variadic parameter is accepted
// wherever this list is parsed; no caller limits it to imported (FFI)
// declarations.
func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	for !p.check(token.RPAREN) {
		params = append(params, p.parseParameter())
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	t := p.cur_()
	if t.Kind == token.KW_ME {
		p.advance()
		return &ast.Parameter{NodeBase: p.nb(t), Name: "me", IsSelf: true}
	}
	variadic := false
	if p.check(token.DOT) && p.peek(1).Kind == token.DOT && p.peek(2).Kind == token.DOT {
		p.advance()
		p.advance()
		p.advance()
		variadic = true
	}
	nameTok := p.expect(token.IDENT, "parameter name")
	p.expect(token.COLON, "':'")
	typ := p.parseType()
	param := &ast.Parameter{NodeBase: p.nb(nameTok), Name: nameTok.Text, Type: typ, IsVariadic: variadic}
	if p.match(token.ASSIGN) {
		param.Default = p.parseExpression(config.ASSIGNMENT)
	}
	return param
}

func (p *Parser) parseLambdaParameterList() []*ast.Parameter {
	p.expect(token.LPAREN, "'('")
	params := p.parseParameterList()
	p.expect(token.RPAREN, "')'")
	return params
}

func (p *Parser) parseEntityDecl(vis ast.Visibility) *ast.EntityDecl {
	entTok := p.advance()
	nameTok := p.expect(token.TYPE_IDENT, "entity name")
	var generics []*ast.GenericParam
	if p.check(token.LT) {
		generics = p.parseGenericParamList()
		defer p.popGenericScope()
	}
	var base *ast.TypeExpression
	var protocols []*ast.TypeExpression
	if p.match(token.COLON) {
		base = p.parseType()
		for p.match(token.AMP) {
			protocols = append(protocols, p.parseType())
		}
	}
	var trailing []*ast.Constraint
	if p.dialect.IsConstraintClauseKeyword(p.cur_().Kind) {
		trailing = p.parseConstraintClause()
	}
	members := p.parseMemberBlock()
	return &ast.EntityDecl{
		NodeBase: p.nb(entTok), Name: nameTok.Text, GenericParams: generics,
		Constraints: mergeConstraints(generics, trailing), BaseClass: base,
		Protocols: protocols, Members: members, Visibility: vis,
	}
}

func (p *Parser) parseRecordDecl(vis ast.Visibility) *ast.RecordDecl {
	recTok := p.advance()
	nameTok := p.expect(token.TYPE_IDENT, "record name")
	var generics []*ast.GenericParam
	if p.check(token.LT) {
		generics = p.parseGenericParamList()
		defer p.popGenericScope()
	}
	var protocols []*ast.TypeExpression
	if p.match(token.COLON) {
		protocols = append(protocols, p.parseType())
		for p.match(token.AMP) {
			protocols = append(protocols, p.parseType())
		}
	}
	var trailing []*ast.Constraint
	if p.dialect.IsConstraintClauseKeyword(p.cur_().Kind) {
		trailing = p.parseConstraintClause()
	}
	members := p.parseMemberBlock()
	return &ast.RecordDecl{
		NodeBase: p.nb(recTok), Name: nameTok.Text, GenericParams: generics,
		Constraints: mergeConstraints(generics, trailing), Protocols: protocols,
		Members: members, Visibility: vis,
	}
}

func (p *Parser) parseResidentDecl(vis ast.Visibility) *ast.ResidentDecl {
	resTok := p.advance()
	nameTok := p.expect(token.TYPE_IDENT, "resident name")
	var protocols []*ast.TypeExpression
	if p.match(token.COLON) {
		protocols = append(protocols, p.parseType())
		for p.match(token.AMP) {
			protocols = append(protocols, p.parseType())
		}
	}
	members := p.parseMemberBlock()
	return &ast.ResidentDecl{NodeBase: p.nb(resTok), Name: nameTok.Text, Protocols: protocols, Members: members, Visibility: vis}
}

// parseMemberBlock reads the `{ ... }`/indented body of an
// Entity/Record/Resident, each of whose members is itself a declaration
// (spec §4.7).
func (p *Parser) parseMemberBlock() []ast.Declaration {
	brace := p.dialect.BlockStyle == config.BraceDelimited
	if brace {
		p.expect(token.LBRACE, "'{'")
	} else {
		p.skipStatementSeparators()
		p.expect(token.INDENT, "indented member block")
		p.pushIndent()
	}
	p.skipStatementSeparators()
	closer := token.RBRACE
	if !brace {
		closer = token.DEDENT
	}
	var members []ast.Declaration
	for !p.check(closer) && !p.check(token.EOF) {
		if d := p.parseDeclarationRecovering(); d != nil {
			members = append(members, d)
		}
		p.skipStatementSeparators()
	}
	p.expect(closer, "end of member block")
	if !brace {
		p.popIndent()
	}
	return members
}

func (p *Parser) parseChoiceDecl(vis ast.Visibility) *ast.ChoiceDecl {
	choiceTok := p.advance()
	nameTok := p.expect(token.TYPE_IDENT, "choice name")
	brace := p.dialect.BlockStyle == config.BraceDelimited
	if brace {
		p.expect(token.LBRACE, "'{'")
	} else {
		p.skipStatementSeparators()
		p.expect(token.INDENT, "indented choice block")
		p.pushIndent()
	}
	p.skipStatementSeparators()
	closer := token.RBRACE
	if !brace {
		closer = token.DEDENT
	}
	var cases []*ast.ChoiceCase
	var methods []*ast.RoutineDecl
	for !p.check(closer) && !p.check(token.EOF) {
		if p.dialect.IsRoutineKeyword(p.cur_().Kind) {
			methods = append(methods, p.parseRoutineDecl(ast.VisUnspecified, nil))
		} else {
			caseTok := p.expect(token.TYPE_IDENT, "case name")
			c := &ast.ChoiceCase{NodeBase: p.nb(caseTok), Name: caseTok.Text}
			if p.match(token.ASSIGN) {
				valTok := p.expect(token.INT_LIT, "integer value")
				v, ok := p.parseIntLiteralTokenValue(valTok)
				if ok {
					c.IntValue = &v
				}
			}
			cases = append(cases, c)
			p.match(token.COMMA)
		}
		p.skipStatementSeparators()
	}
	p.expect(closer, "end of choice block")
	if !brace {
		p.popIndent()
	}
	return &ast.ChoiceDecl{NodeBase: p.nb(choiceTok), Name: nameTok.Text, Cases: cases, Methods: methods, Visibility: vis}
}

func (p *Parser) parseVariantDecl(vis ast.Visibility) *ast.VariantDecl {
	kwTok := p.advance()
	kind := ast.VariantKindPlain
	switch kwTok.Kind {
	case token.KW_MUTANT:
		kind = ast.VariantKindMutant
	case token.KW_CHIMERA:
		kind = ast.VariantKindChimera
	}
	nameTok := p.expect(token.TYPE_IDENT, "variant name")
	var generics []*ast.GenericParam
	if p.check(token.LT) {
		generics = p.parseGenericParamList()
		defer p.popGenericScope()
	}
	brace := p.dialect.BlockStyle == config.BraceDelimited
	if brace {
		p.expect(token.LBRACE, "'{'")
	} else {
		p.skipStatementSeparators()
		p.expect(token.INDENT, "indented variant block")
		p.pushIndent()
	}
	p.skipStatementSeparators()
	closer := token.RBRACE
	if !brace {
		closer = token.DEDENT
	}
	var cases []*ast.VariantCase
	var methods []*ast.RoutineDecl
	for !p.check(closer) && !p.check(token.EOF) {
		if p.dialect.IsRoutineKeyword(p.cur_().Kind) {
			methods = append(methods, p.parseRoutineDecl(ast.VisUnspecified, nil))
		} else {
			caseTok := p.expect(token.TYPE_IDENT, "case name")
			vc := &ast.VariantCase{NodeBase: p.nb(caseTok), Name: caseTok.Text}
			if p.match(token.LPAREN) {
				vc.AssociatedType = p.parseType()
				p.expect(token.RPAREN, "')'")
			}
			cases = append(cases, vc)
			p.match(token.COMMA)
		}
		p.skipStatementSeparators()
	}
	p.expect(closer, "end of variant block")
	if !brace {
		p.popIndent()
	}
	return &ast.VariantDecl{NodeBase: p.nb(kwTok), Name: nameTok.Text, GenericParams: generics, Cases: cases, Kind: kind, Methods: methods, Visibility: vis}
}

func (p *Parser) parseProtocolDecl(vis ast.Visibility) *ast.ProtocolDecl {
	protoTok := p.advance()
	nameTok := p.expect(token.TYPE_IDENT, "protocol name")
	var generics []*ast.GenericParam
	if p.check(token.LT) {
		generics = p.parseGenericParamList()
		defer p.popGenericScope()
	}
	var parents []*ast.TypeExpression
	if p.match(token.COLON) {
		parents = append(parents, p.parseType())
		for p.match(token.AMP) {
			parents = append(parents, p.parseType())
		}
	}
	brace := p.dialect.BlockStyle == config.BraceDelimited
	if brace {
		p.expect(token.LBRACE, "'{'")
	} else {
		p.skipStatementSeparators()
		p.expect(token.INDENT, "indented protocol block")
		p.pushIndent()
	}
	p.skipStatementSeparators()
	closer := token.RBRACE
	if !brace {
		closer = token.DEDENT
	}
	var sigs []*ast.RoutineDecl
	var fields []*ast.Parameter
	for !p.check(closer) && !p.check(token.EOF) {
		if p.dialect.IsRoutineKeyword(p.cur_().Kind) {
			sigs = append(sigs, p.parseRoutineDecl(ast.VisUnspecified, nil))
		} else {
			fields = append(fields, p.parseParameter())
			p.match(token.COMMA)
		}
		p.skipStatementSeparators()
	}
	p.expect(closer, "end of protocol block")
	if !brace {
		p.popIndent()
	}
	return &ast.ProtocolDecl{
		NodeBase: p.nb(protoTok), Name: nameTok.Text, GenericParams: generics,
		ParentProtocols: parents, MethodSignatures: sigs, RequiredFields: fields, Visibility: vis,
	}
}

// parseImportedDecl covers the FFI declaration form (spec §3.3): the only
// place a variadic parameter is legal.
func (p *Parser) parseImportedDecl(attrs []*ast.Attribute) *ast.ImportedDecl {
	impTok := p.advance()
	callConv := ""
	for _, a := range attrs {
		if a.Name == "callconv" && len(a.Args) == 1 {
			if lit, ok := a.Args[0].(*ast.TextLiteral); ok {
				callConv = lit.Value
			}
		}
	}
	nameTok := p.expect(token.IDENT, "imported routine name")
	var generics []*ast.GenericParam
	if p.check(token.LT) {
		generics = p.parseGenericParamList()
		defer p.popGenericScope()
	}
	p.expect(token.LPAREN, "'('")
	params := p.parseParameterList()
	variadic := false
	if p.check(token.COMMA) && p.peek(1).Kind == token.DOT {
		p.advance()
	}
	if p.check(token.DOT) && p.peek(1).Kind == token.DOT && p.peek(2).Kind == token.DOT {
		p.advance()
		p.advance()
		p.advance()
		variadic = true
	}
	p.expect(token.RPAREN, "')'")
	var retType *ast.TypeExpression
	if p.match(token.ARROW) {
		retType = p.parseType()
	}
	return &ast.ImportedDecl{
		NodeBase: p.nb(impTok), Name: nameTok.Text, Parameters: params,
		ReturnType: retType, CallingConvention: callConv, Variadic: variadic, GenericParams: generics,
	}
}

// parseIntLiteralTokenValue converts an already-consumed INT_LIT token's
// text, used by Choice case values which must fit an int64 (spec §4.7).
func (p *Parser) parseIntLiteralTokenValue(t token.Token) (int64, bool) {
	n, err := lexer.ParseIntText(t.Text)
	if err != nil {
		p.fail(diagnostics.ErrInvalidLiteral, p.loc(t), t.Text)
		return 0, false
	}
	return n, true
}
