// C4: the Pratt expression engine (spec §4.2). One precedence-driven loop
// (parseAfterPrefix) handles ordinary left/right-associative binaries;
// chained comparisons, ranges, assignment desugaring, and the `is`/`follows`
// sub-grammar each get a dedicated branch because they build a different
// shape than a plain BinaryExpr.
//
// Grounded on the teacher's internal/parser/expressions.go Pratt loop and
// precedence table, generalized to this spec's richer operator set (overflow
// arithmetic variants, chained comparisons, sign folding into math/big).
package parser

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/config"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/lexer"
	"github.com/forgelang/forge-parser/internal/token"
)

// parseExpression is the engine's single entry point: parse a prefix term,
// then fold in everything at or above minPrec.
func (p *Parser) parseExpression(minPrec config.Precedence) ast.Expression {
	left := p.parsePrefix()
	return p.parseAfterPrefix(left, minPrec)
}

var compoundAssignToBinary = map[token.Kind]token.Kind{
	token.PLUS_ASSIGN: token.PLUS, token.MINUS_ASSIGN: token.MINUS,
	token.STAR_ASSIGN: token.STAR, token.SLASH_ASSIGN: token.SLASH,
	token.PERCENT_ASSIGN: token.PERCENT, token.AMP_ASSIGN: token.AMP,
	token.PIPE_ASSIGN: token.PIPE, token.CARET_ASSIGN: token.CARET,
	token.SHL_ASSIGN: token.SHL, token.SHR_ASSIGN: token.SHR,
	token.COALESCE_ASSIGN: token.COALESCE,
}

func isChainComparisonOp(k token.Kind) bool {
	switch k {
	case token.LT, token.LE, token.GT, token.GE, token.EQ, token.NE, token.SPACESHIP,
		token.KW_IN, token.KW_NOTIN, token.KW_FROM, token.KW_NOTFROM:
		return true
	}
	return false
}

func isIsExpressionOp(k token.Kind) bool {
	switch k {
	case token.KW_IS, token.KW_ISNOT, token.KW_FOLLOWS, token.KW_NOTFOLLOWS:
		return true
	}
	return false
}

func (p *Parser) parseAfterPrefix(left ast.Expression, minPrec config.Precedence) ast.Expression {
	for {
		k := p.cur_().Kind

		if k == token.QUESTION {
			if minPrec >= config.INLINE_CONDITIONAL {
				break
			}
			left = p.parseTernary(left)
			continue
		}

		if isIsExpressionOp(k) {
			if minPrec >= config.IS_EXPRESSION || p.inWhenPattern || p.inWhenClauseBody {
				break
			}
			left = p.parseIsExpression(left)
			continue
		}

		if isChainComparisonOp(k) {
			if minPrec >= config.COMPARISON {
				break
			}
			left = p.parseComparisonChain(left)
			continue
		}

		if k == token.KW_TO || k == token.KW_DOWNTO {
			if minPrec >= config.RANGE {
				break
			}
			left = p.parseRange(left)
			continue
		}

		if k == token.ASSIGN {
			if minPrec >= config.ASSIGNMENT {
				break
			}
			assignTok := p.advance()
			value := p.parseExpression(config.ASSIGNMENT - 1)
			left = &ast.AssignExpr{NodeBase: p.nb(assignTok), Left: left, Value: value}
			continue
		}

		if binOp, isCompound := compoundAssignToBinary[k]; isCompound {
			if minPrec >= config.ASSIGNMENT {
				break
			}
			assignTok := p.advance()
			value := p.parseExpression(config.ASSIGNMENT - 1)
			dup := p.cloneForDesugar(left)
			rhs := &ast.BinaryExpr{NodeBase: p.nb(assignTok), Left: dup, Op: binOp, Right: value}
			left = &ast.AssignExpr{NodeBase: p.nb(assignTok), Left: left, Value: rhs}
			continue
		}

		prec := config.PrecedenceOf(k)
		if prec == config.LOWEST || prec <= minPrec {
			break
		}
		op := p.advance()
		var right ast.Expression
		if config.IsRightAssociative(k) {
			right = p.parseExpression(prec - 1)
		} else {
			right = p.parseExpression(prec)
		}
		left = &ast.BinaryExpr{NodeBase: p.nb(op), Left: left, Op: k, Right: right}
	}
	return left
}

func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	q := p.advance()
	thenExpr := p.parseExpression(config.INLINE_CONDITIONAL)
	p.expect(token.COLON, "':'")
	elseExpr := p.parseExpression(config.INLINE_CONDITIONAL - 1)
	return &ast.ConditionalExpr{NodeBase: p.nb(q), Cond: cond, Then: thenExpr, Else: elseExpr}
}

// parseComparisonChain implements spec §4.2's chained-comparison
// accumulation and the S1/S2 scenarios directly: two or more operators
// produce a ChainedComparisonExpr after a direction-consistency check, one
// operator degrades to an ordinary BinaryExpr.
func (p *Parser) parseComparisonChain(first ast.Expression) ast.Expression {
	operands := []ast.Expression{first}
	var operators []token.Kind
	var opLocs []token.Location

	for isChainComparisonOp(p.cur_().Kind) {
		opTok := p.advance()
		operators = append(operators, opTok.Kind)
		opLocs = append(opLocs, p.loc(opTok))
		rhs := p.parseExpression(config.IS_EXPRESSION)
		operands = append(operands, rhs)
	}

	if len(operators) == 1 {
		return &ast.BinaryExpr{NodeBase: ast.NodeBase{Loc: opLocs[0]}, Left: operands[0], Op: operators[0], Right: operands[1]}
	}

	ascending, descending := false, false
	for _, op := range operators {
		switch {
		case token.IsAscendingComparison(op):
			ascending = true
		case token.IsDescendingComparison(op):
			descending = true
		}
	}
	if ascending && descending {
		p.fail(diagnostics.ErrInvalidComparison, opLocs[0])
	}

	return &ast.ChainedComparisonExpr{NodeBase: ast.NodeBase{Loc: opLocs[0]}, Operands: operands, Operators: operators}
}

// parseIsExpression implements the `is` / `follows` sub-grammar (spec §4.2):
// `expr is Type`, `expr is Type name`, `expr is Type(...)`, `isnot`, and the
// protocol-conformance `follows`/`notfollows` forms.
func (p *Parser) parseIsExpression(subject ast.Expression) ast.Expression {
	opTok := p.advance()

	if opTok.Kind == token.KW_FOLLOWS || opTok.Kind == token.KW_NOTFOLLOWS {
		protoType := p.parseType()
		pat := &ast.TypePattern{NodeBase: p.nb(opTok), Type: protoType}
		return &ast.IsPatternExpr{NodeBase: p.nb(opTok), Subject: subject, Op: opTok.Kind, Pattern: pat}
	}

	typ := p.parseType()
	binding := ""
	if p.check(token.IDENT) {
		binding = p.advance().Text
	}
	var destructure []*ast.DestructureBinding
	if p.match(token.LPAREN) {
		destructure = p.parseDestructureBindingList()
		p.expect(token.RPAREN, "')'")
	}
	pat := &ast.TypePattern{NodeBase: p.nb(opTok), Type: typ, Binding: binding, Destructure: destructure}
	return &ast.IsPatternExpr{NodeBase: p.nb(opTok), Subject: subject, Op: opTok.Kind, Pattern: pat}
}

// parseRange implements the Range desugaring (spec §4.2): `a to b [by/step
// s]` / `a downto b [...]`.
func (p *Parser) parseRange(start ast.Expression) ast.Expression {
	descending := p.check(token.KW_DOWNTO)
	opTok := p.advance()
	end := p.parseExpression(config.RANGE)
	var step ast.Expression
	if p.dialect.IsRangeStepKeyword(p.cur_().Kind) {
		stepTok := p.advance()
		if stepTok.Kind == token.KW_STEP && p.dialect.RangeStepKeyword != token.KW_STEP {
			p.warn(diagnostics.ST002, diagnostics.StyleViolation, "legacy 'step' keyword used outside the legacy dialect; prefer 'by'")
		}
		step = p.parseExpression(config.RANGE)
	}
	return &ast.RangeExpr{NodeBase: p.nb(opTok), Start: start, End: end, Step: step, Descending: descending}
}

// cloneForDesugar returns a distinct top-level node for the common
// assignable left-hand-side shapes, so `a <op>= b` can duplicate `a`'s
// sub-tree with equal locations but distinct node identity (spec §8.1.8).
func (p *Parser) cloneForDesugar(e ast.Expression) ast.Expression {
	switch v := e.(type) {
	case *ast.Identifier:
		c := *v
		return &c
	case *ast.MemberExpr:
		c := *v
		return &c
	case *ast.GenericMemberExpr:
		c := *v
		return &c
	case *ast.IndexExpr:
		c := *v
		return &c
	default:
		return e
	}
}

// ---- prefix / unary ------------------------------------------------------

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur_().Kind {
	case token.MINUS, token.PLUS, token.KW_NOT, token.TILDE:
		opTok := p.advance()
		operand := p.parseExpression(config.UNARY)
		if opTok.Kind == token.MINUS {
			if folded, ok := foldSign(operand); ok {
				return folded
			}
		}
		return &ast.UnaryExpr{NodeBase: p.nb(opTok), Op: opTok.Kind, Operand: operand}
	case token.KW_IF:
		return p.parseIfExpression()
	default:
		return p.parsePostfixChain(p.parsePrimary())
	}
}

// foldSign implements spec §4.2's unary-minus sign folding and §8.1.7's
// boundary case: `-9223372036854775808_s64` folds directly into the literal
// instead of producing "negate of an out-of-range positive".
func foldSign(e ast.Expression) (ast.Expression, bool) {
	switch v := e.(type) {
	case *ast.IntLiteral:
		v.Value = -v.Value
		return v, true
	case *ast.FloatLiteral:
		v.Value = -v.Value
		return v, true
	case *ast.BigIntLiteral:
		neg := new(big.Int).Neg(v.Value)
		if neg.IsInt64() {
			return &ast.IntLiteral{NodeBase: v.NodeBase, Value: neg.Int64(), Kind: v.Kind}, true
		}
		v.Value = neg
		return v, true
	}
	return nil, false
}

// ---- postfix loop ---------------------------------------------------------

// parsePostfixChain implements spec §4.2's postfix loop: repeated call,
// failable call, index, member, generic-method call, and `with(...)`.
func (p *Parser) parsePostfixChain(expr ast.Expression) ast.Expression {
	for {
		switch {
		case p.check(token.LPAREN):
			expr = p.parseCallArgs(expr, false)
		case p.check(token.BANG) && p.peek(1).Kind == token.LPAREN:
			p.advance()
			expr = p.parseCallArgs(expr, true)
		case p.check(token.LBRACKET):
			lb := p.advance()
			idx := p.parseExpression(config.LOWEST)
			p.expect(token.RBRACKET, "']'")
			expr = &ast.IndexExpr{NodeBase: p.nb(lb), Object: expr, Index: idx}
		case p.check(token.DOT):
			expr = p.parseMemberAccess(expr)
		case p.check(token.LT) && p.tryGenericArgs():
			expr = p.parseGenericPostfix(expr)
		case p.check(token.KW_WITH):
			expr = p.parseWithExpr(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseMemberAccess(expr ast.Expression) ast.Expression {
	dotTok := p.advance()
	var nameTok token.Token
	if p.checkAny(token.IDENT, token.TYPE_IDENT) {
		nameTok = p.advance()
	} else {
		nameTok = p.expect(token.IDENT, "member name")
	}

	if p.check(token.BANG) && p.peek(1).Kind == token.LPAREN {
		p.advance()
		return p.parseCallArgs(&ast.MemberExpr{NodeBase: p.nb(dotTok), Object: expr, Name: nameTok.Text, IsFailableAccess: true}, true)
	}
	if p.check(token.LT) && p.tryGenericArgs() {
		typeArgs := p.parseGenericArgsList()
		if p.check(token.LPAREN) {
			return p.parseGenericCallArgs(&ast.MemberExpr{NodeBase: p.nb(dotTok), Object: expr, Name: nameTok.Text}, typeArgs, false)
		}
		return &ast.GenericMemberExpr{NodeBase: p.nb(dotTok), Object: expr, Name: nameTok.Text, TypeArgs: typeArgs}
	}
	return &ast.MemberExpr{NodeBase: p.nb(dotTok), Object: expr, Name: nameTok.Text}
}

// tryGenericArgs implements spec §4.2's generic-method-vs-less-than
// disambiguation: scan ahead tracking `<` depth (a `>>` counts as two
// closers); if the matching closer is immediately followed by `(` or `.`,
// this is a generic argument list. A lowercase identifier only opens a
// generic argument if it names an in-scope generic parameter (`f<T>` is
// ambiguous lexically but `T` alone never is, since only TYPE_IDENT tokens
// are capitalized by convention); otherwise `a < b > (c)` must fall through
// to ordinary comparison parsing (S3).
func (p *Parser) tryGenericArgs() bool {
	first := p.peek(1)
	validStart := first.Kind == token.TYPE_IDENT || first.Kind == token.GT ||
		first.Kind == token.INT_LIT || first.Kind == token.BOOL_LIT || first.Kind == token.LETTER_LIT ||
		(first.Kind == token.IDENT && p.isDeclaredGeneric(first.Text))
	if !validStart {
		return false
	}
	depth := 1
	i := 1
	for depth > 0 {
		t := p.peek(i)
		switch t.Kind {
		case token.LT:
			depth++
		case token.GT:
			depth--
		case token.SHR:
			depth -= 2
		case token.EOF, token.NEWLINE, token.SEMICOLON, token.LBRACE:
			return false
		}
		i++
		if i > 2000 {
			return false
		}
	}
	next := p.peek(i)
	return next.Kind == token.LPAREN || next.Kind == token.DOT
}

func (p *Parser) parseGenericPostfix(expr ast.Expression) ast.Expression {
	typeArgs := p.parseGenericArgsList()
	if p.check(token.BANG) && p.peek(1).Kind == token.LPAREN {
		p.advance()
		return p.parseGenericCallArgs(expr, typeArgs, true)
	}
	if p.check(token.LPAREN) {
		return p.parseGenericCallArgs(expr, typeArgs, false)
	}
	return expr
}

func (p *Parser) parseCallArgs(callee ast.Expression, failable bool) ast.Expression {
	lp := p.expect(token.LPAREN, "'('")
	args := p.parseArgumentList()
	return &ast.CallExpr{NodeBase: p.nb(lp), Callee: callee, Args: args, IsFailable: failable}
}

func (p *Parser) parseGenericCallArgs(callee ast.Expression, typeArgs []*ast.TypeExpression, failable bool) ast.Expression {
	lp := p.expect(token.LPAREN, "'('")
	args := p.parseArgumentList()
	return &ast.GenericMethodCallExpr{NodeBase: p.nb(lp), Callee: callee, TypeArgs: typeArgs, Args: args, IsFailable: failable}
}

// parseArgumentList accepts named arguments `name: expr` anywhere in the
// list (spec §4.2 postfix loop).
func (p *Parser) parseArgumentList() []*ast.Argument {
	var args []*ast.Argument
	for !p.check(token.RPAREN) {
		startTok := p.cur_()
		name := ""
		if p.check(token.IDENT) && p.peek(1).Kind == token.COLON {
			name = p.advance().Text
			p.advance()
		}
		val := p.parseExpression(config.ASSIGNMENT)
		args = append(args, &ast.Argument{NodeBase: p.nb(startTok), Name: name, Value: val})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, "')'")
	return args
}

func (p *Parser) parseWithExpr(base ast.Expression) ast.Expression {
	withTok := p.advance()
	p.expect(token.LPAREN, "'('")
	var fields []*ast.FieldUpdate
	for !p.check(token.RPAREN) {
		fieldTok := p.expect(token.IDENT, "field name")
		p.expect(token.COLON, "':'")
		val := p.parseExpression(config.ASSIGNMENT)
		fields = append(fields, &ast.FieldUpdate{NodeBase: p.nb(fieldTok), Name: fieldTok.Text, Value: val})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, "')'")
	return &ast.WithExpr{NodeBase: p.nb(withTok), Base: base, Fields: fields}
}

// ---- primary ---------------------------------------------------------

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur_()
	switch t.Kind {
	case token.INT_LIT, token.INT_S8, token.INT_S16, token.INT_S32, token.INT_S64,
		token.INT_U8, token.INT_U16, token.INT_U32, token.INT_U64, token.INT_UADDR:
		return p.parseIntLiteralToken()
	case token.FLOAT_LIT, token.FLOAT_F32, token.FLOAT_F64, token.FLOAT_D128:
		tok := p.advance()
		val, _ := strconv.ParseFloat(cleanNumberText(tok.Text), 64)
		return &ast.FloatLiteral{NodeBase: p.nb(tok), Value: val, Kind: tok.Kind}
	case token.BOOL_LIT:
		tok := p.advance()
		return &ast.BoolLiteral{NodeBase: p.nb(tok), Value: tok.Text == "true"}
	case token.NONE_LIT:
		tok := p.advance()
		return &ast.NoneLiteral{NodeBase: p.nb(tok)}
	case token.LETTER_LIT:
		tok := p.advance()
		r, _ := utf8.DecodeRuneInString(tok.Text)
		return &ast.LetterLiteral{NodeBase: p.nb(tok), Value: r}
	case token.TEXT_LIT, token.TEXT_RAW:
		tok := p.advance()
		return &ast.TextLiteral{NodeBase: p.nb(tok), Value: tok.Text, Kind: tok.Kind}
	case token.TEXT_FORMAT:
		tok := p.advance()
		return &ast.TextLiteral{NodeBase: p.nb(tok), Value: tok.Text, Kind: tok.Kind, Parts: p.splitInterpolation(tok.Text)}
	case token.BYTE_LIT:
		tok := p.advance()
		return &ast.ByteLiteral{NodeBase: p.nb(tok), Value: []byte(tok.Text)}
	case token.BITS_LIT:
		tok := p.advance()
		return &ast.BitsLiteral{NodeBase: p.nb(tok), Value: tok.Text}
	case token.MEMSIZE_LIT:
		tok := p.advance()
		val, unit := splitNumericSuffix(tok.Text)
		n, _ := strconv.ParseInt(val, 10, 64)
		return &ast.MemSizeLiteral{NodeBase: p.nb(tok), Value: n, Unit: unit}
	case token.DURATION_LIT:
		tok := p.advance()
		val, unit := splitNumericSuffix(tok.Text)
		n, _ := strconv.ParseInt(val, 10, 64)
		return &ast.DurationLiteral{NodeBase: p.nb(tok), Value: n, Unit: unit}
	case token.IDENT:
		return p.parseIdentifierOrLambda()
	case token.TYPE_IDENT, token.KW_ME, token.KW_MYTYPE:
		tok := p.advance()
		return &ast.Identifier{NodeBase: p.nb(tok), Name: tok.Text}
	case token.UNDERSCORE:
		tok := p.advance()
		return &ast.Identifier{NodeBase: p.nb(tok), Name: "_"}
	case token.LPAREN:
		return p.parseGroupedOrLambda()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.LBRACE:
		return p.parseSetOrDictLiteral()
	default:
		p.fail(diagnostics.ErrUnexpectedToken, p.curLoc(), t.Kind)
		panic(bailout{})
	}
}

func cleanNumberText(text string) string {
	clean := strings.ReplaceAll(text, "_", "")
	for suf := range floatSuffixSet {
		clean = strings.TrimSuffix(clean, suf)
	}
	return clean
}

var floatSuffixSet = map[string]bool{"f32": true, "f64": true, "d128": true}

func splitNumericSuffix(text string) (digits, unit string) {
	i := 0
	for i < len(text) && (text[i] >= '0' && text[i] <= '9' || text[i] == '_') {
		i++
	}
	return strings.ReplaceAll(text[:i], "_", ""), text[i:]
}

// parseIntLiteralToken converts the lexeme, falling back to BigIntLiteral on
// overflow (spec §9 Design Notes: do not truncate silently) so sign folding
// can still recover an in-range negative value at the boundary (§8.1.7).
func (p *Parser) parseIntLiteralToken() ast.Expression {
	tok := p.advance()
	clean := strings.ReplaceAll(tok.Text, "_", "")
	digits := stripKindSuffix(clean, tok.Kind)
	base := 10
	switch {
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B"):
		base = 2
		digits = digits[2:]
	}
	if v, err := strconv.ParseInt(digits, base, 64); err == nil {
		return &ast.IntLiteral{NodeBase: p.nb(tok), Value: v, Kind: tok.Kind}
	}
	big64, ok := new(big.Int).SetString(digits, base)
	if !ok {
		p.fail(diagnostics.ErrInvalidLiteral, p.loc(tok), tok.Text)
	}
	return &ast.BigIntLiteral{NodeBase: p.nb(tok), Value: big64, Kind: tok.Kind}
}

func stripKindSuffix(s string, k token.Kind) string {
	suffixes := []string{"s8", "s16", "s32", "s64", "u8", "u16", "u32", "u64", "uaddr"}
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf)
		}
	}
	return s
}

// splitInterpolation is a light pass over an already-lexed interpolated text
// body: the lexer hands us the raw text including `${...}` markers (spec
// §6.1 treats full escape/interpolation scanning as upstream); here we only
// split literal runs from embedded expression source and reparse the latter.
func (p *Parser) splitInterpolation(raw string) []ast.TextPart {
	var parts []ast.TextPart
	i := 0
	for i < len(raw) {
		j := strings.Index(raw[i:], "${")
		if j < 0 {
			parts = append(parts, ast.TextPart{Literal: raw[i:]})
			break
		}
		if j > 0 {
			parts = append(parts, ast.TextPart{Literal: raw[i : i+j]})
		}
		start := i + j + 2
		depth := 1
		k := start
		for k < len(raw) && depth > 0 {
			if raw[k] == '{' {
				depth++
			} else if raw[k] == '}' {
				depth--
				if depth == 0 {
					break
				}
			}
			k++
		}
		// the embedded source is handed to a fresh sub-parse; a failure here
		// leaves the part's Expr nil and records the sub-parse errors on this
		// parser's sink rather than aborting the outer text.
		parts = append(parts, ast.TextPart{Expr: p.parseEmbedded(raw[start:k])})
		i = k + 1
	}
	return parts
}

// parseEmbedded parses one `${...}` interpolation body as a standalone
// expression, reusing this parser's own dialect over a fresh lexer/cursor
// (spec §4.2/§6.1, ast.TextPart.Expr). A parse error here is recorded on the
// outer diagnostics sink rather than aborting the literal.
func (p *Parser) parseEmbedded(src string) ast.Expression {
	if src == "" {
		return nil
	}
	lx := lexer.New(p.file, src, false)
	sub := New(p.file, p.dialect, lx.Tokenize())
	sub.genericScopeStack = p.genericScopeStack
	expr := func() (result ast.Expression) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(bailout); !ok {
					panic(r)
				}
			}
		}()
		return sub.parseExpression(config.LOWEST)
	}()
	for _, e := range sub.Diagnostics().Errors() {
		p.diags.AddError(e.Code, e.Loc, e.Args...)
	}
	return expr
}

func (p *Parser) parseIdentifierOrLambda() ast.Expression {
	tok := p.advance()
	if tok.Text == "intrinsic" && p.check(token.LPAREN) {
		p.advance()
		var args []ast.Expression
		for !p.check(token.RPAREN) {
			args = append(args, p.parseExpression(config.LOWEST))
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN, "')'")
		return &ast.IntrinsicExpr{NodeBase: p.nb(tok), Name: "intrinsic", Args: args}
	}
	if tok.Text == "native" && p.checkAny(token.TEXT_LIT, token.TEXT_RAW) {
		code := p.advance()
		return &ast.NativeExpr{NodeBase: p.nb(tok), Code: code.Text}
	}
	if p.check(token.FAT_ARROW) && !p.inWhenClauseBody {
		p.advance()
		param := &ast.Parameter{NodeBase: p.nb(tok), Name: tok.Text}
		body := p.parseLambdaBody()
		return &ast.LambdaExpr{NodeBase: p.nb(tok), Parameters: []*ast.Parameter{param}, Body: body}
	}
	return &ast.Identifier{NodeBase: p.nb(tok), Name: tok.Text}
}

func (p *Parser) parseLambdaBody() ast.Node {
	if p.check(token.LBRACE) {
		return p.parseBraceBlock()
	}
	return p.parseExpression(config.ASSIGNMENT)
}

// looksLikeLambdaParams scans from just after the already-consumed '(' for
// a matching ')' followed by '=>' or '->', disambiguating a lambda
// parameter list from a grouped expression.
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 1
	i := 0
	for depth > 0 {
		t := p.peek(i)
		if t.Kind == token.EOF {
			return false
		}
		if t.Kind == token.LPAREN {
			depth++
		}
		if t.Kind == token.RPAREN {
			depth--
			if depth == 0 {
				break
			}
		}
		i++
	}
	next := p.peek(i + 1)
	return next.Kind == token.FAT_ARROW || next.Kind == token.ARROW
}

func (p *Parser) parseGroupedOrLambda() ast.Expression {
	startTok := p.advance()
	if p.check(token.RPAREN) {
		p.advance()
		if p.check(token.FAT_ARROW) {
			p.advance()
			body := p.parseLambdaBody()
			return &ast.LambdaExpr{NodeBase: p.nb(startTok), Body: body}
		}
		return &ast.ListLiteralExpr{NodeBase: p.nb(startTok)}
	}
	if p.looksLikeLambdaParams() {
		params := p.parseLambdaParameterList()
		var retType *ast.TypeExpression
		if p.match(token.ARROW) {
			retType = p.parseType()
		}
		p.expect(token.FAT_ARROW, "'=>'")
		body := p.parseLambdaBody()
		return &ast.LambdaExpr{NodeBase: p.nb(startTok), Parameters: params, ReturnType: retType, Body: body}
	}
	first := p.parseExpression(config.LOWEST)
	if p.match(token.COMMA) {
		elems := []ast.Expression{first}
		for !p.check(token.RPAREN) {
			elems = append(elems, p.parseExpression(config.LOWEST))
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN, "')'")
		return &ast.ListLiteralExpr{NodeBase: p.nb(startTok), Elements: elems}
	}
	p.expect(token.RPAREN, "')'")
	return first
}

func (p *Parser) parseListLiteral() ast.Expression {
	lb := p.advance()
	var elems []ast.Expression
	for !p.check(token.RBRACKET) {
		elems = append(elems, p.parseExpression(config.ASSIGNMENT))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACKET, "']'")
	return &ast.ListLiteralExpr{NodeBase: p.nb(lb), Elements: elems}
}

func (p *Parser) parseSetOrDictLiteral() ast.Expression {
	lb := p.advance()
	if p.match(token.RBRACE) {
		return &ast.SetLiteralExpr{NodeBase: p.nb(lb)}
	}
	first := p.parseExpression(config.ASSIGNMENT)
	if p.match(token.COLON) {
		firstVal := p.parseExpression(config.ASSIGNMENT)
		entries := []*ast.DictEntry{{NodeBase: p.nb(lb), Key: first, Value: firstVal}}
		for p.match(token.COMMA) {
			if p.check(token.RBRACE) {
				break
			}
			k := p.parseExpression(config.ASSIGNMENT)
			p.expect(token.COLON, "':'")
			v := p.parseExpression(config.ASSIGNMENT)
			entries = append(entries, &ast.DictEntry{NodeBase: p.nb(lb), Key: k, Value: v})
		}
		p.expect(token.RBRACE, "'}'")
		return &ast.DictLiteralExpr{NodeBase: p.nb(lb), Entries: entries}
	}
	elems := []ast.Expression{first}
	for p.match(token.COMMA) {
		if p.check(token.RBRACE) {
			break
		}
		elems = append(elems, p.parseExpression(config.ASSIGNMENT))
	}
	p.expect(token.RBRACE, "'}'")
	return &ast.SetLiteralExpr{NodeBase: p.nb(lb), Elements: elems}
}

// parseIfExpression covers the expression-position `if cond then a else b`
// form (spec §3.3 Conditional, §4.2 InlineConditional rung).
func (p *Parser) parseIfExpression() ast.Expression {
	ifTok := p.advance()
	cond := p.parseExpression(config.LOGICAL_OR)
	p.expect(token.KW_THEN, "'then'")
	thenExpr := p.parseExpression(config.INLINE_CONDITIONAL)
	p.expect(token.KW_ELSE, "'else'")
	elseExpr := p.parseExpression(config.INLINE_CONDITIONAL)
	return &ast.ConditionalExpr{NodeBase: p.nb(ifTok), Cond: cond, Then: thenExpr, Else: elseExpr}
}
