// C6: the generic-parameter and constraint parser, shared by inline `<T
// follows P1 & P2>` clauses and trailing `requires`/`where` clauses (spec
// §4.4). Both surfaces build the same Constraint shape and are merged by
// parameter name so a later pass sees one normalized list regardless of
// which surface the source used.
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/diagnostics"
	"github.com/forgelang/forge-parser/internal/token"
)

// parseGenericParamList parses `<T, U follows P, ...>` (spec §4.4), pushing
// the declared names onto the generic scope stack so a later requires/where
// clause can validate its parameter references (diagnostics.ErrUndeclaredGeneric).
func (p *Parser) parseGenericParamList() []*ast.GenericParam {
	p.expect(token.LT, "'<'")
	var params []*ast.GenericParam
	var names []string
	for !p.check(token.GT) && !p.check(token.SHR) {
		nameTok := p.expect(token.TYPE_IDENT, "generic parameter name")
		gp := &ast.GenericParam{NodeBase: p.nb(nameTok), Name: nameTok.Text}
		switch {
		case p.check(token.KW_FOLLOWS):
			gp.InlineConstraints = p.parseInlineConstraints(nameTok.Text)
		case p.check(token.KW_IS):
			p.advance()
			gp.InlineConstraints = []*ast.Constraint{p.parseOneConstraint(nameTok.Text)}
		case p.check(token.KW_IN):
			gp.InlineConstraints = []*ast.Constraint{p.parseInlineTypeEquality(nameTok.Text)}
		}
		params = append(params, gp)
		names = append(names, nameTok.Text)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeGenericArgsList()
	p.pushGenericScope(names)
	return params
}

// parseInlineConstraints parses the `follows P1 & P2 & ...` tail attached
// directly to a generic parameter inside `<...>` (spec §4.4). Protocols are
// joined only by `&`; a comma always ends the list and starts the next
// generic parameter.
func (p *Parser) parseInlineConstraints(paramName string) []*ast.Constraint {
	followsTok := p.expect(token.KW_FOLLOWS, "'follows'")
	var protocols []*ast.TypeExpression
	protocols = append(protocols, p.parseType())
	for p.match(token.AMP) {
		protocols = append(protocols, p.parseType())
	}
	return []*ast.Constraint{{
		NodeBase:  p.nb(followsTok),
		ParamName: paramName,
		Kind:      ast.ConstraintFollows,
		Protocols: protocols,
	}}
}

// parseInlineTypeEquality parses the inline `in [T1, T2, ...]` form (spec
// §4.4): the parameter must be one of a fixed set of types.
func (p *Parser) parseInlineTypeEquality(paramName string) *ast.Constraint {
	inTok := p.advance()
	p.expect(token.LBRACKET, "'['")
	set := []*ast.TypeExpression{p.parseType()}
	for p.match(token.COMMA) {
		set = append(set, p.parseType())
	}
	p.expect(token.RBRACKET, "']'")
	return &ast.Constraint{NodeBase: p.nb(inTok), ParamName: paramName, Kind: ast.ConstraintTypeEquality, EqualitySet: set}
}

// parseConstraintClause parses a trailing `requires`/`where` clause
// (spec §4.4): a comma-separated list of `T: follows P`, `T: from Base`,
// `T: value`/`reference`/`resident`/`routine`/`choice`/`variant`/`mutant`,
// a const-generic type constraint, or a type-equality set.
func (p *Parser) parseConstraintClause() []*ast.Constraint {
	p.advance() // requires or where
	var out []*ast.Constraint
	seen := map[string]bool{}
	for {
		paramTok := p.expect(token.TYPE_IDENT, "generic parameter name")
		if !p.isDeclaredGeneric(paramTok.Text) {
			p.fail(diagnostics.ErrUndeclaredGeneric, p.loc(paramTok), paramTok.Text)
		}
		if seen[paramTok.Text] {
			p.fail(diagnostics.ErrDuplicateConstrain, p.loc(paramTok), paramTok.Text)
		}
		seen[paramTok.Text] = true
		p.expect(token.COLON, "':'")
		out = append(out, p.parseOneConstraint(paramTok.Text))
		if !p.match(token.COMMA) {
			break
		}
	}
	return out
}

func (p *Parser) parseOneConstraint(paramName string) *ast.Constraint {
	t := p.cur_()
	switch t.Kind {
	case token.KW_FOLLOWS:
		p.advance()
		protos := []*ast.TypeExpression{p.parseType()}
		for p.match(token.AMP) {
			protos = append(protos, p.parseType())
		}
		return &ast.Constraint{NodeBase: p.nb(t), ParamName: paramName, Kind: ast.ConstraintFollows, Protocols: protos}
	case token.KW_FROM:
		p.advance()
		base := p.parseType()
		return &ast.Constraint{NodeBase: p.nb(t), ParamName: paramName, Kind: ast.ConstraintFrom, BaseClass: base}
	case token.IDENT, token.KW_RESIDENT, token.KW_ROUTINE, token.KW_CHOICE, token.KW_VARIANT, token.KW_MUTANT:
		kind, ok := constraintKindKeyword(t.Text)
		if ok {
			p.advance()
			return &ast.Constraint{NodeBase: p.nb(t), ParamName: paramName, Kind: kind}
		}
		fallthrough
	default:
		first := p.parseType()
		if p.check(token.EQ) {
			p.advance()
			set := []*ast.TypeExpression{first, p.parseType()}
			for p.match(token.EQ) {
				set = append(set, p.parseType())
			}
			return &ast.Constraint{NodeBase: p.nb(t), ParamName: paramName, Kind: ast.ConstraintTypeEquality, EqualitySet: set}
		}
		return &ast.Constraint{NodeBase: p.nb(t), ParamName: paramName, Kind: ast.ConstraintConstGeneric, ConstGenericType: first}
	}
}

func constraintKindKeyword(text string) (ast.ConstraintKind, bool) {
	switch text {
	case "value":
		return ast.ConstraintValueType, true
	case "reference":
		return ast.ConstraintReferenceType, true
	case "resident":
		return ast.ConstraintResidentType, true
	case "routine":
		return ast.ConstraintRoutineType, true
	case "choice":
		return ast.ConstraintChoiceType, true
	case "variant":
		return ast.ConstraintVariantType, true
	case "mutant":
		return ast.ConstraintMutantType, true
	}
	return 0, false
}

// mergeConstraints combines inline and requires/where constraints for the
// same generic parameter list, grouping by ParamName without discarding any
// entry (spec §4.4: "merged by parameter name").
func mergeConstraints(fromParams []*ast.GenericParam, trailing []*ast.Constraint) []*ast.Constraint {
	var out []*ast.Constraint
	for _, gp := range fromParams {
		out = append(out, gp.InlineConstraints...)
	}
	out = append(out, trailing...)
	return out
}
