// C12: error recovery (spec §4.10, §7). A ParseError aborts the current
// declaration or statement via the bailout panic; synchronize then advances
// the cursor to a token that plausibly starts the next independent item, so
// one malformed declaration or statement does not swallow the rest of the
// file (spec §7's recovery policy, S6).
package parser

import (
	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/token"
)

var declarationStarts = map[token.Kind]bool{
	token.KW_NAMESPACE: true, token.KW_IMPORT: true, token.KW_DEFINE: true,
	token.KW_USING: true, token.KW_PRESET: true, token.KW_VAR: true, token.KW_LET: true,
	token.KW_ROUTINE: true, token.KW_RECIPE: true, token.KW_ENTITY: true, token.KW_RECORD: true,
	token.KW_RESIDENT: true, token.KW_CHOICE: true, token.KW_VARIANT: true,
	token.KW_PROTOCOL: true, token.KW_IMPORTED: true, token.AT: true,
	token.KW_PUBLIC: true, token.KW_INTERNAL: true, token.KW_MODULE: true, token.KW_PRIVATE: true,
	token.KW_FAMILY: true, token.KW_PROTECTED: true, token.KW_COMMON: true, token.KW_GLOBAL: true,
	token.KW_EXTERNAL: true,
}

var statementStarts = map[token.Kind]bool{
	token.KW_IF: true, token.KW_UNLESS: true, token.KW_WHILE: true, token.KW_LOOP: true,
	token.KW_FOR: true, token.KW_WHEN: true, token.KW_RETURN: true, token.KW_BREAK: true,
	token.KW_CONTINUE: true, token.KW_THROW: true, token.KW_ABSENT: true, token.KW_PASS: true,
	token.KW_VAR: true, token.KW_LET: true, token.KW_PRESET: true,
	token.KW_VIEWING: true, token.KW_HIJACKING: true, token.KW_INSPECTING: true,
	token.KW_SEIZING: true, token.KW_DANGER: true, token.KW_MAYHEM: true,
}

// synchronize advances past tokens until it has just consumed a statement
// separator (Newline/Semicolon/Dedent) or the current token starts in
// starts, whichever comes first (spec §4.10).
func (p *Parser) synchronize(starts map[token.Kind]bool) {
	for !p.check(token.EOF) {
		if starts[p.cur_().Kind] {
			return
		}
		consumed := p.advance()
		if consumed.Kind == token.NEWLINE || consumed.Kind == token.SEMICOLON || consumed.Kind == token.DEDENT {
			return
		}
	}
}

// parseDeclarationRecovering runs one top-level parseDeclaration call,
// recovering from a bailout by synchronizing to the next declaration start.
// It returns nil when the declaration could not be salvaged; the program
// loop simply omits it rather than inserting a placeholder (spec §7: a hard
// error never aborts the whole file, but a broken declaration has no
// sensible stand-in the way a statement does).
func (p *Parser) parseDeclarationRecovering() (decl ast.Declaration) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); isBailout {
				p.synchronize(declarationStarts)
				decl = nil
				return
			}
			panic(r)
		}
	}()
	return p.parseDeclaration()
}

// parseStatementRecovering runs one parseStatement call, recovering from a
// bailout by synchronizing to the next statement start. It always returns a
// non-nil Statement so a block's []Statement slice never carries a hole; a
// failed statement becomes a PassStmt at the error location (spec §7).
func (p *Parser) parseStatementRecovering() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); isBailout {
				loc := p.curLoc()
				p.synchronize(statementStarts)
				stmt = &ast.PassStmt{NodeBase: ast.NodeBase{Loc: loc}}
				return
			}
			panic(r)
		}
	}()
	return p.parseStatement()
}
