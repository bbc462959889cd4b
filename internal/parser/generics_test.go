package parser

import (
	"testing"

	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/token"
)

// Inline `follows` constraints attach directly to the generic parameter
// (spec §4.4).
func TestGenericParamInlineFollows(t *testing.T) {
	src := "routine f<T follows P1 & P2>() {}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	if len(rd.GenericParams) != 1 {
		t.Fatalf("expected 1 generic param, got %d", len(rd.GenericParams))
	}
	cs := rd.GenericParams[0].InlineConstraints
	if len(cs) != 1 || cs[0].Kind != ast.ConstraintFollows || len(cs[0].Protocols) != 2 {
		t.Fatalf("expected a 2-protocol Follows constraint, got %#v", cs)
	}
}

// Inline `is` category constraints must parse directly after the parameter
// name, not just in a trailing requires/where clause (spec §4.4).
func TestGenericParamInlineIsCategory(t *testing.T) {
	src := "routine f<U is value>() {}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	cs := rd.GenericParams[0].InlineConstraints
	if len(cs) != 1 {
		t.Fatalf("expected 1 inline constraint, got %d", len(cs))
	}
}

// Inline `in [...]` type-equality constraints must also parse directly
// after the parameter name (spec §4.4).
func TestGenericParamInlineTypeEqualitySet(t *testing.T) {
	src := "routine f<M in [s32, s64]>() {}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	cs := rd.GenericParams[0].InlineConstraints
	if len(cs) != 1 || cs[0].Kind != ast.ConstraintTypeEquality || len(cs[0].EqualitySet) != 2 {
		t.Fatalf("expected a 2-member TypeEquality constraint, got %#v", cs)
	}
}

// A mixed inline form parses without error: follows, is, and in
// constraints side by side on distinct params.
func TestGenericParamListMixedInlineForms(t *testing.T) {
	src := "routine f<T follows P1 & P2, U is value, M in [s32, s64]>() {}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	if len(rd.GenericParams) != 3 {
		t.Fatalf("expected 3 generic params, got %d", len(rd.GenericParams))
	}
	if rd.GenericParams[0].Name != "T" || rd.GenericParams[1].Name != "U" || rd.GenericParams[2].Name != "M" {
		t.Fatalf("unexpected param names: %#v", rd.GenericParams)
	}
}

// `inspecting`/`seizing` use the reverse "handle from source" order, unlike
// `viewing`/`hijacking`'s "source as handle" (spec §4.6, GLOSSARY).
func TestInspectingUsesHandleFromSourceOrder(t *testing.T) {
	src := "routine f() {\ninspecting h from e { }\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	sa, ok := rd.Body.Statements[0].(*ast.ScopedAccessStmt)
	if !ok {
		t.Fatalf("expected *ast.ScopedAccessStmt, got %T", rd.Body.Statements[0])
	}
	if sa.Kind != ast.ScopedInspecting {
		t.Fatalf("expected ScopedInspecting, got %v", sa.Kind)
	}
	if sa.Handle != "h" {
		t.Fatalf("expected handle h, got %q", sa.Handle)
	}
	src2, ok := sa.Source.(*ast.Identifier)
	if !ok || src2.Name != "e" {
		t.Fatalf("expected source identifier e, got %#v", sa.Source)
	}
}

func TestSeizingUsesHandleFromSourceOrder(t *testing.T) {
	src := "routine f() {\nseizing h from e { }\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	sa, ok := rd.Body.Statements[0].(*ast.ScopedAccessStmt)
	if !ok || sa.Kind != ast.ScopedSeizing {
		t.Fatalf("expected ScopedSeizing ScopedAccessStmt, got %#v", rd.Body.Statements[0])
	}
}

// `viewing`/`hijacking` keep the original "source as handle" order.
func TestViewingStillUsesSourceAsHandleOrder(t *testing.T) {
	src := "routine f() {\nviewing e as h { }\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	sa, ok := rd.Body.Statements[0].(*ast.ScopedAccessStmt)
	if !ok || sa.Handle != "h" {
		t.Fatalf("expected ScopedAccessStmt with handle h, got %#v", rd.Body.Statements[0])
	}
	if _, ok := sa.Source.(*ast.Identifier); !ok {
		t.Fatalf("expected source identifier e, got %#v", sa.Source)
	}
}

// A `${...}` interpolation body is actually parsed into an Expression, not
// silently dropped (spec §4.2/§6.1).
func TestInterpolatedTextParsesEmbeddedExpression(t *testing.T) {
	p := NewForgeParser("t.fg", `preset r = "hi ${1 + 2}"`)
	expr := parseSingleExprProgram(t, p)
	lit, ok := expr.(*ast.TextLiteral)
	if !ok {
		t.Fatalf("expected *ast.TextLiteral, got %T", expr)
	}
	var found *ast.BinaryExpr
	for _, part := range lit.Parts {
		if part.Expr != nil {
			found, _ = part.Expr.(*ast.BinaryExpr)
		}
	}
	if found == nil {
		t.Fatalf("expected an embedded BinaryExpr, got parts %#v", lit.Parts)
	}
	if found.Op != token.PLUS {
		t.Errorf("expected embedded '+' expression, got op %v", found.Op)
	}
}

// Setter visibility may be declared separately via `<modifier>(set)` and
// must be at least as restrictive as the getter visibility (spec §4.7).
func TestSetterVisibilityParsesAndValidates(t *testing.T) {
	src := "public private(set) var x: Int = 1\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	vd, ok := prog.Declarations[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", prog.Declarations[0])
	}
	if vd.GetterVis != ast.VisPublic {
		t.Fatalf("expected public getter visibility, got %v", vd.GetterVis)
	}
	if vd.SetterVis == nil || *vd.SetterVis != ast.VisPrivate {
		t.Fatalf("expected a private setter visibility, got %#v", vd.SetterVis)
	}
}

// A setter less restrictive than its getter is a hard error (spec §4.7).
func TestSetterVisibilityLessRestrictiveThanGetterIsError(t *testing.T) {
	src := "private public(set) var x: Int = 1\n"
	p := NewForgeParser("t.fg", src)
	p.Parse()
	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected an error for a setter visibility less restrictive than its getter")
	}
	found := false
	for _, e := range p.Diagnostics().Errors() {
		if e.Code == "P007" {
			found = true
		}
	}
	if !found {
		t.Error("expected an ErrInvalidSetterVis (P007) diagnostic")
	}
}

// A declaration with no setter-visibility clause leaves SetterVis nil.
func TestNoSetterVisibilityLeavesNilSetterVis(t *testing.T) {
	src := "public var x: Int = 1\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	vd := prog.Declarations[0].(*ast.VariableDecl)
	if vd.SetterVis != nil {
		t.Fatalf("expected nil SetterVis, got %#v", vd.SetterVis)
	}
}
