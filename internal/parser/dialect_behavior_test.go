package parser

import (
	"testing"

	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/token"
)

// Cake's display(...) statement desugars to a call to `print` (spec's Cake
// dialect sugar).
func TestCakeDisplaySugarDesugarsToPrintCall(t *testing.T) {
	src := "recipe f() {\ndisplay(1, 2)\n}\n"
	p := NewCakeParser("t.cake", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd, ok := prog.Declarations[0].(*ast.RoutineDecl)
	if !ok {
		t.Fatalf("expected *ast.RoutineDecl, got %T", prog.Declarations[0])
	}
	exprStmt, ok := rd.Body.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStmt, got %T", rd.Body.Statements[0])
	}
	call, ok := exprStmt.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", exprStmt.Expr)
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != "print" {
		t.Fatalf("expected callee print, got %#v", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

// Forge never accepts Cake's recipe keyword as a routine introducer.
func TestForgeRejectsCakeRoutineKeyword(t *testing.T) {
	p := NewForgeParser("t.fg", "recipe f() {}")
	p.Parse()
	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected Forge to reject the bare 'recipe' keyword as a declaration start")
	}
}

// All three dialects accept the modern 'routine' spelling even though Cake's
// own descriptor keyword is 'recipe' (spec §4.9: the modern spelling still
// works everywhere).
func TestAllDialectsAcceptModernRoutineSpelling(t *testing.T) {
	for _, ctor := range []func(string, string) *Parser{NewForgeParser, NewSuflaeParser, NewCakeParser} {
		p := ctor("t", "routine f() {}\n")
		prog := p.Parse()
		if p.Diagnostics().HasErrors() {
			t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
		}
		if len(prog.Declarations) != 1 {
			t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
		}
	}
}

// `unless cond { a } else { b }` desugars to `if not cond { a } else { b }`.
func TestUnlessDesugarsToNegatedIf(t *testing.T) {
	src := "routine f() {\nunless ready { go() } else { wait() }\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	ifStmt, ok := rd.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", rd.Body.Statements[0])
	}
	unary, ok := ifStmt.Cond.(*ast.UnaryExpr)
	if !ok || unary.Op != token.KW_NOT {
		t.Fatalf("expected a 'not' unary condition, got %#v", ifStmt.Cond)
	}
	if ifStmt.Else == nil {
		t.Fatal("expected an else branch")
	}
}

// `loop { ... }` desugars to `while true { ... }`.
func TestLoopDesugarsToWhileTrue(t *testing.T) {
	src := "routine f() {\nloop { break }\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	whileStmt, ok := rd.Body.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected *ast.WhileStmt, got %T", rd.Body.Statements[0])
	}
	boolLit, ok := whileStmt.Cond.(*ast.BoolLiteral)
	if !ok || !boolLit.Value {
		t.Fatalf("expected condition true, got %#v", whileStmt.Cond)
	}
}

// Cake tolerates its own legacy 'step' range keyword without any warning,
// while Forge tolerates it too but flags it (spec's AllowLegacyStep quirk).
func TestCakeAcceptsNativeStepWithoutWarning(t *testing.T) {
	src := "routine f() {\nfor i in 0 to 10 step 2 { pass }\n}\n"
	p := NewCakeParser("t.cake", src)
	p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
}

func TestForgeTakesLegacyStepWithWarning(t *testing.T) {
	src := "routine f() {\nfor i in 0 to 10 step 2 { pass }\n}\n"
	p := NewForgeParser("t.fg", src)
	p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	if len(p.Diagnostics().GetWarnings()) == 0 {
		t.Error("expected a style warning for the legacy 'step' keyword in Forge")
	}
}
