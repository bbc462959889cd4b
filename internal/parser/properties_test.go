package parser

import (
	"math"
	"testing"

	"github.com/forgelang/forge-parser/internal/ast"
	"github.com/forgelang/forge-parser/internal/token"
)

// Unary minus folds directly into an int literal instead of producing a
// UnaryExpr wrapper (spec §4.2, §8.1.7).
func TestSignFoldingIntLiteral(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = -42")
	expr := parseSingleExprProgram(t, p)
	lit, ok := expr.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntLiteral, got %T", expr)
	}
	if lit.Value != -42 {
		t.Errorf("expected -42, got %d", lit.Value)
	}
}

func TestSignFoldingFloatLiteral(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = -3.5")
	expr := parseSingleExprProgram(t, p)
	lit, ok := expr.(*ast.FloatLiteral)
	if !ok {
		t.Fatalf("expected *ast.FloatLiteral, got %T", expr)
	}
	if lit.Value != -3.5 {
		t.Errorf("expected -3.5, got %v", lit.Value)
	}
}

// Unary minus over a non-literal still produces an ordinary UnaryExpr.
func TestSignFoldingDoesNotApplyToNonLiterals(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = -x")
	expr := parseSingleExprProgram(t, p)
	unary, ok := expr.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("expected *ast.UnaryExpr, got %T", expr)
	}
	if unary.Op != token.MINUS {
		t.Errorf("expected MINUS, got %v", unary.Op)
	}
	if _, ok := unary.Operand.(*ast.Identifier); !ok {
		t.Errorf("expected Identifier operand, got %T", unary.Operand)
	}
}

// Compound assignment `a += b` desugars to `a = a + b`, with the left-hand
// side cloned to a distinct node rather than shared by reference (spec
// §8.1.8).
func TestCompoundAssignmentDesugarsWithDistinctClone(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = a += b")
	expr := parseSingleExprProgram(t, p)
	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", expr)
	}
	lhs, ok := assign.Left.(*ast.Identifier)
	if !ok || lhs.Name != "a" {
		t.Fatalf("expected Identifier a on the left, got %#v", assign.Left)
	}
	rhs, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || rhs.Op != token.PLUS {
		t.Fatalf("expected Binary(a,Add,b) on the right, got %#v", assign.Value)
	}
	dup, ok := rhs.Left.(*ast.Identifier)
	if !ok || dup.Name != "a" {
		t.Fatalf("expected the binary's left operand to be a cloned Identifier a, got %#v", rhs.Left)
	}
	if dup == lhs {
		t.Error("expected the compound-assignment desugaring to clone the left-hand side, not alias it")
	}
}

// Assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
func TestAssignmentIsRightAssociative(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = a = b = c")
	expr := parseSingleExprProgram(t, p)
	outer, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", expr)
	}
	if _, ok := outer.Left.(*ast.Identifier); !ok {
		t.Fatalf("expected Identifier on the left, got %#v", outer.Left)
	}
	inner, ok := outer.Value.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected a nested AssignExpr on the right, got %#v", outer.Value)
	}
	if id, ok := inner.Left.(*ast.Identifier); !ok || id.Name != "b" {
		t.Fatalf("expected inner left Identifier b, got %#v", inner.Left)
	}
}

// Power is right-associative: `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`.
func TestPowerIsRightAssociative(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = 2 ** 3 ** 2")
	expr := parseSingleExprProgram(t, p)
	outer, ok := expr.(*ast.BinaryExpr)
	if !ok || outer.Op != token.STAR_STAR {
		t.Fatalf("expected outer Binary(**), got %#v", expr)
	}
	if _, ok := outer.Left.(*ast.IntLiteral); !ok {
		t.Fatalf("expected IntLiteral on the left, got %#v", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinaryExpr)
	if !ok || inner.Op != token.STAR_STAR {
		t.Fatalf("expected a nested Binary(**) on the right, got %#v", outer.Right)
	}
}

// Additive binds tighter than comparison: `a + b < c` parses with the
// addition as the comparison's left operand, not the reverse.
func TestAdditiveBindsTighterThanComparison(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = a + b < c")
	expr := parseSingleExprProgram(t, p)
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Op != token.LT {
		t.Fatalf("expected outer Binary(<), got %#v", expr)
	}
	add, ok := bin.Left.(*ast.BinaryExpr)
	if !ok || add.Op != token.PLUS {
		t.Fatalf("expected Binary(+) on the left, got %#v", bin.Left)
	}
}

// An empty program produces zero declarations and no errors.
func TestEmptyProgram(t *testing.T) {
	p := NewForgeParser("t.fg", "")
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	if len(prog.Declarations) != 0 {
		t.Fatalf("expected 0 declarations, got %d", len(prog.Declarations))
	}
}

// An empty routine body parses to an empty statement list, not nil.
func TestEmptyRoutineBody(t *testing.T) {
	p := NewForgeParser("t.fg", "routine f() {}\n")
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	if rd.Body == nil {
		t.Fatal("expected a non-nil body")
	}
	if len(rd.Body.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(rd.Body.Statements))
	}
}

// A when-statement with only an else clause still parses (spec boundary case).
func TestWhenWithOnlyElseClause(t *testing.T) {
	src := "routine f() {\nwhen x {\nelse => 0\n}\n}\n"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	rd := prog.Declarations[0].(*ast.RoutineDecl)
	whenStmt, ok := rd.Body.Statements[0].(*ast.WhenStmt)
	if !ok {
		t.Fatalf("expected *ast.WhenStmt, got %T", rd.Body.Statements[0])
	}
	if len(whenStmt.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(whenStmt.Clauses))
	}
	if _, ok := whenStmt.Clauses[0].Pattern.(*ast.WildcardPattern); !ok {
		t.Fatalf("expected a WildcardPattern, got %T", whenStmt.Clauses[0].Pattern)
	}
}

// A chained comparison of maximal practical length still degrades to
// ChainedComparisonExpr rather than failing (spec §8.3's boundary case).
func TestLongChainedComparison(t *testing.T) {
	p := NewForgeParser("t.fg", "preset r = a < b < c < d < e < f")
	expr := parseSingleExprProgram(t, p)
	chain, ok := expr.(*ast.ChainedComparisonExpr)
	if !ok {
		t.Fatalf("expected *ast.ChainedComparisonExpr, got %T", expr)
	}
	if len(chain.Operands) != 6 {
		t.Fatalf("expected 6 operands, got %d", len(chain.Operands))
	}
	if len(chain.Operators) != 5 {
		t.Fatalf("expected 5 operators, got %d", len(chain.Operators))
	}
}

// Deeply nested generic argument lists (>= 8 levels) still parse, splitting
// each lexed SHR as needed (spec §8.3's nested-generic boundary).
func TestDeeplyNestedGenericArgs(t *testing.T) {
	src := "var m: A<B<C<D<E<F<G<H<Int>>>>>>>> = none"
	p := NewForgeParser("t.fg", src)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	vd := prog.Declarations[0].(*ast.VariableDecl)
	depth := 0
	cur := vd.Type
	for cur != nil && len(cur.GenericArgs) > 0 {
		depth++
		cur = cur.GenericArgs[0]
	}
	if depth < 8 {
		t.Errorf("expected at least 8 levels of generic nesting, got %d", depth)
	}
}

func TestSignFoldingBoundaryInt64Min(t *testing.T) {
	// -9223372036854775808 overflows a bare int64 literal scan by one before
	// folding, so the parser must fold the sign into the literal rather than
	// negate an already-out-of-range positive magnitude (spec §8.1.7).
	p := NewForgeParser("t.fg", "preset r = -9223372036854775808")
	expr := parseSingleExprProgram(t, p)
	lit, ok := expr.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntLiteral, got %T", expr)
	}
	if lit.Value != math.MinInt64 {
		t.Errorf("expected math.MinInt64, got %d", lit.Value)
	}
}
