package ast

import (
	"testing"

	"github.com/forgelang/forge-parser/internal/token"
)

func TestNodeBaseLocation(t *testing.T) {
	loc := token.Location{File: "a.fg", Line: 3, Column: 7}
	id := &Identifier{NodeBase: NodeBase{Loc: loc}, Name: "x"}
	if id.Location() != loc {
		t.Errorf("Location() = %#v, want %#v", id.Location(), loc)
	}
}

// countingVisitor tallies how many times each Visit method fires, used to
// confirm Accept dispatches to the right method rather than a neighbor.
type countingVisitor struct {
	BaseVisitor
	counts map[string]int
}

func newCountingVisitor() *countingVisitor {
	return &countingVisitor{counts: map[string]int{}}
}

func (v *countingVisitor) VisitProgram(n *Program)             { v.counts["Program"]++ }
func (v *countingVisitor) VisitIdentifier(n *Identifier)       { v.counts["Identifier"]++ }
func (v *countingVisitor) VisitIntLiteral(n *IntLiteral)       { v.counts["IntLiteral"]++ }
func (v *countingVisitor) VisitBinaryExpr(n *BinaryExpr)       { v.counts["BinaryExpr"]++ }
func (v *countingVisitor) VisitBlockStmt(n *BlockStmt)         { v.counts["BlockStmt"]++ }
func (v *countingVisitor) VisitExpressionStmt(n *ExpressionStmt) { v.counts["ExpressionStmt"]++ }
func (v *countingVisitor) VisitPresetDecl(n *PresetDecl)       { v.counts["PresetDecl"]++ }

func TestAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	v := newCountingVisitor()

	prog := &Program{}
	prog.Accept(v)

	id := &Identifier{Name: "x"}
	id.Accept(v)

	lit := &IntLiteral{Value: 1}
	lit.Accept(v)

	bin := &BinaryExpr{Left: id, Op: token.PLUS, Right: lit}
	bin.Accept(v)

	block := &BlockStmt{Statements: []Statement{&ExpressionStmt{Expr: id}}}
	block.Accept(v)
	block.Statements[0].Accept(v)

	preset := &PresetDecl{Name: "r", Value: lit}
	preset.Accept(v)

	want := map[string]int{
		"Program":        1,
		"Identifier":     1,
		"IntLiteral":     1,
		"BinaryExpr":     1,
		"BlockStmt":      1,
		"ExpressionStmt": 1,
		"PresetDecl":     1,
	}
	for k, n := range want {
		if v.counts[k] != n {
			t.Errorf("counts[%q] = %d, want %d", k, v.counts[k], n)
		}
	}
}

func TestBaseVisitorIsNoOpAndSatisfiesVisitor(t *testing.T) {
	var _ Visitor = BaseVisitor{}
	// Accepting against a bare BaseVisitor must not panic even though every
	// method is a no-op.
	prog := &Program{Declarations: []Declaration{
		&PresetDecl{Name: "r", Value: &IntLiteral{Value: 1}},
	}}
	prog.Accept(BaseVisitor{})
}

func TestDeclarationStatementExpressionInterfaceMembership(t *testing.T) {
	var _ Declaration = &PresetDecl{}
	var _ Declaration = &VariableDecl{}
	var _ Declaration = &RoutineDecl{}
	var _ Statement = &PresetDecl{} // spec §4.6: also usable as a declaration-statement
	var _ Statement = &ExpressionStmt{}
	var _ Statement = &DestructuringStmt{}
	var _ Expression = &BlockStmt{} // a block may stand in expression position
	var _ Expression = &Identifier{}
	var _ Pattern = &WildcardPattern{}
	var _ Pattern = &TypePattern{}
	var _ Pattern = &GuardPattern{}
	var _ Pattern = &DestructuringPattern{}
}

func TestTupleTypeNameConstant(t *testing.T) {
	te := &TypeExpression{Name: TupleTypeName, GenericArgs: []*TypeExpression{
		{Name: "Int"}, {Name: "String"},
	}}
	if te.Name != "__Tuple" {
		t.Errorf("expected reserved tuple pseudo-name, got %q", te.Name)
	}
	if len(te.GenericArgs) != 2 {
		t.Errorf("expected 2 tuple members, got %d", len(te.GenericArgs))
	}
}
