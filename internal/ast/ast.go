// Package ast defines the tree shape shared by all three dialects (spec
// §3.3). Every node is immutable once constructed, carries a source
// location, and exposes Accept for the Visitor defined in visitor.go.
//
// Grounded on the teacher's internal/ast/ast.go: one file, one flat set of
// concrete struct types per node kind, each with Accept/TokenLiteral-style
// methods, rather than a class hierarchy (spec §9 Design Notes: "class
// hierarchy of AST nodes" becomes "tagged variants, plain data records").
package ast

import (
	"math/big"

	"github.com/forgelang/forge-parser/internal/token"
)

// Node is implemented by every tree element.
type Node interface {
	Location() token.Location
	Accept(v Visitor)
}

// Declaration is a top-level or member-level declaration (spec §3.3).
type Declaration interface {
	Node
	declNode()
}

// Statement is a statement inside a block (spec §3.3).
type Statement interface {
	Node
	stmtNode()
}

// Expression is anything that produces a value (spec §3.3).
type Expression interface {
	Node
	exprNode()
}

// Pattern is used by `when` clauses and destructuring `let` (spec §3.3, §4.5).
type Pattern interface {
	Node
	patternNode()
}

// NodeBase carries the one field every node needs; embed it to satisfy Location.
type NodeBase struct {
	Loc token.Location
}

func (b NodeBase) Location() token.Location { return b.Loc }

// TypeExpression is `{ name, genericArgs? }` (spec §3.3). The pseudo-name
// "__Tuple" with N generic args denotes a tuple type; a const generic is
// represented by a TypeExpression whose Name is the literal text and whose
// GenericArgs is empty.
type TypeExpression struct {
	NodeBase
	Name        string
	GenericArgs []*TypeExpression
}

func (t *TypeExpression) Accept(v Visitor) { v.VisitTypeExpression(t) }

// TupleTypeName is the reserved pseudo-name for tuple TypeExpressions.
const TupleTypeName = "__Tuple"

// Program is the parse root: an ordered sequence of declarations.
type Program struct {
	NodeBase
	Declarations []Declaration
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// ---- shared small records ----------------------------------------------

// Visibility is a closed set of access modifiers (spec §4.7). The concrete
// keyword spelling used to reach each value is dialect-independent; aliases
// (internal/module, family/protected) collapse to one value.
type Visibility int

const (
	VisUnspecified Visibility = iota
	VisPublic
	VisInternal
	VisPrivate
	VisFamily
	VisCommon
	VisGlobal
	VisExternal
)

var visibilityNames = map[Visibility]string{
	VisUnspecified: "unspecified", VisPublic: "public", VisInternal: "internal",
	VisPrivate: "private", VisFamily: "family", VisCommon: "common",
	VisGlobal: "global", VisExternal: "external",
}

func (v Visibility) String() string {
	if s, ok := visibilityNames[v]; ok {
		return s
	}
	return "unknown"
}

// Parameter is shared by routines, lambdas, and protocol signatures.
type Parameter struct {
	NodeBase
	Name       string
	Type       *TypeExpression
	IsVariadic bool
	IsSelf     bool // `me` parameter, untyped
	Default    Expression
}

func (p *Parameter) Accept(v Visitor) { v.VisitParameter(p) }

// Attribute is `@name` or `@name(args...)` (spec §4.7). Arguments are
// literals or identifiers, never arbitrary expressions.
type Attribute struct {
	NodeBase
	Name string
	Args []Expression
}

func (a *Attribute) Accept(v Visitor) { v.VisitAttribute(a) }

// ConstraintKind is the closed set from spec §4.4.
type ConstraintKind int

const (
	ConstraintFollows ConstraintKind = iota
	ConstraintFrom
	ConstraintValueType
	ConstraintReferenceType
	ConstraintResidentType
	ConstraintRoutineType
	ConstraintChoiceType
	ConstraintVariantType
	ConstraintMutantType
	ConstraintConstGeneric
	ConstraintTypeEquality
)

// Constraint is produced identically by inline and requires/where surfaces
// (spec §4.4), then merged by parameter name.
type Constraint struct {
	NodeBase
	ParamName        string
	Kind             ConstraintKind
	Protocols        []*TypeExpression // Follows
	BaseClass        *TypeExpression   // From
	ConstGenericType *TypeExpression   // ConstGeneric
	EqualitySet      []*TypeExpression // TypeEquality
}

func (c *Constraint) Accept(v Visitor) { v.VisitConstraint(c) }

// GenericParam is one `<T ...>` entry, carrying its own inline constraints.
type GenericParam struct {
	NodeBase
	Name              string
	InlineConstraints []*Constraint
}

func (g *GenericParam) Accept(v Visitor) { v.VisitGenericParam(g) }

// DestructureBinding is one entry of a destructuring pattern's `(...)` list
// (spec §4.5).
type DestructureBinding struct {
	NodeBase
	FieldName   string // empty for a purely positional binding
	BindingName string
	Nested      Pattern // non-nil for `field: (...)` / `(...)`
}

func (d *DestructureBinding) Accept(v Visitor) { v.VisitDestructureBinding(d) }

// Argument is one entry of a call's `(args)` list; Name is set for `name:
// expr` named arguments (spec §4.2 postfix loop).
type Argument struct {
	NodeBase
	Name  string
	Value Expression
}

func (a *Argument) Accept(v Visitor) { v.VisitArgument(a) }

// FieldUpdate is one `field: value` entry of a `with(...)` expression.
type FieldUpdate struct {
	NodeBase
	Name  string
	Value Expression
}

func (f *FieldUpdate) Accept(v Visitor) { v.VisitFieldUpdate(f) }

// DictEntry is one `key: value` entry of a dict literal.
type DictEntry struct {
	NodeBase
	Key   Expression
	Value Expression
}

func (d *DictEntry) Accept(v Visitor) { v.VisitDictEntry(d) }

// ChoiceCase is one case of a Choice (C-style enum) declaration.
type ChoiceCase struct {
	NodeBase
	Name     string
	IntValue *int64
}

func (c *ChoiceCase) Accept(v Visitor) { v.VisitChoiceCase(c) }

// VariantKind distinguishes the three tagged-union spellings (spec §3.3,
// GLOSSARY).
type VariantKind int

const (
	VariantKindPlain VariantKind = iota
	VariantKindMutant
	VariantKindChimera
)

// VariantCase is one case of a Variant/Mutant/Chimera declaration.
type VariantCase struct {
	NodeBase
	Name           string
	AssociatedType *TypeExpression
}

func (c *VariantCase) Accept(v Visitor) { v.VisitVariantCase(c) }

// ---- declarations --------------------------------------------------------

type NamespaceDecl struct {
	NodeBase
	Path []string
}

func (d *NamespaceDecl) declNode()        {}
func (d *NamespaceDecl) Accept(v Visitor) { v.VisitNamespaceDecl(d) }

type ImportDecl struct {
	NodeBase
	ModulePath      string
	Alias           string // empty if none
	SpecificImports []string
}

func (d *ImportDecl) declNode()        {}
func (d *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(d) }

type DefineDecl struct {
	NodeBase
	OldName string
	NewName string
}

func (d *DefineDecl) declNode()        {}
func (d *DefineDecl) Accept(v Visitor) { v.VisitDefineDecl(d) }

type UsingDecl struct {
	NodeBase
	Type  *TypeExpression
	Alias string
}

func (d *UsingDecl) declNode()        {}
func (d *UsingDecl) Accept(v Visitor) { v.VisitUsingDecl(d) }

type PresetDecl struct {
	NodeBase
	Name       string
	Type       *TypeExpression
	Value      Expression
	Visibility Visibility
}

func (d *PresetDecl) declNode()        {}
func (d *PresetDecl) stmtNode()        {} // also usable as a declaration-statement (spec §4.6)
func (d *PresetDecl) Accept(v Visitor) { v.VisitPresetDecl(d) }

type VariableDecl struct {
	NodeBase
	Name        string
	Type        *TypeExpression // nil if inferred
	Initializer Expression      // nil if absent
	Visibility  Visibility
	Mutable     bool
	GetterVis   Visibility
	SetterVis   *Visibility // nil if not separately declared
}

func (d *VariableDecl) declNode()        {}
func (d *VariableDecl) stmtNode()        {}
func (d *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(d) }

// RoutineDecl covers both free routines and methods (spec §4.7). NamePath
// holds namespace-qualified segments (`A.B.c` -> ["A","B","c"]);
// MethodGenericParams holds generics declared after the final dot
// (`List<T>.push<U>(...)` puts T in GenericParams, U in MethodGenericParams).
// Body is nil for signature-only routines (@intrinsic or protocol members).
type RoutineDecl struct {
	NodeBase
	NamePath            []string
	GenericParams       []*GenericParam
	MethodGenericParams []*GenericParam
	IsFailable          bool
	Parameters          []*Parameter
	ReturnType          *TypeExpression
	Constraints         []*Constraint
	Body                *BlockStmt
	Visibility          Visibility
	Attributes          []*Attribute
}

func (d *RoutineDecl) declNode()        {}
func (d *RoutineDecl) Accept(v Visitor) { v.VisitRoutineDecl(d) }

// Name returns the routine's final (unqualified) name segment.
func (d *RoutineDecl) Name() string {
	if len(d.NamePath) == 0 {
		return ""
	}
	return d.NamePath[len(d.NamePath)-1]
}

type EntityDecl struct {
	NodeBase
	Name          string
	GenericParams []*GenericParam
	Constraints   []*Constraint
	BaseClass     *TypeExpression
	Protocols     []*TypeExpression
	Members       []Declaration
	Visibility    Visibility
}

func (d *EntityDecl) declNode()        {}
func (d *EntityDecl) Accept(v Visitor) { v.VisitEntityDecl(d) }

type RecordDecl struct {
	NodeBase
	Name          string
	GenericParams []*GenericParam
	Constraints   []*Constraint
	Protocols     []*TypeExpression
	Members       []Declaration
	Visibility    Visibility
}

func (d *RecordDecl) declNode()        {}
func (d *RecordDecl) Accept(v Visitor) { v.VisitRecordDecl(d) }

type ResidentDecl struct {
	NodeBase
	Name       string
	Protocols  []*TypeExpression
	Members    []Declaration
	Visibility Visibility
}

func (d *ResidentDecl) declNode()        {}
func (d *ResidentDecl) Accept(v Visitor) { v.VisitResidentDecl(d) }

type ChoiceDecl struct {
	NodeBase
	Name       string
	Cases      []*ChoiceCase
	Methods    []*RoutineDecl
	Visibility Visibility
}

func (d *ChoiceDecl) declNode()        {}
func (d *ChoiceDecl) Accept(v Visitor) { v.VisitChoiceDecl(d) }

type VariantDecl struct {
	NodeBase
	Name          string
	GenericParams []*GenericParam
	Cases         []*VariantCase
	Kind          VariantKind
	Methods       []*RoutineDecl
	Visibility    Visibility
}

func (d *VariantDecl) declNode()        {}
func (d *VariantDecl) Accept(v Visitor) { v.VisitVariantDecl(d) }

type ProtocolDecl struct {
	NodeBase
	Name             string
	GenericParams    []*GenericParam
	ParentProtocols  []*TypeExpression
	MethodSignatures []*RoutineDecl
	RequiredFields   []*Parameter
	Visibility       Visibility
}

func (d *ProtocolDecl) declNode()        {}
func (d *ProtocolDecl) Accept(v Visitor) { v.VisitProtocolDecl(d) }

// ImportedDecl is an FFI declaration (spec §3.3): the only declaration form
// whose parameters may be variadic.
type ImportedDecl struct {
	NodeBase
	Name              string
	Parameters        []*Parameter
	ReturnType        *TypeExpression
	CallingConvention string
	Variadic          bool
	GenericParams     []*GenericParam
}

func (d *ImportedDecl) declNode()        {}
func (d *ImportedDecl) Accept(v Visitor) { v.VisitImportedDecl(d) }

// ---- statements -----------------------------------------------------------

type BlockStmt struct {
	NodeBase
	Statements []Statement
}

func (s *BlockStmt) stmtNode()        {}
func (s *BlockStmt) exprNode()        {} // a block may stand in expression position
func (s *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(s) }

type ExpressionStmt struct {
	NodeBase
	Expr Expression
}

func (s *ExpressionStmt) stmtNode()        {}
func (s *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(s) }

// IfStmt models both `if` and the `elseif` chain: a chained elseif is
// represented by nesting the next IfStmt inside Else (spec §4.6).
type IfStmt struct {
	NodeBase
	Cond Expression
	Then *BlockStmt
	Else Statement // nil, *BlockStmt, or *IfStmt
}

func (s *IfStmt) stmtNode()        {}
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }

// WhileStmt also models `loop { ... }` as while-true (spec §3.3).
type WhileStmt struct {
	NodeBase
	Cond Expression
	Body *BlockStmt
}

func (s *WhileStmt) stmtNode()        {}
func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }

type ForStmt struct {
	NodeBase
	VarName  string
	Iterable Expression
	Body     *BlockStmt
}

func (s *ForStmt) stmtNode()        {}
func (s *ForStmt) Accept(v Visitor) { v.VisitForStmt(s) }

// WhenClause is `pattern => body` (spec §4.6.1).
type WhenClause struct {
	NodeBase
	Pattern Pattern
	Body    Statement
}

func (c *WhenClause) Accept(v Visitor) { v.VisitWhenClause(c) }

type WhenStmt struct {
	NodeBase
	Subject Expression // synthetic BoolLiteral(true) when `when { ... }` omits it
	Clauses []*WhenClause
}

func (s *WhenStmt) stmtNode()        {}
func (s *WhenStmt) Accept(v Visitor) { v.VisitWhenStmt(s) }

type ReturnStmt struct {
	NodeBase
	Value Expression // nil for bare `return`
}

func (s *ReturnStmt) stmtNode()        {}
func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }

type BreakStmt struct{ NodeBase }

func (s *BreakStmt) stmtNode()        {}
func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }

type ContinueStmt struct{ NodeBase }

func (s *ContinueStmt) stmtNode()        {}
func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }

type ThrowStmt struct {
	NodeBase
	Value Expression
}

func (s *ThrowStmt) stmtNode()        {}
func (s *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(s) }

// AbsentStmt returns absent from a failable routine (spec §4.6, GLOSSARY).
type AbsentStmt struct{ NodeBase }

func (s *AbsentStmt) stmtNode()        {}
func (s *AbsentStmt) Accept(v Visitor) { v.VisitAbsentStmt(s) }

type PassStmt struct{ NodeBase }

func (s *PassStmt) stmtNode()        {}
func (s *PassStmt) Accept(v Visitor) { v.VisitPassStmt(s) }

// ScopedAccessStmt covers viewing/hijacking/inspecting/seizing (spec §4.6,
// GLOSSARY): the parser only recognizes their shape. Kind distinguishes them;
// Source and Handle follow the shape each uses: `<source> as <handle>` for
// viewing/hijacking, `<handle> from <source>` for inspecting/seizing.
type ScopedAccessKind int

const (
	ScopedViewing ScopedAccessKind = iota
	ScopedHijacking
	ScopedInspecting
	ScopedSeizing
)

type ScopedAccessStmt struct {
	NodeBase
	Kind   ScopedAccessKind
	Source Expression
	Handle string
	Body   *BlockStmt
}

func (s *ScopedAccessStmt) stmtNode()        {}
func (s *ScopedAccessStmt) Accept(v Visitor) { v.VisitScopedAccessStmt(s) }

// DangerStmt and MayhemStmt are the two bodies-only scoped-access forms
// (`danger! { ... }`, `mayhem! { ... }`).
type DangerStmt struct {
	NodeBase
	Body *BlockStmt
}

func (s *DangerStmt) stmtNode()        {}
func (s *DangerStmt) Accept(v Visitor) { v.VisitDangerStmt(s) }

type MayhemStmt struct {
	NodeBase
	Body *BlockStmt
}

func (s *MayhemStmt) stmtNode()        {}
func (s *MayhemStmt) Accept(v Visitor) { v.VisitMayhemStmt(s) }

// DestructuringStmt is `let (a, b: py) = expr` (spec §4.6, S7).
type DestructuringStmt struct {
	NodeBase
	Pattern Pattern
	Value   Expression
	Mutable bool
}

func (s *DestructuringStmt) stmtNode()        {}
func (s *DestructuringStmt) Accept(v Visitor) { v.VisitDestructuringStmt(s) }

// ---- expressions ----------------------------------------------------------

type Identifier struct {
	NodeBase
	Name string
}

func (e *Identifier) exprNode()        {}
func (e *Identifier) Accept(v Visitor) { v.VisitIdentifier(e) }

// IntLiteral covers both the untyped INT_LIT and every typed suffix that
// fits an int64 (Kind records which). Sign folding (spec §4.2) produces a
// negative Value here directly rather than wrapping a UnaryExpr.
type IntLiteral struct {
	NodeBase
	Value int64
	Kind  token.Kind
}

func (e *IntLiteral) exprNode()        {}
func (e *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(e) }

// BigIntLiteral backs literals whose magnitude (after sign folding) would
// not fit an int64, or whose suffix requests arbitrary precision (SPEC_FULL
// §3, spec §9 Design Notes: "pick or bundle an arbitrary-precision library").
type BigIntLiteral struct {
	NodeBase
	Value *big.Int
	Kind  token.Kind
}

func (e *BigIntLiteral) exprNode()        {}
func (e *BigIntLiteral) Accept(v Visitor) { v.VisitBigIntLiteral(e) }

type FloatLiteral struct {
	NodeBase
	Value float64
	Kind  token.Kind
}

func (e *FloatLiteral) exprNode()        {}
func (e *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(e) }

type BoolLiteral struct {
	NodeBase
	Value bool
}

func (e *BoolLiteral) exprNode()        {}
func (e *BoolLiteral) Accept(v Visitor) { v.VisitBoolLiteral(e) }

type NoneLiteral struct{ NodeBase }

func (e *NoneLiteral) exprNode()        {}
func (e *NoneLiteral) Accept(v Visitor) { v.VisitNoneLiteral(e) }

type LetterLiteral struct {
	NodeBase
	Value rune
}

func (e *LetterLiteral) exprNode()        {}
func (e *LetterLiteral) Accept(v Visitor) { v.VisitLetterLiteral(e) }

// TextLiteral covers plain, raw, and formatted/interpolated text (spec
// §6.1); Parts is non-empty only when Kind == token.TEXT_FORMAT, holding the
// alternating literal/expression segments.
type TextLiteral struct {
	NodeBase
	Value string
	Kind  token.Kind
	Parts []TextPart
}

func (e *TextLiteral) exprNode()        {}
func (e *TextLiteral) Accept(v Visitor) { v.VisitTextLiteral(e) }

// TextPart is one segment of an interpolated text literal.
type TextPart struct {
	Literal string     // set when Expr is nil
	Expr    Expression // set for a `${...}` segment
}

type ByteLiteral struct {
	NodeBase
	Value []byte
}

func (e *ByteLiteral) exprNode()        {}
func (e *ByteLiteral) Accept(v Visitor) { v.VisitByteLiteral(e) }

type BitsLiteral struct {
	NodeBase
	Value string // raw 0/1 digit text; bit-level decoding is downstream
}

func (e *BitsLiteral) exprNode()        {}
func (e *BitsLiteral) Accept(v Visitor) { v.VisitBitsLiteral(e) }

type MemSizeLiteral struct {
	NodeBase
	Value int64
	Unit  string // KiB, MiB, ...
}

func (e *MemSizeLiteral) exprNode()        {}
func (e *MemSizeLiteral) Accept(v Visitor) { v.VisitMemSizeLiteral(e) }

type DurationLiteral struct {
	NodeBase
	Value int64
	Unit  string // ms, s, min, ...
}

func (e *DurationLiteral) exprNode()        {}
func (e *DurationLiteral) Accept(v Visitor) { v.VisitDurationLiteral(e) }

type BinaryExpr struct {
	NodeBase
	Left  Expression
	Op    token.Kind
	Right Expression
}

func (e *BinaryExpr) exprNode()        {}
func (e *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(e) }

type UnaryExpr struct {
	NodeBase
	Op      token.Kind
	Operand Expression
}

func (e *UnaryExpr) exprNode()        {}
func (e *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(e) }

// ConditionalExpr covers both `cond ? then : else`-style ternary and
// `if cond then x else y` used in expression position (spec §3.3).
type ConditionalExpr struct {
	NodeBase
	Cond Expression
	Then Expression
	Else Expression
}

func (e *ConditionalExpr) exprNode()        {}
func (e *ConditionalExpr) Accept(v Visitor) { v.VisitConditionalExpr(e) }

// RangeExpr is the desugared form of `a to b [by/step s]` / `a downto b [...]`
// (spec §4.2 Range desugaring).
type RangeExpr struct {
	NodeBase
	Start      Expression
	End        Expression
	Step       Expression // nil if omitted
	Descending bool
}

func (e *RangeExpr) exprNode()        {}
func (e *RangeExpr) Accept(v Visitor) { v.VisitRangeExpr(e) }

// CallExpr is an ordinary or failable (`!(...)`) call with no explicit type
// arguments.
type CallExpr struct {
	NodeBase
	Callee     Expression
	Args       []*Argument
	IsFailable bool
}

func (e *CallExpr) exprNode()        {}
func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }

// GenericMethodCallExpr is `callee<T, ...>(args)`, produced only once the
// disambiguation in spec §4.2 commits to a generic-call reading.
type GenericMethodCallExpr struct {
	NodeBase
	Callee     Expression
	TypeArgs   []*TypeExpression
	Args       []*Argument
	IsFailable bool
}

func (e *GenericMethodCallExpr) exprNode()        {}
func (e *GenericMethodCallExpr) Accept(v Visitor) { v.VisitGenericMethodCallExpr(e) }

type MemberExpr struct {
	NodeBase
	Object           Expression
	Name             string
	IsFailableAccess bool // `.method!(...)` segment marker
}

func (e *MemberExpr) exprNode()        {}
func (e *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(e) }

// GenericMemberExpr is `object.Member<T, ...>` without a trailing call.
type GenericMemberExpr struct {
	NodeBase
	Object   Expression
	Name     string
	TypeArgs []*TypeExpression
}

func (e *GenericMemberExpr) exprNode()        {}
func (e *GenericMemberExpr) Accept(v Visitor) { v.VisitGenericMemberExpr(e) }

type IndexExpr struct {
	NodeBase
	Object Expression
	Index  Expression
}

func (e *IndexExpr) exprNode()        {}
func (e *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(e) }

// LambdaExpr's Body is an Expression for `(x) => x + 1` or a *BlockStmt for
// `(x) => { ... }`.
type LambdaExpr struct {
	NodeBase
	Parameters []*Parameter
	Body       Node
	ReturnType *TypeExpression
}

func (e *LambdaExpr) exprNode()        {}
func (e *LambdaExpr) Accept(v Visitor) { v.VisitLambdaExpr(e) }

type ListLiteralExpr struct {
	NodeBase
	Elements []Expression
}

func (e *ListLiteralExpr) exprNode()        {}
func (e *ListLiteralExpr) Accept(v Visitor) { v.VisitListLiteralExpr(e) }

type SetLiteralExpr struct {
	NodeBase
	Elements []Expression
}

func (e *SetLiteralExpr) exprNode()        {}
func (e *SetLiteralExpr) Accept(v Visitor) { v.VisitSetLiteralExpr(e) }

type DictLiteralExpr struct {
	NodeBase
	Entries []*DictEntry
}

func (e *DictLiteralExpr) exprNode()        {}
func (e *DictLiteralExpr) Accept(v Visitor) { v.VisitDictLiteralExpr(e) }

// WithExpr is the functional record-update postfix form `base with(f: v, ...)`
// (spec §4.2 Postfix loop).
type WithExpr struct {
	NodeBase
	Base   Expression
	Fields []*FieldUpdate
}

func (e *WithExpr) exprNode()        {}
func (e *WithExpr) Accept(v Visitor) { v.VisitWithExpr(e) }

// IsPatternExpr is `expr is Type`, `expr isnot Type`, `expr is Type name`,
// `expr is Type(...)`, and the `follows`/`notfollows` protocol-conformance
// forms (spec §4.2 "is / follows sub-grammar").
type IsPatternExpr struct {
	NodeBase
	Subject  Expression
	Op       token.Kind // KW_IS, KW_ISNOT, KW_FOLLOWS, KW_NOTFOLLOWS
	Pattern  Pattern    // TypePattern (with optional binding/destructuring) or ExpressionPattern for follows
}

func (e *IsPatternExpr) exprNode()        {}
func (e *IsPatternExpr) Accept(v Visitor) { v.VisitIsPatternExpr(e) }

// ChainedComparisonExpr requires len(Operands) == len(Operators)+1 and
// len(Operators) >= 2 (spec §3.4, §8.1.4).
type ChainedComparisonExpr struct {
	NodeBase
	Operands  []Expression
	Operators []token.Kind
}

func (e *ChainedComparisonExpr) exprNode()        {}
func (e *ChainedComparisonExpr) Accept(v Visitor) { v.VisitChainedComparisonExpr(e) }

// BlockExpr wraps a BlockStmt used in expression position (e.g. the body of
// an `if` used as an expression, or an elseif tail before wrapping).
type BlockExpr struct {
	NodeBase
	Block *BlockStmt
}

func (e *BlockExpr) exprNode()        {}
func (e *BlockExpr) Accept(v Visitor) { v.VisitBlockExpr(e) }

// IntrinsicExpr is a compiler-recognized pseudo-call; the parser only
// records name and arguments (spec §3.3).
type IntrinsicExpr struct {
	NodeBase
	Name string
	Args []Expression
}

func (e *IntrinsicExpr) exprNode()        {}
func (e *IntrinsicExpr) Accept(v Visitor) { v.VisitIntrinsicExpr(e) }

// NativeExpr is an inline native-code escape hatch; the parser treats its
// body as opaque text (spec §3.3).
type NativeExpr struct {
	NodeBase
	Code string
}

func (e *NativeExpr) exprNode()        {}
func (e *NativeExpr) Accept(v Visitor) { v.VisitNativeExpr(e) }

// AssignExpr models both plain `=` and the desugared form of every compound
// assignment (spec §4.2, §8.1.8). For `a <op>= b` the parser builds
// Assign(a, Binary(a, <op>, b)): the two `a` sub-trees have equal locations
// but are distinct node instances. A lowering/semantic pass, not this one,
// must special-case re-evaluating a side-effecting Left exactly once.
type AssignExpr struct {
	NodeBase
	Left  Expression
	Value Expression
}

func (e *AssignExpr) exprNode()        {}
func (e *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(e) }

// ---- patterns ---------------------------------------------------------

type WildcardPattern struct{ NodeBase }

func (p *WildcardPattern) patternNode()     {}
func (p *WildcardPattern) Accept(v Visitor) { v.VisitWildcardPattern(p) }

// TypePattern is `Type`, `Type name`, or `Type(...)` (spec §4.5).
type TypePattern struct {
	NodeBase
	Type        *TypeExpression
	Binding     string                // empty if no binding
	Destructure []*DestructureBinding // nil unless a `(...)` follows
}

func (p *TypePattern) patternNode()     {}
func (p *TypePattern) Accept(v Visitor) { v.VisitTypePattern(p) }

type IdentifierPattern struct {
	NodeBase
	Name string
}

func (p *IdentifierPattern) patternNode()     {}
func (p *IdentifierPattern) Accept(v Visitor) { v.VisitIdentifierPattern(p) }

type LiteralPattern struct {
	NodeBase
	Value Expression
}

func (p *LiteralPattern) patternNode()     {}
func (p *LiteralPattern) Accept(v Visitor) { v.VisitLiteralPattern(p) }

// ExpressionPattern is the fallback used as a guard-like boolean when
// nothing more specific matches (spec §4.5).
type ExpressionPattern struct {
	NodeBase
	Value Expression
}

func (p *ExpressionPattern) patternNode()     {}
func (p *ExpressionPattern) Accept(v Visitor) { v.VisitExpressionPattern(p) }

// GuardPattern wraps a trailing `if cond` (spec §4.5).
type GuardPattern struct {
	NodeBase
	Inner     Pattern
	Condition Expression
}

func (p *GuardPattern) patternNode()     {}
func (p *GuardPattern) Accept(v Visitor) { v.VisitGuardPattern(p) }

// DestructuringPattern is a bare `(...)` destructuring used by `let`
// (spec §4.5, §4.6, S7).
type DestructuringPattern struct {
	NodeBase
	Bindings []*DestructureBinding
}

func (p *DestructuringPattern) patternNode()     {}
func (p *DestructuringPattern) Accept(v Visitor) { v.VisitDestructuringPattern(p) }

// TypeDestructuringPattern is `Type(...)` used standalone from a `when`
// clause pattern position (distinct struct from TypePattern.Destructure so a
// caller can match on "was this written as a pure destructure" vs a binding
// form; both are grounded on the same grammar rule).
type TypeDestructuringPattern struct {
	NodeBase
	Type     *TypeExpression
	Bindings []*DestructureBinding
}

func (p *TypeDestructuringPattern) patternNode()     {}
func (p *TypeDestructuringPattern) Accept(v Visitor) { v.VisitTypeDestructuringPattern(p) }
