package ast

// Visitor is the double-dispatch contract every node's Accept method calls
// into. There is no such interface in the retrieval pack's copy of the
// teacher repo (its Accept methods call v.VisitXxx against an interface that
// was never checked in); this one is authored fresh from those call sites so
// traversal has a typed home instead of ad hoc switch statements scattered
// across callers.
type Visitor interface {
	VisitProgram(n *Program)
	VisitTypeExpression(n *TypeExpression)
	VisitParameter(n *Parameter)
	VisitAttribute(n *Attribute)
	VisitConstraint(n *Constraint)
	VisitGenericParam(n *GenericParam)
	VisitDestructureBinding(n *DestructureBinding)
	VisitArgument(n *Argument)
	VisitFieldUpdate(n *FieldUpdate)
	VisitDictEntry(n *DictEntry)
	VisitChoiceCase(n *ChoiceCase)
	VisitVariantCase(n *VariantCase)

	VisitNamespaceDecl(n *NamespaceDecl)
	VisitImportDecl(n *ImportDecl)
	VisitDefineDecl(n *DefineDecl)
	VisitUsingDecl(n *UsingDecl)
	VisitPresetDecl(n *PresetDecl)
	VisitVariableDecl(n *VariableDecl)
	VisitRoutineDecl(n *RoutineDecl)
	VisitEntityDecl(n *EntityDecl)
	VisitRecordDecl(n *RecordDecl)
	VisitResidentDecl(n *ResidentDecl)
	VisitChoiceDecl(n *ChoiceDecl)
	VisitVariantDecl(n *VariantDecl)
	VisitProtocolDecl(n *ProtocolDecl)
	VisitImportedDecl(n *ImportedDecl)

	VisitBlockStmt(n *BlockStmt)
	VisitExpressionStmt(n *ExpressionStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitForStmt(n *ForStmt)
	VisitWhenClause(n *WhenClause)
	VisitWhenStmt(n *WhenStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitBreakStmt(n *BreakStmt)
	VisitContinueStmt(n *ContinueStmt)
	VisitThrowStmt(n *ThrowStmt)
	VisitAbsentStmt(n *AbsentStmt)
	VisitPassStmt(n *PassStmt)
	VisitScopedAccessStmt(n *ScopedAccessStmt)
	VisitDangerStmt(n *DangerStmt)
	VisitMayhemStmt(n *MayhemStmt)
	VisitDestructuringStmt(n *DestructuringStmt)

	VisitIdentifier(n *Identifier)
	VisitIntLiteral(n *IntLiteral)
	VisitBigIntLiteral(n *BigIntLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitBoolLiteral(n *BoolLiteral)
	VisitNoneLiteral(n *NoneLiteral)
	VisitLetterLiteral(n *LetterLiteral)
	VisitTextLiteral(n *TextLiteral)
	VisitByteLiteral(n *ByteLiteral)
	VisitBitsLiteral(n *BitsLiteral)
	VisitMemSizeLiteral(n *MemSizeLiteral)
	VisitDurationLiteral(n *DurationLiteral)
	VisitBinaryExpr(n *BinaryExpr)
	VisitUnaryExpr(n *UnaryExpr)
	VisitConditionalExpr(n *ConditionalExpr)
	VisitRangeExpr(n *RangeExpr)
	VisitCallExpr(n *CallExpr)
	VisitGenericMethodCallExpr(n *GenericMethodCallExpr)
	VisitMemberExpr(n *MemberExpr)
	VisitGenericMemberExpr(n *GenericMemberExpr)
	VisitIndexExpr(n *IndexExpr)
	VisitLambdaExpr(n *LambdaExpr)
	VisitListLiteralExpr(n *ListLiteralExpr)
	VisitSetLiteralExpr(n *SetLiteralExpr)
	VisitDictLiteralExpr(n *DictLiteralExpr)
	VisitWithExpr(n *WithExpr)
	VisitIsPatternExpr(n *IsPatternExpr)
	VisitChainedComparisonExpr(n *ChainedComparisonExpr)
	VisitBlockExpr(n *BlockExpr)
	VisitIntrinsicExpr(n *IntrinsicExpr)
	VisitNativeExpr(n *NativeExpr)
	VisitAssignExpr(n *AssignExpr)

	VisitWildcardPattern(n *WildcardPattern)
	VisitTypePattern(n *TypePattern)
	VisitIdentifierPattern(n *IdentifierPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitExpressionPattern(n *ExpressionPattern)
	VisitGuardPattern(n *GuardPattern)
	VisitDestructuringPattern(n *DestructuringPattern)
	VisitTypeDestructuringPattern(n *TypeDestructuringPattern)
}

// BaseVisitor is an embeddable no-op Visitor. Concrete visitors (a counter,
// a validator, a printer) embed it and override only the methods they care
// about, the way a partial interface implementation works in languages with
// default methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program)                 {}
func (BaseVisitor) VisitTypeExpression(n *TypeExpression)   {}
func (BaseVisitor) VisitParameter(n *Parameter)             {}
func (BaseVisitor) VisitAttribute(n *Attribute)             {}
func (BaseVisitor) VisitConstraint(n *Constraint)           {}
func (BaseVisitor) VisitGenericParam(n *GenericParam)       {}
func (BaseVisitor) VisitDestructureBinding(n *DestructureBinding) {}
func (BaseVisitor) VisitArgument(n *Argument)               {}
func (BaseVisitor) VisitFieldUpdate(n *FieldUpdate)         {}
func (BaseVisitor) VisitDictEntry(n *DictEntry)             {}
func (BaseVisitor) VisitChoiceCase(n *ChoiceCase)           {}
func (BaseVisitor) VisitVariantCase(n *VariantCase)         {}

func (BaseVisitor) VisitNamespaceDecl(n *NamespaceDecl) {}
func (BaseVisitor) VisitImportDecl(n *ImportDecl)       {}
func (BaseVisitor) VisitDefineDecl(n *DefineDecl)       {}
func (BaseVisitor) VisitUsingDecl(n *UsingDecl)         {}
func (BaseVisitor) VisitPresetDecl(n *PresetDecl)       {}
func (BaseVisitor) VisitVariableDecl(n *VariableDecl)   {}
func (BaseVisitor) VisitRoutineDecl(n *RoutineDecl)     {}
func (BaseVisitor) VisitEntityDecl(n *EntityDecl)       {}
func (BaseVisitor) VisitRecordDecl(n *RecordDecl)       {}
func (BaseVisitor) VisitResidentDecl(n *ResidentDecl)   {}
func (BaseVisitor) VisitChoiceDecl(n *ChoiceDecl)       {}
func (BaseVisitor) VisitVariantDecl(n *VariantDecl)     {}
func (BaseVisitor) VisitProtocolDecl(n *ProtocolDecl)   {}
func (BaseVisitor) VisitImportedDecl(n *ImportedDecl)   {}

func (BaseVisitor) VisitBlockStmt(n *BlockStmt)             {}
func (BaseVisitor) VisitExpressionStmt(n *ExpressionStmt)   {}
func (BaseVisitor) VisitIfStmt(n *IfStmt)                   {}
func (BaseVisitor) VisitWhileStmt(n *WhileStmt)             {}
func (BaseVisitor) VisitForStmt(n *ForStmt)                 {}
func (BaseVisitor) VisitWhenClause(n *WhenClause)           {}
func (BaseVisitor) VisitWhenStmt(n *WhenStmt)               {}
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt)           {}
func (BaseVisitor) VisitBreakStmt(n *BreakStmt)             {}
func (BaseVisitor) VisitContinueStmt(n *ContinueStmt)       {}
func (BaseVisitor) VisitThrowStmt(n *ThrowStmt)             {}
func (BaseVisitor) VisitAbsentStmt(n *AbsentStmt)           {}
func (BaseVisitor) VisitPassStmt(n *PassStmt)               {}
func (BaseVisitor) VisitScopedAccessStmt(n *ScopedAccessStmt) {}
func (BaseVisitor) VisitDangerStmt(n *DangerStmt)           {}
func (BaseVisitor) VisitMayhemStmt(n *MayhemStmt)           {}
func (BaseVisitor) VisitDestructuringStmt(n *DestructuringStmt) {}

func (BaseVisitor) VisitIdentifier(n *Identifier)                       {}
func (BaseVisitor) VisitIntLiteral(n *IntLiteral)                       {}
func (BaseVisitor) VisitBigIntLiteral(n *BigIntLiteral)                 {}
func (BaseVisitor) VisitFloatLiteral(n *FloatLiteral)                   {}
func (BaseVisitor) VisitBoolLiteral(n *BoolLiteral)                     {}
func (BaseVisitor) VisitNoneLiteral(n *NoneLiteral)                     {}
func (BaseVisitor) VisitLetterLiteral(n *LetterLiteral)                 {}
func (BaseVisitor) VisitTextLiteral(n *TextLiteral)                     {}
func (BaseVisitor) VisitByteLiteral(n *ByteLiteral)                     {}
func (BaseVisitor) VisitBitsLiteral(n *BitsLiteral)                     {}
func (BaseVisitor) VisitMemSizeLiteral(n *MemSizeLiteral)               {}
func (BaseVisitor) VisitDurationLiteral(n *DurationLiteral)             {}
func (BaseVisitor) VisitBinaryExpr(n *BinaryExpr)                       {}
func (BaseVisitor) VisitUnaryExpr(n *UnaryExpr)                         {}
func (BaseVisitor) VisitConditionalExpr(n *ConditionalExpr)             {}
func (BaseVisitor) VisitRangeExpr(n *RangeExpr)                         {}
func (BaseVisitor) VisitCallExpr(n *CallExpr)                           {}
func (BaseVisitor) VisitGenericMethodCallExpr(n *GenericMethodCallExpr) {}
func (BaseVisitor) VisitMemberExpr(n *MemberExpr)                       {}
func (BaseVisitor) VisitGenericMemberExpr(n *GenericMemberExpr)         {}
func (BaseVisitor) VisitIndexExpr(n *IndexExpr)                         {}
func (BaseVisitor) VisitLambdaExpr(n *LambdaExpr)                       {}
func (BaseVisitor) VisitListLiteralExpr(n *ListLiteralExpr)             {}
func (BaseVisitor) VisitSetLiteralExpr(n *SetLiteralExpr)               {}
func (BaseVisitor) VisitDictLiteralExpr(n *DictLiteralExpr)             {}
func (BaseVisitor) VisitWithExpr(n *WithExpr)                           {}
func (BaseVisitor) VisitIsPatternExpr(n *IsPatternExpr)                 {}
func (BaseVisitor) VisitChainedComparisonExpr(n *ChainedComparisonExpr) {}
func (BaseVisitor) VisitBlockExpr(n *BlockExpr)                         {}
func (BaseVisitor) VisitIntrinsicExpr(n *IntrinsicExpr)                 {}
func (BaseVisitor) VisitNativeExpr(n *NativeExpr)                       {}
func (BaseVisitor) VisitAssignExpr(n *AssignExpr)                       {}

func (BaseVisitor) VisitWildcardPattern(n *WildcardPattern)                 {}
func (BaseVisitor) VisitTypePattern(n *TypePattern)                         {}
func (BaseVisitor) VisitIdentifierPattern(n *IdentifierPattern)             {}
func (BaseVisitor) VisitLiteralPattern(n *LiteralPattern)                   {}
func (BaseVisitor) VisitExpressionPattern(n *ExpressionPattern)             {}
func (BaseVisitor) VisitGuardPattern(n *GuardPattern)                       {}
func (BaseVisitor) VisitDestructuringPattern(n *DestructuringPattern)       {}
func (BaseVisitor) VisitTypeDestructuringPattern(n *TypeDestructuringPattern) {}
