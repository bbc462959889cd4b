package config

import "github.com/forgelang/forge-parser/internal/token"

// BlockStyle distinguishes brace-delimited from indentation-delimited block
// syntax (spec §4.9).
type BlockStyle int

const (
	BraceDelimited BlockStyle = iota
	IndentDelimited
)

// DialectName identifies one of the three source languages.
type DialectName string

const (
	Forge   DialectName = "forge"
	Suflae  DialectName = "suflae"
	CakeLang DialectName = "cake"
)

// Descriptor parameterizes the shared parser with a dialect's block style,
// legacy keyword spellings, and quirks (spec §4.9's table). It replaces
// inheritance between per-dialect parser subclasses: one shared engine, one
// small data record per dialect (SPEC_FULL §2.2, grounded on the teacher's
// config "single source of truth" idiom).
type Descriptor struct {
	Name       DialectName
	BlockStyle BlockStyle

	// RoutineKeyword is KW_ROUTINE for Forge/Suflae, KW_RECIPE for Cake.
	RoutineKeyword token.Kind
	// VariantMutationKeyword is KW_MUTANT normally, KW_CHIMERA in Cake.
	VariantMutationKeyword token.Kind
	// RangeStepKeyword is KW_BY normally, KW_STEP in Cake.
	RangeStepKeyword token.Kind
	// ConstraintClauseKeyword is KW_REQUIRES normally, KW_WHERE accepted as
	// a legacy alias everywhere but preferred by neither non-Cake dialect.
	ConstraintClauseKeyword token.Kind
	// AllowLegacyStep additionally accepts KW_STEP even when
	// RangeStepKeyword is KW_BY, emitting diagnostics.ST002.
	AllowLegacyStep bool
	// DisplaySugar enables Cake's `display(...)` statement sugar.
	DisplaySugar bool
}

var forgeDescriptor = Descriptor{
	Name:                    Forge,
	BlockStyle:              BraceDelimited,
	RoutineKeyword:          token.KW_ROUTINE,
	VariantMutationKeyword:  token.KW_MUTANT,
	RangeStepKeyword:        token.KW_BY,
	ConstraintClauseKeyword: token.KW_REQUIRES,
	AllowLegacyStep:         true,
}

var suflaeDescriptor = Descriptor{
	Name:                    Suflae,
	BlockStyle:              IndentDelimited,
	RoutineKeyword:          token.KW_ROUTINE,
	VariantMutationKeyword:  token.KW_MUTANT,
	RangeStepKeyword:        token.KW_BY,
	ConstraintClauseKeyword: token.KW_REQUIRES,
	AllowLegacyStep:         true,
}

var cakeDescriptor = Descriptor{
	Name:                    CakeLang,
	BlockStyle:              IndentDelimited,
	RoutineKeyword:          token.KW_RECIPE,
	VariantMutationKeyword:  token.KW_CHIMERA,
	RangeStepKeyword:        token.KW_STEP,
	ConstraintClauseKeyword: token.KW_WHERE,
	AllowLegacyStep:         true,
	DisplaySugar:            true,
}

// DescriptorFor returns the fixed Descriptor for one of the three dialects.
func DescriptorFor(name DialectName) Descriptor {
	switch name {
	case Forge:
		return forgeDescriptor
	case Suflae:
		return suflaeDescriptor
	case CakeLang:
		return cakeDescriptor
	default:
		return forgeDescriptor
	}
}

// IsRoutineKeyword reports whether k introduces a routine declaration under
// d (either the modern or the dialect's own spelling).
func (d Descriptor) IsRoutineKeyword(k token.Kind) bool {
	return k == token.KW_ROUTINE || k == d.RoutineKeyword
}

// IsConstraintClauseKeyword reports whether k opens a requires/where clause.
// `where` is accepted everywhere as a legacy alias of `requires` (spec §4.4).
func (d Descriptor) IsConstraintClauseKeyword(k token.Kind) bool {
	return k == token.KW_REQUIRES || k == token.KW_WHERE
}

// IsRangeStepKeyword reports whether k introduces a range step clause under
// d, accepting the legacy `step` spelling outside Cake when AllowLegacyStep
// lets it through with a diagnostics.ST002 warning.
func (d Descriptor) IsRangeStepKeyword(k token.Kind) bool {
	if k == d.RangeStepKeyword {
		return true
	}
	return d.AllowLegacyStep && k == token.KW_STEP
}
