package config

import (
	"testing"

	"github.com/forgelang/forge-parser/internal/token"
)

func TestDescriptorForKeywords(t *testing.T) {
	tests := []struct {
		name           DialectName
		wantBlock      BlockStyle
		wantRoutineKW  token.Kind
		wantVariantKW  token.Kind
		wantStepKW     token.Kind
		wantConstraint token.Kind
	}{
		{Forge, BraceDelimited, token.KW_ROUTINE, token.KW_MUTANT, token.KW_BY, token.KW_REQUIRES},
		{Suflae, IndentDelimited, token.KW_ROUTINE, token.KW_MUTANT, token.KW_BY, token.KW_REQUIRES},
		{CakeLang, IndentDelimited, token.KW_RECIPE, token.KW_CHIMERA, token.KW_STEP, token.KW_WHERE},
	}
	for _, tt := range tests {
		d := DescriptorFor(tt.name)
		if d.BlockStyle != tt.wantBlock {
			t.Errorf("%s: BlockStyle = %v, want %v", tt.name, d.BlockStyle, tt.wantBlock)
		}
		if d.RoutineKeyword != tt.wantRoutineKW {
			t.Errorf("%s: RoutineKeyword = %v, want %v", tt.name, d.RoutineKeyword, tt.wantRoutineKW)
		}
		if d.VariantMutationKeyword != tt.wantVariantKW {
			t.Errorf("%s: VariantMutationKeyword = %v, want %v", tt.name, d.VariantMutationKeyword, tt.wantVariantKW)
		}
		if d.RangeStepKeyword != tt.wantStepKW {
			t.Errorf("%s: RangeStepKeyword = %v, want %v", tt.name, d.RangeStepKeyword, tt.wantStepKW)
		}
		if d.ConstraintClauseKeyword != tt.wantConstraint {
			t.Errorf("%s: ConstraintClauseKeyword = %v, want %v", tt.name, d.ConstraintClauseKeyword, tt.wantConstraint)
		}
	}
}

func TestIsRoutineKeywordAcceptsBothSpellings(t *testing.T) {
	cake := DescriptorFor(CakeLang)
	if !cake.IsRoutineKeyword(token.KW_ROUTINE) {
		t.Error("expected Cake to still accept the modern 'routine' spelling")
	}
	if !cake.IsRoutineKeyword(token.KW_RECIPE) {
		t.Error("expected Cake to accept its own 'recipe' spelling")
	}
	forge := DescriptorFor(Forge)
	if forge.IsRoutineKeyword(token.KW_RECIPE) {
		t.Error("expected Forge not to accept 'recipe'")
	}
}

func TestIsRangeStepKeywordLegacyToleration(t *testing.T) {
	forge := DescriptorFor(Forge)
	if !forge.IsRangeStepKeyword(token.KW_BY) {
		t.Error("expected Forge to accept its native 'by'")
	}
	if !forge.IsRangeStepKeyword(token.KW_STEP) {
		t.Error("expected Forge to tolerate the legacy 'step' spelling (with a warning upstream)")
	}

	cake := DescriptorFor(CakeLang)
	if !cake.IsRangeStepKeyword(token.KW_STEP) {
		t.Error("expected Cake to accept its native 'step'")
	}
}

func TestIsConstraintClauseKeywordAcceptsWhereEverywhere(t *testing.T) {
	forge := DescriptorFor(Forge)
	if !forge.IsConstraintClauseKeyword(token.KW_WHERE) {
		t.Error("expected 'where' to be accepted as a legacy alias in Forge")
	}
	if !forge.IsConstraintClauseKeyword(token.KW_REQUIRES) {
		t.Error("expected 'requires' to be accepted in Forge")
	}
}
