package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LPAREN, "("},
		{KW_IS, "is"},
		{EOF, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	unknown := Kind(99999)
	if got := unknown.String(); got == "" {
		t.Error("expected a non-empty fallback string for an unknown Kind")
	}
}

func TestKeywordsMapping(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"routine", KW_ROUTINE},
		{"recipe", KW_RECIPE},
		{"mutant", KW_MUTANT},
		{"chimera", KW_CHIMERA},
		{"step", KW_STEP},
		{"true", BOOL_LIT},
		{"false", BOOL_LIT},
		{"none", NONE_LIT},
	}
	for _, tt := range tests {
		got, ok := Keywords[tt.text]
		if !ok {
			t.Fatalf("expected %q to be a keyword", tt.text)
		}
		if got != tt.want {
			t.Errorf("Keywords[%q] = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsAscendingDescendingNeutral(t *testing.T) {
	ascending := []Kind{LT, LE}
	descending := []Kind{GT, GE}
	neutral := []Kind{EQ, NE}

	for _, k := range ascending {
		if !IsAscendingComparison(k) {
			t.Errorf("expected %v to be ascending", k)
		}
		if IsDescendingComparison(k) {
			t.Errorf("expected %v not to be descending", k)
		}
	}
	for _, k := range descending {
		if !IsDescendingComparison(k) {
			t.Errorf("expected %v to be descending", k)
		}
		if IsAscendingComparison(k) {
			t.Errorf("expected %v not to be ascending", k)
		}
	}
	for _, k := range neutral {
		if !IsNeutralComparison(k) {
			t.Errorf("expected %v to be neutral", k)
		}
	}
}

func TestIsComparisonOperator(t *testing.T) {
	for _, k := range []Kind{LT, LE, GT, GE, EQ, NE, KW_IS, KW_ISNOT} {
		if !IsComparisonOperator(k) {
			t.Errorf("expected %v to be a comparison operator", k)
		}
	}
	if IsComparisonOperator(PLUS) {
		t.Error("expected PLUS not to be a comparison operator")
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "a.fg", Line: 3, Column: 7}
	want := "a.fg:3:7"
	if got := loc.String(); got != want {
		t.Errorf("Location.String() = %q, want %q", got, want)
	}
}

func TestTokenLocation(t *testing.T) {
	tok := Token{Kind: IDENT, Text: "x", Line: 2, Column: 5, Position: 10}
	loc := tok.Location("f.fg")
	if loc.File != "f.fg" || loc.Line != 2 || loc.Column != 5 || loc.Position != 10 {
		t.Errorf("unexpected Location: %#v", loc)
	}
}
