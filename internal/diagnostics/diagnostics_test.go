package diagnostics

import (
	"strings"
	"testing"

	"github.com/forgelang/forge-parser/internal/token"
)

func TestParseErrorMessage(t *testing.T) {
	loc := token.Location{File: "a.fg", Line: 2, Column: 4}
	err := NewError(ErrExpectedGot, loc, "')'", "EOF")
	got := err.Error()
	if !strings.Contains(got, "a.fg:2:4") {
		t.Errorf("expected message to contain location, got %q", got)
	}
	if !strings.Contains(got, "expected ')', got EOF") {
		t.Errorf("expected templated message, got %q", got)
	}
}

func TestParseErrorUnknownCodeFallsBackToRawCode(t *testing.T) {
	err := NewError(ErrorCode("P999"), token.Location{})
	if !strings.Contains(err.Error(), "P999") {
		t.Errorf("expected fallback to raw code, got %q", err.Error())
	}
}

func TestSinkAccumulatesErrorsAndWarnings(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Fatal("expected a fresh Sink to have no errors")
	}

	s.AddError(ErrUnexpectedToken, token.Location{Line: 1}, "PLUS")
	if !s.HasErrors() {
		t.Fatal("expected HasErrors() to be true after AddError")
	}
	if len(s.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(s.Errors()))
	}

	s.AddWarning(ST002, StyleViolation, 3, 1, "legacy step")
	warnings := s.GetWarnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != ST002 || warnings[0].Severity != StyleViolation {
		t.Errorf("unexpected warning: %#v", warnings[0])
	}
}

func TestSinkStampsSessionID(t *testing.T) {
	s := NewSink()
	e := s.AddError(ErrUnexpectedToken, token.Location{})
	if e.SessionID != s.SessionID() {
		t.Error("expected ParseError.SessionID to match the Sink's SessionID")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{StyleViolation, "style"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestCompileWarningString(t *testing.T) {
	w := CompileWarning{Message: "m", Line: 5, Column: 2, Severity: Info, Code: CK002}
	got := w.String()
	if !strings.Contains(got, "CK002") || !strings.Contains(got, "5:2") {
		t.Errorf("unexpected warning string: %q", got)
	}
}
