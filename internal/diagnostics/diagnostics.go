// Package diagnostics carries the two error channels the parser emits:
// hard ParseErrors that trigger synchronization, and buffered CompileWarnings
// that never abort a parse.
//
// Grounded on the teacher's internal/diagnostics package: a closed error-code
// enum, a message-template lookup, and a single wrapper error type. We split
// the teacher's single DiagnosticError into ParseError (hard) and
// CompileWarning (soft) because this front-end has no semantic-analysis phase
// to share the Phase field with.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forgelang/forge-parser/internal/token"
)

// ErrorCode is a closed set of hard-error kinds (spec §7).
type ErrorCode string

const (
	ErrUnexpectedToken    ErrorCode = "P001"
	ErrExpectedGot        ErrorCode = "P002"
	ErrInvalidLiteral     ErrorCode = "P003"
	ErrUnexpectedDedent   ErrorCode = "P004"
	ErrInvalidComparison  ErrorCode = "P005"
	ErrUndeclaredGeneric  ErrorCode = "P006"
	ErrInvalidSetterVis   ErrorCode = "P007"
	ErrDuplicateConstrain ErrorCode = "P008"
)

var errorTemplates = map[ErrorCode]string{
	ErrUnexpectedToken:    "unexpected token %s",
	ErrExpectedGot:        "expected %s, got %s",
	ErrInvalidLiteral:     "invalid literal %q",
	ErrUnexpectedDedent:   "unexpected dedent below base indentation",
	ErrInvalidComparison:  "invalid comparison chain: cannot mix ascending and descending operators",
	ErrUndeclaredGeneric:  "undeclared generic parameter %q in constraint",
	ErrInvalidSetterVis:   "setter visibility %q must be at least as restrictive as getter visibility %q",
	ErrDuplicateConstrain: "duplicate constraint clause for parameter %q",
}

// ParseError is the single hard-error kind the driver catches, prints, and
// synchronizes past (spec §7).
type ParseError struct {
	Code      ErrorCode
	Loc       token.Location
	Args      []any
	SessionID uuid.UUID
}

func (e *ParseError) Error() string {
	msg := errorTemplates[e.Code]
	if msg == "" {
		msg = string(e.Code)
	}
	if len(e.Args) > 0 {
		msg = fmt.Sprintf(msg, e.Args...)
	}
	return fmt.Sprintf("Parse error[%s]: %s", e.Loc, msg)
}

func NewError(code ErrorCode, loc token.Location, args ...any) *ParseError {
	return &ParseError{Code: code, Loc: loc, Args: args}
}

// Severity classifies a CompileWarning (spec §6.2).
type Severity int

const (
	Info Severity = iota
	Warning
	StyleViolation
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case StyleViolation:
		return "style"
	default:
		return "unknown"
	}
}

// WarningCode is a non-exhaustive (spec §6.3: "known warning codes include")
// set of style/deprecation codes.
type WarningCode string

const (
	// CK001: unnecessary closing brace in an indentation dialect.
	CK001 WarningCode = "CK001"
	// ST001: C-style syntax used where the dialect prefers another form.
	ST001 WarningCode = "ST001"
	// ST002: legacy `step` keyword used in a non-legacy dialect's range.
	ST002 WarningCode = "ST002"
	// CK002: a `when` clause consisting only of a wildcard `else`.
	CK002 WarningCode = "CK002"
)

// CompileWarning is a buffered, non-fatal diagnostic (spec §6.2, §6.3).
type CompileWarning struct {
	Message   string
	Line      int
	Column    int
	Severity  Severity
	Code      WarningCode
	SessionID uuid.UUID
}

func (w CompileWarning) String() string {
	return fmt.Sprintf("%s:%d:%d [%s] %s", w.Severity, w.Line, w.Column, w.Code, w.Message)
}

// Sink accumulates both channels for one parser instance. It is tagged with
// a session id so diagnostics from multiple parsers running concurrently
// (spec §5) can be correlated back to their originating file after the
// caller merges results.
type Sink struct {
	sessionID uuid.UUID
	errors    []*ParseError
	warnings  []CompileWarning
}

func NewSink() *Sink {
	return &Sink{sessionID: uuid.New()}
}

func (s *Sink) SessionID() uuid.UUID { return s.sessionID }

func (s *Sink) AddError(code ErrorCode, loc token.Location, args ...any) *ParseError {
	e := &ParseError{Code: code, Loc: loc, Args: args, SessionID: s.sessionID}
	s.errors = append(s.errors, e)
	return e
}

func (s *Sink) AddWarning(code WarningCode, severity Severity, line, column int, message string) {
	s.warnings = append(s.warnings, CompileWarning{
		Message: message, Line: line, Column: column,
		Severity: severity, Code: code, SessionID: s.sessionID,
	})
}

// Errors returns every hard error accumulated so far.
func (s *Sink) Errors() []*ParseError { return s.errors }

// GetWarnings returns every buffered warning (spec §6.3: get_warnings()).
func (s *Sink) GetWarnings() []CompileWarning { return s.warnings }

func (s *Sink) HasErrors() bool { return len(s.errors) > 0 }
