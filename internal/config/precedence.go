// Package config holds the data shared by all three dialect drivers: the one
// precedence ladder (spec §4.2) and the per-dialect keyword/block-style
// descriptor (spec §4.9).
//
// Grounded on the teacher's internal/config/operators.go "single source of
// truth" table idiom — one ordered table instead of scattering precedence
// constants across the parser.
package config

import "github.com/forgelang/forge-parser/internal/token"

// Precedence is the binding power used by the Pratt engine. Higher binds
// tighter.
type Precedence int

const (
	LOWEST Precedence = iota
	ASSIGNMENT
	INLINE_CONDITIONAL
	NONE_COALESCE
	LOGICAL_OR
	RANGE
	LOGICAL_AND
	EQUALITY
	COMPARISON
	IS_EXPRESSION
	BITWISE_OR
	BITWISE_XOR
	BITWISE_AND
	SHIFT
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	POWER
	POSTFIX
	PRIMARY
)

// precedences is the single table driving both the Pratt loop's binding
// decisions and the PrecedenceOf lookup. It is shared by all
// three dialects (SPEC_FULL §2.2: one ladder, not per-dialect) because the
// open question about a dead ?? precedence quirk in the legacy dialect is
// resolved by refusing to let the dialects diverge here at all.
var precedences = map[token.Kind]Precedence{
	token.ASSIGN:          ASSIGNMENT,
	token.PLUS_ASSIGN:     ASSIGNMENT,
	token.MINUS_ASSIGN:    ASSIGNMENT,
	token.STAR_ASSIGN:     ASSIGNMENT,
	token.SLASH_ASSIGN:    ASSIGNMENT,
	token.PERCENT_ASSIGN:  ASSIGNMENT,
	token.AMP_ASSIGN:      ASSIGNMENT,
	token.PIPE_ASSIGN:     ASSIGNMENT,
	token.CARET_ASSIGN:    ASSIGNMENT,
	token.SHL_ASSIGN:      ASSIGNMENT,
	token.SHR_ASSIGN:      ASSIGNMENT,
	token.COALESCE_ASSIGN: ASSIGNMENT,

	token.COALESCE: NONE_COALESCE,

	token.KW_OR: LOGICAL_OR,

	token.KW_TO:     RANGE,
	token.KW_DOWNTO: RANGE,

	token.KW_AND: LOGICAL_AND,

	token.EQ: EQUALITY,
	token.NE: EQUALITY,

	token.LT:        COMPARISON,
	token.LE:        COMPARISON,
	token.GT:        COMPARISON,
	token.GE:        COMPARISON,
	token.SPACESHIP: COMPARISON,
	token.KW_IN:     COMPARISON,
	token.KW_NOTIN:  COMPARISON,
	token.KW_FROM:   COMPARISON,
	token.KW_NOTFROM: COMPARISON,

	token.KW_IS:         IS_EXPRESSION,
	token.KW_ISNOT:      IS_EXPRESSION,
	token.KW_FOLLOWS:    IS_EXPRESSION,
	token.KW_NOTFOLLOWS: IS_EXPRESSION,

	token.PIPE:  BITWISE_OR,
	token.CARET: BITWISE_XOR,
	token.AMP:   BITWISE_AND,

	token.SHL:         SHIFT,
	token.SHR:         SHIFT,
	token.SHR_LOGICAL: SHIFT,
	token.SHL_CHECK:   SHIFT,
	token.SHR_CHECK:   SHIFT,

	token.PLUS:        ADDITIVE,
	token.MINUS:       ADDITIVE,
	token.PLUS_WRAP:   ADDITIVE,
	token.PLUS_SAT:    ADDITIVE,
	token.PLUS_CHECK:  ADDITIVE,
	token.MINUS_WRAP:  ADDITIVE,
	token.MINUS_SAT:   ADDITIVE,
	token.MINUS_CHECK: ADDITIVE,

	token.STAR:        MULTIPLICATIVE,
	token.SLASH:       MULTIPLICATIVE,
	token.SLASH_SLASH: MULTIPLICATIVE,
	token.PERCENT:     MULTIPLICATIVE,
	token.STAR_WRAP:   MULTIPLICATIVE,
	token.STAR_SAT:    MULTIPLICATIVE,
	token.STAR_CHECK:  MULTIPLICATIVE,

	token.STAR_STAR:      POWER,
	token.STAR_STAR_WRAP: POWER,

	token.LPAREN:   POSTFIX,
	token.LBRACKET: POSTFIX,
	token.DOT:      POSTFIX,
	token.BANG:     POSTFIX,
	token.KW_WITH:  POSTFIX,
}

// PrecedenceOf returns the binding power of k at its infix/postfix position,
// or LOWEST if k never appears there.
func PrecedenceOf(k token.Kind) Precedence {
	if p, ok := precedences[k]; ok {
		return p
	}
	return LOWEST
}

// IsComparisonLevel reports whether k sits at the Comparison rung, the level
// that accumulates into a chained comparison (spec §4.2) rather than folding
// immediately into a left-associative binary.
func IsComparisonLevel(k token.Kind) bool {
	return PrecedenceOf(k) == COMPARISON || token.IsNeutralComparison(k)
}

// IsRightAssociative reports operators whose Pratt recursion binds at
// precedence-1 instead of precedence (spec §4.2: Assignment, Unary, Power are
// right-associative).
func IsRightAssociative(k token.Kind) bool {
	switch PrecedenceOf(k) {
	case ASSIGNMENT, POWER:
		return true
	}
	return false
}
