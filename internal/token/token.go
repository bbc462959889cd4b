// Package token defines the token vocabulary shared by all three dialects.
//
// Lexing itself lives upstream of this module; this package only names the
// closed set of kinds the parser switches on and the Token/SourceLocation
// shapes it consumes.
package token

import "fmt"

// Kind is a closed tag identifying what a Token represents.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// structural / synthetic whitespace tokens
	NEWLINE
	INDENT
	DEDENT

	// identifiers
	IDENT     // lower-case-led identifier
	TYPE_IDENT // upper-case-led identifier (type/constructor names)

	// literals
	INT_LIT      // untyped integer literal
	INT_S8
	INT_S16
	INT_S32
	INT_S64
	INT_U8
	INT_U16
	INT_U32
	INT_U64
	INT_UADDR
	FLOAT_LIT
	FLOAT_F32
	FLOAT_F64
	FLOAT_D128 // decimal128
	BOOL_LIT
	LETTER_LIT   // single-character literal
	TEXT_LIT     // double-quoted text
	TEXT_RAW     // raw/backtick text
	TEXT_FORMAT  // interpolated/formatted text
	BYTE_LIT     // byte-sequence literal
	BITS_LIT     // bit-sequence literal
	MEMSIZE_LIT  // KiB/MiB/... suffixed literal
	DURATION_LIT // ms/s/min/... suffixed literal
	NONE_LIT     // `none`

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	DOT
	COLON
	SEMICOLON
	ARROW      // ->
	FAT_ARROW  // =>
	AT         // @
	BANG       // !
	QUESTION   // ?
	UNDERSCORE // _

	// assignment
	ASSIGN      // =
	PLUS_ASSIGN // +=
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	AMP_ASSIGN
	PIPE_ASSIGN
	CARET_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN
	COALESCE_ASSIGN // ??=

	// arithmetic, incl. overflow-behavior variants
	PLUS
	MINUS
	STAR
	SLASH
	SLASH_SLASH // floor division
	PERCENT
	PLUS_WRAP  // +%
	PLUS_SAT   // +^
	PLUS_CHECK // +!
	MINUS_WRAP
	MINUS_SAT
	MINUS_CHECK
	STAR_WRAP
	STAR_SAT
	STAR_CHECK
	STAR_STAR      // **
	STAR_STAR_WRAP // **%  (overflow variant)

	// bitwise
	AMP   // &
	PIPE  // |
	CARET // ^
	TILDE // ~

	// shifts, incl. logical/checked variants
	SHL        // <<
	SHR        // >>
	SHR_LOGICAL // >>> (unsigned shift)
	SHL_CHECK
	SHR_CHECK

	// comparisons
	LT
	LE
	GT
	GE
	EQ
	NE
	SPACESHIP // <=>
	COALESCE  // ??

	// keyword-spelled logical / relational operators
	KW_AND
	KW_OR
	KW_NOT
	KW_IS
	KW_ISNOT
	KW_FOLLOWS
	KW_NOTFOLLOWS
	KW_IN
	KW_NOTIN
	KW_FROM
	KW_NOTFROM

	// range keywords
	KW_TO
	KW_DOWNTO
	KW_BY
	KW_STEP // legacy spelling of BY

	// declaration keywords
	KW_NAMESPACE
	KW_IMPORT
	KW_DEFINE
	KW_AS
	KW_USING
	KW_PRESET
	KW_VAR
	KW_LET
	KW_ROUTINE
	KW_RECIPE // legacy spelling of ROUTINE
	KW_ENTITY
	KW_RECORD
	KW_RESIDENT
	KW_CHOICE
	KW_VARIANT
	KW_MUTANT
	KW_CHIMERA // legacy spelling of MUTANT-kind variant
	KW_PROTOCOL
	KW_IMPORTED
	KW_ME
	KW_MYTYPE
	KW_REQUIRES
	KW_WHERE // legacy spelling of REQUIRES

	// visibility keywords
	KW_PUBLIC
	KW_INTERNAL
	KW_MODULE // alias of internal
	KW_PRIVATE
	KW_FAMILY
	KW_PROTECTED // alias of family
	KW_COMMON
	KW_GLOBAL
	KW_EXTERNAL

	// statement keywords
	KW_IF
	KW_THEN
	KW_ELSEIF
	KW_ELSE
	KW_UNLESS
	KW_WHILE
	KW_LOOP
	KW_FOR
	KW_WHEN
	KW_RETURN
	KW_BREAK
	KW_CONTINUE
	KW_THROW
	KW_ABSENT
	KW_PASS
	KW_WITH

	// scoped-access statement keywords
	KW_VIEWING
	KW_HIJACKING
	KW_INSPECTING
	KW_SEIZING
	KW_DANGER
	KW_MAYHEM

	// attributes
	ATTR_INTRINSIC // pre-tokenized @intrinsic

	EOFKind = EOF
)

var names = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	NEWLINE: "NEWLINE", INDENT: "INDENT", DEDENT: "DEDENT",
	IDENT: "IDENT", TYPE_IDENT: "TYPE_IDENT",
	INT_LIT: "INT_LIT", INT_S8: "INT_S8", INT_S16: "INT_S16", INT_S32: "INT_S32", INT_S64: "INT_S64",
	INT_U8: "INT_U8", INT_U16: "INT_U16", INT_U32: "INT_U32", INT_U64: "INT_U64", INT_UADDR: "INT_UADDR",
	FLOAT_LIT: "FLOAT_LIT", FLOAT_F32: "FLOAT_F32", FLOAT_F64: "FLOAT_F64", FLOAT_D128: "FLOAT_D128",
	BOOL_LIT: "BOOL_LIT", LETTER_LIT: "LETTER_LIT", TEXT_LIT: "TEXT_LIT", TEXT_RAW: "TEXT_RAW",
	TEXT_FORMAT: "TEXT_FORMAT", BYTE_LIT: "BYTE_LIT", BITS_LIT: "BITS_LIT",
	MEMSIZE_LIT: "MEMSIZE_LIT", DURATION_LIT: "DURATION_LIT", NONE_LIT: "NONE_LIT",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	COMMA: ",", DOT: ".", COLON: ":", SEMICOLON: ";", ARROW: "->", FAT_ARROW: "=>",
	AT: "@", BANG: "!", QUESTION: "?", UNDERSCORE: "_",
	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", SLASH_ASSIGN: "/=",
	PERCENT_ASSIGN: "%=", AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=",
	SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=", COALESCE_ASSIGN: "??=",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", SLASH_SLASH: "//", PERCENT: "%",
	PLUS_WRAP: "+%", PLUS_SAT: "+^", PLUS_CHECK: "+!",
	MINUS_WRAP: "-%", MINUS_SAT: "-^", MINUS_CHECK: "-!",
	STAR_WRAP: "*%", STAR_SAT: "*^", STAR_CHECK: "*!",
	STAR_STAR: "**", STAR_STAR_WRAP: "**%",
	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~",
	SHL: "<<", SHR: ">>", SHR_LOGICAL: ">>>", SHL_CHECK: "<<!", SHR_CHECK: ">>!",
	LT: "<", LE: "<=", GT: ">", GE: ">=", EQ: "==", NE: "!=", SPACESHIP: "<=>", COALESCE: "??",
	KW_AND: "and", KW_OR: "or", KW_NOT: "not", KW_IS: "is", KW_ISNOT: "isnot",
	KW_FOLLOWS: "follows", KW_NOTFOLLOWS: "notfollows", KW_IN: "in", KW_NOTIN: "notin",
	KW_FROM: "from", KW_NOTFROM: "notfrom",
	KW_TO: "to", KW_DOWNTO: "downto", KW_BY: "by", KW_STEP: "step",
	KW_NAMESPACE: "namespace", KW_IMPORT: "import", KW_DEFINE: "define", KW_AS: "as",
	KW_USING: "using", KW_PRESET: "preset", KW_VAR: "var", KW_LET: "let",
	KW_ROUTINE: "routine", KW_RECIPE: "recipe", KW_ENTITY: "entity", KW_RECORD: "record",
	KW_RESIDENT: "resident", KW_CHOICE: "choice", KW_VARIANT: "variant", KW_MUTANT: "mutant",
	KW_CHIMERA: "chimera", KW_PROTOCOL: "protocol", KW_IMPORTED: "imported",
	KW_ME: "me", KW_MYTYPE: "MyType", KW_REQUIRES: "requires", KW_WHERE: "where",
	KW_PUBLIC: "public", KW_INTERNAL: "internal", KW_MODULE: "module", KW_PRIVATE: "private",
	KW_FAMILY: "family", KW_PROTECTED: "protected", KW_COMMON: "common", KW_GLOBAL: "global",
	KW_EXTERNAL: "external",
	KW_IF: "if", KW_THEN: "then", KW_ELSEIF: "elseif", KW_ELSE: "else", KW_UNLESS: "unless",
	KW_WHILE: "while", KW_LOOP: "loop", KW_FOR: "for", KW_WHEN: "when",
	KW_RETURN: "return", KW_BREAK: "break", KW_CONTINUE: "continue", KW_THROW: "throw",
	KW_ABSENT: "absent", KW_PASS: "pass", KW_WITH: "with",
	KW_VIEWING: "viewing", KW_HIJACKING: "hijacking", KW_INSPECTING: "inspecting",
	KW_SEIZING: "seizing", KW_DANGER: "danger", KW_MAYHEM: "mayhem",
	ATTR_INTRINSIC: "@intrinsic",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps each keyword spelling to its Kind. Legacy spellings (recipe,
// chimera, step, where) keep Kinds of their own; the dialect descriptors
// (internal/config) decide which of them the parser accepts.
var Keywords = map[string]Kind{
	"and": KW_AND, "or": KW_OR, "not": KW_NOT,
	"is": KW_IS, "isnot": KW_ISNOT, "follows": KW_FOLLOWS, "notfollows": KW_NOTFOLLOWS,
	"in": KW_IN, "notin": KW_NOTIN, "from": KW_FROM, "notfrom": KW_NOTFROM,
	"to": KW_TO, "downto": KW_DOWNTO, "by": KW_BY, "step": KW_STEP,
	"namespace": KW_NAMESPACE, "import": KW_IMPORT, "define": KW_DEFINE, "as": KW_AS,
	"using": KW_USING, "preset": KW_PRESET, "var": KW_VAR, "let": KW_LET,
	"routine": KW_ROUTINE, "recipe": KW_RECIPE, "entity": KW_ENTITY, "record": KW_RECORD,
	"resident": KW_RESIDENT, "choice": KW_CHOICE, "variant": KW_VARIANT, "mutant": KW_MUTANT,
	"chimera": KW_CHIMERA, "protocol": KW_PROTOCOL, "imported": KW_IMPORTED,
	"me": KW_ME, "MyType": KW_MYTYPE, "requires": KW_REQUIRES, "where": KW_WHERE,
	"public": KW_PUBLIC, "internal": KW_INTERNAL, "module": KW_MODULE, "private": KW_PRIVATE,
	"family": KW_FAMILY, "protected": KW_PROTECTED, "common": KW_COMMON, "global": KW_GLOBAL,
	"external": KW_EXTERNAL,
	"if": KW_IF, "then": KW_THEN, "elseif": KW_ELSEIF, "else": KW_ELSE, "unless": KW_UNLESS,
	"while": KW_WHILE, "loop": KW_LOOP, "for": KW_FOR, "when": KW_WHEN,
	"return": KW_RETURN, "break": KW_BREAK, "continue": KW_CONTINUE, "throw": KW_THROW,
	"absent": KW_ABSENT, "pass": KW_PASS, "with": KW_WITH,
	"viewing": KW_VIEWING, "hijacking": KW_HIJACKING, "inspecting": KW_INSPECTING,
	"seizing": KW_SEIZING, "danger": KW_DANGER, "mayhem": KW_MAYHEM,
	"true": BOOL_LIT, "false": BOOL_LIT, "none": NONE_LIT,
}

// Location is attached to every AST node (spec §3.2).
type Location struct {
	File     string
	Line     int
	Column   int
	Position int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Token is the unit produced upstream and consumed by the cursor (spec §3.1).
type Token struct {
	Kind     Kind
	Text     string
	Line     int
	Column   int
	Position int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @%d:%d", t.Kind, t.Text, t.Line, t.Column)
}

func (t Token) Location(file string) Location {
	return Location{File: file, Line: t.Line, Column: t.Column, Position: t.Position}
}

// IsAscendingComparison reports whether k is one of the ascending-direction
// chained-comparison operators (spec §4.2).
func IsAscendingComparison(k Kind) bool {
	switch k {
	case LT, LE, KW_IN, KW_FROM, KW_FOLLOWS:
		return true
	}
	return false
}

// IsDescendingComparison reports whether k is one of the descending-direction
// chained-comparison operators (spec §4.2).
func IsDescendingComparison(k Kind) bool {
	switch k {
	case GT, GE, KW_NOTIN, KW_NOTFROM, KW_NOTFOLLOWS:
		return true
	}
	return false
}

// IsNeutralComparison reports whether k may mix with either direction.
func IsNeutralComparison(k Kind) bool {
	switch k {
	case EQ, NE, KW_IS, KW_ISNOT:
		return true
	}
	return false
}

// IsComparisonOperator reports whether k belongs at the Comparison/Equality
// precedence levels at all (ascending, descending, or neutral).
func IsComparisonOperator(k Kind) bool {
	return IsAscendingComparison(k) || IsDescendingComparison(k) || IsNeutralComparison(k) || k == SPACESHIP
}
