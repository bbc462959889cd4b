// Package cursor implements C1: a positioned, mutable-offset view over a
// pre-tokenized vector (spec §4.1). It is the only place in the module that
// holds a raw position integer; everything above it goes through check,
// match, consume, peek, advance, and insert.
//
// Grounded on the teacher's internal/lexer/processor.go bufferedLexer, which
// wraps a raw token source behind Next()/Peek(n); this version works over an
// already-fully-lexed slice (spec §6.1: the lexer's whole job is upstream)
// and adds the single-token pushback buffer the `>>`-split rule needs
// (spec §4.3, §9 Design Notes: "maintain a tiny pushback buffer ... avoid
// actually mutating the backing vector").
package cursor

import "github.com/forgelang/forge-parser/internal/token"

// Cursor is the mutable position integer plus the pushback slot; nothing
// else in the parser owns mutable cursor state (spec §4.1, §5).
type Cursor struct {
	tokens   []token.Token
	pos      int
	pushback []token.Token // inserted tokens consumed before the backing slice resumes
	file     string
}

// New builds a cursor over a complete token vector, the lexer's only
// contract with this module (spec §6.1).
func New(file string, tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens, file: file}
}

// current returns the token at the logical read head: the front of the
// pushback buffer if non-empty, else tokens[pos].
func (c *Cursor) current() token.Token {
	if len(c.pushback) > 0 {
		return c.pushback[0]
	}
	if c.pos >= len(c.tokens) {
		return c.eofToken()
	}
	return c.tokens[c.pos]
}

func (c *Cursor) eofToken() token.Token {
	if len(c.tokens) == 0 {
		return token.Token{Kind: token.EOF}
	}
	last := c.tokens[len(c.tokens)-1]
	return token.Token{Kind: token.EOF, Line: last.Line, Column: last.Column, Position: last.Position}
}

// Current returns the token the cursor is positioned on without consuming it.
func (c *Cursor) Current() token.Token { return c.current() }

// Check reports whether the current token has kind k (non-consuming).
func (c *Cursor) Check(k token.Kind) bool { return c.current().Kind == k }

// CheckAny reports whether the current token matches any of ks.
func (c *Cursor) CheckAny(ks ...token.Kind) bool {
	cur := c.current().Kind
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// Match consumes and returns true if the current token has kind k; otherwise
// leaves the cursor untouched and returns false.
func (c *Cursor) Match(k token.Kind) bool {
	if c.Check(k) {
		c.Advance()
		return true
	}
	return false
}

// MatchAny consumes and returns true if the current token matches any of ks.
func (c *Cursor) MatchAny(ks ...token.Kind) bool {
	if c.CheckAny(ks...) {
		c.Advance()
		return true
	}
	return false
}

// Consume requires the current token to have kind k, advancing past it and
// returning it; otherwise it returns ok=false and the caller is responsible
// for raising a diagnostics.ParseError with msg.
func (c *Cursor) Consume(k token.Kind, msg string) (token.Token, bool) {
	if !c.Check(k) {
		return c.current(), false
	}
	t := c.current()
	c.Advance()
	return t, true
}

// Advance consumes and returns the current token, moving the read head
// forward one position (draining the pushback buffer first).
func (c *Cursor) Advance() token.Token {
	t := c.current()
	if len(c.pushback) > 0 {
		c.pushback = c.pushback[1:]
		return t
	}
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return t
}

// Peek looks offset tokens ahead of the current read head without consuming
// anything; offset may be negative, with -1 yielding the token just consumed
// (spec §4.1). Peek accounts for any pending pushback tokens.
func (c *Cursor) Peek(offset int) token.Token {
	if offset == 0 {
		return c.current()
	}
	if offset < 0 {
		// negative offsets always look into already-consumed backing-vector
		// tokens; a pending pushback sits logically ahead of pos and never
		// participates in "tokens already behind the head".
		idx := c.pos + offset
		if idx < 0 || idx >= len(c.tokens) {
			return c.eofToken()
		}
		return c.tokens[idx]
	}
	// positive offset: walk past any pushback tokens first, then into the
	// backing vector.
	remaining := offset
	if len(c.pushback) > 0 {
		if remaining < len(c.pushback) {
			return c.pushback[remaining]
		}
		remaining -= len(c.pushback)
		idx := c.pos + remaining
		if idx < 0 || idx >= len(c.tokens) {
			return c.eofToken()
		}
		return c.tokens[idx]
	}
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.tokens) {
		return c.eofToken()
	}
	return c.tokens[idx]
}

// IsAtEnd reports whether the cursor has reached the terminal Eof token.
func (c *Cursor) IsAtEnd() bool {
	return c.current().Kind == token.EOF
}

// Insert splices t at the current read head, to be consumed before anything
// already in the backing vector (spec §4.1 `insert`). Used solely by the
// `>>`-split rule (spec §4.3): a tiny pushback buffer stands in for the
// Design Notes' "splice a fresh token back into the stream".
func (c *Cursor) Insert(t token.Token) {
	c.pushback = append(c.pushback, token.Token{})
	copy(c.pushback[1:], c.pushback[:len(c.pushback)-1])
	c.pushback[0] = t
}

// File returns the source file name attached to locations this cursor mints.
func (c *Cursor) File() string { return c.file }

// Loc converts a Token into a full Location, stamping the cursor's file name
// (spec §3.2).
func (c *Cursor) Loc(t token.Token) token.Location {
	return token.Location{File: c.file, Line: t.Line, Column: t.Column, Position: t.Position}
}
