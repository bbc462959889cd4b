package cursor

import (
	"testing"

	"github.com/forgelang/forge-parser/internal/token"
)

func toks(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, len(kinds))
	for i, k := range kinds {
		out[i] = token.Token{Kind: k, Line: i + 1}
	}
	return out
}

func TestCheckMatchAdvance(t *testing.T) {
	c := New("f.fg", toks(token.IDENT, token.PLUS, token.IDENT))

	if !c.Check(token.IDENT) {
		t.Fatal("expected Check(IDENT) to be true at start")
	}
	if c.Match(token.PLUS) {
		t.Fatal("expected Match(PLUS) to fail at start")
	}
	first := c.Advance()
	if first.Kind != token.IDENT {
		t.Fatalf("expected to advance past IDENT, got %v", first.Kind)
	}
	if !c.Match(token.PLUS) {
		t.Fatal("expected Match(PLUS) to succeed after advancing")
	}
	if !c.Check(token.IDENT) {
		t.Fatal("expected cursor to be on the final IDENT")
	}
}

func TestConsume(t *testing.T) {
	c := New("f.fg", toks(token.IDENT, token.EOF))
	tok, ok := c.Consume(token.IDENT, "identifier")
	if !ok || tok.Kind != token.IDENT {
		t.Fatalf("expected Consume(IDENT) to succeed, got ok=%v tok=%v", ok, tok)
	}
	_, ok = c.Consume(token.IDENT, "identifier")
	if ok {
		t.Fatal("expected Consume(IDENT) to fail once positioned on EOF")
	}
}

func TestIsAtEndAndEOFPadding(t *testing.T) {
	c := New("f.fg", toks(token.IDENT))
	if c.IsAtEnd() {
		t.Fatal("expected cursor not to be at end before consuming the only token")
	}
	c.Advance()
	if !c.IsAtEnd() {
		t.Fatal("expected cursor to report EOF once the backing vector is exhausted")
	}
	// Advancing past the logical end must not panic and must keep returning EOF.
	c.Advance()
	c.Advance()
	if c.Current().Kind != token.EOF {
		t.Fatalf("expected EOF after running off the end, got %v", c.Current().Kind)
	}
}

func TestPeekPositiveAndNegative(t *testing.T) {
	c := New("f.fg", toks(token.IDENT, token.PLUS, token.IDENT))
	if c.Peek(1).Kind != token.PLUS {
		t.Fatalf("expected Peek(1) == PLUS, got %v", c.Peek(1).Kind)
	}
	c.Advance()
	if c.Peek(-1).Kind != token.IDENT {
		t.Fatalf("expected Peek(-1) == IDENT (just consumed), got %v", c.Peek(-1).Kind)
	}
}

func TestInsertPushback(t *testing.T) {
	c := New("f.fg", toks(token.PLUS, token.IDENT))
	// Splice a synthetic GT in front of the current PLUS token.
	c.Insert(token.Token{Kind: token.GT, Text: ">"})

	if !c.Check(token.GT) {
		t.Fatalf("expected cursor to be positioned on the inserted GT, got %v", c.Current().Kind)
	}
	if c.Peek(1).Kind != token.PLUS {
		t.Fatalf("expected Peek(1) past the inserted token to reach PLUS, got %v", c.Peek(1).Kind)
	}
	inserted := c.Advance()
	if inserted.Kind != token.GT {
		t.Fatalf("expected to consume the inserted GT first, got %v", inserted.Kind)
	}
	if !c.Check(token.PLUS) {
		t.Fatalf("expected backing vector to resume at PLUS, got %v", c.Current().Kind)
	}
}

func TestInsertMultiplePreservesOrder(t *testing.T) {
	c := New("f.fg", toks(token.IDENT))
	c.Insert(token.Token{Kind: token.LT})
	c.Insert(token.Token{Kind: token.GT})
	// Insert prepends at the head each time: GT is inserted after LT, so GT
	// becomes the new front of the pushback buffer.
	if c.Current().Kind != token.GT {
		t.Fatalf("expected most recently inserted token at the front, got %v", c.Current().Kind)
	}
	c.Advance()
	if c.Current().Kind != token.LT {
		t.Fatalf("expected LT next, got %v", c.Current().Kind)
	}
	c.Advance()
	if c.Current().Kind != token.IDENT {
		t.Fatalf("expected backing vector's IDENT last, got %v", c.Current().Kind)
	}
}

func TestLoc(t *testing.T) {
	c := New("f.fg", toks(token.IDENT))
	tok := token.Token{Kind: token.IDENT, Line: 4, Column: 9, Position: 20}
	loc := c.Loc(tok)
	if loc.File != "f.fg" || loc.Line != 4 || loc.Column != 9 || loc.Position != 20 {
		t.Errorf("unexpected Location: %#v", loc)
	}
}
