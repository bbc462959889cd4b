package lexer

import "github.com/forgelang/forge-parser/internal/token"

// indentTracker implements the measuring half of C10 (spec §4.8) at the
// lexer boundary: it turns leading whitespace runs at the start of each
// logical line into synthetic Indent/Dedent tokens, queued ahead of
// whatever real token follows. The parser-side balance bookkeeping (pushing
// on Indent, popping on Dedent, rejecting a Dedent below the base level)
// lives in internal/parser/indent.go; this tracker only decides when those
// tokens should exist in the stream at all.
type indentTracker struct {
	stack       []int
	queue       []token.Token
	atLineStart bool
}

func newIndentTracker() *indentTracker {
	return &indentTracker{stack: []int{0}, atLineStart: true}
}

func (t *indentTracker) pending() (token.Token, bool) {
	if len(t.queue) == 0 {
		return token.Token{}, false
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok, true
}

func (t *indentTracker) noteNewline() { t.atLineStart = true }

// maybeMeasureIndent runs once per logical line, right after a Newline (or
// at the very start of the file). Blank lines and comment-only lines are
// transparent to the indent stack.
func (l *Lexer) maybeMeasureIndent() {
	if !l.indent.atLineStart {
		return
	}
	col := 0
	for l.ch == ' ' || l.ch == '\t' {
		col++
		l.readChar()
	}
	if l.ch == '\n' || l.ch == 0 || (l.ch == '/' && l.peekChar() == '/') {
		l.indent.atLineStart = false
		return
	}

	line, column, pos := l.line, l.column, l.position
	top := l.indent.stack[len(l.indent.stack)-1]
	switch {
	case col > top:
		l.indent.stack = append(l.indent.stack, col)
		l.indent.queue = append(l.indent.queue, token.Token{Kind: token.INDENT, Line: line, Column: column, Position: pos})
	case col < top:
		for col < l.indent.stack[len(l.indent.stack)-1] {
			l.indent.stack = l.indent.stack[:len(l.indent.stack)-1]
			l.indent.queue = append(l.indent.queue, token.Token{Kind: token.DEDENT, Line: line, Column: column, Position: pos})
		}
	}
	l.indent.atLineStart = false
}

// finalDedent drains the remaining indent stack, one level per call, once
// input has been exhausted, so the token vector ends balanced.
func (t *indentTracker) finalDedent(line, column, pos int) (token.Token, bool) {
	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
		return token.Token{Kind: token.DEDENT, Line: line, Column: column, Position: pos}, true
	}
	return token.Token{}, false
}
