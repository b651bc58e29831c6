package rsx

import "fmt"

// Cursor is a position-tracked view over a pre-materialized token sequence.
// All grammar rules are attempted against a fork of the caller's cursor: on
// success the caller commits the fork, on failure the fork is discarded and
// the original cursor is untouched. A fork is either wholly committed or
// wholly discarded; no partial advancement leaks out of a failed attempt.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor creates a cursor positioned at the start of tokens.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Fork returns an independent snapshot of the cursor. Advancing the fork
// does not affect the original.
func (c *Cursor) Fork() *Cursor {
	fork := *c
	return &fork
}

// Commit advances the cursor to the fork's position.
func (c *Cursor) Commit(fork *Cursor) {
	c.pos = fork.pos
}

// EOF reports whether the cursor has consumed all tokens.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.EOF() {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next returns the next token and advances the cursor. At end of input it
// returns a SyntaxError so token-grammar failures bubble up unchanged.
func (c *Cursor) Next() (Token, error) {
	if c.EOF() {
		return Token{}, syntaxError(c.Pos(), "unexpected end of input")
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// Pos returns the position of the next token, or the position just past the
// final token when the cursor is exhausted.
func (c *Cursor) Pos() Position {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos].Pos
	}
	if n := len(c.tokens); n > 0 {
		last := c.tokens[n-1]
		if last.End.Line > 0 {
			return last.End
		}
		// Hand-built token without an end position: approximate.
		p := last.Pos
		p.Column += len(last.Literal)
		p.Offset += len(last.Literal)
		return p
	}
	return Position{Line: 1, Column: 1}
}

// expectPunct consumes a single punctuation token with the given text.
func expectPunct(c *Cursor, lit string) error {
	tok, ok := c.Peek()
	if !ok {
		return expectedError(c.Pos(), fmt.Sprintf("'%s'", lit), "end of input")
	}
	if tok.Kind != TokenPunct || tok.Literal != lit {
		return expectedError(tok.Pos, fmt.Sprintf("'%s'", lit), fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal))
	}
	_, _ = c.Next()
	return nil
}

// peekPunct reports whether the next token is the given punctuation.
func peekPunct(c *Cursor, lit string) bool {
	tok, ok := c.Peek()
	return ok && tok.Kind == TokenPunct && tok.Literal == lit
}

// peekOp reports whether the next token is the given multi-character operator.
func peekOp(c *Cursor, lit string) bool {
	tok, ok := c.Peek()
	return ok && tok.Kind == TokenOp && tok.Literal == lit
}
