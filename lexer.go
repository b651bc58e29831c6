package rsx

import (
	"fmt"
	"strings"
)

// Lexer tokenizes host-language source text into a token stream. Delimited
// regions ({...}, (...), [...]) become single group tokens with their
// contents lexed recursively.
type Lexer struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize lexes src into a token stream suitable for ParseTokens.
func Tokenize(src []byte) ([]Token, error) {
	return NewLexer(src).Tokens()
}

// Tokens lexes the whole input and returns the top-level token sequence.
func (l *Lexer) Tokens() ([]Token, error) {
	return l.sequence(0, Position{})
}

// sequence lexes tokens until the closing delimiter byte (0 for end of
// input). The closer itself is left unconsumed for the caller.
func (l *Lexer) sequence(closing byte, openPos Position) ([]Token, error) {
	var tokens []Token
	for {
		if err := l.skipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		if l.atEnd() {
			if closing != 0 {
				return nil, &LexError{ParseError{
					Message: fmt.Sprintf("unterminated group, expected %q", closing),
					Pos:     openPos,
				}}
			}
			return tokens, nil
		}

		ch := l.peek()
		if closing != 0 && ch == closing {
			return tokens, nil
		}

		var tok Token
		var err error
		switch ch {
		case '{', '(', '[':
			tok, err = l.scanGroup()
		case '}', ')', ']':
			pos := l.currentPos()
			l.advance()
			return nil, &LexError{ParseError{
				Message: fmt.Sprintf("unexpected %q", ch),
				Pos:     pos,
			}}
		case '"':
			tok, err = l.scanString()
		default:
			tok, err = l.scanAtom()
		}
		if err != nil {
			return nil, err
		}
		tok.End = l.currentPos()
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) scanGroup() (Token, error) {
	pos := l.currentPos()
	open := l.advance()

	var delim Delim
	var closer byte
	switch open {
	case '{':
		delim, closer = DelimBrace, '}'
	case '(':
		delim, closer = DelimParen, ')'
	case '[':
		delim, closer = DelimBracket, ']'
	}

	inner, err := l.sequence(closer, pos)
	if err != nil {
		return Token{}, err
	}
	l.advance() // consume closer

	return Token{
		Kind:    TokenGroup,
		Literal: string(open),
		Delim:   delim,
		Tokens:  inner,
		Pos:     pos,
	}, nil
}

func (l *Lexer) scanAtom() (Token, error) {
	pos := l.currentPos()
	ch := l.peek()

	if isDigit(ch) {
		return l.scanNumber(), nil
	}
	if isIdentStart(ch) {
		return l.scanIdentifier(), nil
	}

	// Multi-character operators take precedence over single punctuation.
	if l.pos+1 < len(l.src) {
		two := string(l.src[l.pos : l.pos+2])
		if operators[two] {
			l.advance()
			l.advance()
			return Token{Kind: TokenOp, Literal: two, Pos: pos}, nil
		}
	}

	if isPunct(ch) {
		l.advance()
		return Token{Kind: TokenPunct, Literal: string(ch), Pos: pos}, nil
	}

	l.advance()
	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unexpected character %q", ch),
		Pos:     pos,
	}}
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			// Line comment: skip to end of line
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			// Block comment: skip to */
			startPos := l.currentPos()
			l.advance() // consume /
			l.advance() // consume *
			for {
				if l.atEnd() {
					return &LexError{ParseError{
						Message: "unterminated block comment",
						Pos:     startPos,
					}}
				}
				if l.peek() == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
					l.advance() // consume *
					l.advance() // consume /
					break
				}
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated string",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		if ch == '"' {
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{ParseError{
					Message: "unterminated string escape",
					Pos:     pos,
				}}
			}
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				// Preserve unknown escapes as-is
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

func (l *Lexer) scanNumber() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if !l.atEnd() && l.peek() == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
		isFloat = true
		l.advance() // consume '.'
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	literal := string(l.src[start:l.pos])
	if isFloat {
		return Token{Kind: TokenFloat, Literal: literal, Pos: pos}
	}
	return Token{Kind: TokenInteger, Literal: literal, Pos: pos}
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])
	if keywords[literal] {
		return Token{Kind: TokenKeyword, Literal: literal, Pos: pos}
	}
	return Token{Kind: TokenIdent, Literal: literal, Pos: pos}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isPunct(ch byte) bool {
	switch ch {
	case '<', '>', '/', '=', '-', ':', '.', ',', ';', '!', '?', '&', '|',
		'+', '*', '%', '@', '#', '$', '^', '~':
		return true
	}
	return false
}
