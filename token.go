package rsx

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenIdent   TokenKind = iota // [A-Za-z_][A-Za-z0-9_]*
	TokenKeyword                  // reserved word, text in Literal
	TokenString                   // "..." with escape processing
	TokenInteger                  // [0-9]+
	TokenFloat                    // [0-9]+.[0-9]+
	TokenPunct                    // single punctuation character
	TokenOp                       // multi-character operator from the operator table
	TokenGroup                    // delimited token group: { } ( ) [ ]
)

var tokenNames = map[TokenKind]string{
	TokenIdent:   "identifier",
	TokenKeyword: "keyword",
	TokenString:  "string",
	TokenInteger: "integer",
	TokenFloat:   "float",
	TokenPunct:   "punctuation",
	TokenOp:      "operator",
	TokenGroup:   "group",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Delim identifies the delimiter of a group token.
type Delim int

const (
	DelimNone    Delim = iota
	DelimBrace         // { }
	DelimParen         // ( )
	DelimBracket       // [ ]
)

var delimPairs = map[Delim][2]string{
	DelimBrace:   {"{", "}"},
	DelimParen:   {"(", ")"},
	DelimBracket: {"[", "]"},
}

// Open returns the opening delimiter character.
func (d Delim) Open() string { return delimPairs[d][0] }

// Close returns the closing delimiter character.
func (d Delim) Close() string { return delimPairs[d][1] }

// Token is a single lexical unit produced by the Lexer. A group token
// carries its delimiter and the tokens lexed between the delimiters; the
// surrounding stream sees the whole group as one token.
type Token struct {
	Kind    TokenKind
	Literal string  // text content (decoded for strings, raw for others)
	Delim   Delim   // set when Kind == TokenGroup
	Tokens  []Token // set when Kind == TokenGroup
	Pos     Position
	End     Position // position just past the token's source text
}

// keywords holds the reserved words of the host expression language. They
// lex as TokenKeyword so grammar rules can choose to accept them where a
// plain identifier is expected (node and attribute names do).
var keywords = map[string]bool{
	"self":   true,
	"Self":   true,
	"super":  true,
	"crate":  true,
	"type":   true,
	"struct": true,
	"enum":   true,
	"fn":     true,
	"impl":   true,
	"let":    true,
	"match":  true,
	"ref":    true,
	"move":   true,
	"in":     true,
	"for":    true,
	"if":     true,
	"else":   true,
	"loop":   true,
	"while":  true,
	"return": true,
	"use":    true,
	"mod":    true,
	"pub":    true,
}

// operators is the static table of multi-character lexemes. The lexer
// prefers these over single punctuation characters (longest match). "/>"
// and "</" are intentionally absent: the tag grammar consumes those as
// separate '/', '<' and '>' tokens.
var operators = map[string]bool{
	"::": true,
	"->": true,
	"=>": true,
	"==": true,
	"!=": true,
	"<=": true,
	">=": true,
	"&&": true,
	"||": true,
}
