package rsx

import (
	"strconv"
	"strings"
)

// NodeType discriminates the Node tagged union.
type NodeType int

const (
	NodeElement   NodeType = iota // <tag ...>...</tag> or <tag ... />
	NodeAttribute                 // key="value", key={expr}, or bare key
	NodeText                      // literal child content
	NodeBlock                     // {expr} child content
)

var nodeTypeNames = map[NodeType]string{
	NodeElement:   "element",
	NodeAttribute: "attribute",
	NodeText:      "text",
	NodeBlock:     "block",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// NameKind discriminates the NodeName tagged union.
type NameKind int

const (
	NamePath  NameKind = iota // one or more segments joined by ::
	NameDash                  // two or more segments joined by -
	NameColon                 // two or more segments joined by :
)

// NodeName is an element or attribute name. Dash and Colon names always
// have at least two segments; a single identifier is a Path name.
type NodeName struct {
	Kind       NameKind
	Segments   []string
	LeadingSep bool // leading :: on a Path name
}

// String reproduces the name as written in the source.
func (n *NodeName) String() string {
	var sep string
	switch n.Kind {
	case NameDash:
		sep = "-"
	case NameColon:
		sep = ":"
	default:
		sep = "::"
	}
	s := strings.Join(n.Segments, sep)
	if n.Kind == NamePath && n.LeadingSep {
		s = "::" + s
	}
	return s
}

// Equal reports whether two names have the same kind, segments and leading
// separator. Tag matching uses this to pair open and close tags.
func (n *NodeName) Equal(other *NodeName) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.LeadingSep != other.LeadingSep || len(n.Segments) != len(other.Segments) {
		return false
	}
	for i, seg := range n.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}
	return true
}

// Expr is an opaque fragment of the host expression language: a single
// literal token, or a brace-delimited group whose contents are captured but
// never interpreted.
type Expr struct {
	Block bool  // true when the fragment is a braced group
	Token Token // the literal token, or the group token
}

// String renders the fragment. Block fragments render their inner tokens
// without the surrounding braces; a string literal renders its decoded
// content without quotes. Strings nested inside a block re-emit quoted so
// the block renders as source.
func (e *Expr) String() string {
	if e.Block {
		return renderTokens(e.Token.Tokens)
	}
	if e.Token.Kind == TokenString {
		return e.Token.Literal
	}
	return renderToken(e.Token)
}

func renderTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = renderToken(tok)
	}
	return strings.Join(parts, " ")
}

func renderToken(tok Token) string {
	switch tok.Kind {
	case TokenString:
		return strconv.Quote(tok.Literal)
	case TokenGroup:
		return tok.Delim.Open() + renderTokens(tok.Tokens) + tok.Delim.Close()
	default:
		return tok.Literal
	}
}

// Node is one node of the parsed tree. Which fields are populated depends
// on Type:
//
//	Type       Name  Value           Attributes  Children
//	Element    set   nil             parsed      nested (empty when flattened)
//	Attribute  set   nil = valueless empty       empty
//	Text       nil   literal         empty       empty
//	Block      nil   braced expr     empty       empty
//
// Nodes are built bottom-up and owned exclusively by the sequence holding
// them; the tree is read-only once returned.
type Node struct {
	Type       NodeType
	Name       *NodeName
	Value      *Expr
	Attributes []Node
	Children   []Node
}

// NameString returns the node's name as written in the source, or "" for
// unnamed nodes (text and block).
func (n *Node) NameString() string {
	if n.Name == nil {
		return ""
	}
	return n.Name.String()
}

// ValueString returns the node's value rendered as text: the decoded
// content for string literals, the raw literal otherwise, the inner tokens
// for block values. Returns "" for valueless nodes.
func (n *Node) ValueString() string {
	if n.Value == nil {
		return ""
	}
	return n.Value.String()
}
