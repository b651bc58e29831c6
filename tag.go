package rsx

import "fmt"

// tag is the parsed form of an open tag.
type tag struct {
	name        *NodeName
	attributes  []Node
	selfClosing bool
}

// tagOpen parses '<', a node name, then collects raw tokens until the first
// point where an optional '/' followed by '>' parses. The collected span is
// re-parsed as the attribute list.
//
// Known ambiguity: because the span boundary is found by scanning for the
// first '/'? '>' sequence, an attribute value containing a bare '>' token
// (e.g. an unparenthesized comparison) terminates the tag early. Wrap such
// values in braces.
func (p *Parser) tagOpen(c *Cursor) (*tag, error) {
	if err := expectPunct(c, "<"); err != nil {
		return nil, err
	}
	name, err := nodeName(c)
	if err != nil {
		return nil, err
	}

	var span []Token
	var selfClosing bool
	for {
		sc, ok := tagOpenEnd(c)
		if ok {
			selfClosing = sc
			break
		}
		tok, err := c.Next()
		if err != nil {
			return nil, err
		}
		span = append(span, tok)
	}

	attributes, err := p.attributes(span)
	if err != nil {
		return nil, err
	}

	return &tag{name: name, attributes: attributes, selfClosing: selfClosing}, nil
}

// tagOpenEnd attempts to parse the end of an open tag: an optional '/'
// followed by '>'. Reports whether it parsed and whether the tag is
// self-closing; on failure the cursor is untouched.
func tagOpenEnd(c *Cursor) (selfClosing, ok bool) {
	fork := c.Fork()
	if peekPunct(fork, "/") {
		_, _ = fork.Next()
		selfClosing = true
	}
	if err := expectPunct(fork, ">"); err != nil {
		return false, false
	}
	c.Commit(fork)
	return selfClosing, true
}

// tagClose parses '<' '/' name '>' and returns the closed name. The cursor
// is only advanced when the whole close tag parses.
func tagClose(c *Cursor) (*NodeName, error) {
	fork := c.Fork()
	if err := expectPunct(fork, "<"); err != nil {
		return nil, err
	}
	if err := expectPunct(fork, "/"); err != nil {
		return nil, err
	}
	name, err := nodeName(fork)
	if err != nil {
		return nil, err
	}
	if err := expectPunct(fork, ">"); err != nil {
		return nil, err
	}
	c.Commit(fork)
	return name, nil
}

// attributes parses the raw attribute span into Attribute nodes. Tokens
// left over after the last parseable attribute are an error.
func (p *Parser) attributes(span []Token) ([]Node, error) {
	c := NewCursor(span)
	var nodes []Node

	for !c.EOF() {
		name, value, err := p.attribute(c)
		if err != nil {
			break
		}
		nodes = append(nodes, Node{
			Type:  NodeAttribute,
			Name:  name,
			Value: value,
		})
	}

	if !c.EOF() {
		tok, _ := c.Peek()
		return nil, expectedError(tok.Pos, "attribute", tokenDesc(tok))
	}
	return nodes, nil
}

// attribute parses one 'name (= value)?' pair. A value is either a braced
// block expression or a single expression token; absence of '=' yields a
// valueless attribute.
func (p *Parser) attribute(c *Cursor) (*NodeName, *Expr, error) {
	fork := c.Fork()
	name, err := nodeName(fork)
	if err != nil {
		return nil, nil, err
	}

	var value *Expr
	if peekPunct(fork, "=") {
		_, _ = fork.Next()
		if tok, ok := fork.Peek(); ok && tok.Kind == TokenGroup && tok.Delim == DelimBrace {
			value, err = blockExpr(fork)
		} else {
			value, err = exprToken(fork)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	c.Commit(fork)
	return name, value, nil
}

// blockExpr parses a brace-delimited group as an opaque block expression.
func blockExpr(c *Cursor) (*Expr, error) {
	fork := c.Fork()
	tok, err := fork.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenGroup || tok.Delim != DelimBrace {
		return nil, expectedError(tok.Pos, "block expression", tokenDesc(tok))
	}
	c.Commit(fork)
	return &Expr{Block: true, Token: tok}, nil
}

// exprToken captures a single token as an opaque expression fragment.
func exprToken(c *Cursor) (*Expr, error) {
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}
	return &Expr{Token: tok}, nil
}

func tokenDesc(tok Token) string {
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}
