package rsx

// Config customizes Parser behavior.
type Config struct {
	// Flatten collapses the tree into a single pre-order list: every
	// node's children are moved out beside it and its Children field is
	// left empty. Attributes are not affected. Defaults to false.
	Flatten bool
}

// Parser builds a node tree from a token stream.
type Parser struct {
	config Config
}

// New creates a parser with the given config.
func New(config Config) *Parser {
	return &Parser{config: config}
}

// Parse parses src into a node tree, lexing it first. Returns a *LexError
// or *SyntaxError on failure; the first error aborts the whole parse.
func Parse(src []byte, config *Config) ([]Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, config)
}

// ParseTokens parses an already-lexed token stream into a node tree. A nil
// config uses the defaults.
func ParseTokens(tokens []Token, config *Config) ([]Node, error) {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	return New(cfg).Parse(NewCursor(tokens))
}

// Parse consumes the cursor to exhaustion and returns the top-level nodes.
func (p *Parser) Parse(c *Cursor) ([]Node, error) {
	var nodes []Node
	for !c.EOF() {
		parsed, err := p.node(c)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, parsed...)
	}
	return nodes, nil
}

// node parses a single node: text, block, or element, attempted in that
// order against the unmoved cursor. Element is the catch-all, so its error
// is the one surfaced. In flatten mode the node's children are moved out
// into the returned list behind it.
func (p *Parser) node(c *Cursor) ([]Node, error) {
	n, err := p.text(c)
	if err != nil {
		n, err = p.block(c)
	}
	if err != nil {
		n, err = p.element(c)
	}
	if err != nil {
		return nil, err
	}

	nodes := []Node{n}
	if p.config.Flatten {
		children := n.Children
		nodes[0].Children = nil
		nodes = append(nodes, children...)
	}
	return nodes, nil
}

// text parses a single literal token as a Text node.
func (p *Parser) text(c *Cursor) (Node, error) {
	fork := c.Fork()
	tok, err := fork.Next()
	if err != nil {
		return Node{}, err
	}
	switch tok.Kind {
	case TokenString, TokenInteger, TokenFloat:
	default:
		return Node{}, expectedError(tok.Pos, "literal", tokenDesc(tok))
	}
	c.Commit(fork)

	return Node{
		Type:  NodeText,
		Value: &Expr{Token: tok},
	}, nil
}

// block parses a braced group as a Block node.
func (p *Parser) block(c *Cursor) (Node, error) {
	expr, err := blockExpr(c)
	if err != nil {
		return Node{}, err
	}
	return Node{
		Type:  NodeBlock,
		Value: expr,
	}, nil
}

// element parses an open tag, its children, and the matching close tag.
func (p *Parser) element(c *Cursor) (Node, error) {
	// A close tag in node position is a stray closer.
	if _, err := tagClose(c.Fork()); err == nil {
		return Node{}, syntaxError(c.Pos(), "close tag has no corresponding open tag")
	}

	fork := c.Fork()
	open, err := p.tagOpen(fork)
	if err != nil {
		return Node{}, err
	}

	var children []Node
	if !open.selfClosing {
		for {
			more, err := p.hasChildren(open, fork)
			if err != nil {
				return Node{}, err
			}
			if !more {
				break
			}
			parsed, err := p.node(fork)
			if err != nil {
				return Node{}, err
			}
			children = append(children, parsed...)
		}
		if _, err := tagClose(fork); err != nil {
			return Node{}, err
		}
	}
	c.Commit(fork)

	return Node{
		Type:       NodeElement,
		Name:       open.name,
		Attributes: open.attributes,
		Children:   children,
	}, nil
}

// hasChildren decides whether the element's children loop continues. A
// matching close tag ends the loop; a close tag with a different name or an
// exhausted input is a structural fault.
func (p *Parser) hasChildren(open *tag, c *Cursor) (bool, error) {
	if c.EOF() {
		return false, syntaxError(c.Pos(), "open tag has no corresponding close tag")
	}

	if closed, err := tagClose(c.Fork()); err == nil {
		if open.name.Equal(closed) {
			return false, nil
		}
		return false, syntaxError(c.Pos(), "close tag has no corresponding open tag")
	}

	return true, nil
}
