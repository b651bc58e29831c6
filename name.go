package rsx

// Node names come in three forms, tried in fixed order with fallback:
//
//	Dash:  two or more identifiers joined by '-'  (data-foo)
//	Colon: two or more identifiers joined by ':'  (on:click)
//	Path:  optional leading ::, then one or more identifiers joined by ::
//	       (div, some::path, ::root::widget)
//
// Reserved keywords are valid identifiers everywhere a name segment is
// expected, so <input type="..."/> parses.

// nodeName parses a name at the cursor, committing only on success.
func nodeName(c *Cursor) (*NodeName, error) {
	if name, err := punctuatedName(c, "-", NameDash); err == nil {
		return name, nil
	}
	if name, err := punctuatedName(c, ":", NameColon); err == nil {
		return name, nil
	}
	if name, err := pathName(c); err == nil {
		return name, nil
	}
	return nil, syntaxError(c.Pos(), "invalid node name")
}

// isNameSegment reports whether tok can serve as a name segment.
func isNameSegment(tok Token) bool {
	return tok.Kind == TokenIdent || tok.Kind == TokenKeyword
}

// punctuatedName parses identifiers separated by the single-character
// punctuation sep. At least two identifiers are required; fewer is a
// failure without consuming input.
func punctuatedName(c *Cursor, sep string, kind NameKind) (*NodeName, error) {
	fork := c.Fork()
	var segments []string

	for {
		tok, ok := fork.Peek()
		if !ok || !isNameSegment(tok) {
			break
		}
		_, _ = fork.Next()
		segments = append(segments, tok.Literal)

		if !peekPunct(fork, sep) {
			break
		}
		_, _ = fork.Next()
	}

	if len(segments) < 2 {
		return nil, expectedError(fork.Pos(), "punctuated node name", "fewer than two segments")
	}

	c.Commit(fork)
	return &NodeName{Kind: kind, Segments: segments}, nil
}

// pathName parses a path-style name: optional leading ::, then one or more
// segments separated by ::. A trailing separator with no following segment
// is an error.
func pathName(c *Cursor) (*NodeName, error) {
	fork := c.Fork()
	name := &NodeName{Kind: NamePath}

	if peekOp(fork, "::") {
		_, _ = fork.Next()
		name.LeadingSep = true
	}

	trailing := false
	for {
		tok, ok := fork.Peek()
		if !ok || !isNameSegment(tok) {
			break
		}
		_, _ = fork.Next()
		name.Segments = append(name.Segments, tok.Literal)
		trailing = false

		if !peekOp(fork, "::") {
			break
		}
		_, _ = fork.Next()
		trailing = true
	}

	if len(name.Segments) == 0 {
		return nil, expectedError(fork.Pos(), "path", "no segments")
	}
	if trailing {
		return nil, expectedError(fork.Pos(), "path segment", "trailing separator")
	}

	c.Commit(fork)
	return name, nil
}
