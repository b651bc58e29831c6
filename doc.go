// Package rsx parses JSX-like markup embedded in a host expression
// language into a tree of nodes, for consumption by code-generation
// tooling. The parsed result is a nested Node structure, similar to the
// browser DOM, where names and values keep their source form so callers
// can re-emit them.
//
// The package is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream; brace, paren and
//     bracket regions become single group tokens with nested contents.
//   - Cursor: a fork/commit view over the token stream; every grammar
//     rule either commits its fork or leaves the cursor untouched, which
//     is the sole backtracking mechanism.
//   - Parser: the node-name, tag and tree grammars, plus an optional
//     flatten transform that degrades nesting into one pre-order list.
//
// Embedded host-language expressions are captured opaquely: a Text or
// attribute value is a literal token, a Block or attribute-block value is
// a braced group. The parser never interprets their contents.
//
// Usage:
//
//	nodes, err := rsx.Parse([]byte(`
//	    <div foo={bar}>
//	        <div>"hello"</div>
//	        <world />
//	    </div>
//	`), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(nodes[0].Attributes[0].NameString()) // foo
//	fmt.Println(nodes[0].Children[0].Children[0].ValueString()) // hello
//
// Parsing is fail-fast: the first syntax error aborts the whole parse and
// no partial tree is returned. Recursion depth follows markup nesting
// depth; callers handling untrusted input should bound it themselves.
package rsx
