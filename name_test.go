package rsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameCursor(t *testing.T, src string) *Cursor {
	t.Helper()
	tokens, err := Tokenize([]byte(src))
	require.NoError(t, err)
	return NewCursor(tokens)
}

func TestNodeNameForms(t *testing.T) {
	tests := []struct {
		input    string
		kind     NameKind
		segments []string
		rendered string
	}{
		{"div", NamePath, []string{"div"}, "div"},
		{"data-foo", NameDash, []string{"data", "foo"}, "data-foo"},
		{"data-foo-bar", NameDash, []string{"data", "foo", "bar"}, "data-foo-bar"},
		{"on:click", NameColon, []string{"on", "click"}, "on:click"},
		{"some::path", NamePath, []string{"some", "path"}, "some::path"},
		{"a::b::c", NamePath, []string{"a", "b", "c"}, "a::b::c"},
		{"::rooted", NamePath, []string{"rooted"}, "::rooted"},
		{"type", NamePath, []string{"type"}, "type"},
		{"self::widget", NamePath, []string{"self", "widget"}, "self::widget"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := nameCursor(t, tt.input)
			name, err := nodeName(c)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, name.Kind)
			assert.Equal(t, tt.segments, name.Segments)
			assert.Equal(t, tt.rendered, name.String())
			assert.True(t, c.EOF(), "name should consume all input")
		})
	}
}

func TestNodeNameLeadingSeparator(t *testing.T) {
	c := nameCursor(t, "::root::widget")
	name, err := nodeName(c)
	require.NoError(t, err)
	assert.Equal(t, NamePath, name.Kind)
	assert.True(t, name.LeadingSep)
	assert.Equal(t, []string{"root", "widget"}, name.Segments)
	assert.Equal(t, "::root::widget", name.String())
}

func TestNodeNamePriority(t *testing.T) {
	// Dash wins over the path fallback when both could start.
	c := nameCursor(t, "a-b")
	name, err := nodeName(c)
	require.NoError(t, err)
	assert.Equal(t, NameDash, name.Kind)

	// A single segment never produces Dash or Colon.
	c = nameCursor(t, "a")
	name, err = nodeName(c)
	require.NoError(t, err)
	assert.Equal(t, NamePath, name.Kind)
}

func TestNodeNameInvalid(t *testing.T) {
	tests := []string{"123", `"str"`, "=", "::"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			c := nameCursor(t, input)
			before := c.Pos()
			_, err := nodeName(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid node name")
			assert.Equal(t, before, c.Pos(), "failed attempt must not consume")
		})
	}
}

func TestNodeNameTrailingPathSeparator(t *testing.T) {
	c := nameCursor(t, "some::")
	_, err := nodeName(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid node name")
}

func TestNodeNameDoesNotConsumeBeyondName(t *testing.T) {
	c := nameCursor(t, "foo = 1")
	name, err := nodeName(c)
	require.NoError(t, err)
	assert.Equal(t, "foo", name.String())

	tok, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, "=", tok.Literal)
}
