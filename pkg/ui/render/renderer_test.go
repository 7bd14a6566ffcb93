package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/ui/render"
)

func plain(t *testing.T, d doc.Doc) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, render.New(&b, false).Render(d))
	return b.String()
}

func styled(t *testing.T, d doc.Doc) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, render.New(&b, true).Render(d))
	return b.String()
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "\n", plain(t, doc.Empty{}))
}

func TestRenderTrailingNewline(t *testing.T) {
	assert.Equal(t, "hello\n", plain(t, doc.Static("hello")))
}

func TestNewlineEmptyCollapses(t *testing.T) {
	tests := []struct {
		name string
		d    doc.Doc
		want string
	}{
		{
			name: "bare newline-empty",
			d:    doc.Newline{Inner: doc.Empty{}},
			want: "\n",
		},
		{
			name: "between content",
			d: doc.Cat(doc.Static("a"),
				doc.Cat(doc.Newline{Inner: doc.Empty{}}, doc.Static("b"))),
			want: "ab\n",
		},
		{
			name: "collapse is shallow: nested empties still break",
			d: doc.Cat(doc.Static("a"),
				doc.Newline{Inner: doc.Concat{Left: doc.Empty{}, Right: doc.Empty{}}}),
			want: "a\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plain(t, tt.d))
		})
	}
}

func TestNestingScope(t *testing.T) {
	// The nested baseline applies to line breaks inside the Nest subtree
	// and must not leak to the sibling after it.
	d := doc.Cat(doc.Static("A"),
		doc.Cat(
			doc.Indent(2, doc.Cat(doc.Static("B"), doc.Line(doc.Static("C")))),
			doc.Line(doc.Static("D")),
		))

	assert.Equal(t, "A  B\n  C\nD\n", plain(t, d))
}

func TestNestedNestsAccumulate(t *testing.T) {
	d := doc.Indent(2, doc.Cat(doc.Static("a"),
		doc.Indent(2, doc.Cat(doc.Static("b"), doc.Line(doc.Static("c"))))))

	assert.Equal(t, "  a  b\n    c\n", plain(t, d))
}

func TestBaselineRestoredAfterNewline(t *testing.T) {
	d := doc.Indent(4, doc.Vertical(
		doc.Static("one"),
		doc.Static("two"),
		doc.Static("three"),
	))

	assert.Equal(t, "    one\n    two\n    three\n", plain(t, d))
}

func TestStyledLeafBracketsSGR(t *testing.T) {
	out := styled(t, doc.Title("Report"))
	assert.Equal(t, "\x1b[1mReport\x1b[0m\n", out)
}

func TestStyleIsolationBetweenLeaves(t *testing.T) {
	out := styled(t, doc.Cat(doc.Title("A"), doc.ErrorText("B")))
	assert.Equal(t, "\x1b[1mA\x1b[0m\x1b[31mB\x1b[0m\n", out,
		"each leaf must reset before the next starts")
}

func TestUnstyledTagsEmitNoSGR(t *testing.T) {
	out := styled(t, doc.Cat(doc.Key("k"), doc.Fee("220")))
	assert.Equal(t, "k220\n", out)
	assert.NotContains(t, out, "\x1b")
}

func TestVividColorSequence(t *testing.T) {
	out := styled(t, doc.TestnetMarker("[testnet]"))
	assert.Equal(t, "\x1b[93m[testnet]\x1b[0m\n", out)
}

func TestPlainDropsStyling(t *testing.T) {
	d := doc.Horizontal(doc.Address("bc1q"), doc.PositiveAmount("1.00000000"))
	assert.Equal(t, "bc1q 1.00000000\n", render.Plain(d))
}

func TestIndentVisibleImmediately(t *testing.T) {
	// Nest emits its spaces at the point of nesting even when no line
	// break follows.
	d := doc.Cat(doc.Static("a"), doc.Indent(3, doc.Static("b")))
	assert.Equal(t, "a   b\n", plain(t, d))
}
