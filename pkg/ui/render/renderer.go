// Package render walks a document tree once and writes styled text to a
// terminal stream, tracking the current column and the indentation baseline
// that wrapped lines return to. There is no width-driven reflow; line breaks
// happen exactly where the document says they do.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/ui/styles"
)

// Renderer writes documents to a single output stream. It is not safe for
// concurrent use; one logical writer per process is assumed.
type Renderer struct {
	w      io.Writer
	styled bool
}

// New creates a renderer. With styled false no SGR sequences are emitted,
// only the plain text and indentation.
func New(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled}
}

// Render emits the whole document followed by one line break.
func (r *Renderer) Render(d doc.Doc) error {
	if _, err := r.walk(d, 0, 0); err != nil {
		return err
	}
	return r.write("\n")
}

// walk renders one subtree under the given column and baseline and returns
// the column after it. The baseline only ever grows inward, through Nest;
// siblings in an enclosing Concat keep their own.
func (r *Renderer) walk(d doc.Doc, column, baseline int) (int, error) {
	switch n := d.(type) {
	case doc.Empty:
		return column, nil

	case doc.Concat:
		column, err := r.walk(n.Left, column, baseline)
		if err != nil {
			return column, err
		}
		return r.walk(n.Right, column, baseline)

	case doc.Newline:
		// Shallow collapse: only a literal Empty inner suppresses the
		// break. A subtree that merely renders nothing still breaks.
		if doc.IsEmpty(n.Inner) {
			return column, nil
		}
		if err := r.write("\n" + strings.Repeat(" ", baseline)); err != nil {
			return column, err
		}
		return r.walk(n.Inner, baseline, baseline)

	case doc.Nest:
		if err := r.write(strings.Repeat(" ", n.Indent)); err != nil {
			return column, err
		}
		return r.walk(n.Inner, column+n.Indent, baseline+n.Indent)

	case doc.Text:
		if err := r.leaf(n.Format); err != nil {
			return column, err
		}
		return column + runewidth.StringWidth(n.Format.Text), nil

	default:
		return column, fmt.Errorf("render: unknown document node %T", d)
	}
}

// leaf writes one styled fragment. The style is applied and reset around
// each leaf so attributes never leak between adjacent fragments.
func (r *Renderer) leaf(f doc.Format) error {
	style := styles.For(f.Tag)
	if !r.styled || len(style) == 0 {
		return r.write(f.Text)
	}
	return r.write(termenv.CSI + style.Sequence() + "m" + f.Text +
		termenv.CSI + termenv.ResetSeq + "m")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// Plain renders a document without styling and returns it as a string.
func Plain(d doc.Doc) string {
	var b strings.Builder
	_ = New(&b, false).Render(d)
	return b.String()
}
