// Package doc implements the document model behind coinscribe's terminal
// reports: an immutable tree of styled text fragments with explicit line
// breaks and nested indentation.
//
// Documents are built bottom-up with the constructors in this package and
// handed to pkg/ui/render for a single output pass. The tree is a closed
// set of node kinds; rendering dispatches on them with a type switch.
package doc

// Doc is a node in the document tree. The set of implementations is closed:
// Empty, Text, Concat, Newline and Nest.
type Doc interface {
	node()
}

// Empty renders as nothing and is the identity for Cat.
type Empty struct{}

// Text is a leaf holding one styled fragment.
type Text struct {
	Format Format
}

// Concat renders Left then Right on the same line, unless a Newline occurs
// inside either side.
type Concat struct {
	Left  Doc
	Right Doc
}

// Newline ends the current line and renders Inner starting at the active
// indentation baseline. A Newline whose Inner is exactly Empty renders as
// nothing at all; the check is shallow and deliberately does not look
// through nested nodes that happen to produce no visible output.
type Newline struct {
	Inner Doc
}

// Nest emits Indent spaces at the current position and renders Inner with
// the indentation baseline moved right by Indent. The moved baseline applies
// only inside Inner, not to siblings in an enclosing Concat.
type Nest struct {
	Indent int
	Inner  Doc
}

func (Empty) node()   {}
func (Text) node()    {}
func (Concat) node()  {}
func (Newline) node() {}
func (Nest) node()    {}

// IsEmpty reports whether d is the Empty node.
func IsEmpty(d Doc) bool {
	_, ok := d.(Empty)
	return ok
}

// Cat joins two documents on the same line. Empty operands fold away so that
// downstream identities (notably the Newline collapse rule) see a canonical
// Empty instead of a tree of empties.
func Cat(a, b Doc) Doc {
	if IsEmpty(b) {
		return a
	}
	if IsEmpty(a) {
		return b
	}
	return Concat{Left: a, Right: b}
}

// Horizontal joins two documents with a single unstyled space.
func Horizontal(a, b Doc) Doc {
	return Cat(Cat(a, Static(" ")), b)
}

// Vertical stacks documents with one line break between consecutive
// non-empty entries. Empty entries contribute neither content nor a blank
// line, no matter how many of them sit between two real entries. An empty
// slice yields Empty.
func Vertical(docs ...Doc) Doc {
	for i, d := range docs {
		if IsEmpty(d) {
			continue
		}
		return Cat(d, Newline{Inner: Vertical(docs[i+1:]...)})
	}
	return Empty{}
}

// Indent wraps inner in a Nest node. Width is a column count and must not
// be negative.
func Indent(width int, inner Doc) Doc {
	return Nest{Indent: width, Inner: inner}
}

// Line ends the current line and continues with inner at the baseline.
func Line(inner Doc) Doc {
	return Newline{Inner: inner}
}
