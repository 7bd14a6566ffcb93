package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/ui/render"
)

// FatalError carries a fully built report for an unrecoverable usage error.
// It propagates up through normal error returns; the process entry point is
// the single place that renders the report and exits non-zero. Library code
// never terminates the process itself.
type FatalError struct {
	Doc doc.Doc
}

// Fatal wraps a document in a FatalError.
func Fatal(d doc.Doc) *FatalError {
	return &FatalError{Doc: d}
}

// Fatalf builds a FatalError from a plain message with the Error tag.
func Fatalf(format string, args ...interface{}) *FatalError {
	return &FatalError{Doc: doc.ErrorText(fmt.Sprintf(format, args...))}
}

// Error returns the report as unstyled text.
func (e *FatalError) Error() string {
	return strings.TrimRight(render.Plain(e.Doc), "\n")
}
