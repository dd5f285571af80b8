// Package errors renders the diagnostics produced by the lex, parse,
// resolve, and interpret passes to a writer in the reference format,
// and accumulates per-pass failures with hashicorp/go-multierror so a
// driver can report every static error found in one run instead of
// stopping at the first.
package errors

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Accumulator collects errors under one value. The lex, parse and
// resolve passes return their own error slices; drivers (the runner and
// the REPL) add those errors to an Accumulator before reporting them.
type Accumulator struct {
	err *multierror.Error
}

// Add appends err if non-nil. Only an untyped nil is skipped: a nil
// pointer stored in a non-nil error interface is appended as is.
func (a *Accumulator) Add(err error) {
	if err == nil {
		return
	}
	a.err = multierror.Append(a.err, err)
}

// HasErrors reports whether anything has been added.
func (a *Accumulator) HasErrors() bool {
	return a.err != nil && a.err.Len() > 0
}

// Errors returns the accumulated errors in the order they were added.
func (a *Accumulator) Errors() []error {
	if a.err == nil {
		return nil
	}
	return a.err.Errors
}

// Report writes one diagnostic per line to w, in whatever format each
// error's Error() method already produces (the lexer, parser, and
// resolver error types all format themselves per the reference
// grammar; see their Error() methods).
func Report(w io.Writer, errs []error) {
	for _, err := range errs {
		fmt.Fprintln(w, err.Error())
	}
}

// ReportRuntime writes a runtime error in the two-line reference
// format: the message, then the offending line in brackets.
func ReportRuntime(w io.Writer, message string, line int) {
	fmt.Fprintln(w, message)
	fmt.Fprintf(w, "[line %d]\n", line)
}
