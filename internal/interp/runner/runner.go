// Package runner wires together the scanner, parser, resolver, and
// interpreter into the single entry point the CLI and REPL both use.
package runner

import (
	"io"

	"github.com/loxlang/golox/internal/ast"
	loxerrors "github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/interp/runtime"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// Outcome reports which pass, if any, failed. A driver maps this to
// an exit code: 65 when any static pass failed, 70 when RuntimeError
// is set, 0 otherwise.
type Outcome struct {
	LexErrors     []*lexer.LexError
	ParseErrors   []*parser.ParseError
	ResolveErrors []*resolver.ResolveError
	RuntimeError  *runtime.RuntimeError
}

func (o Outcome) HadStaticError() bool {
	return len(o.LexErrors) > 0 || len(o.ParseErrors) > 0 || len(o.ResolveErrors) > 0
}

// StaticErrors merges whichever static pass failed into one ordered
// list, via the same Accumulator the REPL uses to report a failed
// pass's errors.
func (o Outcome) StaticErrors() []error {
	var acc loxerrors.Accumulator
	for _, e := range o.LexErrors {
		acc.Add(e)
	}
	for _, e := range o.ParseErrors {
		acc.Add(e)
	}
	for _, e := range o.ResolveErrors {
		acc.Add(e)
	}
	return acc.Errors()
}

// Run lexes, parses, resolves, and interprets source in one shot,
// writing `print` output to out. It stops at the first failing pass:
// a source with lex or parse errors is never resolved or executed; a
// source with resolve errors is never executed.
func Run(source string, out io.Writer) Outcome {
	tokens, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) > 0 {
		return Outcome{LexErrors: lexErrs}
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		return Outcome{ParseErrors: parseErrs}
	}

	locals, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		return Outcome{ResolveErrors: resolveErrs}
	}

	it := interp.New(out)
	it.Locals = locals
	return Outcome{RuntimeError: it.Interpret(stmts)}
}

// RunStmts interprets an already-resolved statement list against a
// persistent Interpreter, used by the REPL so later lines can see
// earlier ones' globals and locals accumulate across lines.
func RunStmts(it *interp.Interpreter, stmts []ast.Stmt, locals resolver.Locals) *runtime.RuntimeError {
	for expr, distance := range locals {
		it.Locals[expr] = distance
	}
	return it.Interpret(stmts)
}
