package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/interp/runner"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// runRepl reads one line at a time, auto-wrapping a bare expression in
// a print statement, and executes it against a single persistent
// Interpreter so earlier lines' globals remain visible.
func runRepl() error {
	rl, err := readline.New("> ")
	if err != nil {
		return fmt.Errorf("starting repl: %w", err)
	}
	defer rl.Close()

	it := interp.New(os.Stdout)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runLine(it, wrapBareExpression(line))
	}
}

// wrapBareExpression implements the REPL's one auto-wrapping rule: a
// line that isn't already a statement (doesn't start with `fun ` and
// doesn't end in `;`) is treated as an expression and printed.
func wrapBareExpression(line string) string {
	if strings.HasPrefix(line, "fun ") || strings.HasSuffix(line, ";") {
		return line
	}
	return "print " + line + ";"
}

func runLine(it *interp.Interpreter, line string) {
	tokens, lexErrs := lexer.New(line).Scan()
	if len(lexErrs) > 0 {
		var acc errors.Accumulator
		for _, e := range lexErrs {
			acc.Add(e)
		}
		errors.Report(os.Stderr, acc.Errors())
		return
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		var acc errors.Accumulator
		for _, e := range parseErrs {
			acc.Add(e)
		}
		errors.Report(os.Stderr, acc.Errors())
		return
	}

	locals, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		var acc errors.Accumulator
		for _, e := range resolveErrs {
			acc.Add(e)
		}
		errors.Report(os.Stderr, acc.Errors())
		return
	}

	if runtimeErr := runner.RunStmts(it, stmts, locals); runtimeErr != nil {
		errors.ReportRuntime(os.Stderr, runtimeErr.Error(), runtimeErr.Line())
	}
}
