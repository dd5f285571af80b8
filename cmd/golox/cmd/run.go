package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/interp/runner"
)

// runFile runs a single Lox source file to completion, reporting
// diagnostics per the reference format and recording the exit code
// the process should use.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	log.Debugf("running %s (%d bytes)", path, len(source))
	outcome := runner.Run(string(source), os.Stdout)
	reportOutcome(outcome)
	return nil
}

func reportOutcome(outcome runner.Outcome) {
	switch {
	case outcome.HadStaticError():
		errors.Report(os.Stderr, outcome.StaticErrors())
		setExitCode(65)
	case outcome.RuntimeError != nil:
		errors.ReportRuntime(os.Stderr, outcome.RuntimeError.Error(), outcome.RuntimeError.Line())
		setExitCode(70)
	}
}
