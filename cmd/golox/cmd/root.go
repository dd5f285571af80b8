// Package cmd implements the golox command-line driver over the
// scanner/parser/resolver/interpreter pipeline in internal/interp/runner:
// the root command runs a file or opens the REPL, and tokens, ast, and
// version are subcommands.
package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	trace bool
	// log is the package-level logrus logger (not a private *logrus.New()
	// instance), so that internal/interp's own logrus.Debugf tracing calls
	// share the same level this command's --trace flag sets.
	log      = logrus.StandardLogger()
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "Tree-walk interpreter for the Lox language",
	Long: heredoc.Doc(`
		golox scans, parses, resolves, and interprets Lox programs.

		With no arguments it opens a REPL; with one file argument it runs
		that file; diagnostics are reported in the reference format and
		the process exits 65 for a syntax/static error or 70 for a
		runtime error.
	`),
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if trace {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl()
		}
		return runFile(args[0])
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("golox version {{.Version}}\ncommit: %s\nbuilt:  %s\n", GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log each statement and expression evaluation to stderr")
	log.SetLevel(logrus.WarnLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode returns the process exit code decided by the last pipeline
// run: 65 for a static (lex/parse/resolve) failure, 70 for a runtime
// failure, 0 otherwise.
func ExitCode() int {
	return exitCode
}

func setExitCode(code int) {
	if code > exitCode {
		exitCode = code
	}
}
