package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/lexer"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var tokensSummary bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Scan a file and print its token stream as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensSummary, "summary", false, "print a count per token type instead of the full stream")
}

type tokenDump struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
}

func runTokens(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	tokens, lexErrs := lexer.New(string(source)).Scan()
	for _, e := range lexErrs {
		fmt.Fprintln(os.Stderr, e.Error())
	}

	if tokensSummary {
		return printTokenSummary(tokens)
	}

	dump := make([]tokenDump, len(tokens))
	for i, tok := range tokens {
		dump[i] = tokenDump{Type: tok.Type.String(), Lexeme: tok.Lexeme, Line: tok.Line}
	}
	raw, err := json.Marshal(dump)
	if err != nil {
		return err
	}
	os.Stdout.Write(pretty.Pretty(raw))

	if len(lexErrs) > 0 {
		setExitCode(65)
	}
	return nil
}

func printTokenSummary(tokens []lexer.Token) error {
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Type.String()]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	natural.Sort(names)
	for _, name := range names {
		fmt.Printf("%-14s %d\n", name, counts[name])
	}
	return nil
}
