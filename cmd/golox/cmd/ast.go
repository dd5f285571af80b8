package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a file and print its syntax tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	tokens, lexErrs := lexer.New(string(source)).Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		setExitCode(65)
		return nil
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		setExitCode(65)
		return nil
	}

	dump := make([]any, len(stmts))
	for i, s := range stmts {
		dump[i] = describeStmt(s)
	}
	raw, err := json.Marshal(dump)
	if err != nil {
		return err
	}
	os.Stdout.Write(pretty.Pretty(raw))
	return nil
}

// describeStmt and describeExpr build a JSON-friendly tree mirroring
// the AST's shape, for the `ast` debug command only; nothing in the
// interpreter pipeline depends on this representation.
func describeStmt(stmt ast.Stmt) map[string]any {
	switch s := stmt.(type) {
	case *ast.Expression:
		return node("Expression", map[string]any{"expr": describeExpr(s.Expr)})
	case *ast.Print:
		return node("Print", map[string]any{"expr": describeExpr(s.Expr)})
	case *ast.Var:
		fields := map[string]any{"name": s.Name.Lexeme}
		if s.Initializer != nil {
			fields["initializer"] = describeExpr(s.Initializer)
		}
		return node("Var", fields)
	case *ast.Block:
		stmts := make([]any, len(s.Statements))
		for i, inner := range s.Statements {
			stmts[i] = describeStmt(inner)
		}
		return node("Block", map[string]any{"statements": stmts})
	case *ast.If:
		fields := map[string]any{
			"condition": describeExpr(s.Condition),
			"then":      describeStmt(s.ThenBranch),
		}
		if s.ElseBranch != nil {
			fields["else"] = describeStmt(s.ElseBranch)
		}
		return node("If", fields)
	case *ast.While:
		return node("While", map[string]any{
			"condition": describeExpr(s.Condition),
			"body":      describeStmt(s.Body),
		})
	case *ast.Function:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		body := make([]any, len(s.Body))
		for i, inner := range s.Body {
			body[i] = describeStmt(inner)
		}
		return node("Function", map[string]any{"name": s.Name.Lexeme, "params": params, "body": body})
	case *ast.Return:
		fields := map[string]any{}
		if s.Value != nil {
			fields["value"] = describeExpr(s.Value)
		}
		return node("Return", fields)
	case *ast.Class:
		fields := map[string]any{"name": s.Name.Lexeme}
		if s.Superclass != nil {
			fields["superclass"] = s.Superclass.Name.Lexeme
		}
		methods := make([]any, len(s.Methods))
		for i, m := range s.Methods {
			methods[i] = describeStmt(m)
		}
		fields["methods"] = methods
		return node("Class", fields)
	default:
		return node("Unknown", nil)
	}
}

func describeExpr(expr ast.Expr) map[string]any {
	switch e := expr.(type) {
	case *ast.Literal:
		return node("Literal", map[string]any{"value": e.Value})
	case *ast.Grouping:
		return node("Grouping", map[string]any{"expr": describeExpr(e.Expression)})
	case *ast.Unary:
		return node("Unary", map[string]any{"op": e.Operator.Lexeme, "right": describeExpr(e.Right)})
	case *ast.Binary:
		return node("Binary", map[string]any{"op": e.Operator.Lexeme, "left": describeExpr(e.Left), "right": describeExpr(e.Right)})
	case *ast.Logical:
		return node("Logical", map[string]any{"op": e.Operator.Lexeme, "left": describeExpr(e.Left), "right": describeExpr(e.Right)})
	case *ast.Variable:
		return node("Variable", map[string]any{"name": e.Name.Lexeme})
	case *ast.Assign:
		return node("Assign", map[string]any{"name": e.Name.Lexeme, "value": describeExpr(e.Value)})
	case *ast.Call:
		args := make([]any, len(e.Args))
		for i, a := range e.Args {
			args[i] = describeExpr(a)
		}
		return node("Call", map[string]any{"callee": describeExpr(e.Callee), "args": args})
	case *ast.Get:
		return node("Get", map[string]any{"object": describeExpr(e.Object), "name": e.Name.Lexeme})
	case *ast.Set:
		return node("Set", map[string]any{"object": describeExpr(e.Object), "name": e.Name.Lexeme, "value": describeExpr(e.Value)})
	case *ast.This:
		return node("This", nil)
	case *ast.Super:
		return node("Super", map[string]any{"method": e.Method.Lexeme})
	default:
		return node("Unknown", nil)
	}
}

func node(kind string, fields map[string]any) map[string]any {
	out := map[string]any{"node": kind}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
