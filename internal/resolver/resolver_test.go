package resolver

import (
	"testing"

	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, src string) (Locals, []*ResolveError) {
	t.Helper()
	tokens, lexErrs := lexer.New(src).Scan()
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	return Resolve(stmts)
}

func TestResolve_GlobalsAreNotRecorded(t *testing.T) {
	locals, errs := resolveSource(t, `var a = 1; print a;`)
	require.Empty(t, errs)
	require.Empty(t, locals)
}

func TestResolve_LocalRecordsDepth(t *testing.T) {
	locals, errs := resolveSource(t, `{ var a = 1; print a; }`)
	require.Empty(t, errs)
	require.Len(t, locals, 1)
	for _, depth := range locals {
		require.Equal(t, 0, depth)
	}
}

func TestResolve_ClosureOverOuterScope(t *testing.T) {
	locals, errs := resolveSource(t, `{ var a = 1; { var b = 2; print a; } }`)
	require.Empty(t, errs)
	require.Len(t, locals, 1)
	for _, depth := range locals {
		require.Equal(t, 1, depth)
	}
}

func TestResolve_CannotReadLocalInOwnInitializer(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = a; }`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't read local variable in its own initializer.", errs[0].Message)
}

func TestResolve_DuplicateLocalDeclaration(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, errs, 1)
	require.Equal(t, "Already a variable with this name in this scope.", errs[0].Message)
}

func TestResolve_DuplicateGlobalDeclarationIsAllowed(t *testing.T) {
	_, errs := resolveSource(t, `var a = 1; var a = 2;`)
	require.Empty(t, errs)
}

func TestResolve_ReturnAtTopLevel(t *testing.T) {
	_, errs := resolveSource(t, `return 1;`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't return from top-level code.", errs[0].Message)
}

func TestResolve_ReturnValueFromInitializer(t *testing.T) {
	_, errs := resolveSource(t, `class Foo { init() { return 1; } }`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't return a value from an initializer.", errs[0].Message)
}

func TestResolve_BareReturnFromInitializerIsAllowed(t *testing.T) {
	_, errs := resolveSource(t, `class Foo { init() { return; } }`)
	require.Empty(t, errs)
}

func TestResolve_ThisOutsideClass(t *testing.T) {
	_, errs := resolveSource(t, `print this;`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't use 'this' outside of a class.", errs[0].Message)
}

func TestResolve_SuperOutsideClass(t *testing.T) {
	_, errs := resolveSource(t, `print super.foo;`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't use 'super' outside of a class.", errs[0].Message)
}

func TestResolve_SuperWithoutSuperclass(t *testing.T) {
	_, errs := resolveSource(t, `class Foo { bar() { super.bar(); } }`)
	require.Len(t, errs, 1)
	require.Equal(t, "Can't use 'super' in a class with no superclass.", errs[0].Message)
}

// TestResolve_ErrorRendersReferenceDiagnosticFormat locks in that
// ResolveError.Error() produces the full `[line L] Error at 'LEX': MSG`
// wrapper, not just the bare Message, the same as ParseError.Error.
func TestResolve_ErrorRendersReferenceDiagnosticFormat(t *testing.T) {
	_, errs := resolveSource(t, `
class Foo {
  bar() { super.bar(); }
}
`)
	require.Len(t, errs, 1)
	require.Equal(t, "[line 3] Error at 'super': Can't use 'super' in a class with no superclass.", errs[0].Error())
}

func TestResolve_ClassCannotInheritFromItself(t *testing.T) {
	_, errs := resolveSource(t, `class Foo < Foo {}`)
	require.Len(t, errs, 1)
	require.Equal(t, "A class can't inherit from itself.", errs[0].Message)
}

func TestResolve_SuperAndThisInsideSubclassMethodAreLocal(t *testing.T) {
	locals, errs := resolveSource(t, `
class A { greet() { print "a"; } }
class B < A { greet() { super.greet(); print this; } }
`)
	require.Empty(t, errs)
	require.Len(t, locals, 2)
}
