package interp

import (
	"bytes"
	"testing"

	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, *Interpreter) {
	t.Helper()
	tokens, lexErrs := lexer.New(src).Scan()
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	locals, resolveErrs := resolver.Resolve(stmts)
	require.Empty(t, resolveErrs)

	var buf bytes.Buffer
	it := New(&buf)
	it.Locals = locals
	err := it.Interpret(stmts)
	require.Nil(t, err)
	return buf.String(), it
}

func TestInterpret_NumberFormatting(t *testing.T) {
	out, _ := run(t, `print 5; print 5.5; print 10 / 2;`)
	require.Equal(t, "5\n5.5\n5\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, _ := run(t, `print !nil; print !false; print !0; print !"";`)
	require.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
}

func TestInterpret_ClosureCaptureByReference(t *testing.T) {
	out, _ := run(t, `
fun makeCounter() {
  var count = 0;
  fun increment() { count = count + 1; return count; }
  fun current() { return count; }
  return increment;
}
var inc = makeCounter();
inc();
inc();
print inc();
`)
	require.Equal(t, "3\n", out)
}

func TestInterpret_TwoClosuresShareAssignment(t *testing.T) {
	out, _ := run(t, `
var set; var get;
{
  var a = 1;
  fun setter(v) { a = v; }
  fun getter() { return a; }
  set = setter;
  get = getter;
}
set(5);
print get();
`)
	require.Equal(t, "5\n", out)
}

func TestInterpret_InitAlwaysReturnsInstanceRegardlessOfBareReturn(t *testing.T) {
	out, _ := run(t, `
class Foo {
  init() { this.x = 1; return; }
}
var f = Foo();
print f.x;
`)
	require.Equal(t, "1\n", out)
}

func TestInterpret_MethodBindingIdempotence(t *testing.T) {
	out, _ := run(t, `
class Box {
  set(v) { this.v = v; }
  get() { return this.v; }
}
var b = Box();
var setter1 = b.set;
var setter2 = b.set;
setter1(10);
print b.get();
setter2(20);
print b.get();
`)
	require.Equal(t, "10\n20\n", out)
}

func TestInterpret_SuperSkipsCurrentClassMethod(t *testing.T) {
	out, _ := run(t, `
class A { greet() { print "A"; } }
class B < A { greet() { print "B"; } }
class C < B {
  greet() { super.greet(); }
}
C().greet();
`)
	require.Equal(t, "B\n", out)
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	tokens, lexErrs := lexer.New(`fun f(a, b) { return a; } f(1);`).Scan()
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	locals, resolveErrs := resolver.Resolve(stmts)
	require.Empty(t, resolveErrs)

	var buf bytes.Buffer
	it := New(&buf)
	it.Locals = locals
	err := it.Interpret(stmts)
	require.NotNil(t, err)
	require.Equal(t, "Expected 2 arguments but got 1.", err.Error())
}
