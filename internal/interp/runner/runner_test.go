package runner

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// TestScenarios runs the literal end-to-end programs used throughout
// the language documentation, asserting their stdout byte-for-byte.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "hello world",
			source: `print "Hello, world";`,
			want:   "Hello, world\n",
		},
		{
			name: "nested scope shadowing",
			source: `
var a = "global a"; var b = "global b"; var c = "global c";
{
  var a = "outer a"; var b = "outer b";
  {
    var a = "inner a";
    print a; print b; print c;
  }
  print a; print b; print c;
}
print a; print b; print c;
`,
			want: "inner a\nouter b\nglobal c\n" +
				"outer a\nouter b\nglobal c\n" +
				"global a\nglobal b\nglobal c\n",
		},
		{
			name:   "closure captures hidden variable",
			source: `var a = 1; { fun showA() { print a; } showA(); var a = 2; showA(); }`,
			want:   "1\n2\n",
		},
		{
			name: "super dispatch",
			source: `
class Doughnut {
  cook() { print "Fry until golden brown."; }
}
class BostonCream < Doughnut {
  cook() {
    super.cook();
    print "Pipe full of custard and coat with chocolate.";
  }
}
BostonCream().cook();
`,
			want: "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			outcome := Run(tc.source, &buf)
			require.Empty(t, outcome.LexErrors)
			require.Empty(t, outcome.ParseErrors)
			require.Empty(t, outcome.ResolveErrors)
			require.Nil(t, outcome.RuntimeError)
			require.Equal(t, tc.want, buf.String())
		})
	}
}

// TestFibonacciPairs walks the classic two-variable Fibonacci rotation
// out to i < 22, snapshotting the resulting stream (24 values, 0
// through 28657) since it is unwieldy to inline as a literal
// expectation.
func TestFibonacciPairs(t *testing.T) {
	source := `
var a = 0;
var b = 1;
print a;
print b;
for (var i = 0; i < 22; i = i + 1) {
  var next = a + b;
  a = b;
  b = next;
  print b;
}
`
	var buf bytes.Buffer
	outcome := Run(source, &buf)
	require.Empty(t, outcome.LexErrors)
	require.Empty(t, outcome.ParseErrors)
	require.Empty(t, outcome.ResolveErrors)
	require.Nil(t, outcome.RuntimeError)
	snaps.MatchSnapshot(t, buf.String())
}

// TestSuperWithoutSuperclassIsRejectedAtResolution locks in the
// resolver's static rejection of `super` outside an inheriting class.
func TestSuperWithoutSuperclassIsRejectedAtResolution(t *testing.T) {
	source := `
class Doughnut {
  cook() { super.cook(); }
}
`
	var buf bytes.Buffer
	outcome := Run(source, &buf)
	require.Empty(t, outcome.LexErrors)
	require.Empty(t, outcome.ParseErrors)
	require.Len(t, outcome.ResolveErrors, 1)
	require.Equal(t, "Can't use 'super' in a class with no superclass.", outcome.ResolveErrors[0].Message)
	require.True(t, outcome.HadStaticError())

	rendered := outcome.StaticErrors()
	require.Len(t, rendered, 1)
	require.Equal(t, "[line 3] Error at 'super': Can't use 'super' in a class with no superclass.", rendered[0].Error())
}
