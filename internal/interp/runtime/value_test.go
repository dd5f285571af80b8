package runtime

import "testing"

func TestNumberString_IntegralHasNoDecimalPoint(t *testing.T) {
	if got := Number(5).String(); got != "5" {
		t.Errorf("Number(5).String() = %q, want %q", got, "5")
	}
}

func TestNumberString_FractionalUsesShortestForm(t *testing.T) {
	if got := Number(5.5).String(); got != "5.5" {
		t.Errorf("Number(5.5).String() = %q, want %q", got, "5.5")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", NilValue, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), true},
		{"empty string", String(""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTruthy(tc.v); got != tc.want {
				t.Errorf("IsTruthy(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(NilValue, NilValue) {
		t.Error("nil should equal nil")
	}
	if Equal(NilValue, Number(0)) {
		t.Error("nil should not equal 0")
	}
	if !Equal(Number(1), Number(1)) {
		t.Error("equal numbers should compare equal")
	}
	if Equal(Number(1), String("1")) {
		t.Error("different types should never compare equal")
	}
	if !Equal(String("a"), String("a")) {
		t.Error("equal strings should compare equal")
	}
}

func TestEnvironment_AssignWalksEnclosingChain(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("x", Number(1))
	inner := NewEnclosedEnvironment(globals)

	if ok := inner.Assign("x", Number(2)); !ok {
		t.Fatal("expected assign to find x in enclosing scope")
	}
	got, _ := globals.Get("x")
	if got != Number(2) {
		t.Errorf("globals.x = %v, want 2", got)
	}
}

func TestEnvironment_AssignUndeclaredFails(t *testing.T) {
	env := NewEnvironment()
	if ok := env.Assign("missing", Number(1)); ok {
		t.Error("expected Assign to fail for an undeclared name")
	}
}
