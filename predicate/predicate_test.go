package predicate

import "testing"

func TestOpString(t *testing.T) {
	cases := map[Op]string{Eq: "=", Ne: "<>", Lt: "<", Le: "<=", Gt: ">", Ge: ">=", Like: "LIKE"}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestOpNegate(t *testing.T) {
	cases := []struct{ op, want Op }{
		{Eq, Ne}, {Ne, Eq}, {Lt, Ge}, {Le, Gt}, {Gt, Le}, {Ge, Lt},
	}
	for _, c := range cases {
		got, ok := c.op.Negate()
		if !ok || got != c.want {
			t.Errorf("%v.Negate() = %v, %v; want %v, true", c.op, got, ok, c.want)
		}
	}
	if _, ok := Like.Negate(); ok {
		t.Fatal("expected LIKE to have no defined negation")
	}
}
