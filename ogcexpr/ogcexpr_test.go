package ogcexpr

import "testing"

func TestPropertyNameString(t *testing.T) {
	if got := (PropertyName{Name: "type"}).String(); got != "[type]" {
		t.Fatalf("got %q", got)
	}
}

func TestFunctionStringJoinsArgs(t *testing.T) {
	f := Function{Name: "Concatenate", Args: []Expression{Literal{Value: "a"}, Literal{Value: "b"}}}
	if got := f.String(); got != "Concatenate(a, b)" {
		t.Fatalf("got %q", got)
	}
}

func TestConcatenateBuildsFunction(t *testing.T) {
	e := Concatenate(Literal{Value: "x"}, PropertyName{Name: "name"})
	f, ok := e.(Function)
	if !ok || f.Name != "Concatenate" || len(f.Args) != 2 {
		t.Fatalf("unexpected Concatenate result: %#v", e)
	}
}
