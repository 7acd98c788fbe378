package value

import "testing"

func TestLiteralToLiteralAndExpression(t *testing.T) {
	l := Literal("12px")
	if l.ToLiteral() != "12px" {
		t.Fatalf("got %q", l.ToLiteral())
	}
	if l.ToExpression().String() != "12px" {
		t.Fatalf("got %q", l.ToExpression().String())
	}
}

func TestFunctionToLiteralRendersCall(t *testing.T) {
	f := Function{Name: FuncSymbol, Params: []Value{Literal("circle")}}
	if got := f.ToLiteral(); got != "symbol(circle)" {
		t.Fatalf("got %q", got)
	}
}

func TestFunctionToExpressionPreservesArgOrder(t *testing.T) {
	f := Function{Name: FuncColorMapEntry, Params: []Value{Literal("#fff"), Literal("100")}}
	expr := f.ToExpression().String()
	if expr != "color-map-entry(#fff, 100)" {
		t.Fatalf("got %q", expr)
	}
}

func TestMultiValueToLiteralJoinsWithComma(t *testing.T) {
	m := MultiValue{Values: []Value{Literal("1"), Literal("2")}}
	if got := m.ToLiteral(); got != "1,2" {
		t.Fatalf("got %q", got)
	}
}

func TestAsMultiValue(t *testing.T) {
	m := MultiValue{Values: []Value{Literal("a"), Literal("b")}}
	if got := AsMultiValue(m); len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}

	single := Literal("x")
	if got := AsMultiValue(single); len(got) != 1 || got[0] != single {
		t.Fatalf("expected a single-element wrap, got %#v", got)
	}

	if got := AsMultiValue(nil); len(got) != 1 || got[0] != nil {
		t.Fatalf("expected a single nil element for nil input, got %#v", got)
	}
}
