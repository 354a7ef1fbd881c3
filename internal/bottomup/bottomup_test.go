package bottomup

import (
	"math/big"
	"testing"
)

func rat(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}

func rats(vals ...float64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = rat(v)
	}
	return out
}

// =======================
// Evaluator Tests
// =======================

func TestEvalTerminals(t *testing.T) {
	if got := Eval(Input(), rat(7)); got.Cmp(rat(7)) != 0 {
		t.Errorf("Eval(Input, 7) = %s, want 7", got.RatString())
	}
	if got := Eval(Zero(), rat(7)); got.Sign() != 0 {
		t.Errorf("Eval(Zero, 7) = %s, want 0", got.RatString())
	}
}

func TestEvalOperators(t *testing.T) {
	// (x + x') * (x - 1) where x' is (0 + 1), at x = 3: (3 + 1) * 2 = 8
	e := Mul(Add(Input(), Inc(Zero())), Dec(Input()))
	if got := Eval(e, rat(3)); got.Cmp(rat(8)) != 0 {
		t.Errorf("Eval(%s, 3) = %s, want 8", e, got.RatString())
	}
}

func TestEvalFractional(t *testing.T) {
	got := Eval(Inc(Input()), rat(0.5))
	if got.RatString() != "3/2" {
		t.Errorf("Eval(Inc(Input), 1/2) = %s, want 3/2", got.RatString())
	}
}

func TestEvalDeterminism(t *testing.T) {
	e := Add(Mul(Input(), Dec(Input())), Inc(Zero()))
	first := Eval(e, rat(4))
	second := Eval(e, rat(4))
	if first.Cmp(second) != 0 {
		t.Errorf("repeated evaluation differs: %s vs %s", first.RatString(), second.RatString())
	}
}

func TestEvalDoesNotMutateInput(t *testing.T) {
	n := rat(2)
	Eval(Dec(Mul(Input(), Inc(Input()))), n)
	if n.Cmp(rat(2)) != 0 {
		t.Errorf("input mutated to %s", n.RatString())
	}
}

func TestEvalThunk(t *testing.T) {
	lazy := Thunk(func() Expr { return Inc(Input()) })
	if got := Eval(lazy, rat(4)); got.Cmp(rat(5)) != 0 {
		t.Errorf("Eval(thunk, 4) = %s, want 5", got.RatString())
	}

	// Thunks are expressions themselves and may appear as operands.
	nested := Add(lazy, Zero())
	if got := Eval(nested, rat(4)); got.Cmp(rat(5)) != 0 {
		t.Errorf("Eval(Add(thunk, Zero), 4) = %s, want 5", got.RatString())
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{Input(), "x"},
		{Zero(), "0"},
		{Add(Input(), Zero()), "(x + 0)"},
		{Mul(Input(), Input()), "(x * x)"},
		{Inc(Input()), "(x + 1)"},
		{Dec(Zero()), "(0 - 1)"},
		{Thunk(func() Expr { return Inc(Zero()) }), "(0 + 1)"},
	}
	for _, c := range cases {
		if got := c.expr.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

// =======================
// Grammar Expander Tests
// =======================

func TestGrowOrderFromTerminals(t *testing.T) {
	grown := Grow([]Expr{Input(), Zero()})
	want := []string{
		"x", "0",
		"(x + 0)",
		"(x * 0)",
		"(x + 1)", "(0 + 1)",
		"(x - 1)", "(0 - 1)",
	}
	if len(grown) != len(want) {
		t.Fatalf("len(Grow) = %d, want %d", len(grown), len(want))
	}
	for i, w := range want {
		if got := grown[i].String(); got != w {
			t.Errorf("Grow[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestGrowPrefixUnchanged(t *testing.T) {
	list := []Expr{Input(), Zero(), Inc(Input())}
	grown := Grow(list)

	if len(grown) < len(list) {
		t.Fatalf("Grow shrank the list: %d -> %d", len(list), len(grown))
	}
	for i := range list {
		if grown[i] != list[i] {
			t.Errorf("prefix element %d changed: %s vs %s", i, grown[i], list[i])
		}
	}

	// n elements: n(n-1)/2 pairs per binary operator, n per unary.
	wantLen := len(list) + 2*(len(list)*(len(list)-1)/2) + 2*len(list)
	if len(grown) != wantLen {
		t.Errorf("len(Grow) = %d, want %d", len(grown), wantLen)
	}
}

func TestGrowBinaryPairsExcludeSelf(t *testing.T) {
	grown := Grow([]Expr{Input()})
	// A single element admits no pairs; only the unary batches apply.
	want := []string{"x", "(x + 1)", "(x - 1)"}
	if len(grown) != len(want) {
		t.Fatalf("len(Grow) = %d, want %d", len(grown), len(want))
	}
	for i, w := range want {
		if got := grown[i].String(); got != w {
			t.Errorf("Grow[%d] = %q, want %q", i, got, w)
		}
	}
}

// =======================
// Equivalence Reducer Tests
// =======================

func TestReduceKeepsFirstRepresentative(t *testing.T) {
	list := []Expr{Input(), Add(Input(), Zero()), Zero(), Mul(Input(), Zero())}
	kept := Reduce(list, rats(1, 2), make(map[string]struct{}))

	want := []string{"x", "0"}
	if len(kept) != len(want) {
		t.Fatalf("len(Reduce) = %d, want %d", len(kept), len(want))
	}
	for i, w := range want {
		if got := kept[i].String(); got != w {
			t.Errorf("Reduce[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestReduceUniqueSignatures(t *testing.T) {
	inputs := rats(1, 2, 3)
	list := Grow(Grow([]Expr{Input(), Zero()}))
	kept := Reduce(list, inputs, make(map[string]struct{}))

	seen := make(map[string]struct{})
	for _, e := range kept {
		key := Signature(e, inputs)
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate signature %q survived reduction (%s)", key, e)
		}
		seen[key] = struct{}{}
	}
}

func TestReduceStability(t *testing.T) {
	inputs := rats(1, 2, 3)
	list := Grow([]Expr{Input(), Zero()})
	kept := Reduce(list, inputs, make(map[string]struct{}))

	// Every kept element must appear in the same relative order as in list.
	pos := 0
	for _, k := range kept {
		found := false
		for ; pos < len(list); pos++ {
			if list[pos] == k {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("kept element %s out of order", k)
		}
	}
}

func TestReduceAccumulator(t *testing.T) {
	inputs := rats(1, 2)
	seen := make(map[string]struct{})
	seen[Signature(Input(), inputs)] = struct{}{}

	kept := Reduce([]Expr{Input(), Zero()}, inputs, seen)
	if len(kept) != 1 || kept[0].String() != "0" {
		t.Errorf("Reduce with seeded accumulator = %v, want [0]", kept)
	}
}

func TestSignature(t *testing.T) {
	if got := Signature(Inc(Input()), rats(1, 0.5)); got != "2,3/2" {
		t.Errorf("Signature = %q, want %q", got, "2,3/2")
	}
}
