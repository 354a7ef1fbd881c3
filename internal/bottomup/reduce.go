package bottomup

import (
	"math/big"
	"strings"
)

// Reduce drops every candidate whose output signature on inputs was
// already produced by an earlier candidate, keeping the first
// representative of each signature. It is a stable filter: kept
// candidates preserve their relative order.
//
// seen accumulates signatures across calls; pass a fresh map for an
// independent reduction pass.
func Reduce(list []Expr, inputs []*big.Rat, seen map[string]struct{}) []Expr {
	kept := make([]Expr, 0, len(list))
	for _, cand := range list {
		key := Signature(cand, inputs)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, cand)
	}
	return kept
}

// Signature renders the ordered evaluation results of expr on inputs as
// an exact canonical key. Two expressions share a signature exactly when
// they are observationally equivalent on inputs.
func Signature(expr Expr, inputs []*big.Rat) string {
	var b strings.Builder
	for i, in := range inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Eval(expr, in).RatString())
	}
	return b.String()
}
