package bottomup

import (
	"errors"
	"fmt"
	"math/big"
)

// DefaultMaxDepth bounds the search when the caller does not pick a depth.
const DefaultMaxDepth = 2

var (
	// ErrExampleMismatch reports an example set whose input and output
	// counts disagree. It is returned before any search begins.
	ErrExampleMismatch = errors.New("bottomup: example inputs and outputs differ in length")

	// ErrNoSolution reports a search that exhausted its depth bound
	// without finding a matching program. It is a defined outcome, not a
	// fault; callers must check for it.
	ErrNoSolution = errors.New("bottomup: no program found within depth bound")
)

// Synthesize searches for the first expression, in generation order,
// whose evaluation matches every (input, output) pair exactly. maxDepth
// bounds the number of growth rounds; values <= 0 fall back to
// DefaultMaxDepth.
//
// The candidate list and the per-round signature set live entirely
// within one call; separate invocations share nothing.
func Synthesize(inputs, outputs []*big.Rat, maxDepth int) (Expr, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", ErrExampleMismatch, len(inputs), len(outputs))
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	list := []Expr{Input(), Zero()}
	for round := 0; round < maxDepth; round++ {
		list = Grow(list)
		list = Reduce(list, inputs, make(map[string]struct{}))
		if found, ok := scan(list, inputs, outputs); ok {
			return found, nil
		}
	}
	return nil, ErrNoSolution
}

// scan reports the first candidate matching every example pair, if any.
// A hit ends the whole search; the caller returns immediately.
func scan(list []Expr, inputs, outputs []*big.Rat) (Expr, bool) {
	for _, cand := range list {
		if matches(cand, inputs, outputs) {
			return cand, true
		}
	}
	return nil, false
}

func matches(cand Expr, inputs, outputs []*big.Rat) bool {
	for i, in := range inputs {
		if Eval(cand, in).Cmp(outputs[i]) != 0 {
			return false
		}
	}
	return true
}
