// Package bottomup implements a bottom-up enumerative program synthesizer
// over a fixed numeric grammar.
//
// The grammar has two terminals, Input and Zero, and four operators:
// Add, Mul, Inc and Dec. Synthesize seeds the candidate list with the
// terminals and then repeats up to a depth bound: grow the list by one
// operator application (Grow), prune observationally equivalent
// candidates (Reduce) and scan the survivors for one whose evaluation
// matches every example pair, returning the first match.
//
// Pruning compares candidates only on the example inputs. Two programs
// that agree there can still differ elsewhere, so a pruned candidate may
// be exactly the building block a deeper correct program needed. The
// search is therefore complete only relative to the example set; that
// matches the reference behavior and is kept as is.
//
// All arithmetic is exact (math/big rationals): evaluation, signature
// keys and correctness checks share one numeric domain, so fractional
// examples such as 0.5 never suffer rounding mismatches.
package bottomup
