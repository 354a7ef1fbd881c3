package bottomup

// Grow returns list extended by one generation: every operator applied
// once to operands already present in list. The input list is the
// unchanged prefix of the result, so earlier generations stay available
// to the search and to later rounds.
//
// Batch order is Add, Mul, Inc, Dec. The binary batches enumerate
// unordered position pairs (i, j) with i < j in ascending order; the
// unary batches follow list order. The ordering is part of the
// contract: it decides which of several equally correct candidates the
// search returns.
//
// The binary batches are quadratic in len(list); Reduce exists to keep
// that growth in check across rounds.
func Grow(list []Expr) []Expr {
	grown := make([]Expr, len(list), len(list)*(len(list)+3))
	copy(grown, list)

	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			grown = append(grown, Add(list[i], list[j]))
		}
	}
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			grown = append(grown, Mul(list[i], list[j]))
		}
	}
	for _, e := range list {
		grown = append(grown, Inc(e))
	}
	for _, e := range list {
		grown = append(grown, Dec(e))
	}
	return grown
}
