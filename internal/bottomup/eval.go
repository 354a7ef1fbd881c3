package bottomup

import "math/big"

var one = big.NewRat(1, 1)

// Eval evaluates expr against the input n using exact rational
// arithmetic. Evaluation is pure: it never mutates expr or n, and the
// same (expr, n) pair always yields the same result.
func Eval(expr Expr, n *big.Rat) *big.Rat {
	switch e := expr.(type) {
	case InputExpr:
		return new(big.Rat).Set(n)
	case ZeroExpr:
		return new(big.Rat)
	case AddExpr:
		return new(big.Rat).Add(Eval(e.Left, n), Eval(e.Right, n))
	case MulExpr:
		return new(big.Rat).Mul(Eval(e.Left, n), Eval(e.Right, n))
	case IncExpr:
		return new(big.Rat).Add(Eval(e.Operand, n), one)
	case DecExpr:
		return new(big.Rat).Sub(Eval(e.Operand, n), one)
	case Thunk:
		return Eval(e(), n)
	default:
		// The grammar is sealed by isExpr; no other variant can exist.
		panic("bottomup: expression outside the grammar")
	}
}
