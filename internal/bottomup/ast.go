package bottomup

// Expr represents a program in the synthesis grammar.
// The grammar is closed: the only variants are InputExpr, ZeroExpr,
// AddExpr, MulExpr, IncExpr, DecExpr and Thunk. Expressions are
// immutable values; growth builds larger trees by sharing existing
// subtrees, never by mutating them.
type Expr interface {
	isExpr()
	String() string
}

// InputExpr is the terminal that evaluates to the input value.
type InputExpr struct{}

func (InputExpr) isExpr() {}
func (InputExpr) String() string {
	return "x"
}

// ZeroExpr is the terminal that evaluates to the constant 0.
type ZeroExpr struct{}

func (ZeroExpr) isExpr() {}
func (ZeroExpr) String() string {
	return "0"
}

// AddExpr evaluates to the sum of its operands.
type AddExpr struct {
	Left  Expr
	Right Expr
}

func (AddExpr) isExpr() {}
func (e AddExpr) String() string {
	return "(" + e.Left.String() + " + " + e.Right.String() + ")"
}

// MulExpr evaluates to the product of its operands.
type MulExpr struct {
	Left  Expr
	Right Expr
}

func (MulExpr) isExpr() {}
func (e MulExpr) String() string {
	return "(" + e.Left.String() + " * " + e.Right.String() + ")"
}

// IncExpr evaluates to its operand plus one.
type IncExpr struct {
	Operand Expr
}

func (IncExpr) isExpr() {}
func (e IncExpr) String() string {
	return "(" + e.Operand.String() + " + 1)"
}

// DecExpr evaluates to its operand minus one.
type DecExpr struct {
	Operand Expr
}

func (DecExpr) isExpr() {}
func (e DecExpr) String() string {
	return "(" + e.Operand.String() + " - 1)"
}

// Thunk is a deferred expression producer. Eval forces it to obtain the
// concrete tree, so candidates may be constructed lazily without
// changing the evaluation contract.
type Thunk func() Expr

func (Thunk) isExpr() {}
func (t Thunk) String() string {
	return t().String()
}

// Helper functions to construct grammar nodes

// Input creates the input terminal.
func Input() Expr {
	return InputExpr{}
}

// Zero creates the zero terminal.
func Zero() Expr {
	return ZeroExpr{}
}

// Add creates an addition expression.
func Add(left, right Expr) Expr {
	return AddExpr{Left: left, Right: right}
}

// Mul creates a multiplication expression.
func Mul(left, right Expr) Expr {
	return MulExpr{Left: left, Right: right}
}

// Inc creates an increment expression.
func Inc(operand Expr) Expr {
	return IncExpr{Operand: operand}
}

// Dec creates a decrement expression.
func Dec(operand Expr) Expr {
	return DecExpr{Operand: operand}
}
