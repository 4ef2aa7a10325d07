package ast

// Enumeration of binary operators.
const (
	OpAdd = iota
	OpSub
	OpEq
)

// opSymbols maps each binary operator to its source symbol.
var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpEq:  "==",
}

// OpSymbol returns the source symbol of a binary operator.
func OpSymbol(op int) string {
	if 0 <= op && op < len(opSymbols) {
		return opSymbols[op]
	}

	return "?"
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The operator applied.  This must be one of the enumerated operators.
	Op int

	Lhs, Rhs ASTExpr
}

// Literal represents a number literal.  Its value is the raw source text.
type Literal struct {
	ExprBase

	Value string
}

// Identifier represents a variable used as a value.
type Identifier struct {
	ExprBase

	Name string
}
