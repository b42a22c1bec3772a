package sat

import "fmt"

// Variable is an integer identity in [0, V) where V is the number of
// variables declared on the solver. Variables never encode polarity; a
// Literal pairs a Variable with a sign.
type Variable int

// Literal represents a variable together with a polarity: either the
// variable itself or its negation. The encoding is 2*variable+polarityBit,
// so that negation is a single bit flip and the two literals of a variable
// are adjacent indices, suitable as a dense array key for watch lists and
// assignment tables.
type Literal int

// FromDIMACS builds the literal corresponding to a nonzero signed DIMACS
// integer. The sign encodes polarity and |i|-1 is the variable index.
func FromDIMACS(i int) Literal {
	if i == 0 {
		panic("sat: zero literal")
	}
	if i < 0 {
		return NegativeLiteral(Variable(-i - 1))
	}
	return PositiveLiteral(Variable(i - 1))
}

// PositiveLiteral returns the literal asserting that v is true.
func PositiveLiteral(v Variable) Literal {
	return Literal(v) * 2
}

// NegativeLiteral returns the literal asserting that v is false.
func NegativeLiteral(v Variable) Literal {
	return PositiveLiteral(v) ^ 1
}

// Variable returns the literal's underlying variable.
func (l Literal) Variable() Variable {
	return Variable(l >> 1)
}

// IsPositive reports whether l asserts its variable rather than its negation.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Negate returns the literal's negation.
func (l Literal) Negate() Literal {
	return l ^ 1
}

// Index returns the literal's dense 2*var+polarity code, used as a key into
// watch lists and binary adjacency tables.
func (l Literal) Index() int {
	return int(l)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Variable())
	}
	return fmt.Sprintf("-%d", l.Variable())
}

func (v Variable) String() string {
	return fmt.Sprintf("v%d", int(v))
}
