package expr

import (
	"fmt"
	"strconv"
)

// Node is an expression tree node.
type Node interface {
	// Eval computes the node's value.
	Eval() (float64, error)
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Eval implements Node.
func (n Number) Eval() (float64, error) {
	return n.Value, nil
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Op is a binary operator.
type Op byte

// Operators.
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

// BinaryOp applies Op to two operands.
type BinaryOp struct {
	Op          Op
	Left, Right Node
}

// Eval implements Node.
func (b BinaryOp) Eval() (float64, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, byte(b.Op))
	}
}

func (b BinaryOp) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}
