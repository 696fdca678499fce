package calculator

import (
	"math"
	"strconv"
)

// Op is one entry on a Brain's stack: an operand, a constant, or an operator.
// Ops are created with Number, Variable, Constant, Unary, and Binary.
type Op struct {
	kind OpKind

	// sym is the display token for names, constants, and operators. Numbers
	// format val instead.
	sym string
	val float64

	unary  func(float64) float64
	binary func(a, b float64) float64

	check1 func(float64) ErrorKind
	check2 func(a, b float64) ErrorKind
}

// OpKind is the variant of an Op.
type OpKind int8

const (
	OpNone OpKind = iota

	OpNumber   // literal operand
	OpVariable // operand looked up by name
	OpConstant // named literal
	OpUnary    // function of the operand beneath
	OpBinary   // function of the two operands beneath
)

func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "None"
	case OpNumber:
		return "Number"
	case OpVariable:
		return "Variable"
	case OpConstant:
		return "Constant"
	case OpUnary:
		return "Unary"
	case OpBinary:
		return "Binary"
	default:
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number returns a literal operand.
func Number(v float64) Op {
	return Op{kind: OpNumber, val: v}
}

// Variable returns an operand whose value is looked up in Brain.Vars each time
// the stack is evaluated.
func Variable(name string) Op {
	return Op{kind: OpVariable, sym: name}
}

// Constant returns a named literal, such as π.
func Constant(symbol string, v float64) Op {
	return Op{kind: OpConstant, sym: symbol, val: v}
}

// Unary returns an operator applying f to one operand. If check is not nil,
// it is called first, and any result other than NoError replaces the result.
func Unary(symbol string, f func(float64) float64, check func(float64) ErrorKind) Op {
	return Op{kind: OpUnary, sym: symbol, unary: f, check1: check}
}

// Binary returns an operator applying f to two operands. a is the operand
// pushed first and b the one pushed after it, so "5 2 −" calls f(5, 2). If
// check is not nil, it is called first, and any result other than NoError
// replaces the result.
func Binary(symbol string, f func(a, b float64) float64, check func(a, b float64) ErrorKind) Op {
	return Op{kind: OpBinary, sym: symbol, binary: f, check2: check}
}

// Kind returns the variant of op.
func (op Op) Kind() OpKind {
	return op.kind
}

// Symbol returns the token that displays op. It is the registry key for
// operators and constants, the name of a variable, and the formatted value of
// a number.
func (op Op) Symbol() string {
	if op.kind == OpNumber {
		return FormatNumber(op.val)
	}
	return op.sym
}

// Value returns the value of a number or constant. It is 0 for other kinds.
func (op Op) Value() float64 {
	return op.val
}

func (op Op) String() string {
	return op.Symbol()
}

// defaultOps lists the operators every Brain knows.
func defaultOps() []Op {
	return []Op{
		Binary("+", func(a, b float64) float64 { return a + b }, nil),
		Binary("×", func(a, b float64) float64 { return a * b }, nil),
		Binary("÷", func(a, b float64) float64 { return a / b }, func(a, b float64) ErrorKind {
			if b == 0 {
				return DivisionByZero
			}
			return NoError
		}),
		Binary("−", func(a, b float64) float64 { return a - b }, nil),
		Unary("√", math.Sqrt, func(x float64) ErrorKind {
			if x < 0 {
				return SquareRootOfNegative
			}
			return NoError
		}),
		Unary("sin", math.Sin, nil),
		Unary("cos", math.Cos, nil),
		Constant("π", math.Pi),
	}
}
