package calculator

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a failed evaluation. The zero value, NoError, means an
// operator's domain check passed. Every other ErrorKind is also an error, so
// that errors.Is(err, DivisionByZero) reports whether an evaluation error is
// of that kind.
type ErrorKind int8

const (
	NoError ErrorKind = iota

	DivisionByZero       // divisor of ÷ is zero
	SquareRootOfNegative // operand of √ is negative
	NotEnoughOperands    // binary operator with only one operand
	VariableNotSet       // variable with no binding
	OutOfDomain          // any other argument outside an operator's domain
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case DivisionByZero:
		return "division by zero"
	case SquareRootOfNegative:
		return "square root of negative number"
	case NotEnoughOperands:
		return "not enough operands"
	case VariableNotSet:
		return "variable not set"
	case OutOfDomain:
		return "argument outside domain"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is an error produced by evaluating a stack. It unwraps to its Kind.
type Error struct {
	// Kind is the kind of failure.
	Kind ErrorKind
	// Symbol is the operator that failed, or the name of the unset variable.
	Symbol string
}

func (err *Error) Error() string {
	if err.Symbol == "" {
		return err.Kind.String()
	}
	return err.Symbol + ": " + err.Kind.String()
}

func (err *Error) Unwrap() error {
	return err.Kind
}

// KindOf returns the ErrorKind of an evaluation error. It returns NoError if
// err is nil or was not produced by evaluation.
func KindOf(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return NoError
}
