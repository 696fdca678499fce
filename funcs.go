package calculator

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the working precision of operators computed with big.Float. It
// leaves some guard bits beyond float64's 53.
const prec = 64

// scientificOps lists the operators added by the Scientific option.
func scientificOps() []Op {
	return []Op{
		Binary("xʸ", Dyadic(bigfloat.Pow, math.Pow), func(x, y float64) ErrorKind {
			if x < 0 && y != math.Trunc(y) {
				return OutOfDomain
			}
			return NoError
		}),
		Unary("eˣ", Monadic(bigfloat.Exp, math.Exp), nil),
		Unary("ln", Monadic(bigfloat.Log, math.Log), func(x float64) ErrorKind {
			if x < 0 {
				return OutOfDomain
			}
			return NoError
		}),
		Unary("tan", math.Tan, nil),
		Unary("x²", func(x float64) float64 { return x * x }, nil),
		Unary("1/x", func(x float64) float64 { return 1 / x }, func(x float64) ErrorKind {
			if x == 0 {
				return DivisionByZero
			}
			return NoError
		}),
		Unary("±", func(x float64) float64 { return -x }, nil),
		Constant("e", eulers()),
	}
}

// eulers computes e to float64 precision.
func eulers() float64 {
	var one, r big.Float
	one.SetPrec(prec).SetFloat64(1)
	r.SetPrec(prec)
	f, _ := bigfloat.Exp(&r, &one).Float64()
	return f
}

// Monadic adapts a big.Float function of one variable into a float64 function
// suitable for Unary. f must set out to its result and may panic with
// big.ErrNaN on arguments outside its domain, in which case the result is NaN.
//
// approx is the float64 version of the same function. Its result is used
// directly when it is zero or not finite, or when x is not finite, since
// big.Float has no NaN and its exponent range differs from float64's. The
// result of f is used rather than out, since f may return a different value
// in special cases.
func Monadic(f func(out, in *big.Float) *big.Float, approx func(float64) float64) func(float64) float64 {
	return func(x float64) (r float64) {
		r = approx(x)
		if !finite(x) || !finite(r) || r == 0 {
			return r
		}
		defer recoverNaN(&r)
		var in, out big.Float
		in.SetPrec(prec).SetFloat64(x)
		out.SetPrec(prec)
		r, _ = f(&out, &in).Float64()
		return r
	}
}

// Dyadic adapts a big.Float function of two variables into a float64 function
// suitable for Binary, with the same conventions as Monadic. approx is also
// used for a negative x, which bigfloat functions do not accept; the operator's
// domain check decides which negative arguments are allowed.
func Dyadic(f func(out, x, y *big.Float) *big.Float, approx func(x, y float64) float64) func(x, y float64) float64 {
	return func(x, y float64) (r float64) {
		r = approx(x, y)
		if !finite(x) || !finite(y) || !finite(r) || r == 0 || x < 0 {
			return r
		}
		defer recoverNaN(&r)
		var a, b, out big.Float
		a.SetPrec(prec).SetFloat64(x)
		b.SetPrec(prec).SetFloat64(y)
		out.SetPrec(prec)
		r, _ = f(&out, &a, &b).Float64()
		return r
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// recoverNaN turns a big.ErrNaN panic into a NaN result. Any other panic
// continues.
func recoverNaN(r *float64) {
	p := recover()
	if p == nil {
		return
	}
	err, ok := p.(error)
	if !ok || !errors.As(err, &big.ErrNaN{}) {
		panic(p)
	}
	*r = math.NaN()
}
