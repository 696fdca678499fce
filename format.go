package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber formats a value the way the calculator displays it. Integers
// keep a trailing ".0", other values use the fewest digits that parse back to
// the same float64, and values of magnitude below 1e-4 or at least 1e16 use
// exponent notation like "1e-05" or "1e+16". Infinities and NaN are "inf",
// "-inf", and "nan".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ParseNumber parses a number in the forms FormatNumber produces: decimal
// digits with an optional sign, fraction, and exponent, or one of "inf",
// "-inf", and "nan". Other spellings that strconv would accept, like hex
// floats and "Infinity", are not numbers here, so such tokens are free to be
// variable names.
func ParseNumber(s string) (float64, bool) {
	switch s {
	case "inf", "+inf":
		return math.Inf(1), true
	case "-inf":
		return math.Inf(-1), true
	case "nan":
		return math.NaN(), true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	// Converting through big.Rat is exact but costs time proportional to the
	// exponent, so leave the far ends of the range to strconv.
	if e := d.Exponent(); e < -800 || e > 400 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return v, true
	}
	v, _ := d.Float64()
	if s[0] == '-' && v == 0 {
		v = math.Copysign(0, -1)
	}
	return v, true
}
