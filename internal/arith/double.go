package arith

import (
	"math"

	"github.com/funvibe/funvec/internal/vector"
)

const epsilon = 2.220446049250313e-16

// maxPowDI bounds the exponent handled by repeated squaring.
const maxPowDI = 65536

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// nanOf picks the NaN to return for a NaN operand pair, preferring NA.
func nanOf(x, y float64) float64 {
	if vector.IsNADouble(x) || vector.IsNADouble(y) {
		return vector.NADouble
	}
	return math.NaN()
}

func AddDouble(a, b float64) float64 { return a + b }
func SubDouble(a, b float64) float64 { return a - b }
func MulDouble(a, b float64) float64 { return a * b }
func DivDouble(a, b float64) float64 { return a / b }

// ModDouble is the floored modulus. x %% 0 is NaN; a huge divisor returns
// the dividend (or dividend + divisor for differing signs) rather than
// losing all precision.
func ModDouble(x1, x2 float64) float64 {
	if x2 == 0 {
		return math.NaN()
	}
	if math.Abs(x2)*epsilon > 1 && isFinite(x1) && math.Abs(x1) <= math.Abs(x2) {
		if math.Abs(x1) == math.Abs(x2) {
			return 0
		}
		if (x1 < 0 && x2 > 0) || (x2 < 0 && x1 > 0) {
			return x1 + x2
		}
		return x1
	}
	q := x1 / x2
	tmp := x1 - math.Floor(q)*x2
	return tmp - math.Floor(tmp/x2)*x2
}

// IntDivDouble is floored division. x %/% 0 is x/0.
func IntDivDouble(x1, x2 float64) float64 {
	q := x1 / x2
	if x2 == 0 || math.Abs(q)*epsilon > 1 || !isFinite(q) {
		return q
	}
	if math.Abs(q) < 1 {
		if q < 0 {
			return -1
		}
		if (x1 < 0 && x2 > 0) || (x1 > 0 && x2 < 0) {
			return -1
		}
		return 0
	}
	tmp := x1 - math.Floor(q)*x2
	return math.Floor(q) + math.Floor(tmp/x2)
}

// MinDouble and MaxDouble propagate NaN.
func MinDouble(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanOf(a, b)
	}
	return math.Min(a, b)
}

func MaxDouble(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanOf(a, b)
	}
	return math.Max(a, b)
}

// PowDouble is x^y. 1^y and x^0 are 1 for every x and y, NaN and NA included;
// 0^y is +Inf for negative y. Integral exponents go through PowDI, y == 2 is
// exactly x*x.
func PowDouble(x, y float64) float64 {
	if x == 1 || y == 0 {
		return 1
	}
	if x == 0 {
		if y > 0 {
			return 0
		}
		if y < 0 {
			return math.Inf(1)
		}
		return y // NaN
	}
	if isFinite(x) && isFinite(y) {
		if y == 2 {
			return x * x
		}
		if y == math.Trunc(y) && math.Abs(y) <= maxPowDI {
			return PowDI(x, int(y))
		}
		return math.Pow(x, y)
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return nanOf(x, y)
	}
	if !isFinite(x) {
		if x > 0 {
			if y < 0 {
				return 0
			}
			return math.Inf(1)
		}
		// (-Inf)^y
		if isFinite(y) && y == math.Floor(y) {
			if y < 0 {
				return 0
			}
			if ModDouble(y, 2) != 0 {
				return x
			}
			return -x
		}
	}
	if !isFinite(y) {
		if x >= 0 {
			if y > 0 {
				if x >= 1 {
					return math.Inf(1)
				}
				return 0
			}
			if x < 1 {
				return math.Inf(1)
			}
			return 0
		}
	}
	return math.NaN()
}

// PowDI raises x to an integer power by repeated squaring.
func PowDI(x float64, n int) float64 {
	if math.IsNaN(x) {
		return x
	}
	xn := 1.0
	if n == 0 {
		return xn
	}
	if !isFinite(x) {
		return PowDouble(x, float64(n))
	}
	neg := n < 0
	if neg {
		n = -n
	}
	for {
		if n&1 != 0 {
			xn *= x
		}
		n >>= 1
		if n == 0 {
			break
		}
		x *= x
	}
	if neg {
		xn = 1 / xn
	}
	return xn
}

// PowExponent returns x^n specialised for a fixed integral exponent, for use
// when the exponent is the same across a whole vector. Small exponents are
// unrolled; the results are bit-identical to PowDouble(x, float64(n)).
func PowExponent(n int) func(x float64) float64 {
	general := func(x float64) float64 { return PowDouble(x, float64(n)) }
	if n < 0 || n > 4 {
		return general
	}
	switch n {
	case 0:
		return func(float64) float64 { return 1 }
	case 1:
		return func(x float64) float64 {
			if !isFinite(x) {
				return general(x)
			}
			return x
		}
	case 2:
		return func(x float64) float64 {
			if !isFinite(x) || x == 0 || x == 1 {
				return general(x)
			}
			return x * x
		}
	case 3:
		return func(x float64) float64 {
			if !isFinite(x) || x == 0 || x == 1 {
				return general(x)
			}
			return x * (x * x)
		}
	}
	return func(x float64) float64 {
		if !isFinite(x) || x == 0 || x == 1 {
			return general(x)
		}
		t := x * x
		return t * t
	}
}

func CompareDouble(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
