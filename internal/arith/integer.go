package arith

import (
	"math"

	"github.com/funvibe/funvec/internal/vector"
)

const na = vector.NAInteger

// AddInt adds with signed 32-bit overflow detection. Overflow, including a
// result equal to the NA bit pattern, yields NA.
func AddInt(a, b int32) int32 {
	r := a + b
	if (a^r)&(b^r) < 0 || r == na {
		return na
	}
	return r
}

func SubInt(a, b int32) int32 {
	r := a - b
	if (a^b)&(a^r) < 0 || r == na {
		return na
	}
	return r
}

func MulInt(a, b int32) int32 {
	r := int64(a) * int64(b)
	if r > math.MaxInt32 || r <= math.MinInt32 {
		return na
	}
	return int32(r)
}

// IntDivInt is floored division; division by zero is NA.
func IntDivInt(a, b int32) int32 {
	if b == 0 {
		return na
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ModInt returns a remainder with the sign of the divisor; modulo by zero
// is NA.
func ModInt(a, b int32) int32 {
	if b == 0 {
		return na
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func MinInt(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DivInt is true division of integers.
func DivInt(a, b int32) float64 {
	return float64(a) / float64(b)
}

// PowInt raises integers to a double result. It sees NA inputs itself:
// 1^NA and NA^0 are both 1.
func PowInt(a, b int32) float64 {
	if a == 1 || b == 0 {
		return 1
	}
	if a == na || b == na {
		return vector.NADouble
	}
	return PowDouble(float64(a), float64(b))
}

func CompareInt(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
