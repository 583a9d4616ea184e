package arith

import (
	"math"
	"math/cmplx"

	"github.com/funvibe/funvec/internal/vector"
)

// maxCPowN bounds the integer exponent handled by repeated multiplication.
const maxCPowN = 65536

func AddComplex(a, b complex128) complex128 { return a + b }
func SubComplex(a, b complex128) complex128 { return a - b }

func MulComplex(a, b complex128) complex128 {
	ar, ai, br, bi := real(a), imag(a), real(b), imag(b)
	return complex(ar*br-ai*bi, ar*bi+ai*br)
}

// DivComplex divides by scaling with the larger component of the divisor
// first, so that no intermediate overflows when the true quotient is
// representable. When the scaled result is NaN in both parts the infinite
// and zero cases are recovered as libgcc's __divdc3 does.
func DivComplex(x, y complex128) complex128 {
	a, b := real(x), imag(x)
	c, d := real(y), imag(y)
	var denom, re, im float64
	if math.Abs(c) < math.Abs(d) {
		ratio := c / d
		denom = c*ratio + d
		re = (a*ratio + b) / denom
		im = (b*ratio - a) / denom
	} else {
		ratio := d / c
		denom = d*ratio + c
		re = (b*ratio + a) / denom
		im = (b - a*ratio) / denom
	}

	if math.IsNaN(re) && math.IsNaN(im) {
		switch {
		case c == 0 && d == 0 && (!math.IsNaN(a) || !math.IsNaN(b)):
			inf := math.Copysign(math.Inf(1), c)
			re = inf * a
			im = inf * b
		case (math.IsInf(a, 0) || math.IsInf(b, 0)) && isFinite(c) && isFinite(d):
			a = math.Copysign(unitIfInf(a), a)
			b = math.Copysign(unitIfInf(b), b)
			re = math.Inf(1) * (a*c + b*d)
			im = math.Inf(1) * (b*c - a*d)
		case (math.IsInf(c, 0) || math.IsInf(d, 0)) && isFinite(a) && isFinite(b):
			c = math.Copysign(unitIfInf(c), c)
			d = math.Copysign(unitIfInf(d), d)
			re = 0 * (a*c + b*d)
			im = 0 * (b*c - a*d)
		}
	}
	return complex(re, im)
}

func unitIfInf(x float64) float64 {
	if math.IsInf(x, 0) {
		return 1
	}
	return 0
}

// PowComplex is z^w. w == 0 gives 1 whatever z holds, NaN and NA parts
// included. Other NA operands give NA. Real integral exponents up to 65536 in
// magnitude use repeated multiplication (1 and 2 directly, negatives through
// the reciprocal); everything else is exp(w*log(z)).
func PowComplex(z, w complex128) complex128 {
	if w == 0 {
		return 1
	}
	if vector.IsNAComplex(z) || vector.IsNAComplex(w) {
		return vector.NAComplex
	}
	wr, wi := real(w), imag(w)
	if z == 0 {
		if wi == 0 {
			return complex(PowDouble(0, wr), 0)
		}
		return complex(math.NaN(), math.NaN())
	}
	if wi == 0 && wr == math.Trunc(wr) && math.Abs(wr) <= maxCPowN {
		k := int(wr)
		switch {
		case k == 1:
			return z
		case k == 2:
			return MulComplex(z, z)
		case k < 0:
			return DivComplex(1, cpowN(z, -k))
		}
		return cpowN(z, k)
	}
	return cpowGeneral(z, w)
}

// cpowN computes z^k for k > 0 by square-and-multiply.
func cpowN(z complex128, k int) complex128 {
	result := complex128(1)
	for k > 0 {
		if k&1 != 0 {
			result = MulComplex(result, z)
		}
		if k == 1 {
			break
		}
		k >>= 1
		z = MulComplex(z, z)
	}
	return result
}

// cpowGeneral is the C99 cpow definition cexp(w * clog(z)); cmplx.Exp and
// cmplx.Log carry the Annex G special cases for infinities and NaN.
func cpowGeneral(z, w complex128) complex128 {
	return cmplx.Exp(MulComplex(w, cmplx.Log(z)))
}
