package vector

import (
	"math"
	"strconv"
	"strings"
)

func FormatLogical(l int32) string {
	switch l {
	case NALogical:
		return "NA"
	case False:
		return "FALSE"
	}
	return "TRUE"
}

func FormatInteger(i int32) string {
	if i == NAInteger {
		return "NA"
	}
	return strconv.FormatInt(int64(i), 10)
}

// FormatDouble uses up to 15 significant digits, as character coercion does,
// and picks scientific notation when it is strictly shorter than fixed.
func FormatDouble(d float64) string {
	switch {
	case IsNADouble(d):
		return "NA"
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "Inf"
	case math.IsInf(d, -1):
		return "-Inf"
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(d, 'g', 15, 64), 64)
	fixed := strconv.FormatFloat(r, 'f', -1, 64)
	sci := strconv.FormatFloat(r, 'e', -1, 64)
	if i := strings.IndexByte(sci, 'e'); i >= 0 {
		// 1e+06 rather than 1e+6
		mant, exp := sci[:i], sci[i+1:]
		sign := exp[0]
		digits := strings.TrimLeft(exp[1:], "0")
		if len(digits) < 2 {
			digits = strings.Repeat("0", 2-len(digits)) + digits
		}
		sci = mant + "e" + string(sign) + digits
	}
	if len(sci) < len(fixed) {
		return sci
	}
	return fixed
}

func FormatComplex(c complex128) string {
	if IsNAComplex(c) {
		return "NA"
	}
	re, im := real(c), imag(c)
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}
	return FormatDouble(re) + sign + FormatDouble(im) + "i"
}
