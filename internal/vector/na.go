package vector

import "math"

// Logical values are stored as int32 so that the NA sentinel fits.
const (
	False     int32 = 0
	True      int32 = 1
	NALogical int32 = math.MinInt32
	NAInteger int32 = math.MinInt32
)

// NAString is the character NA. Character NA is compared by value, so the
// sentinel uses a code point that never appears in text.
const NAString = "\uffffNA"

// naDoubleBits is a NaN whose low word carries 1954.
const naDoubleBits = 0x7FF00000000007A2

// NADouble is the double NA: a NaN distinguishable from ordinary NaN.
var NADouble = math.Float64frombits(naDoubleBits)

// NAComplex has NA in both parts.
var NAComplex = complex(NADouble, NADouble)

// IsNADouble reports whether d is the NA payload NaN, not any NaN.
func IsNADouble(d float64) bool {
	return math.IsNaN(d) && uint32(math.Float64bits(d)) == 1954
}

// IsNAOrNaN reports whether d is NA or any other NaN.
func IsNAOrNaN(d float64) bool {
	return math.IsNaN(d)
}

func IsNAInteger(i int32) bool { return i == NAInteger }

func IsNALogical(l int32) bool { return l == NALogical }

func IsNAString(s string) bool { return s == NAString }

// IsNAComplex reports whether either part of c is NA.
func IsNAComplex(c complex128) bool {
	return IsNADouble(real(c)) || IsNADouble(imag(c))
}

// IsNaNComplex reports whether either part of c is a NaN (NA included).
func IsNaNComplex(c complex128) bool {
	return math.IsNaN(real(c)) || math.IsNaN(imag(c))
}

// LogicalOf converts a Go bool.
func LogicalOf(b bool) int32 {
	if b {
		return True
	}
	return False
}
