package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coercion reports the lossy events of a Coerce call so the caller can turn
// them into warnings.
type Coercion struct {
	NAIntroduced       bool // unparsable strings
	OutOfIntRange      bool // doubles outside the 32-bit range
	ImaginaryDiscarded bool
}

// Coerce converts an atomic vector to another atomic kind. When the kind
// already matches, v itself is returned. The result keeps v's attributes and
// is a fresh temporary.
func Coerce(v *Vector, kind Kind) (*Vector, Coercion) {
	var info Coercion
	if v.kind == kind {
		return v, info
	}
	if !v.kind.IsAtomic() || !kind.IsAtomic() {
		panic(fmt.Sprintf("vector: cannot coerce %s to %s", v.kind, kind))
	}
	n := v.Len()
	out := Alloc(kind, n)
	for i := 0; i < n; i++ {
		switch kind {
		case KindLogical:
			out.ints[i] = v.logicalAt(i)
		case KindInteger:
			out.ints[i] = v.integerAt(i, &info)
		case KindDouble:
			out.doubles[i] = v.doubleAt(i, &info)
		case KindComplex:
			out.complexes[i] = v.complexAt(i, &info)
		case KindCharacter:
			out.strs[i] = v.stringAt(i)
		case KindRaw:
			out.raws[i] = v.rawAt(i)
		}
		if out.IsNAAt(i) {
			out.complete = false
		}
	}
	out.attrs = v.attrs.Copy()
	return out, info
}

// AsCharacter is Coerce to character without the lossiness report.
func AsCharacter(v *Vector) *Vector {
	out, _ := Coerce(v, KindCharacter)
	return out
}

func (v *Vector) logicalAt(i int) int32 {
	switch v.kind {
	case KindLogical:
		return v.ints[i]
	case KindInteger:
		if v.ints[i] == NAInteger {
			return NALogical
		}
		return LogicalOf(v.ints[i] != 0)
	case KindDouble:
		d := v.doubles[i]
		if math.IsNaN(d) {
			return NALogical
		}
		return LogicalOf(d != 0)
	case KindComplex:
		c := v.complexes[i]
		if IsNaNComplex(c) {
			return NALogical
		}
		return LogicalOf(c != 0)
	case KindCharacter:
		return parseLogical(v.strs[i])
	case KindRaw:
		return LogicalOf(v.raws[i] != 0)
	}
	return NALogical
}

func (v *Vector) integerAt(i int, info *Coercion) int32 {
	switch v.kind {
	case KindLogical, KindInteger:
		return v.ints[i]
	case KindDouble:
		return DoubleToInt(v.doubles[i], info)
	case KindComplex:
		c := v.complexes[i]
		if imag(c) != 0 && !math.IsNaN(imag(c)) {
			info.ImaginaryDiscarded = true
		}
		return DoubleToInt(real(c), info)
	case KindCharacter:
		s := v.strs[i]
		if IsNAString(s) {
			return NAInteger
		}
		d, ok := parseDouble(s)
		if !ok {
			info.NAIntroduced = true
			return NAInteger
		}
		return DoubleToInt(d, info)
	case KindRaw:
		return int32(v.raws[i])
	}
	return NAInteger
}

func (v *Vector) doubleAt(i int, info *Coercion) float64 {
	switch v.kind {
	case KindLogical, KindInteger:
		if v.ints[i] == NAInteger {
			return NADouble
		}
		return float64(v.ints[i])
	case KindDouble:
		return v.doubles[i]
	case KindComplex:
		c := v.complexes[i]
		if IsNAComplex(c) {
			return NADouble
		}
		if imag(c) != 0 && !math.IsNaN(imag(c)) {
			info.ImaginaryDiscarded = true
		}
		return real(c)
	case KindCharacter:
		s := v.strs[i]
		if IsNAString(s) {
			return NADouble
		}
		d, ok := parseDouble(s)
		if !ok {
			info.NAIntroduced = true
			return NADouble
		}
		return d
	case KindRaw:
		return float64(v.raws[i])
	}
	return NADouble
}

func (v *Vector) complexAt(i int, info *Coercion) complex128 {
	switch v.kind {
	case KindComplex:
		return v.complexes[i]
	case KindCharacter:
		s := v.strs[i]
		if IsNAString(s) {
			return NAComplex
		}
		c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
		if err != nil {
			info.NAIntroduced = true
			return NAComplex
		}
		return c
	}
	d := v.doubleAt(i, info)
	if IsNADouble(d) {
		return NAComplex
	}
	return complex(d, 0)
}

func (v *Vector) stringAt(i int) string {
	if v.kind == KindCharacter {
		return v.strs[i]
	}
	if v.kind == KindRaw {
		return fmt.Sprintf("%02x", v.raws[i])
	}
	if v.IsNAAt(i) {
		return NAString
	}
	switch v.kind {
	case KindLogical:
		return FormatLogical(v.ints[i])
	case KindInteger:
		return FormatInteger(v.ints[i])
	case KindDouble:
		return FormatDouble(v.doubles[i])
	case KindComplex:
		return FormatComplex(v.complexes[i])
	}
	return NAString
}

func (v *Vector) rawAt(i int) byte {
	var info Coercion
	x := v.integerAt(i, &info)
	if x == NAInteger || x < 0 || x > 255 {
		return 0
	}
	return byte(x)
}

// DoubleToInt truncates toward zero. NaN and values outside the 32-bit range
// become NA; the latter is flagged in info.
func DoubleToInt(d float64, info *Coercion) int32 {
	if math.IsNaN(d) {
		return NAInteger
	}
	if d >= math.MaxInt32+1.0 || d <= math.MinInt32 {
		if info != nil {
			info.OutOfIntRange = true
		}
		return NAInteger
	}
	return int32(d)
}

func parseLogical(s string) int32 {
	switch s {
	case "TRUE", "true", "T", "True":
		return True
	case "FALSE", "false", "F", "False":
		return False
	}
	return NALogical
}

func parseDouble(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "Inf", "inf":
		return math.Inf(1), true
	case "-Inf", "-inf":
		return math.Inf(-1), true
	case "NaN":
		return math.NaN(), true
	case "NA":
		return NADouble, true
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			if n, err := strconv.ParseInt(s[2:], 16, 64); err == nil {
				return float64(n), true
			}
		}
		return 0, false
	}
	return d, true
}
