package arith

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/funvibe/funvec/internal/vector"
)

func TestDivComplexNearOverflow(t *testing.T) {
	z := complex(1e300, 1e300)
	if got := DivComplex(z, z); got != 1 {
		t.Errorf("(1e300+1e300i)/(1e300+1e300i) = %v, want (1+0i)", got)
	}
	got := DivComplex(complex(1e307, 1e307), complex(1e307, -1e307))
	if cmplx.IsInf(got) || cmplx.IsNaN(got) {
		t.Errorf("scaled division overflowed: %v", got)
	}
	if math.Abs(real(got)) > 1e-12 || math.Abs(imag(got)-1) > 1e-12 {
		t.Errorf("(1e307+1e307i)/(1e307-1e307i) = %v, want 1i", got)
	}
}

func TestDivComplexRecovery(t *testing.T) {
	tests := []struct {
		name string
		x, y complex128
		check func(complex128) bool
	}{
		{"nonzero by zero", complex(1, 1), 0, func(c complex128) bool {
			return math.IsInf(real(c), 1) && math.IsInf(imag(c), 1)
		}},
		{"infinite by finite", complex(math.Inf(1), 0), complex(2, 1), func(c complex128) bool {
			return cmplx.IsInf(c)
		}},
		{"finite by infinite", complex(2, 1), complex(math.Inf(1), math.Inf(1)), func(c complex128) bool {
			return real(c) == 0 && imag(c) == 0
		}},
		{"plain", complex(4, 2), complex(0, 2), func(c complex128) bool {
			return c == complex(1, -2)
		}},
	}
	for _, tt := range tests {
		if got := DivComplex(tt.x, tt.y); !tt.check(got) {
			t.Errorf("%s: DivComplex(%v, %v) = %v", tt.name, tt.x, tt.y, got)
		}
	}
}

func TestPowComplex(t *testing.T) {
	nanC := complex(math.NaN(), math.NaN())
	if got := PowComplex(nanC, 0); got != 1 {
		t.Errorf("NaN^0 = %v, want 1", got)
	}
	if got := PowComplex(vector.NAComplex, 0); got != 1 {
		t.Errorf("NA^0 = %v, want 1", got)
	}
	if got := PowComplex(vector.NAComplex, 2); !vector.IsNAComplex(got) {
		t.Errorf("NA^2 = %v, want NA", got)
	}
	if got := PowComplex(1i, 2); got != -1 {
		t.Errorf("i^2 = %v, want -1", got)
	}
	if got := PowComplex(1i, 1); got != 1i {
		t.Errorf("i^1 = %v", got)
	}
	if got := PowComplex(2, -1); got != 0.5 {
		t.Errorf("2^-1 = %v", got)
	}
	if got := PowComplex(1i, 4); got != 1 {
		t.Errorf("i^4 = %v", got)
	}
	if got := PowComplex(0, -1); !math.IsInf(real(got), 1) {
		t.Errorf("0^-1 = %v, want Inf", got)
	}
	got := PowComplex(-1, 0.5)
	if math.Abs(real(got)) > 1e-15 || math.Abs(imag(got)-1) > 1e-15 {
		t.Errorf("(-1)^0.5 = %v, want 1i", got)
	}
}
