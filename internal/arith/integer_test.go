package arith

import (
	"math"
	"testing"

	"github.com/funvibe/funvec/internal/vector"
)

func TestIntegerOverflow(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b int32) int32
		a, b int32
		want int32
	}{
		{"add", AddInt, 1, 2, 3},
		{"add max", AddInt, math.MaxInt32, 1, na},
		{"add min", AddInt, -math.MaxInt32, -1, na},
		{"add neg", AddInt, -5, 3, -2},
		{"sub", SubInt, 10, 3, 7},
		{"sub overflow", SubInt, -math.MaxInt32, 2, na},
		{"sub to NA pattern", SubInt, -math.MaxInt32, 1, na},
		{"sub max", SubInt, math.MaxInt32, -1, na},
		{"mul", MulInt, 46340, 46340, 2147395600},
		{"mul overflow", MulInt, 46341, 46341, na},
		{"mul neg overflow", MulInt, -65536, 32768, na},
		{"mul neg", MulInt, -7, 6, -42},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.a, tt.b); got != tt.want {
			t.Errorf("%s(%d, %d) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIntegerDivMod(t *testing.T) {
	tests := []struct {
		a, b        int32
		quot, modul int32
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{5, 0, na, na},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		if got := IntDivInt(tt.a, tt.b); got != tt.quot {
			t.Errorf("%d %%/%% %d = %d, want %d", tt.a, tt.b, got, tt.quot)
		}
		if got := ModInt(tt.a, tt.b); got != tt.modul {
			t.Errorf("%d %%%% %d = %d, want %d", tt.a, tt.b, got, tt.modul)
		}
	}
}

func TestPowInt(t *testing.T) {
	if got := PowInt(1, na); got != 1 {
		t.Errorf("1^NA = %v, want 1", got)
	}
	if got := PowInt(na, 0); got != 1 {
		t.Errorf("NA^0 = %v, want 1", got)
	}
	if got := PowInt(na, 2); !vector.IsNADouble(got) {
		t.Errorf("NA^2 = %v, want NA", got)
	}
	if got := PowInt(2, 10); got != 1024 {
		t.Errorf("2^10 = %v", got)
	}
	if got := PowInt(2, -1); got != 0.5 {
		t.Errorf("2^-1 = %v", got)
	}
	if got := DivInt(1, 0); !math.IsInf(got, 1) {
		t.Errorf("1L/0L = %v, want Inf", got)
	}
}
