package nacheck

import (
	"math"
	"testing"

	"github.com/funvibe/funvec/internal/vector"
)

func TestCompleteOperandDisablesCheck(t *testing.T) {
	var c Check
	c.Enable(vector.Integers(1, 2, 3))
	if c.Enabled() {
		t.Fatal("complete vector should not enable the check")
	}
	c.Mark()
	if !c.NeverSeenNA() {
		t.Error("disabled check has never seen NA")
	}
}

func TestCheckRecordsNA(t *testing.T) {
	tests := []struct {
		name string
		v    *vector.Vector
	}{
		{"int", vector.Integers(1, vector.NAInteger)},
		{"double", vector.Doubles(1, vector.NADouble)},
		{"complex", vector.Complexes(1, vector.NAComplex)},
		{"string", vector.Characters("a", vector.NAString)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Check
			c.Enable(tt.v)
			if !c.Enabled() {
				t.Fatal("incomplete vector should enable the check")
			}
			for i := 0; i < tt.v.Len(); i++ {
				if tt.v.IsNAAt(i) {
					c.Mark()
				}
				if got, want := c.NeverSeenNA(), i == 0; got != want {
					t.Errorf("after element %d NeverSeenNA = %v, want %v", i, got, want)
				}
			}
			c.Enable(tt.v)
			if !c.NeverSeenNA() {
				t.Error("Enable resets the observation")
			}
		})
	}
}

func TestScan(t *testing.T) {
	if !Scan(vector.Integers(1, 2)) {
		t.Error("complete vector scans clean")
	}
	v := vector.Integers(1, 2)
	v.SetComplete(false)
	if !Scan(v) || !v.Complete() {
		t.Error("flag says maybe NA but no element is")
	}
	filled := vector.Alloc(vector.KindInteger, 2)
	filled.Ints()[1] = vector.NAInteger
	if Scan(filled) || filled.Complete() {
		t.Error("Scan ignores the stale flag of a filled vector")
	}
	if Scan(vector.Characters("x", vector.NAString)) {
		t.Error("NA string must be found")
	}
	if !Scan(vector.Doubles(math.NaN(), 1)) {
		t.Error("plain NaN is not NA")
	}
}
