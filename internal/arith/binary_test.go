package arith

import (
	"testing"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

func TestBinaryKinds(t *testing.T) {
	tests := []struct {
		op          Op
		left, right vector.Kind
		arg, result vector.Kind
		err         condition.Kind
	}{
		{Add, vector.KindInteger, vector.KindInteger, vector.KindInteger, vector.KindInteger, 0},
		{Add, vector.KindLogical, vector.KindLogical, vector.KindLogical, vector.KindInteger, 0},
		{Add, vector.KindInteger, vector.KindDouble, vector.KindDouble, vector.KindDouble, 0},
		{Div, vector.KindInteger, vector.KindInteger, vector.KindInteger, vector.KindDouble, 0},
		{Pow, vector.KindInteger, vector.KindInteger, vector.KindInteger, vector.KindDouble, 0},
		{Mul, vector.KindComplex, vector.KindDouble, vector.KindComplex, vector.KindComplex, 0},
		{Mod, vector.KindComplex, vector.KindDouble, 0, 0, condition.NonNumericArgument},
		{Add, vector.KindCharacter, vector.KindDouble, 0, 0, condition.NonNumericArgument},
		{Add, vector.KindRaw, vector.KindRaw, 0, 0, condition.NonNumericArgument},
		{Lt, vector.KindCharacter, vector.KindDouble, vector.KindCharacter, vector.KindLogical, 0},
		{Eq, vector.KindComplex, vector.KindComplex, vector.KindComplex, vector.KindLogical, 0},
		{Lt, vector.KindComplex, vector.KindDouble, 0, 0, condition.InvalidComparison},
		{Eq, vector.KindRaw, vector.KindLogical, vector.KindInteger, vector.KindLogical, 0},
		{Eq, vector.KindList, vector.KindDouble, 0, 0, condition.InvalidComparison},
		{And, vector.KindRaw, vector.KindRaw, vector.KindRaw, vector.KindRaw, 0},
		{And, vector.KindDouble, vector.KindInteger, vector.KindLogical, vector.KindLogical, 0},
		{Or, vector.KindCharacter, vector.KindLogical, 0, 0, condition.NonNumericArgument},
		{Max, vector.KindCharacter, vector.KindDouble, vector.KindCharacter, vector.KindCharacter, 0},
		{Min, vector.KindComplex, vector.KindDouble, 0, 0, condition.NonNumericArgument},
	}
	for _, tt := range tests {
		k := Lookup(tt.op)
		arg, result, err := k.Kinds(tt.left, tt.right)
		if tt.err != 0 {
			if !condition.Is(err, tt.err) {
				t.Errorf("%s on %s,%s: err = %v, want %s", k.Symbol, tt.left, tt.right, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s on %s,%s: unexpected error %v", k.Symbol, tt.left, tt.right, err)
			continue
		}
		if arg != tt.arg || result != tt.result {
			t.Errorf("%s on %s,%s = (%s, %s), want (%s, %s)", k.Symbol, tt.left, tt.right, arg, result, tt.arg, tt.result)
		}
	}
}

func TestLookupPanicsOutOfRange(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !condition.Is(r.(error), condition.InternalInvariantViolation) {
			t.Errorf("panic = %v, want internal invariant violation", r)
		}
	}()
	Lookup(numOps)
}

func TestBySymbol(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "%/%", "%%", "^", "==", "!=", "<", "<=", ">", ">=", "&", "|", "pmin", "pmax"} {
		k, ok := BySymbol(sym)
		if !ok || k.Symbol != sym {
			t.Errorf("BySymbol(%q) = %v, %v", sym, k, ok)
		}
	}
	if _, ok := BySymbol("**"); ok {
		t.Error("BySymbol(**) should fail")
	}
}

func TestMayIntroduceNA(t *testing.T) {
	if !Lookup(Add).MayIntroduceNA(vector.KindInteger) {
		t.Error("integer add can overflow")
	}
	if Lookup(Add).MayIntroduceNA(vector.KindDouble) {
		t.Error("double add never yields NA")
	}
	if Lookup(Div).MayIntroduceNA(vector.KindInteger) {
		t.Error("integer division yields double")
	}
	if !Lookup(Lt).MayIntroduceNA(vector.KindDouble) {
		t.Error("NaN comparison yields NA")
	}
	if Lookup(Eq).MayIntroduceNA(vector.KindCharacter) {
		t.Error("string comparison is total")
	}
}

func TestThreeValuedLogic(t *testing.T) {
	T, F, N := vector.True, vector.False, vector.NALogical
	tests := []struct {
		a, b    int32
		and, or int32
	}{
		{T, T, T, T},
		{T, F, F, T},
		{F, F, F, F},
		{T, N, N, T},
		{F, N, F, N},
		{N, N, N, N},
	}
	for _, tt := range tests {
		if got := AndLogical(tt.a, tt.b); got != tt.and {
			t.Errorf("%d & %d = %d, want %d", tt.a, tt.b, got, tt.and)
		}
		if got := AndLogical(tt.b, tt.a); got != tt.and {
			t.Errorf("%d & %d = %d, want %d", tt.b, tt.a, got, tt.and)
		}
		if got := OrLogical(tt.a, tt.b); got != tt.or {
			t.Errorf("%d | %d = %d, want %d", tt.a, tt.b, got, tt.or)
		}
	}
}

func TestRequiresRightOperand(t *testing.T) {
	tests := []struct {
		op   Op
		left int32
		want bool
	}{
		{And, vector.True, true},
		{And, vector.False, false},
		{And, vector.NALogical, true},
		{Or, vector.True, false},
		{Or, vector.False, true},
		{Or, vector.NALogical, true},
	}
	for _, tt := range tests {
		if got := RequiresRightOperand(tt.op, tt.left); got != tt.want {
			t.Errorf("RequiresRightOperand(%s, %d) = %v, want %v", Lookup(tt.op).Symbol, tt.left, got, tt.want)
		}
	}
}

func TestCollator(t *testing.T) {
	c, err := NewCollator("C")
	if err != nil {
		t.Fatal(err)
	}
	if c.Compare("B", "a") >= 0 {
		t.Error("byte order puts upper case first")
	}
	en, err := NewCollator("en")
	if err != nil {
		t.Fatal(err)
	}
	if en.Compare("a", "B") >= 0 {
		t.Error("english collation ignores case at the primary level")
	}
	if en.Compare("abc", "abc") != 0 {
		t.Error("equal strings must compare equal")
	}
	if _, err := NewCollator("not a tag!"); err == nil {
		t.Error("expected error for malformed tag")
	}
}
