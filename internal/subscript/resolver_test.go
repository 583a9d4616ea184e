package subscript

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

func subset() *Resolver  { return &Resolver{NumDims: 1, Subset: true} }
func element() *Resolver { return &Resolver{NumDims: 1} }
func assign() *Resolver  { return &Resolver{NumDims: 1, Subset: true, Assign: true} }

func ints(t *testing.T, v vector.Value) []int32 {
	t.Helper()
	vec, ok := v.(*vector.Vector)
	if !ok || vec.Kind() != vector.KindInteger {
		t.Fatalf("result %v is not an integer vector", v)
	}
	return vec.Ints()
}

func namedVector(names ...string) *vector.Vector {
	v := vector.Seq(1, len(names))
	v.SetNames(vector.Characters(names...))
	return v
}

func matrix(rows, cols int) *vector.Vector {
	m := vector.Seq(1, rows*cols)
	m.SetDims([]int{rows, cols})
	return m
}

const na = vector.NAInteger

func TestIntegerScalar(t *testing.T) {
	x := vector.Seq(1, 5)
	tests := []struct {
		name    string
		r       *Resolver
		operand vector.Value
		want    []int32
		err     condition.Kind
	}{
		{"in range", subset(), vector.Integers(3), []int32{3}, 0},
		{"zero subset", subset(), vector.Integers(0), []int32{0}, 0},
		{"zero element", element(), vector.Integers(0), nil, condition.SelectLessThanOne},
		{"beyond subset read", subset(), vector.Integers(9), []int32{na}, 0},
		{"beyond assignment", assign(), vector.Integers(9), []int32{9}, 0},
		{"beyond element read", element(), vector.Integers(9), nil, condition.SubscriptOutOfBounds},
		{"NA subset", subset(), vector.Integers(na), []int32{na}, 0},
		{"NA element", element(), vector.Integers(na), nil, condition.SubscriptOutOfBounds},
		{"negative", subset(), vector.Integers(-2), []int32{1, 3, 4, 5}, 0},
		{"negative element", element(), vector.Integers(-2), []int32{1, 3, 4, 5}, 0},
		{"negative beyond element", element(), vector.Integers(-9), []int32{-9}, 0},
		{"double truncates", subset(), vector.Doubles(2.9), []int32{2}, 0},
		{"double NaN", subset(), vector.Doubles(math.NaN()), []int32{na}, 0},
		{"negative double within", subset(), vector.Doubles(-3.1), []int32{1, 2, 4, 5}, 0},
		{"raw", subset(), vector.Raws(2), []int32{2}, 0},
		{"complex", subset(), vector.Complexes(4), []int32{4}, 0},
		{"logical true", subset(), vector.Logicals(true), []int32{1, 2, 3, 4, 5}, 0},
		{"logical false", subset(), vector.Logicals(false), []int32{0}, 0},
		{"logical true element", element(), vector.Logicals(true), []int32{1}, 0},
		{"logical false element", element(), vector.Logicals(false), nil, condition.SelectLessThanOne},
		{"logical NA read", subset(), vector.NewLogical([]int32{na}), []int32{na, na, na, na, na}, 0},
		{"logical NA assign", assign(), vector.NewLogical([]int32{na}), []int32{na}, 0},
		{"null subset", subset(), vector.Null, []int32{0}, 0},
		{"null element", element(), vector.Null, nil, condition.SelectLessThanOne},
		{"empty subset", subset(), vector.Integers(), []int32{0}, 0},
		{"empty element", element(), vector.Doubles(), nil, condition.SelectLessThanOne},
		{"complex pair subset", subset(), vector.Complexes(1, 2), nil, condition.InvalidSubscriptType},
		{"raw pair element", element(), vector.Raws(1, 2), nil, condition.SelectMoreThanOne},
		{"factor codes", subset(), vector.NewFactor([]int32{2}, []string{"a", "b"}), []int32{2}, 0},
	}
	for _, tt := range tests {
		got, err := tt.r.Resolve(x, tt.operand)
		if tt.err != 0 {
			if !condition.Is(err, tt.err) {
				t.Errorf("%s: err = %v, want %s", tt.name, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if g := ints(t, got); !reflect.DeepEqual(g, tt.want) {
			t.Errorf("%s: positions = %v, want %v", tt.name, g, tt.want)
		}
	}
}

func TestNegativeScalarEdges(t *testing.T) {
	one := vector.Integers(7)
	got, err := subset().Resolve(one, vector.Integers(-1))
	if err != nil || !reflect.DeepEqual(ints(t, got), []int32{0}) {
		t.Errorf("x[-1] on length 1 = %v, %v; want [0]", got, err)
	}
	got, _ = subset().Resolve(one, vector.Integers(-3))
	if !reflect.DeepEqual(ints(t, got), []int32{1}) {
		t.Errorf("x[-3] on length 1 = %v; want [1]", got)
	}
	got, _ = subset().Resolve(vector.Seq(1, 3), vector.Integers(-5))
	if !vector.IsMissing(got) {
		t.Errorf("x[-5] on length 3 = %v; want missing", got)
	}
}

func TestNegativeDoubleQuirk(t *testing.T) {
	x := vector.Seq(1, 3)
	r := element()
	r.Assign = true
	// magnitude beyond the length: -3.5 - 1 truncates to -4
	got, err := r.Resolve(x, vector.Doubles(-3.5))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ints(t, got), []int32{-4}) {
		t.Errorf("positions = %v, want [-4]", ints(t, got))
	}
	got, _ = r.Resolve(x, vector.Doubles(-2.5))
	if !reflect.DeepEqual(ints(t, got), []int32{1, 3}) {
		t.Errorf("positions = %v, want [1 3]", ints(t, got))
	}
}

func TestDoubleOutOfIntRange(t *testing.T) {
	w := &condition.Collector{}
	r := subset()
	r.Warner = w
	got, err := r.Resolve(vector.Seq(1, 3), vector.Doubles(1e12))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ints(t, got), []int32{na}) {
		t.Errorf("positions = %v", ints(t, got))
	}
	if !w.Has(condition.NAsIntroduced) {
		t.Error("expected NAs introduced warning")
	}
}

func TestMissing(t *testing.T) {
	x := vector.Seq(1, 3)
	got, err := subset().Resolve(x, vector.Missing)
	if err != nil || !vector.IsMissing(got) {
		t.Errorf("x[] = %v, %v", got, err)
	}
	got, _ = subset().Resolve(vector.Integers(1), vector.Missing)
	if !reflect.DeepEqual(ints(t, got), []int32{1}) {
		t.Errorf("x[] on extent 1 = %v", got)
	}
	_, err = element().Resolve(x, vector.Missing)
	var c *condition.Condition
	if !errors.As(err, &c) || c.Kind != condition.InvalidSubscriptType || c.TypeName != "symbol" {
		t.Errorf("x[[]] err = %v", err)
	}
	r := element()
	r.Assign = true
	if _, err := r.Resolve(x, vector.Missing); !condition.Is(err, condition.MissingSubscript) {
		t.Errorf("x[[]] <- err = %v", err)
	}
}

func TestPassThrough(t *testing.T) {
	x := vector.Seq(1, 3)
	for _, op := range []vector.Value{
		vector.List(vector.Integers(1)),
		&vector.Function{Name: "f"},
		&vector.Environment{Name: "e"},
	} {
		got, err := element().Resolve(x, op)
		if err != nil || got != op {
			t.Errorf("%s: got %v, %v", op.Kind(), got, err)
		}
	}
}

func TestPromiseForced(t *testing.T) {
	forced := 0
	p := vector.NewPromise("i", func() (vector.Value, error) {
		forced++
		return vector.Characters("b"), nil
	})
	got, err := subset().Resolve(namedVector("a", "b"), p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ints(t, got), []int32{2}) || forced != 1 {
		t.Errorf("positions = %v, forced %d times", got, forced)
	}
}

func TestLocationAttached(t *testing.T) {
	r := element()
	r.Location = condition.Location{Line: 3, Column: 7}
	_, err := r.Resolve(vector.Seq(1, 2), vector.Integers(5))
	var c *condition.Condition
	if !errors.As(err, &c) || c.Location != r.Location {
		t.Errorf("err = %v, want location 3:7", err)
	}
}

func TestResolveAll(t *testing.T) {
	m := matrix(2, 3)
	r := &Resolver{Subset: true}
	got, err := r.ResolveAll(m, []vector.Value{vector.Integers(2), vector.Missing})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ints(t, got[0]), []int32{2}) || !vector.IsMissing(got[1]) {
		t.Errorf("m[2, ] = %v", got)
	}
	if _, err := r.ResolveAll(m, []vector.Value{vector.Integers(1), vector.Integers(4)}); !condition.Is(err, condition.SubscriptOutOfBounds) {
		t.Errorf("m[1, 4] err = %v", err)
	}
	if _, err := r.ResolveAll(vector.Seq(1, 3), []vector.Value{vector.Integers(1), vector.Integers(1)}); !condition.Is(err, condition.IncorrectSubscriptCount) {
		t.Errorf("x[1, 1] err = %v", err)
	}
	got, err = r.ResolveAll(m, []vector.Value{vector.Integers(6)})
	if err != nil || !reflect.DeepEqual(ints(t, got[0]), []int32{6}) {
		t.Errorf("m[6] = %v, %v", got, err)
	}
}

func TestFrameDimensions(t *testing.T) {
	f := vector.NewFrame([]string{"a", "b"}, []*vector.Vector{vector.Seq(1, 4), vector.Seq(5, 8)})
	r := &Resolver{Subset: true}
	got, err := r.ResolveAll(f, []vector.Value{vector.Integers(-1), vector.Characters("b")})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ints(t, got[0]), []int32{2, 3, 4}) {
		t.Errorf("rows = %v", ints(t, got[0]))
	}
	if !reflect.DeepEqual(ints(t, got[1]), []int32{2}) {
		t.Errorf("cols = %v", ints(t, got[1]))
	}
	got, err = r.ResolveAll(f, []vector.Value{vector.Characters("3"), vector.Missing})
	if err != nil || !reflect.DeepEqual(ints(t, got[0]), []int32{3}) {
		t.Errorf("row name lookup = %v, %v", got, err)
	}
}
