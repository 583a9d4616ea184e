package printer

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/funvibe/funvec/internal/vector"
)

func TestFormat(t *testing.T) {
	named := vector.Integers(1, 20)
	named.SetNames(vector.Characters("a", "bb"))
	m := vector.Seq(1, 4)
	m.SetDims([]int{2, 2})
	list := vector.List(vector.Integers(1), vector.Characters("x"))
	list.SetNames(vector.Characters("a", ""))

	tests := []struct {
		name string
		v    vector.Value
		want string
	}{
		{"integers", vector.Seq(1, 3), "[1] 1 2 3\n"},
		{"doubles share decimals", vector.Doubles(1, 2.5, vector.NADouble), "[1] 1.0 2.5  NA\n"},
		{"strings left aligned", vector.Characters("a", "bbb", vector.NAString), "[1] \"a\"   \"bbb\" NA\n"},
		{"named", named, " a bb\n 1 20\n"},
		{"empty double", vector.Doubles(), "numeric(0)\n"},
		{"empty integer", vector.Integers(), "integer(0)\n"},
		{"null", vector.Null, "NULL\n"},
		{"logical", vector.NewLogical([]int32{vector.True, vector.NALogical}), "[1] TRUE   NA\n"},
		{"matrix", m, "     [,1] [,2]\n[1,]    1    3\n[2,]    2    4\n"},
		{"list", list, "$a\n[1] 1\n\n[[2]]\n[1] \"x\"\n\n"},
		{"factor", vector.NewFactor([]int32{1, 2, 1}, []string{"lo", "hi"}), "[1] lo hi lo\nLevels: lo hi\n"},
		{"frame", vector.NewFrame([]string{"a", "b"}, []*vector.Vector{vector.Seq(1, 2), vector.Characters("x", vector.NAString)}),
			"  a    b\n1 1    x\n2 2 <NA>\n"},
		{"empty list", vector.List(), "list()\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(80, 0).Format(tt.v); got != tt.want {
				t.Errorf("got\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestWrapping(t *testing.T) {
	got := New(20, 0).Format(vector.Seq(1, 12))
	want := " [1]  1  2  3  4  5\n [6]  6  7  8  9 10\n[11] 11 12\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestMaxPrint(t *testing.T) {
	got := New(80, 2).Format(vector.Seq(1, 5))
	if !strings.HasPrefix(got, "[1] 1 2\n") || !strings.Contains(got, "omitted 3 entries") {
		t.Errorf("got %q", got)
	}
}

func TestFormatDoubles(t *testing.T) {
	tests := []struct {
		in   []float64
		want []string
	}{
		{[]float64{1, 1.0 / 3}, []string{"1.0000000", "0.3333333"}},
		{[]float64{1e-10, 1}, []string{"1e-10", "1"}},
		{[]float64{math.Inf(-1), 2, math.NaN()}, []string{"-Inf", "2", "NaN"}},
		{[]float64{1e6}, []string{"1000000"}},
	}
	for _, tt := range tests {
		if got := formatDoubles(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("formatDoubles(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorLabels(t *testing.T) {
	p := New(80, 0)
	p.SetColor(true)
	if got := p.Format(vector.Seq(1, 2)); !strings.Contains(got, labelColor+"[1]"+resetColor) {
		t.Errorf("got %q", got)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, vector.Seq(1, 2), 0, true); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Error("no colour when the writer is not a terminal")
	}
	if Width(&buf) != DefaultWidth {
		t.Error("non-terminal width")
	}
}

func decode(t *testing.T, v vector.Value) map[string]any {
	t.Helper()
	data, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("%v: %s", err, data)
	}
	return out
}

func TestMarshalJSON(t *testing.T) {
	x := vector.Doubles(1.5, vector.NADouble, math.NaN(), math.Inf(1))
	x.SetNames(vector.Characters("a", "b", "c", "d"))
	got := decode(t, x)
	if got["kind"] != "double" {
		t.Errorf("kind = %v", got["kind"])
	}
	if want := []any{1.5, nil, "NaN", "Inf"}; !reflect.DeepEqual(got["values"], want) {
		t.Errorf("values = %v, want %v", got["values"], want)
	}
	if want := []any{"a", "b", "c", "d"}; !reflect.DeepEqual(got["names"], want) {
		t.Errorf("names = %v", got["names"])
	}

	m := vector.NewLogical([]int32{vector.True, vector.False})
	m.SetDims([]int{1, 2})
	got = decode(t, m)
	if want := []any{true, false}; !reflect.DeepEqual(got["values"], want) {
		t.Errorf("logical values = %v", got["values"])
	}
	if want := []any{1.0, 2.0}; !reflect.DeepEqual(got["dim"], want) {
		t.Errorf("dim = %v", got["dim"])
	}

	f := vector.NewFrame([]string{"id", "z"}, []*vector.Vector{vector.Seq(1, 2), vector.Complexes(1+2i, 3)})
	got = decode(t, f)
	if got["kind"] != "data.frame" || got["rows"] != 2.0 {
		t.Errorf("frame header = %v", got)
	}
	cols := got["columns"].([]any)
	z := cols[1].(map[string]any)
	if want := []any{"1+2i", "3+0i"}; !reflect.DeepEqual(z["values"], want) {
		t.Errorf("complex column = %v", z["values"])
	}
}

func TestToStructNull(t *testing.T) {
	sv, err := ToStruct(vector.Null)
	if err != nil {
		t.Fatal(err)
	}
	if sv.GetNullValue() != 0 || sv.GetKind() == nil {
		t.Errorf("NULL = %v", sv)
	}
}
