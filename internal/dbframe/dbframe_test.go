package dbframe

import (
	"context"
	"strings"
	"testing"

	"github.com/funvibe/funvec/internal/vector"
)

func TestLoadScalarRow(t *testing.T) {
	f, err := Load(context.Background(), DriverSQLite, ":memory:",
		"SELECT 1 AS a, 2.5 AS b, 'x' AS c, NULL AS d")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		kind    vector.Kind
		inspect string
	}{
		{vector.KindInteger, "1"},
		{vector.KindDouble, "2.5"},
		{vector.KindCharacter, `"x"`},
		{vector.KindLogical, "NA"},
	}
	if dims := f.Dims(); dims[0] != 1 || dims[1] != len(want) {
		t.Fatalf("dims = %v", dims)
	}
	for i, w := range want {
		col := f.Column(i)
		if col.Kind() != w.kind || col.Inspect() != w.inspect {
			t.Errorf("column %d = %s %s, want %s %s", i, col.Kind(), col.Inspect(), w.kind, w.inspect)
		}
	}
	if f.Column(3).Complete() {
		t.Error("NULL column is not complete")
	}
}

func TestQueryTable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE t (id INTEGER, score REAL, label TEXT, big INTEGER)",
		"INSERT INTO t VALUES (1, 0.5, 'a', 1), (2, NULL, 'b', 3000000000), (3, 2, NULL, 2)",
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatal(err)
		}
	}
	f, err := Query(ctx, db, "SELECT id, score, label, big FROM t WHERE id >= ? ORDER BY id", 1)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		col     int
		kind    vector.Kind
		inspect string
	}{
		{0, vector.KindInteger, "1 2 3"},
		{1, vector.KindDouble, "0.5 NA 2"},
		{2, vector.KindCharacter, `"a" "b" NA`},
		{3, vector.KindDouble, "1 3e+09 2"},
	}
	for _, tt := range tests {
		col := f.Column(tt.col)
		if col.Kind() != tt.kind || col.Inspect() != tt.inspect {
			t.Errorf("column %d = %s %s, want %s %s", tt.col, col.Kind(), col.Inspect(), tt.kind, tt.inspect)
		}
	}
	names := f.Names().Strings()
	if strings.Join(names, ",") != "id,score,label,big" {
		t.Errorf("names = %v", names)
	}
	if !vector.IsCompactRowNames(f.RowNames()) || vector.RowCount(f.RowNames()) != 3 {
		t.Errorf("row names = %v", f.RowNames())
	}

	empty, err := Query(ctx, db, "SELECT id FROM t WHERE id > 10")
	if err != nil {
		t.Fatal(err)
	}
	if dims := empty.Dims(); dims[0] != 0 || dims[1] != 1 {
		t.Errorf("empty result dims = %v", dims)
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, "postgres", "x"); err == nil || !strings.Contains(err.Error(), "unsupported driver") {
		t.Errorf("err = %v", err)
	}
	if _, err := Open(ctx, DriverMySQL, "no slash here"); err == nil || !strings.Contains(err.Error(), "invalid mysql dsn") {
		t.Errorf("err = %v", err)
	}
	if _, err := Load(ctx, DriverSQLite, ":memory:", "SELECT * FROM missing"); err == nil {
		t.Error("expected query error")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   any
		hint string
		want any
	}{
		{[]byte("42"), "BIGINT", int64(42)},
		{[]byte("1.5"), "DECIMAL", 1.5},
		{[]byte("abc"), "VARCHAR", "abc"},
		{[]byte("x1"), "INT", "x1"},
		{int32(7), "", int64(7)},
		{nil, "TEXT", nil},
	}
	for _, tt := range tests {
		if got := normalize(tt.in, tt.hint); got != tt.want {
			t.Errorf("normalize(%v, %s) = %#v, want %#v", tt.in, tt.hint, got, tt.want)
		}
	}
}
