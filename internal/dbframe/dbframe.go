// Package dbframe loads SQL result sets into frames.
//
// Each result column becomes one vector. Its kind is chosen from the values
// the driver returned: integers that fit 32 bits give an integer column,
// other numbers a double column, booleans a logical column and anything
// else a character column. SQL NULL becomes NA.
package dbframe

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/funvibe/funvec/internal/vector"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Open validates dsn for driver and returns a handle that answered a ping.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		dsn = cfg.FormatDSN()
	default:
		return nil, fmt.Errorf("unsupported driver %q (want %s or %s)", driver, DriverSQLite, DriverMySQL)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Load opens the database, runs query and closes the handle again.
func Load(ctx context.Context, driver, dsn, query string, args ...any) (*vector.Frame, error) {
	db, err := Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Query(ctx, db, query, args...)
}

// Query runs query on db and converts every row of the result.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*vector.Frame, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, _ := rows.ColumnTypes()
	hints := make([]string, len(names))
	for i := range hints {
		if i < len(types) {
			hints[i] = strings.ToUpper(types[i].DatabaseTypeName())
		}
	}

	cells := make([][]any, len(names))
	for rows.Next() {
		values := make([]any, len(names))
		pointers := make([]any, len(names))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		for i, v := range values {
			cells[i] = append(cells[i], normalize(v, hints[i]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	columns := make([]*vector.Vector, len(names))
	for i := range names {
		columns[i] = column(cells[i])
	}
	return vector.NewFrame(names, columns), nil
}

// normalize maps driver values onto nil, int64, float64, bool or string.
// Text-protocol drivers deliver numbers as bytes; the column type decides.
func normalize(v any, hint string) any {
	switch x := v.(type) {
	case nil, int64, float64, bool, string:
		return x
	case []byte:
		s := string(x)
		switch {
		case strings.Contains(hint, "INT"):
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		case hint == "DECIMAL" || hint == "FLOAT" || hint == "DOUBLE" || hint == "REAL":
			if d, err := strconv.ParseFloat(s, 64); err == nil {
				return d
			}
		}
		return s
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x.Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v)
}

func column(cells []any) *vector.Vector {
	kind := vector.KindLogical
	for _, c := range cells {
		switch x := c.(type) {
		case bool:
		case int64:
			if x > math.MaxInt32 || x <= math.MinInt32 {
				kind = vector.Promote(kind, vector.KindDouble)
			} else {
				kind = vector.Promote(kind, vector.KindInteger)
			}
		case float64:
			kind = vector.Promote(kind, vector.KindDouble)
		case string:
			kind = vector.KindCharacter
		}
	}

	out := vector.Alloc(kind, len(cells))
	complete := true
	for i, c := range cells {
		if c == nil {
			complete = false
			switch kind {
			case vector.KindLogical, vector.KindInteger:
				out.Ints()[i] = vector.NAInteger
			case vector.KindDouble:
				out.Doubles()[i] = vector.NADouble
			case vector.KindCharacter:
				out.Strings()[i] = vector.NAString
			}
			continue
		}
		switch kind {
		case vector.KindLogical:
			out.Ints()[i] = vector.LogicalOf(c.(bool))
		case vector.KindInteger:
			if b, ok := c.(bool); ok {
				out.Ints()[i] = vector.LogicalOf(b)
			} else {
				out.Ints()[i] = int32(c.(int64))
			}
		case vector.KindDouble:
			switch x := c.(type) {
			case bool:
				out.Doubles()[i] = float64(vector.LogicalOf(x))
			case int64:
				out.Doubles()[i] = float64(x)
			case float64:
				out.Doubles()[i] = x
			}
		case vector.KindCharacter:
			out.Strings()[i] = text(c)
		}
	}
	out.SetComplete(complete)
	return out
}

func text(c any) string {
	switch x := c.(type) {
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return vector.FormatDouble(x)
	}
	return fmt.Sprintf("%v", c)
}
