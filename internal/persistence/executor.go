package persistence

import (
	"context"
	"strconv"
	"strings"
)

// Rows is the cursor returned by QueryExecutor.Query. pgx.Rows satisfies it
// directly; database/sql rows are adapted.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// QueryExecutor runs parameterized SQL against the backing store. Statements
// use '?' placeholders; each implementation rewrites them for its dialect.
// Every call acquires a pooled connection for the duration of the statement.
type QueryExecutor interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	// Exec runs a statement and returns the number of affected rows.
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
	Ping(ctx context.Context) error
}

// rebindDollar rewrites '?' placeholders into PostgreSQL's $1..$n form.
// Placeholders inside single-quoted literals are left alone.
func rebindDollar(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case ch == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
