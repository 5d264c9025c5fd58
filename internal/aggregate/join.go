package aggregate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Querier is the subset of database/sql needed to run a join. Both *sql.DB
// and the database.DB wrapper satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Join describes an equi-join between a source collection and a target
// collection, projecting a restricted field subset from the target. Rows
// from the source with no match in the target are dropped (inner join).
type Join struct {
	Source      string   // source table, e.g. "subscriptions"
	SourceMatch string   // source column compared against the match value
	SourceKey   string   // source column joined against the target key
	Target      string   // target table, e.g. "users"
	TargetKey   string   // target column the source key references
	Fields      []string // target columns to project
	OrderBy     string   // optional ORDER BY clause body
}

// SQL builds the parameterized join query. The single parameter $1 is the
// match value for SourceMatch.
func (j Join) SQL() string {
	cols := make([]string, len(j.Fields))
	for i, f := range j.Fields {
		cols[i] = "t." + f
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s s INNER JOIN %s t ON t.%s = s.%s WHERE s.%s = $1",
		strings.Join(cols, ", "), j.Source, j.Target, j.TargetKey, j.SourceKey, j.SourceMatch)
	if j.OrderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", j.OrderBy)
	}
	return b.String()
}

// Rows executes the join for one match value and scans each projected row
// with the supplied scan function.
func Rows[T any](ctx context.Context, q Querier, j Join, match interface{}, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, j.SQL(), match)
	if err != nil {
		return nil, fmt.Errorf("failed to run join query: %w", err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan join row: %w", err)
		}
		results = append(results, item)
	}

	return results, rows.Err()
}
