package database

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"anacharts/chart"
	"anacharts/utils"
)

var ErrForbiddenQuery = errors.New("query contains forbidden operations")

// Querier is satisfied by *pgxpool.Pool and *pgx.Conn.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadRecords runs sql and returns one record per row, keyed by column name.
func LoadRecords(ctx context.Context, q Querier, sql string, args ...any) ([]chart.Record, error) {
	if !utils.ValidateSQL(sql) {
		return nil, ErrForbiddenQuery
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	fieldDescriptions := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescriptions))
	for i, fd := range fieldDescriptions {
		columns[i] = fd.Name
	}

	var results []chart.Record
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(chart.Record, len(columns))
		for i, colName := range columns {
			v, err := normalize(values[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", colName, err)
			}
			record[colName] = v
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return results, nil
}

// normalize makes column values JSON friendly. NaN and infinities have no
// JSON form and become nil.
func normalize(v any) (any, error) {
	switch v := v.(type) {
	case []byte:
		return string(v), nil
	case pgtype.Numeric:
		if !v.Valid {
			return nil, nil
		}
		f, err := v.Float64Value()
		if err != nil {
			return nil, err
		}
		return finite(f.Float64), nil
	case float64:
		return finite(v), nil
	case float32:
		return finite(float64(v)), nil
	default:
		return v, nil
	}
}

func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
