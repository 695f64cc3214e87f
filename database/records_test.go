package database

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anacharts/chart"
	"anacharts/utils"
)

type fakeRows struct {
	columns []string
	data    [][]any
	pos     int
	err     error
	closed  bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		*(d.(*any)) = row[i]
	}
	return nil
}

type fakeQuerier struct {
	rows    *fakeRows
	err     error
	queries []string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestLoadRecords(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"key", "value", "note"},
		data: [][]any{
			{"Sales", pgtype.Numeric{Int: big.NewInt(12550), Exp: -2, Valid: true}, []byte("north")},
			{"R&D", float64(3), nil},
		},
	}
	q := &fakeQuerier{rows: rows}

	records, err := LoadRecords(context.Background(), q, "SELECT key, value, note FROM t")
	require.NoError(t, err)

	assert.Equal(t, []chart.Record{
		{"key": "Sales", "value": 125.5, "note": "north"},
		{"key": "R&D", "value": float64(3), "note": nil},
	}, records)
	assert.True(t, rows.closed)
}

func TestLoadRecords_ForbiddenQuery(t *testing.T) {
	q := &fakeQuerier{}

	_, err := LoadRecords(context.Background(), q, "DROP TABLE sales")

	assert.ErrorIs(t, err, ErrForbiddenQuery)
	assert.Empty(t, q.queries)
}

func TestLoadRecords_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := LoadRecords(context.Background(), &fakeQuerier{err: boom}, "SELECT 1")
	assert.ErrorIs(t, err, boom)

	rows := &fakeRows{columns: []string{"a"}, err: boom}
	_, err = LoadRecords(context.Background(), &fakeQuerier{rows: rows}, "SELECT 1")
	assert.ErrorIs(t, err, boom)
}

func TestDatasetsFeedPie(t *testing.T) {
	for _, ds := range Datasets {
		assert.True(t, utils.ValidateSQL(ds.Query), ds.Name)

		found, ok := FindDataset(ds.Name)
		require.True(t, ok)
		assert.Equal(t, ds.Name, found.Name)
	}
	_, ok := FindDataset("nope")
	assert.False(t, ok)
}

func TestConnString(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "")
	_, err := ConnString()
	assert.ErrorIs(t, err, ErrNotConfigured)

	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "dash")
	s, err := ConnString()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=dash sslmode=disable", s)
}

func TestLoadRecords_NonFiniteBecomesNil(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"key", "value"},
		data: [][]any{
			{"nan", pgtype.Numeric{NaN: true, Valid: true}},
			{"inf", pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}},
			{"float", math.NaN()},
			{"null", pgtype.Numeric{}},
		},
	}

	records, err := LoadRecords(context.Background(), &fakeQuerier{rows: rows}, "SELECT key, value FROM t")
	require.NoError(t, err)

	require.Len(t, records, 4)
	for _, rec := range records {
		assert.Nil(t, rec["value"], rec["key"])
	}
}
