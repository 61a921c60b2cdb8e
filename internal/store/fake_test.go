package store

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 依序把 values 寫入 Scan 的目的指標
type fakeRow struct {
	values  []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != len(r.values) {
		panic("fakeRow.Scan: unexpected number of dest")
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := &fakeRow{values: r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// call 記錄最後一次查詢
type call struct {
	sql  string
	args []any
}

func rowFn(c *call, r *fakeRow) func(context.Context, string, ...any) pgx.Row {
	return func(_ context.Context, sql string, args ...any) pgx.Row {
		c.sql, c.args = sql, args
		return r
	}
}

func rowsFn(c *call, r *fakeRows, err error) func(context.Context, string, ...any) (pgx.Rows, error) {
	return func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		c.sql, c.args = sql, args
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func execFn(c *call, tag string, err error) func(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		c.sql, c.args = sql, args
		return pgconn.NewCommandTag(tag), err
	}
}
