package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier 是 pool 與 transaction 共同的查詢介面，store 只依賴它
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type DB interface {
	Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(context.Context) error
	Close()
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTxFn  func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if f.BeginTxFn != nil {
		return f.BeginTxFn(ctx, opts)
	}
	panic("unexpected BeginTx")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeTx 實作 pgx.Tx；未設定的查詢方法會 panic，Commit/Rollback 只記錄呼叫次數
type FakeTx struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	CommitErr  error

	Commits   int
	Rollbacks int
	closed    bool
}

func (t *FakeTx) Begin(context.Context) (pgx.Tx, error) { panic("unexpected nested Begin") }

func (t *FakeTx) Commit(context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	t.Commits++
	return t.CommitErr
}

func (t *FakeTx) Rollback(context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	t.Rollbacks++
	return nil
}

func (t *FakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	panic("unexpected CopyFrom")
}

func (t *FakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("unexpected SendBatch")
}

func (t *FakeTx) LargeObjects() pgx.LargeObjects { panic("unexpected LargeObjects") }

func (t *FakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	panic("unexpected Prepare")
}

func (t *FakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if t.ExecFn != nil {
		return t.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (t *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if t.QueryFn != nil {
		return t.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (t *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if t.QueryRowFn != nil {
		return t.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (t *FakeTx) Conn() *pgx.Conn { return nil }
