package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.BeginTx(context.Background(), pgx.TxOptions{}) })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	var calls []string
	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		calls = append(calls, "exec")
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		calls = append(calls, "query")
		return fakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		calls = append(calls, "row")
		return pgx.Row(fakeRows{})
	}
	db.BeginTxFn = func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
		calls = append(calls, "begin")
		return &FakeTx{}, nil
	}
	db.PingFn = func(ctx context.Context) error { calls = append(calls, "ping"); return nil }
	db.CloseFn = func() { calls = append(calls, "close") }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	tx, err := db.BeginTx(context.Background(), pgx.TxOptions{})
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.Equal(t, []string{"exec", "query", "row", "begin", "ping", "close"}, calls)
}

func TestFakeTx(t *testing.T) {
	tx := &FakeTx{}
	require.Panics(t, func() { tx.Exec(context.Background(), "") })
	require.Panics(t, func() { tx.Query(context.Background(), "") })
	require.Panics(t, func() { tx.QueryRow(context.Background(), "") })

	require.NoError(t, tx.Commit(context.Background()))
	require.ErrorIs(t, tx.Rollback(context.Background()), pgx.ErrTxClosed)
	require.Equal(t, 1, tx.Commits)
	require.Equal(t, 0, tx.Rollbacks)
}
