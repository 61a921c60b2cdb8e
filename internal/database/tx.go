package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// WithTx 在單一 transaction 內執行 fn；fn 回傳錯誤即 rollback，
// 遇到暫時性錯誤時整個 transaction 依 DefaultRetry 重跑
func WithTx(ctx context.Context, db DB, fn func(q Querier) error) error {
	return Retry(ctx, DefaultRetry, func() error {
		return pgx.BeginTxFunc(ctx, db, pgx.TxOptions{}, func(tx pgx.Tx) error {
			return fn(tx)
		})
	})
}
