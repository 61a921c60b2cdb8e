package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("CST", 8*3600))
	userRow := []any{7, "alice", "alice@example.com", "hash", now}

	t.Run("GetUserByID ok", func(t *testing.T) {
		var c call
		db := &database.FakeDB{QueryRowFn: rowFn(&c, &fakeRow{values: userRow})}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, time.UTC, u.CreatedAt.Location())
		require.Equal(t, []any{7}, c.args)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		var c call
		db := &database.FakeDB{QueryRowFn: rowFn(&c, &fakeRow{scanErr: pgx.ErrNoRows})}
		_, err := GetUserByID(context.Background(), db, 7)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.ErrorContains(t, err, "GetUserByID")
	})

	t.Run("GetUserByUsername", func(t *testing.T) {
		var c call
		db := &database.FakeDB{QueryRowFn: rowFn(&c, &fakeRow{values: userRow})}
		u, err := GetUserByUsername(context.Background(), db, "alice")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, "hash", u.PasswordHash)

		db.QueryRowFn = rowFn(&c, &fakeRow{scanErr: errors.New("boom")})
		_, err = GetUserByUsername(context.Background(), db, "alice")
		require.Error(t, err)
	})

	t.Run("UserExists", func(t *testing.T) {
		var c call
		db := &database.FakeDB{QueryRowFn: rowFn(&c, &fakeRow{values: []any{true, false}})}
		nameTaken, emailTaken, err := UserExists(context.Background(), db, "alice", "a@b.c")
		require.NoError(t, err)
		require.True(t, nameTaken)
		require.False(t, emailTaken)
		require.Equal(t, []any{"alice", "a@b.c"}, c.args)

		db.QueryRowFn = rowFn(&c, &fakeRow{scanErr: errors.New("boom")})
		_, _, err = UserExists(context.Background(), db, "alice", "a@b.c")
		require.Error(t, err)
	})

	t.Run("CreateUser", func(t *testing.T) {
		var c call
		db := &database.FakeDB{QueryRowFn: rowFn(&c, &fakeRow{values: []any{9, now}})}
		u, err := CreateUser(context.Background(), db, &model.User{Username: "bob", Email: "b@x.io", PasswordHash: "h"})
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
		require.Equal(t, []any{"bob", "b@x.io", "h"}, c.args)

		db.QueryRowFn = rowFn(&c, &fakeRow{scanErr: errors.New("dup")})
		_, err = CreateUser(context.Background(), db, &model.User{})
		require.ErrorContains(t, err, "CreateUser")
	})
}
