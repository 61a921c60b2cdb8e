package store

import (
	"context"
	"fmt"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"
)

func GetUserByID(ctx context.Context, q database.Querier, userID int) (*model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func GetUserByUsername(ctx context.Context, q database.Querier, username string) (*model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

// UserExists 回報 username 與 email 是否已被使用
func UserExists(ctx context.Context, q database.Querier, username, email string) (usernameTaken, emailTaken bool, err error) {
	row := q.QueryRow(ctx,
		`SELECT
		   EXISTS (SELECT 1 FROM users WHERE username = $1),
		   EXISTS (SELECT 1 FROM users WHERE email = $2)`,
		username,
		email,
	)
	if err := row.Scan(&usernameTaken, &emailTaken); err != nil {
		return false, false, fmt.Errorf("UserExists: %w", err)
	}
	return usernameTaken, emailTaken, nil
}

func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
