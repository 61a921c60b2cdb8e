package auth

import (
	"context"

	"freelance-hub/internal/service"
)

// AccountService 由 *service.Service 實作
type AccountService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error)
	Login(ctx context.Context, username, password string) (*service.AuthResult, error)
}
