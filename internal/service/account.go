package service

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"

	"go.uber.org/zap"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	minPasswordLength = 6
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (in *RegisterInput) validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Username == "":
		return newError(ErrValidation, "username is required")
	case utf8.RuneCountInString(in.Username) > maxUsernameLength:
		return newError(ErrValidation, "username must be at most %d characters", maxUsernameLength)
	case in.Email == "":
		return newError(ErrValidation, "email is required")
	case utf8.RuneCountInString(in.Email) > maxEmailLength:
		return newError(ErrValidation, "email must be at most %d characters", maxEmailLength)
	case utf8.RuneCountInString(in.Password) < minPasswordLength:
		return newError(ErrValidation, "password must be at least %d characters", minPasswordLength)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return newError(ErrValidation, "email is invalid")
	}
	return nil
}

// AuthResult 是註冊或登入成功後回給客戶端的內容
type AuthResult struct {
	Token string
	User  model.User
}

// Register 建立帳號並直接簽發 token；username 或 email 重複回傳 ConflictError
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var u *model.User
	err = withTx(ctx, s.db, func(q database.Querier) error {
		nameTaken, emailTaken, err := userExists(ctx, q, in.Username, in.Email)
		if err != nil {
			return err
		}
		if nameTaken {
			return newError(ErrConflict, "username is already taken")
		}
		if emailTaken {
			return newError(ErrConflict, "email is already registered")
		}
		u, err = createUser(ctx, q, &model.User{Username: in.Username, Email: in.Email, PasswordHash: hash})
		if database.IsUniqueViolation(err) {
			return newError(ErrConflict, "username or email is already registered")
		}
		return err
	})
	if err != nil {
		s.logFailure("register", err, zap.String("username", in.Username))
		return nil, err
	}

	return s.issue(*u)
}

// Login 以帳號密碼換取 token
func (s *Service) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var u *model.User
	err := retryRead(ctx, func() error {
		var err error
		u, err = getUserByUsername(ctx, s.db, username)
		return err
	})
	if isNoRows(err) {
		s.log.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error("login", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	if _, err := AuthenticateUser(*u, password); err != nil {
		s.log.Info("login rejected", zap.String("username", username))
		return nil, err
	}
	return s.issue(*u)
}

func (s *Service) issue(u model.User) (*AuthResult, error) {
	if s.auth == nil {
		return nil, newError(ErrAuth, "token issuing is not configured")
	}
	token, err := s.auth.IssueAccessToken(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}
