// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"freelance-hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// DefaultTokenTTL 是 access token 預設有效期
const DefaultTokenTTL = 7 * 24 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator 負責簽發與驗證 HS256 token
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// AuthenticateUser 比對明文密碼，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueAccessToken 依據使用者資訊產生 JWT
func (a *Authenticator) IssueAccessToken(user model.User) (string, error) {
	if len(a.secret) == 0 {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func (a *Authenticator) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID <= 0 {
		return nil, errors.New("token has no user id")
	}

	return claims, nil
}
