// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gideon/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

var parseWithClaims = jwt.ParseWithClaims

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer 以啟動時載入的金鑰簽發與驗證存取令牌
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret not set")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// IssueAccessToken 產生 HS256 JWT，回傳令牌與到期時間
//
// exp 以秒為精度，向上取整，令牌至少在 ttl 內有效
func (t *TokenIssuer) IssueAccessToken(userID int) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	if trunc := exp.Truncate(time.Second); !trunc.Equal(exp) {
		exp = trunc.Add(time.Second)
	}

	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func (t *TokenIssuer) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AuthenticateUser 比對使用者密碼；失敗一律回傳 ErrInvalidCredentials
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
