package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gideon/internal/dto"
	"gideon/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 回給客戶端的訊息
const (
	msgMissingToken = "Missing Authorization Header"
	msgBadHeader    = "Invalid authorization header format"
	msgBadToken     = "Invalid or expired token"
)

var (
	errMissingToken = errors.New("missing authorization header")
	errBadHeader    = errors.New("invalid authorization header format")
	errBadToken     = errors.New("invalid or expired token")
)

func clientMessage(err error) string {
	switch {
	case errors.Is(err, errMissingToken):
		return msgMissingToken
	case errors.Is(err, errBadHeader):
		return msgBadHeader
	default:
		return msgBadToken
	}
}

// TokenVerifier 由 service.TokenIssuer 實作
type TokenVerifier interface {
	VerifyAccessToken(token string) (*service.CustomClaims, error)
}

func extractClaims(c echo.Context, v TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, errBadHeader
	}
	claims, err := v.VerifyAccessToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errBadToken
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token，失敗回 401 {"error": ...}；成功時 claims 存於 ContextUserKey
func RequireAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, v)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: clientMessage(err)})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// UserID 取出 RequireAuth 放入的使用者 ID
func UserID(c echo.Context) (int, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}
