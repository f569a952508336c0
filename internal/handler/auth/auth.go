// File: internal/handler/auth/auth.go
package auth

import (
	"log/slog"
	"strings"

	"gideon/internal/database"
	"gideon/internal/metrics"
	"gideon/internal/service"
)

const (
	msgMissingFields      = "Missing required fields"
	msgInvalidEmail       = "Invalid email format"
	msgInvalidBody        = "Invalid request body"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid credentials"
	msgInternal           = "Internal server error"
)

// 測試時可替換
var hashPassword = service.HashPassword

// Deps 註冊與登入共用的相依
type Deps struct {
	DB      database.DB
	Issuer  *service.TokenIssuer
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}

// normalizeEmail 去除空白並轉小寫，查詢與儲存一律使用此格式
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
