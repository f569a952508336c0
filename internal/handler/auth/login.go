// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"gideon/internal/dto"
	"gideon/internal/metrics"
	"gideon/internal/service"
	"gideon/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := d.logger()

		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			d.Metrics.ObserveAuth("login", metrics.OutcomeInvalid)
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidBody})
		}
		req.Email = normalizeEmail(req.Email)
		if err := c.Validate(&req); err != nil {
			d.Metrics.ObserveAuth("login", metrics.OutcomeInvalid)
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgMissingFields})
		}

		// 撈使用者資料；找不到與密碼錯誤回應相同
		user, err := store.GetUserByEmail(ctx, d.DB, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			d.Metrics.ObserveAuth("login", metrics.OutcomeUnauthorized)
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidCredentials})
		}
		if err != nil {
			log.Error("login: lookup user", "error", err)
			d.Metrics.ObserveAuth("login", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		if err := service.AuthenticateUser(ctx, *user, req.Password); err != nil {
			d.Metrics.ObserveAuth("login", metrics.OutcomeUnauthorized)
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidCredentials})
		}

		token, exp, err := d.Issuer.IssueAccessToken(user.ID)
		if err != nil {
			log.Error("login: issue token", "user_id", user.ID, "error", err)
			d.Metrics.ObserveAuth("login", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		d.Metrics.ObserveAuth("login", metrics.OutcomeSuccess)
		return c.JSON(http.StatusOK, dto.AuthResponse{
			Message:     "Login successful",
			AccessToken: token,
			ExpiresAt:   exp,
		})
	}
}
