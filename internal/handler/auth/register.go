// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"gideon/internal/dto"
	"gideon/internal/handler"
	"gideon/internal/metrics"
	"gideon/internal/model"
	"gideon/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立使用者並回傳存取令牌
// @Summary     註冊使用者
// @Description 以 name、email、password 建立帳號，成功時直接回傳存取令牌
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := d.logger()

		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			d.Metrics.ObserveAuth("register", metrics.OutcomeInvalid)
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidBody})
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = normalizeEmail(req.Email)

		if err := c.Validate(&req); err != nil {
			d.Metrics.ObserveAuth("register", metrics.OutcomeInvalid)
			msg := msgMissingFields
			if tags := handler.FailedTags(err); tags["email"] && !tags["required"] {
				msg = msgInvalidEmail
			}
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msg})
		}

		// 先查一次，同時送出的重複註冊由 unique index 擋下
		if _, err := store.GetUserByEmail(ctx, d.DB, req.Email); err == nil {
			d.Metrics.ObserveAuth("register", metrics.OutcomeConflict)
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgEmailTaken})
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("register: lookup user", "error", err)
			d.Metrics.ObserveAuth("register", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			log.Error("register: hash password", "error", err)
			d.Metrics.ObserveAuth("register", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		user, err := store.CreateUser(ctx, d.DB, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrEmailTaken) {
			d.Metrics.ObserveAuth("register", metrics.OutcomeConflict)
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgEmailTaken})
		}
		if err != nil {
			log.Error("register: create user", "error", err)
			d.Metrics.ObserveAuth("register", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		token, exp, err := d.Issuer.IssueAccessToken(user.ID)
		if err != nil {
			log.Error("register: issue token", "user_id", user.ID, "error", err)
			d.Metrics.ObserveAuth("register", metrics.OutcomeError)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgInternal})
		}

		log.Info("user registered", "user_id", user.ID)
		d.Metrics.ObserveAuth("register", metrics.OutcomeSuccess)
		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Message:     "Registration successful",
			AccessToken: token,
			ExpiresAt:   exp,
		})
	}
}
