package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/auth"
	"portfolio-cms/app/server/types"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req loginRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid login request", zap.Error(err))
		return a.er(c, statusCode)
	}

	res, err := a.auth.Login(rctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			a.metrics.LoginAttempt(false)
			a.l.Info("login rejected", zap.String("username", req.Username))
			return a.erm(c, http.StatusUnauthorized, "Incorrect username or password")
		}

		a.l.Error("failed to login", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.metrics.LoginAttempt(true)

	// 返回
	return c.JSON(http.StatusOK, &types.LoginToken{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User: types.AdminInfo{
			ID:       res.Admin.ID,
			Username: res.Admin.Username,
			Email:    res.Admin.Email,
		},
	})
}
