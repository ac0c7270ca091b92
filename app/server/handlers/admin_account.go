package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/auth"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type changeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (a *App) AuthChangePassword(c echo.Context) error {
	rctx := c.Request().Context()
	admin := currentAdmin(c)

	var req changePasswordRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid change password request", zap.Error(err))
		return a.er(c, statusCode)
	}

	if err := a.auth.ChangePassword(rctx, admin, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return a.erm(c, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, auth.ErrNotFound):
			return a.er(c, http.StatusNotFound)
		default:
			a.l.Error("failed to change password", zap.Uint("adminID", admin.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.l.Info("password changed", zap.String("username", admin.Username))
	return a.ok(c, "Password changed successfully")
}

func (a *App) AuthChangeEmail(c echo.Context) error {
	rctx := c.Request().Context()
	admin := currentAdmin(c)

	var req changeEmailRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid change email request", zap.Error(err))
		return a.er(c, statusCode)
	}

	if err := a.auth.ChangeEmail(rctx, admin, req.Email); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}

		a.l.Error("failed to change email", zap.Uint("adminID", admin.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c, "Email updated successfully")
}

func (a *App) AuthLogout(c echo.Context) error {
	if err := a.auth.Logout(c.Request().Context(), currentAdmin(c)); err != nil {
		a.l.Error("failed to logout", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c, "Logged out successfully")
}

func (a *App) AuthMe(c echo.Context) error {
	return c.JSON(http.StatusOK, currentAdmin(c))
}
