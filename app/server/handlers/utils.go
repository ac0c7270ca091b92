package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/types"
	"strconv"
)

var errInvalidID = errors.New("invalid id")

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erm(c, statusCode, http.StatusText(statusCode))
}

func (a *App) erm(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: message,
	})
}

func (a *App) ok(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &types.Message{
		Message: message,
	})
}

// bindAndValidate 失败时返回的是可以直接写入响应的状态码
func (a *App) bindAndValidate(c echo.Context, req any) (error, int) {
	if err := c.Bind(req); err != nil {
		return err, http.StatusBadRequest
	}
	if err := c.Validate(req); err != nil {
		return err, http.StatusBadRequest
	}
	return nil, http.StatusOK
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// currentAdmin 只能在 AdminAuth 中间件之后调用
func currentAdmin(c echo.Context) *models.Admin {
	admin, _ := c.Get(constants.ContextKeyAdmin).(*models.Admin)
	return admin
}
