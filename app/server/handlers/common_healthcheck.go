package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type rootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (a *App) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, &rootResponse{
		Message: "Portfolio CMS API",
		Status:  "running",
	})
}

func (a *App) HealthCheck(c echo.Context) error {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		a.l.Error("database unavailable", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
