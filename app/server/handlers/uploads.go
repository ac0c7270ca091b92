package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/uploads"
)

func (a *App) uploadError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, uploads.ErrInvalidType):
		return a.erm(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, uploads.ErrTooLarge):
		return a.erm(c, http.StatusRequestEntityTooLarge, err.Error())
	default:
		a.l.Error("failed to save upload", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
}

// removeUpload 只处理本地上传的文件，外部链接会被忽略
func (a *App) removeUpload(url string) {
	if url == "" {
		return
	}
	if err := a.uploads.Delete(url); err != nil {
		a.l.Warn("failed to delete upload", zap.String("url", url), zap.Error(err))
	}
}
