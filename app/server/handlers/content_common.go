package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-cms/app/server/models"
)

// 按 order 排序的内容集合
type orderedContent interface {
	models.Skill | models.Experience | models.Education | models.Certification
}

// 方法不能有类型形参，所以这几个不能用 (a *App)

func listOrdered[M orderedContent](a *App, c echo.Context, cacheKey string) error {
	rctx := c.Request().Context()

	list := []M{}
	if a.cacheGet(rctx, cacheKey, &list) {
		return c.JSON(http.StatusOK, list)
	}

	if err := a.db.WithContext(rctx).Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		a.l.Error("failed to list content", zap.String("key", cacheKey), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheSet(rctx, cacheKey, list)

	return c.JSON(http.StatusOK, list)
}

// findForUpdate 返回 nil 时已经写好了响应，调用方直接返回 err
func findForUpdate[M orderedContent](a *App, c echo.Context) (*M, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, a.er(c, http.StatusBadRequest)
	}

	var item M
	if err = a.db.WithContext(c.Request().Context()).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, a.er(c, http.StatusNotFound)
		}

		a.l.Error("failed to find content", zap.Uint("id", id), zap.Error(err))
		return nil, a.er(c, http.StatusInternalServerError)
	}

	return &item, nil
}

func saveOrdered[M orderedContent](a *App, c echo.Context, item *M, statusCode int, cacheKey string) error {
	rctx := c.Request().Context()

	if err := a.db.WithContext(rctx).Save(item).Error; err != nil {
		a.l.Error("failed to save content", zap.String("key", cacheKey), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheClear(rctx, cacheKey)

	return c.JSON(statusCode, item)
}

func deleteOrdered[M orderedContent](a *App, c echo.Context, cacheKey string) error {
	rctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	res := a.db.WithContext(rctx).Delete(new(M), id)
	if res.Error != nil {
		a.l.Error("failed to delete content", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	a.cacheClear(rctx, cacheKey)

	return a.ok(c, "Deleted successfully")
}
