package middlewares

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/auth"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/metrics"
	"portfolio-cms/app/server/types"
)

// AdminAuth 在受保护的路由之前解析当前管理员，失败时不会进入 handler
func AdminAuth(guard *auth.Guard, m *metrics.Metrics, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			admin, err := guard.Resolve(rctx, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					m.GuardRejected()
					l.Debug("rejected unauthenticated request", zap.String("path", c.Path()), zap.Error(err))
					return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
						Message: http.StatusText(http.StatusUnauthorized),
					})
				}

				l.Error("failed to resolve admin", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}

			// 设置 context
			c.Set(constants.ContextKeyAdmin, admin)

			// 继续处理
			return next(c)
		}
	}
}
