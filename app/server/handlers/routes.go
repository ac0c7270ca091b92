package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/middlewares"
	"portfolio-cms/app/server/uploads"
	"strings"
)

type RouteOptions struct {
	RateLimit bool // 登录和留言接口按 IP 限流
}

func rateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: constants.RateLimitExpiresIn,
		}),
	})
}

// RegisterHandlers 返回需要认证的路由，用于生成 API 文档
func RegisterHandlers(e *echo.Echo, a *App, opts RouteOptions) []*echo.Route {
	var loginLimit, messageLimit []echo.MiddlewareFunc
	if opts.RateLimit {
		loginLimit = append(loginLimit, rateLimiter(constants.RateLimitLoginPerSecond, constants.RateLimitLoginBurst))
		messageLimit = append(messageLimit, rateLimiter(constants.RateLimitMessagePerSecond, constants.RateLimitMessageBurst))
	}

	guard := middlewares.AdminAuth(a.guard, a.metrics, a.l)

	var protected []*echo.Route
	protect := func(r *echo.Route) {
		protected = append(protected, r)
	}

	// 上传的文件
	e.Static(strings.TrimSuffix(uploads.URLPrefix, "/"), a.uploads.Dir())

	api := e.Group("/api")
	api.GET("", a.Root)
	api.GET("/healthz", a.HealthCheck)

	// 认证
	authGroup := api.Group("/auth")
	authGroup.POST("/login", a.AuthLogin, loginLimit...)
	protect(authGroup.POST("/change-password", a.AuthChangePassword, guard))
	protect(authGroup.PUT("/email", a.AuthChangeEmail, guard))
	protect(authGroup.POST("/logout", a.AuthLogout, guard))
	protect(authGroup.GET("/me", a.AuthMe, guard))

	// 个人资料
	api.GET("/profile", a.ProfileGet)
	protect(api.PUT("/profile", a.ProfileUpdate, guard))
	protect(api.POST("/profile/photo", a.ProfilePhotoUpload, guard))
	protect(api.POST("/profile/resume", a.ProfileResumeUpload, guard))

	// 排序的内容集合
	api.GET("/skills", a.SkillList)
	protect(api.POST("/skills", a.SkillCreate, guard))
	protect(api.PUT("/skills/:id", a.SkillUpdate, guard))
	protect(api.DELETE("/skills/:id", a.SkillDelete, guard))

	api.GET("/experience", a.ExperienceList)
	protect(api.POST("/experience", a.ExperienceCreate, guard))
	protect(api.PUT("/experience/:id", a.ExperienceUpdate, guard))
	protect(api.DELETE("/experience/:id", a.ExperienceDelete, guard))

	api.GET("/education", a.EducationList)
	protect(api.POST("/education", a.EducationCreate, guard))
	protect(api.PUT("/education/:id", a.EducationUpdate, guard))
	protect(api.DELETE("/education/:id", a.EducationDelete, guard))

	api.GET("/certifications", a.CertificationList)
	protect(api.POST("/certifications", a.CertificationCreate, guard))
	protect(api.PUT("/certifications/:id", a.CertificationUpdate, guard))
	protect(api.DELETE("/certifications/:id", a.CertificationDelete, guard))

	// 项目
	api.GET("/projects", a.ProjectList)
	api.GET("/projects/:id", a.ProjectGet)
	protect(api.POST("/projects", a.ProjectCreate, guard))
	protect(api.PUT("/projects/:id", a.ProjectUpdate, guard))
	protect(api.PATCH("/projects/:id/visibility", a.ProjectVisibilityUpdate, guard))
	protect(api.DELETE("/projects/:id", a.ProjectDelete, guard))

	// 留言
	protect(api.GET("/messages", a.MessageList, guard))
	api.POST("/messages", a.MessageCreate, messageLimit...)
	protect(api.PATCH("/messages/:id/read", a.MessageMarkRead, guard))
	protect(api.PATCH("/messages/:id/unread", a.MessageMarkUnread, guard))
	protect(api.DELETE("/messages/:id", a.MessageDelete, guard))

	return protected
}
