package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-cms/app/server/apidocs"
	"portfolio-cms/app/server/handlers"
	"portfolio-cms/app/server/inits"
	"portfolio-cms/app/server/jwt"
	"portfolio-cms/app/server/metrics"
	"portfolio-cms/app/server/notify"
	"portfolio-cms/app/server/password"
	"portfolio-cms/app/server/uploads"
	"strconv"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	if rdb == nil {
		l.Info("REDIS_CONN not set, content cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey, cfg.Security.TokenTTL)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化上传目录
	up, err := uploads.New(cfg.Storage.UploadDir, cfg.Storage.MaxFileSize)
	if err != nil {
		l.Fatal("error initializing upload storage", zap.Error(err))
	}

	mailer := notify.New(notify.Options{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		User:     cfg.Mail.SMTPUser,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.From,
	}, l.Named("notify"))
	if !mailer.Enabled() {
		l.Warn("SMTP credentials not set, contact notifications disabled")
	}

	m := metrics.New()

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, password.New(nil), up, mailer, m, cfg.Mail.AdminEmail)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Validator = inits.Validator()
	e.IPExtractor = inits.IPExtractor(cfg.System.TrustedProxies)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.System.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	// 留出 multipart 表单字段的空间
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.Storage.MaxFileSize+1024*1024, 10)))
	e.Use(m.Middleware())

	// 绑定 echo 服务
	protected := handlers.RegisterHandlers(e, handlerApp, handlers.RouteOptions{
		RateLimit: true,
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// 添加 API 文档
	if !cfg.System.IsProd {
		if swgJson, err := apidocs.Spec("Portfolio CMS API", "1.0.0", e.Routes(), protected).MarshalJSON(); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api/docs", swgJson))
		}
	}

	// 启动 echo 服务
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("failed to shutdown the server", zap.Error(err))
	}
}
