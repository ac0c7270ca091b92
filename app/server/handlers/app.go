package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"portfolio-cms/app/server/auth"
	"portfolio-cms/app/server/jwt"
	"portfolio-cms/app/server/metrics"
	"portfolio-cms/app/server/notify"
	"portfolio-cms/app/server/password"
	"portfolio-cms/app/server/uploads"
)

type App struct {
	l       *zap.Logger      // 日志
	db      *gorm.DB         // 数据库
	rdb     *redis.Client    // Redis ，为 nil 时不使用缓存
	guard   *auth.Guard      // 受保护路由的认证
	auth    *auth.Service    // 登录和账户操作
	uploads *uploads.Store   // 上传文件
	mailer  *notify.Mailer   // 留言通知，为 nil 时不发送
	metrics *metrics.Metrics // 指标

	adminEmail string // 留言通知的收件人，为空时使用管理员账户的邮箱
}

func NewApp(
	l *zap.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	j *jwt.JWT,
	hasher *password.Hasher,
	up *uploads.Store,
	mailer *notify.Mailer,
	m *metrics.Metrics,
	adminEmail string,
) *App {
	admins := auth.NewAdminStore(db)

	return &App{
		l:          l,
		db:         db,
		rdb:        rdb,
		guard:      auth.NewGuard(j, admins),
		auth:       auth.NewService(admins, hasher, j),
		uploads:    up,
		mailer:     mailer,
		metrics:    m,
		adminEmail: adminEmail,
	}
}
