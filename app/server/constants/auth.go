package constants

import "time"

const (
	ContextKeyAdmin = "admin" // 认证中间件放入 echo.Context 的管理员记录
)

// 登录和留言接口的限流（每个 IP）
const (
	RateLimitLoginPerSecond   = 1.0 / 6 // 平均每分钟 10 次
	RateLimitLoginBurst       = 5
	RateLimitMessagePerSecond = 1.0 / 30
	RateLimitMessageBurst     = 3
	RateLimitExpiresIn        = 10 * time.Minute
)
