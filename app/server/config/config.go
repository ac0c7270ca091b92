package config

import (
	"net"
	"time"
)

type Config struct {
	System struct {
		IsProd                bool         // 是否为生产环境
		Listen                string       // 监听地址
		DBConnectionString    string       // Postgres 数据库的连接字符串
		RedisConnectionString string       // Redis 数据库的连接字符串，留空则不使用缓存
		CORSOrigins           []string     // 允许跨域的来源
		TrustedProxies        []*net.IPNet // 可信的反向代理地址段，留空则直接使用连接对端 IP
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效
		TokenTTL           time.Duration // 登录 token 的有效期，默认 24 小时
	}
	Storage struct {
		UploadDir   string // 上传文件的存储根目录
		MaxFileSize int64  // 单个上传文件的大小上限（字节）
	}
	Mail struct {
		SMTPHost     string
		SMTPPort     int
		SMTPUser     string
		SMTPPassword string
		From         string // 发件人
		AdminEmail   string // 收件人，留空则使用管理员账户的邮箱
	}
}
