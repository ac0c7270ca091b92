package inits

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"net"
	"os"
	"portfolio-cms/app/server/config"
	"strconv"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	// 如果工作目录下有 .env 文件，先载入（不会覆盖已经存在的环境变量）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// 手动配置映射，viper 处理这种基于环境变量的配置不是很方便
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// Redis 是可选的，没有设置就不缓存
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if origins, exist := os.LookupEnv("CORS_ORIGINS"); !exist || strings.TrimSpace(origins) == "" {
		cfg.System.CORSOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.System.CORSOrigins = append(cfg.System.CORSOrigins, origin)
			}
		}
	}

	if proxies, exist := os.LookupEnv("TRUSTED_PROXIES"); exist {
		for _, cidr := range strings.Split(proxies, ",") {
			if cidr = strings.TrimSpace(cidr); cidr == "" {
				continue
			}
			_, ipNet, err := net.ParseCIDR(cidr)
			if err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES should be a list of CIDR ranges: %w", err)
			}
			cfg.System.TrustedProxies = append(cfg.System.TrustedProxies, ipNet)
		}
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if ttlStr, exist := os.LookupEnv("TOKEN_TTL"); !exist {
		cfg.Security.TokenTTL = 24 * time.Hour // 默认一天
	} else if ttl, err := time.ParseDuration(ttlStr); err != nil || ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL should be a positive duration")
	} else {
		cfg.Security.TokenTTL = ttl
	}

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist {
		cfg.Storage.UploadDir = "./uploads"
	} else {
		cfg.Storage.UploadDir = uploadDir
	}

	if maxSizeStr, exist := os.LookupEnv("MAX_FILE_SIZE"); !exist {
		cfg.Storage.MaxFileSize = 10 * 1024 * 1024 // 10MB
	} else if maxSize, err := strconv.ParseInt(maxSizeStr, 10, 64); err != nil || maxSize <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE should be a positive integer")
	} else {
		cfg.Storage.MaxFileSize = maxSize
	}

	if smtpHost, exist := os.LookupEnv("SMTP_HOST"); !exist {
		cfg.Mail.SMTPHost = "smtp.gmail.com"
	} else {
		cfg.Mail.SMTPHost = smtpHost
	}

	if smtpPortStr, exist := os.LookupEnv("SMTP_PORT"); !exist {
		cfg.Mail.SMTPPort = 587
	} else if smtpPort, err := strconv.Atoi(smtpPortStr); err != nil || smtpPort <= 0 || smtpPort > 65535 {
		return nil, fmt.Errorf("SMTP_PORT should be a valid port number")
	} else {
		cfg.Mail.SMTPPort = smtpPort
	}

	cfg.Mail.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Mail.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	if from, exist := os.LookupEnv("SMTP_FROM"); !exist {
		cfg.Mail.From = "noreply@portfolio.com"
	} else {
		cfg.Mail.From = from
	}

	cfg.Mail.AdminEmail = os.Getenv("ADMIN_EMAIL")

	return &cfg, nil
}
