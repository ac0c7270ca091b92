package inits

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"portfolio-cms/app/seeder/config"
	"strings"
)

// Config 只读取 seeder 需要的部分，不要求 server 的密钥等配置
func Config() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.DBConnectionString = dbconn
	}

	return &cfg, nil
}
