package config

type Config struct {
	// 基础配置
	IsProd bool

	// 与 server 共用的数据库
	DBConnectionString string
}
