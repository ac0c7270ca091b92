// Package testutil holds the in-memory database, cache and fixtures shared by package tests.
package testutil

import (
	"github.com/alexedwards/argon2id"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"portfolio-cms/app/server/inits"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/password"
	"testing"
)

// DB 返回迁移完成的内存 SQLite 数据库
func DB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 每个连接都是独立的内存数据库，只能保留一个
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err = inits.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// Redis 返回连接到 miniredis 的客户端
func Redis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb, mini
}

// Hasher 使用很低的 argon2id 参数，只用于测试
func Hasher() *password.Hasher {
	return password.New(&argon2id.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func CreateAdmin(t testing.TB, db *gorm.DB, hasher *password.Hasher, username, plaintext string) *models.Admin {
	t.Helper()

	digest, err := hasher.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	admin := &models.Admin{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: digest,
	}
	if err = db.Create(admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	return admin
}
