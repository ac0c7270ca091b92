package inits

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"portfolio-cms/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true, // 唯一约束冲突转换为 gorm.ErrDuplicatedKey
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 管理员账户由 seeder 单独创建，这里不再插入初始数据
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Profile{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certification{},
		&models.Project{},
		&models.Message{},
	)
}
