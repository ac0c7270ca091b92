package auth

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"portfolio-cms/app/server/models"
)

// AdminStore 是认证模块对管理员集合的全部需求
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdatePasswordHash(ctx context.Context, id uint, digest string) error
	UpdateEmail(ctx context.Context, id uint, email string) error
}

type GormAdminStore struct {
	db *gorm.DB
}

var _ AdminStore = (*GormAdminStore)(nil)

func NewAdminStore(db *gorm.DB) *GormAdminStore {
	return &GormAdminStore{db: db}
}

func (s *GormAdminStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (s *GormAdminStore) UpdatePasswordHash(ctx context.Context, id uint, digest string) error {
	return s.update(ctx, id, "password_hash", digest)
}

func (s *GormAdminStore) UpdateEmail(ctx context.Context, id uint, email string) error {
	return s.update(ctx, id, "email", email)
}

// 单字段更新，updated_at 由 gorm 自动刷新
func (s *GormAdminStore) update(ctx context.Context, id uint, column string, value string) error {
	res := s.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update admin %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
