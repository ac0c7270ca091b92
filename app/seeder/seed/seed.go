// Package seed creates the admin account and optional starter content out of band.
package seed

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/password"
)

type AdminOptions struct {
	Username      string
	Password      string
	Email         string
	ResetPassword bool // 账户已存在时覆盖密码
}

type Seeder struct {
	db     *gorm.DB
	hasher *password.Hasher
	l      *zap.Logger
}

func New(db *gorm.DB, hasher *password.Hasher, l *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		hasher: hasher,
		l:      l,
	}
}

// Admin 创建管理员账户；已存在时不做修改，除非要求重置密码
func (s *Seeder) Admin(ctx context.Context, opts AdminOptions) (*models.Admin, error) {
	if opts.Username == "" || opts.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).First(&admin, "username = ?", opts.Username).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err == nil {
		if !opts.ResetPassword {
			s.l.Info("admin already exists, skipped", zap.String("username", admin.Username))
			return &admin, nil
		}

		digest, err := s.hasher.Hash(opts.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		admin.PasswordHash = digest
		if err = s.db.WithContext(ctx).Save(&admin).Error; err != nil {
			return nil, fmt.Errorf("reset password: %w", err)
		}

		s.l.Info("admin password reset", zap.String("username", admin.Username))
		return &admin, nil
	}

	digest, err := s.hasher.Hash(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin = models.Admin{
		Username:     opts.Username,
		Email:        opts.Email,
		PasswordHash: digest,
	}
	if err = s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.l.Info("admin created", zap.String("username", admin.Username))
	return &admin, nil
}

// Content 只向空的集合写入示例内容，可以重复执行
func (s *Seeder) Content(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, s.l, "profile", []models.Profile{starterProfile}); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, s.l, "skills", starterSkills); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, s.l, "experience", starterExperience); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, s.l, "education", starterEducation); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, s.l, "certifications", starterCertifications); err != nil {
			return err
		}
		return seedIfEmpty(tx, s.l, "projects", starterProjects)
	})
}

func seedIfEmpty[M any](tx *gorm.DB, l *zap.Logger, name string, rows []M) error {
	var count int64
	if err := tx.Model(new(M)).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if count > 0 {
		l.Info("collection not empty, skipped", zap.String("collection", name), zap.Int64("count", count))
		return nil
	}

	// 复制一份，Create 会回写 ID
	items := append([]M(nil), rows...)
	if err := tx.Create(&items).Error; err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}

	l.Info("collection seeded", zap.String("collection", name), zap.Int("count", len(items)))
	return nil
}
