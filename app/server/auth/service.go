package auth

import (
	"context"
	"errors"
	"fmt"
	"portfolio-cms/app/server/jwt"
	"portfolio-cms/app/server/models"
	"time"
)

// PasswordHasher 由 password.Hasher 实现
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
	VerifyDummy(plaintext string)
}

type Service struct {
	admins AdminStore
	hasher PasswordHasher
	jwt    *jwt.JWT
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *models.Admin
}

func NewService(admins AdminStore, hasher PasswordHasher, j *jwt.JWT) *Service {
	return &Service{
		admins: admins,
		hasher: hasher,
		jwt:    j,
	}
}

// Login 对“用户不存在”和“密码错误”返回同样的 ErrUnauthenticated
func (s *Service) Login(ctx context.Context, username, plaintext string) (*LoginResult, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.hasher.VerifyDummy(plaintext)
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	// 只和储存的 hash 比较
	if !s.hasher.Verify(plaintext, admin.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
	}

	// 签出 JWT
	token, claims, err := s.jwt.SignToken(admin.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.Expires,
		Admin:     admin,
	}, nil
}

// ChangePassword 要求再次提供当前密码，只有 token 不足以修改密码
func (s *Service) ChangePassword(ctx context.Context, admin *models.Admin, current, next string) error {
	if !s.hasher.Verify(current, admin.PasswordHash) {
		return ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err := s.admins.UpdatePasswordHash(ctx, admin.ID, digest); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("change password: %w", err)
	}

	return nil
}

func (s *Service) ChangeEmail(ctx context.Context, admin *models.Admin, email string) error {
	if err := s.admins.UpdateEmail(ctx, admin.ID, email); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("change email: %w", err)
	}

	return nil
}

// Logout 不改变服务端状态，token 由客户端丢弃，直到自然过期前都仍然有效
func (s *Service) Logout(_ context.Context, _ *models.Admin) error {
	return nil
}
