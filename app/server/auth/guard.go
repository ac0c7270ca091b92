package auth

import (
	"context"
	"errors"
	"fmt"
	"portfolio-cms/app/server/jwt"
	"portfolio-cms/app/server/models"
	"strings"
)

// Guard 在每个受保护的操作之前解析出当前管理员，本身没有任何副作用
type Guard struct {
	jwt    *jwt.JWT
	admins AdminStore
}

func NewGuard(j *jwt.JWT, admins AdminStore) *Guard {
	return &Guard{
		jwt:    j,
		admins: admins,
	}
}

// Resolve 的错误要么包含 ErrUnauthenticated ，要么是存储层的内部错误
func (g *Guard) Resolve(ctx context.Context, authHeader string) (*models.Admin, error) {
	// 提取 token
	if authHeader == "" {
		return nil, fmt.Errorf("%w: missing auth token", ErrUnauthenticated)
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return nil, fmt.Errorf("%w: invalid auth header", ErrUnauthenticated)
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return nil, fmt.Errorf("%w: unknown auth method: %s", ErrUnauthenticated, splits[0])
	}

	// 验证 token
	claims, err := g.jwt.ParseToken(splits[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	// 每次都要确认账户仍然存在，删除账户后旧 token 立即失效
	admin, err := g.admins.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return nil, fmt.Errorf("resolve admin: %w", err)
	}

	return admin, nil
}
