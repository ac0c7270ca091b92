// Package password hashes and verifies admin passwords with argon2id.
package password

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"sync"
)

type Hasher struct {
	params *argon2id.Params

	dummyOnce sync.Once
	dummy     string
}

// New 使用给定的 argon2id 参数，传 nil 时使用库的默认参数
func New(params *argon2id.Params) *Hasher {
	if params == nil {
		params = argon2id.DefaultParams
	}
	return &Hasher{params: params}
}

// Hash 每次都会生成新的盐，同一个密码两次调用的结果不同
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password is empty")
	}

	digest, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}

	return digest, nil
}

// Verify 使用 digest 中记录的盐和参数重新计算，格式无效的 digest 一律视为不匹配
func (h *Hasher) Verify(plaintext, digest string) bool {
	match, err := argon2id.ComparePasswordAndHash(plaintext, digest)
	if err != nil {
		return false
	}
	return match
}

// VerifyDummy 和一个固定的 digest 做完整的比较，结果丢弃
// 用户不存在时调用，使登录耗时不暴露用户名是否存在
func (h *Hasher) VerifyDummy(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = argon2id.CreateHash("portfolio-cms-dummy-password", h.params)
	})
	h.Verify(plaintext, h.dummy)
}
