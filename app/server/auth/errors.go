package auth

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")     // 没有、无效、过期或孤立的 token ，以及错误的登录凭据
	ErrInvalidCredentials = errors.New("invalid credentials") // 修改密码时当前密码不正确
	ErrNotFound           = errors.New("admin not found")     // 管理员记录不存在
)
