package types

import "time"

// ErrorMessage 是所有失败响应的统一格式
type ErrorMessage struct {
	Message string `json:"message"`
}

// Message 是没有实体返回的成功响应
type Message struct {
	Message string `json:"message"`
}

type AdminInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      AdminInfo `json:"user"`
}

type UploadResult struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type CreatedID struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
