package models

import "time"

const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

// Message 是访客通过联系表单提交的留言
type Message struct {
	Base

	Name    string     `gorm:"column:name" json:"name"`
	Email   string     `gorm:"column:email" json:"email"`
	Message string     `gorm:"column:message" json:"message"`
	Status  string     `gorm:"column:status;index" json:"status"`
	ReadAt  *time.Time `gorm:"column:read_at" json:"read_at"`
}
