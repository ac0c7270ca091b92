package models

import "time"

// Base 替代 gorm.Model ：内容都是硬删除，并且需要直接输出为 JSON
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
