package models

type Admin struct {
	Base

	Username     string `gorm:"column:username;uniqueIndex;not null" json:"username"` // 用户名，全局唯一，创建后不可修改
	Email        string `gorm:"column:email" json:"email"`                            // 邮箱，可修改
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`               // 密码，使用 argon2id 储存，不能输出
}
