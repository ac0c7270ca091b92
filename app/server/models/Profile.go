package models

// Profile 是单例记录，只会有一条
type Profile struct {
	Base

	Name         string `gorm:"column:name" json:"name"`
	Title        string `gorm:"column:title" json:"title"`
	Headline     string `gorm:"column:headline" json:"headline"`
	About        string `gorm:"column:about" json:"about"`
	Email        string `gorm:"column:email" json:"email"`
	Phone        string `gorm:"column:phone" json:"phone"`
	Location     string `gorm:"column:location" json:"location"`
	LinkedIn     string `gorm:"column:linkedin" json:"linkedin"`
	GitHub       string `gorm:"column:github" json:"github"`
	ProfilePhoto string `gorm:"column:profile_photo" json:"profile_photo"` // 上传后的访问路径
	ResumeURL    string `gorm:"column:resume_url" json:"resume_url"`       // 上传后的访问路径
}
