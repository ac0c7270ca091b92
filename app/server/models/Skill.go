package models

type Skill struct {
	Base

	Name     string `gorm:"column:name" json:"name"`
	Category string `gorm:"column:category;index" json:"category"` // 分组展示用
	Order    int    `gorm:"column:sort_order" json:"order"`        // 同组内的排序
}
