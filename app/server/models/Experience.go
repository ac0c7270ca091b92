package models

type Experience struct {
	Base

	Title            string   `gorm:"column:title" json:"title"`
	Company          string   `gorm:"column:company" json:"company"`
	Location         string   `gorm:"column:location" json:"location"`
	Period           string   `gorm:"column:period" json:"period"` // 展示用的时间段文本，例如 03/2023 – 08/2023
	Responsibilities []string `gorm:"column:responsibilities;serializer:json" json:"responsibilities"`
	Order            int      `gorm:"column:sort_order" json:"order"`
}
