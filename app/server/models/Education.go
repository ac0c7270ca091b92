package models

type Education struct {
	Base

	Degree       string   `gorm:"column:degree" json:"degree"`
	Institution  string   `gorm:"column:institution" json:"institution"`
	FieldOfStudy string   `gorm:"column:field_of_study" json:"field_of_study"`
	Location     string   `gorm:"column:location" json:"location"`
	Period       string   `gorm:"column:period" json:"period"`
	Description  string   `gorm:"column:description" json:"description"`
	Highlights   []string `gorm:"column:highlights;serializer:json" json:"highlights"`
	Order        int      `gorm:"column:sort_order" json:"order"`
}
