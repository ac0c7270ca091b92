package models

type Certification struct {
	Base

	Name                string `gorm:"column:name" json:"name"`
	IssuingOrganization string `gorm:"column:issuing_organization" json:"issuing_organization"`
	Year                string `gorm:"column:year" json:"year"`
	CertificateURL      string `gorm:"column:certificate_url" json:"certificate_url"`
	Order               int    `gorm:"column:sort_order" json:"order"`
}
