package entity

import (
	"gorm.io/gorm"
)

type BusinessProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	CompanyName string `gorm:"not null" json:"companyName"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website"`
}
