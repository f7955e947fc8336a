package entity

import (
	"gorm.io/gorm"
)

// Demographic attributes joined into survey reporting.
type PartnerProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Age        *int   `json:"age,omitempty"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
	Education  string `json:"education"`
}
