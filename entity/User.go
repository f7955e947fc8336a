package entity

import (
	"gorm.io/gorm"
)

const (
	RolePartner  = "partner"
	RoleBusiness = "business"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null" json:"role"` // partner | business, fixed at registration

	// Relations — preload only when needed
	PartnerProfile  *PartnerProfile  `gorm:"foreignKey:UserID" json:"-"`
	BusinessProfile *BusinessProfile `gorm:"foreignKey:UserID" json:"-"`
	Surveys         []Survey         `gorm:"foreignKey:BusinessID" json:"-"`
	Responses       []SurveyResponse `gorm:"foreignKey:PartnerID" json:"-"`
	Rewards         []Reward         `gorm:"foreignKey:PartnerID" json:"-"`
	PayoutRequests  []PayoutRequest  `gorm:"foreignKey:PartnerID" json:"-"`
}
