package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RewardTypeCash   = "cash"
	RewardTypeCoupon = "coupon"
)

// Reward is a credit event for a partner. Cash rewards feed the wallet
// balance; coupons are counted but carry no cash value.
type Reward struct {
	gorm.Model
	PartnerID uint `gorm:"index;not null" json:"partnerId"`
	Partner   User `json:"-"`

	Type        string `gorm:"not null" json:"type"`
	Amount      int64  `gorm:"not null" json:"amount"` // minor currency units
	Description string `json:"description"`

	SurveyID  *uint      `json:"surveyId,omitempty"`
	Survey    *Survey    `json:"-"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"` // coupons only, informational
}
