package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PayoutStatusPending   = "pending"
	PayoutStatusApproved  = "approved"
	PayoutStatusRejected  = "rejected"
	PayoutStatusCompleted = "completed"
)

// PayoutRequest is a partner withdrawal ask. Only completed payouts reduce
// the computed cash balance.
type PayoutRequest struct {
	gorm.Model
	PartnerID uint `gorm:"index;not null" json:"partnerId"`
	Partner   User `json:"-"`

	Amount    int64  `gorm:"not null" json:"amount"` // minor currency units
	Status    string `gorm:"not null;default:pending" json:"status"`
	Reference string `gorm:"uniqueIndex" json:"reference"`

	RequestedAt time.Time  `gorm:"not null" json:"requestedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

func (PayoutRequest) TableName() string { return "payout_requests" }
