package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	SurveyStatusDraft     = "draft"
	SurveyStatusActive    = "active"
	SurveyStatusCompleted = "completed"
)

type Survey struct {
	gorm.Model
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Status        string     `gorm:"not null;default:draft" json:"status"`
	EstimatedTime int        `json:"estimatedTime"` // minutes
	Reward        int64      `json:"reward"`        // minor currency units
	MaxResponses  *int       `json:"maxResponses,omitempty"`
	ResponseCount int        `gorm:"not null;default:0" json:"responseCount"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`

	BusinessID uint `gorm:"index;not null" json:"businessId"`
	Business   User `json:"-"` // preload only for detail views

	Questions []Question       `json:"-"`
	Responses []SurveyResponse `json:"-"`
}

// Expired reports whether the expiry timestamp has passed. A survey with no
// expiry never expires.
func (s *Survey) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}
