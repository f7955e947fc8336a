package entity

import (
	"time"

	"gorm.io/gorm"
)

type SurveyResponse struct {
	gorm.Model
	// Composite unique index: at most one response per (partner, survey),
	// enforced by the store so concurrent submissions cannot both win.
	SurveyID  uint   `gorm:"index:uniq_partner_response,unique" json:"surveyId"`
	Survey    Survey `json:"-"`
	PartnerID uint   `gorm:"index:uniq_partner_response,unique" json:"partnerId"`
	Partner   User   `json:"-"`

	CompletedAt time.Time `gorm:"not null" json:"completedAt"`

	Answers []Answer `gorm:"foreignKey:ResponseID" json:"-"`
}

func (SurveyResponse) TableName() string { return "survey_responses" }
