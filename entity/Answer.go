package entity

import (
	"gorm.io/gorm"
)

// Answer stores every value as text; ratings and selected options are kept
// as their string representation.
type Answer struct {
	gorm.Model
	ResponseID uint           `gorm:"index;not null" json:"responseId"`
	Response   SurveyResponse `gorm:"foreignKey:ResponseID" json:"-"`

	QuestionID uint     `gorm:"index;not null" json:"questionId"`
	Question   Question `json:"-"`

	Value string `json:"value"`
}
