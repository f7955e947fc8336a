package entity

import (
	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
	QuestionTypeRating         = "rating"
)

type Question struct {
	gorm.Model
	SurveyID uint   `gorm:"index;not null" json:"surveyId"`
	Survey   Survey `json:"-"`

	Text       string `gorm:"not null" json:"text"`
	Type       string `gorm:"not null" json:"type"`
	Options    string `json:"-"` // JSON-encoded string list, multiple_choice only
	IsRequired bool   `gorm:"default:true" json:"isRequired"`
	Order      int    `gorm:"not null" json:"order"`

	Answers []Answer `json:"-"`
}
