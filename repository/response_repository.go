package repository

import (
	"errors"
	"strings"

	"backend/entity"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(tx *gorm.DB, resp *entity.SurveyResponse) error {
	return tx.Create(resp).Error
}

func (r *ResponseRepository) CreateAnswer(tx *gorm.DB, a *entity.Answer) error {
	return tx.Create(a).Error
}

// Exists reports whether the partner already answered the survey.
func (r *ResponseRepository) Exists(partnerID, surveyID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.SurveyResponse{}).
		Where("partner_id = ? AND survey_id = ?", partnerID, surveyID).
		Count(&count).Error
	return count > 0, err
}

func (r *ResponseRepository) ListBySurvey(surveyID uint) ([]entity.SurveyResponse, error) {
	var out []entity.SurveyResponse
	err := r.DB.Where("survey_id = ?", surveyID).
		Order("completed_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ResponseRepository) AnswersByResponse(responseID uint) ([]entity.Answer, error) {
	var out []entity.Answer
	err := r.DB.Where("response_id = ?", responseID).Find(&out).Error
	return out, err
}

// IsUniqueViolation distinguishes the constraint race loser from other DB
// failures. gorm surfaces it as ErrDuplicatedKey on drivers with translated
// errors; sqlite reports the raw UNIQUE message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
