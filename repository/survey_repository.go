package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) Get(id uint) (*entity.Survey, error) {
	var s entity.Survey
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetForUpdate reloads the survey inside a transaction, for write-time
// re-validation of status and expiry.
func (r *SurveyRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.Survey, error) {
	var s entity.Survey
	if err := tx.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SurveyRepository) Questions(surveyID uint) ([]entity.Question, error) {
	var qs []entity.Question
	err := r.DB.Where("survey_id = ?", surveyID).Order("\"order\" ASC").Find(&qs).Error
	return qs, err
}

// AvailableSurveyRow is the eligibility listing shape sent to partners.
type AvailableSurveyRow struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedTime int        `json:"estimatedTime"`
	Reward        int64      `json:"reward"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	QuestionCount int        `json:"questionCount"`
}

// ListAvailableForPartner returns active surveys the partner has not
// answered, below capacity and unexpired. Ordering is insertion order; no
// stronger guarantee is made.
func (r *SurveyRepository) ListAvailableForPartner(partnerID uint, now time.Time) ([]AvailableSurveyRow, error) {
	answered := r.DB.Model(&entity.SurveyResponse{}).
		Select("survey_id").
		Where("partner_id = ?", partnerID)

	var out []AvailableSurveyRow
	err := r.DB.Model(&entity.Survey{}).
		Select(`surveys.id, surveys.title, surveys.description, surveys.estimated_time,
			surveys.reward, surveys.expires_at,
			(SELECT COUNT(*) FROM questions q WHERE q.survey_id = surveys.id AND q.deleted_at IS NULL) AS question_count`).
		Where("surveys.status = ?", entity.SurveyStatusActive).
		Where("surveys.id NOT IN (?)", answered).
		Where("surveys.max_responses IS NULL OR surveys.response_count < surveys.max_responses").
		Where("surveys.expires_at IS NULL OR surveys.expires_at > ?", now).
		Order("surveys.id ASC").
		Scan(&out).Error
	return out, err
}

type CompletedSurveyRow struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int64     `json:"reward"`
	CompletedAt time.Time `json:"completedAt"`
}

func (r *SurveyRepository) ListCompletedForPartner(partnerID uint) ([]CompletedSurveyRow, error) {
	var out []CompletedSurveyRow
	err := r.DB.Table("survey_responses AS sr").
		Select("s.id, s.title, s.description, s.reward, sr.completed_at").
		Joins("JOIN surveys s ON s.id = sr.survey_id").
		Where("sr.partner_id = ? AND sr.deleted_at IS NULL", partnerID).
		Order("sr.completed_at DESC").
		Scan(&out).Error
	return out, err
}

type BusinessSurveyRow struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Reward        int64      `json:"reward"`
	ResponseCount int        `json:"responseCount"`
	MaxResponses  *int       `json:"maxResponses,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	QuestionCount int        `json:"questionCount"`
}

func (r *SurveyRepository) ListForBusiness(businessID uint) ([]BusinessSurveyRow, error) {
	var out []BusinessSurveyRow
	err := r.DB.Model(&entity.Survey{}).
		Select(`surveys.id, surveys.title, surveys.description, surveys.status, surveys.reward,
			surveys.response_count, surveys.max_responses, surveys.expires_at, surveys.created_at,
			(SELECT COUNT(*) FROM questions q WHERE q.survey_id = surveys.id AND q.deleted_at IS NULL) AS question_count`).
		Where("surveys.business_id = ?", businessID).
		Order("surveys.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *SurveyRepository) Create(tx *gorm.DB, s *entity.Survey) error {
	return tx.Create(s).Error
}

func (r *SurveyRepository) CreateQuestion(tx *gorm.DB, q *entity.Question) error {
	return tx.Create(q).Error
}

// IncrementResponseCount bumps the denormalized counter with a
// capacity-guarded UPDATE. Returns false when the survey is already full,
// without modifying the row.
func (r *SurveyRepository) IncrementResponseCount(tx *gorm.DB, surveyID uint) (bool, error) {
	res := tx.Model(&entity.Survey{}).
		Where("id = ?", surveyID).
		Where("max_responses IS NULL OR response_count < max_responses").
		Update("response_count", gorm.Expr("response_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
