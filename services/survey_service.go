package services

import (
	"encoding/json"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// SurveyService covers survey authoring, listing and the partner-facing
// eligibility filter.
type SurveyService struct {
	DB         *gorm.DB
	surveyRepo *repository.SurveyRepository
	userRepo   *repository.UserRepository

	now func() time.Time
}

func NewSurveyService(db *gorm.DB, surveyRepo *repository.SurveyRepository, userRepo *repository.UserRepository) *SurveyService {
	return &SurveyService{
		DB:         db,
		surveyRepo: surveyRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// AvailableForPartner computes the surveys the partner may currently take:
// active, not yet answered by the partner, under the response cap, and not
// expired. The listing is advisory; submission re-validates every condition.
func (s *SurveyService) AvailableForPartner(partnerID uint) ([]repository.AvailableSurveyRow, error) {
	ok, err := s.userRepo.IsPartner(partnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("partner not found")
	}
	return s.surveyRepo.ListAvailableForPartner(partnerID, s.now())
}

func (s *SurveyService) CompletedForPartner(partnerID uint) ([]repository.CompletedSurveyRow, error) {
	return s.surveyRepo.ListCompletedForPartner(partnerID)
}

func (s *SurveyService) ListForBusiness(businessID uint) ([]repository.BusinessSurveyRow, error) {
	return s.surveyRepo.ListForBusiness(businessID)
}

type QuestionOut struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	IsRequired bool     `json:"isRequired"`
	Order      int      `json:"order"`
}

type SurveyDetail struct {
	Survey    *entity.Survey `json:"survey"`
	Questions []QuestionOut  `json:"questions"`
}

// Detail returns a survey with its questions in question order.
func (s *SurveyService) Detail(surveyID uint) (*SurveyDetail, error) {
	survey, err := s.surveyRepo.Get(surveyID)
	if err != nil {
		return nil, NewNotFoundError("survey not found")
	}
	questions, err := s.surveyRepo.Questions(surveyID)
	if err != nil {
		return nil, err
	}

	out := make([]QuestionOut, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionOut{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Options:    decodeOptions(q.Options),
			IsRequired: q.IsRequired,
			Order:      q.Order,
		})
	}
	return &SurveyDetail{Survey: survey, Questions: out}, nil
}

type QuestionIn struct {
	Text       string   `json:"text" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=multiple_choice text rating"`
	Options    []string `json:"options"`
	IsRequired *bool    `json:"isRequired"`
}

type CreateSurveyInput struct {
	Title         string       `json:"title" binding:"required"`
	Description   string       `json:"description"`
	EstimatedTime int          `json:"estimatedTime"`
	Reward        int64        `json:"reward"` // whole currency units from the client
	MaxResponses  *int         `json:"maxResponses"`
	ExpiresAt     *time.Time   `json:"expiresAt"`
	Questions     []QuestionIn `json:"questions"`
}

// Create stores a new active survey with its questions. The reward arrives
// in whole currency units and is scaled to minor units (x100) here; every
// later credit and balance computation stays in minor units.
func (s *SurveyService) Create(businessID uint, in CreateSurveyInput) (*entity.Survey, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewInvalidError("title is required")
	}
	if in.Reward < 0 {
		return nil, NewInvalidError("reward must not be negative")
	}
	if in.MaxResponses != nil && *in.MaxResponses <= 0 {
		return nil, NewInvalidError("maxResponses must be positive when set")
	}

	survey := &entity.Survey{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Status:        entity.SurveyStatusActive,
		EstimatedTime: in.EstimatedTime,
		Reward:        in.Reward * 100,
		MaxResponses:  in.MaxResponses,
		ExpiresAt:     in.ExpiresAt,
		BusinessID:    businessID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.surveyRepo.Create(tx, survey); err != nil {
			return err
		}
		for i, q := range in.Questions {
			required := true
			if q.IsRequired != nil {
				required = *q.IsRequired
			}
			question := &entity.Question{
				SurveyID:   survey.ID,
				Text:       q.Text,
				Type:       q.Type,
				Options:    encodeOptions(q.Options),
				IsRequired: required,
				Order:      i + 1,
			}
			if err := s.surveyRepo.CreateQuestion(tx, question); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return survey, nil
}

func encodeOptions(opts []string) string {
	if len(opts) == 0 {
		return ""
	}
	b, _ := json.Marshal(opts)
	return string(b)
}

func decodeOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil
	}
	return opts
}
