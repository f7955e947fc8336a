package services

import (
	"fmt"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// ResponseService handles survey submission. All side effects of one
// submission happen in a single transaction: response row, answer rows,
// counter increment, reward credit.
type ResponseService struct {
	DB           *gorm.DB
	responseRepo *repository.ResponseRepository
	surveyRepo   *repository.SurveyRepository
	rewardRepo   *repository.RewardRepository

	now func() time.Time
}

func NewResponseService(
	db *gorm.DB,
	responseRepo *repository.ResponseRepository,
	surveyRepo *repository.SurveyRepository,
	rewardRepo *repository.RewardRepository,
) *ResponseService {
	return &ResponseService{
		DB:           db,
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		rewardRepo:   rewardRepo,
		now:          time.Now,
	}
}

type AnswerIn struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Value      string `json:"value"`
}

// Submit records one partner response. Eligibility is re-validated here at
// write time; the earlier listing is not trusted. A response with zero
// answers is accepted. Returns the new response id.
func (s *ResponseService) Submit(partnerID, surveyID uint, answers []AnswerIn) (uint, error) {
	if _, err := s.surveyRepo.Get(surveyID); err != nil {
		return 0, NewNotFoundError("survey not found")
	}

	exists, err := s.responseRepo.Exists(partnerID, surveyID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, NewConflictError("you have already completed this survey")
	}

	var responseID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check status and expiry inside the transaction: a survey that
		// closed or expired between listing and submission must be rejected.
		current, err := s.surveyRepo.GetForUpdate(tx, surveyID)
		if err != nil {
			return NewNotFoundError("survey not found")
		}
		if current.Status != entity.SurveyStatusActive {
			return NewConflictError("survey is not active")
		}
		if current.Expired(s.now()) {
			return NewConflictError("survey has expired")
		}

		response := &entity.SurveyResponse{
			SurveyID:    surveyID,
			PartnerID:   partnerID,
			CompletedAt: s.now(),
		}
		if err := s.responseRepo.Create(tx, response); err != nil {
			if repository.IsUniqueViolation(err) {
				return NewConflictError("you have already completed this survey")
			}
			return err
		}

		for _, a := range answers {
			answer := &entity.Answer{
				ResponseID: response.ID,
				QuestionID: a.QuestionID,
				Value:      a.Value,
			}
			if err := s.responseRepo.CreateAnswer(tx, answer); err != nil {
				return err
			}
		}

		// Guarded increment; failing the capacity guard aborts everything.
		ok, err := s.surveyRepo.IncrementResponseCount(tx, surveyID)
		if err != nil {
			return err
		}
		if !ok {
			return NewConflictError("survey has reached its maximum responses")
		}

		if current.Reward > 0 {
			reward := &entity.Reward{
				PartnerID:   partnerID,
				Type:        entity.RewardTypeCash,
				Amount:      current.Reward,
				Description: fmt.Sprintf("Reward for completing %q", current.Title),
				SurveyID:    &current.ID,
			}
			if err := s.rewardRepo.Create(tx, reward); err != nil {
				return err
			}
		}

		responseID = response.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return responseID, nil
}
