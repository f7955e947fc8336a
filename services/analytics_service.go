package services

import (
	"time"

	"backend/repository"
)

const responseCountsWindowDays = 30

// AnalyticsService serves business-facing reporting. Every query is gated
// on survey ownership.
type AnalyticsService struct {
	surveyRepo    *repository.SurveyRepository
	analyticsRepo *repository.AnalyticsRepository

	now func() time.Time
}

func NewAnalyticsService(surveyRepo *repository.SurveyRepository, analyticsRepo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		surveyRepo:    surveyRepo,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// ownedSurvey resolves the survey and enforces that the caller owns it.
func (s *AnalyticsService) ownedSurvey(businessID, surveyID uint) error {
	survey, err := s.surveyRepo.Get(surveyID)
	if err != nil {
		return NewNotFoundError("survey not found")
	}
	if survey.BusinessID != businessID {
		return NewForbiddenError("you don't have access to this survey")
	}
	return nil
}

type ResponseCounts struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
}

// ResponseCounts returns per-day response counts over the trailing 30 days,
// zero-filled so the two slices always hold one entry per day.
func (s *AnalyticsService) ResponseCounts(businessID, surveyID uint) (*ResponseCounts, error) {
	if err := s.ownedSurvey(businessID, surveyID); err != nil {
		return nil, err
	}

	days := responseCountsWindowDays
	today := s.now().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	rows, err := s.analyticsRepo.ResponseCountsByDay(surveyID, since)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Count
	}

	out := &ResponseCounts{
		Dates:  make([]string, 0, days),
		Counts: make([]int, 0, days),
	}
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		out.Dates = append(out.Dates, day.Format("Jan 02"))
		out.Counts = append(out.Counts, byDay[day.Format("2006-01-02")])
	}
	return out, nil
}

type Demographics struct {
	Age      []repository.BucketCountRow `json:"age"`
	Gender   []repository.BucketCountRow `json:"gender"`
	Location []repository.BucketCountRow `json:"location"`
}

func (s *AnalyticsService) Demographics(businessID, surveyID uint) (*Demographics, error) {
	if err := s.ownedSurvey(businessID, surveyID); err != nil {
		return nil, err
	}

	age, err := s.analyticsRepo.AgeDistribution(surveyID)
	if err != nil {
		return nil, err
	}
	gender, err := s.analyticsRepo.GenderDistribution(surveyID)
	if err != nil {
		return nil, err
	}
	location, err := s.analyticsRepo.LocationDistribution(surveyID)
	if err != nil {
		return nil, err
	}
	return &Demographics{Age: age, Gender: gender, Location: location}, nil
}
