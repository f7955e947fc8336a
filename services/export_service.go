package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"backend/repository"
)

// ExportService renders survey results as a wide-format CSV: one row per
// response, one column per question.
type ExportService struct {
	surveyRepo   *repository.SurveyRepository
	responseRepo *repository.ResponseRepository
}

func NewExportService(surveyRepo *repository.SurveyRepository, responseRepo *repository.ResponseRepository) *ExportService {
	return &ExportService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

// ResultsCSV produces the export for an owned survey. Header is
// "Response ID, Completed At" followed by the question texts in question
// order; a cell is empty when the response carries no answer for that
// question.
func (s *ExportService) ResultsCSV(businessID, surveyID uint) ([]byte, error) {
	survey, err := s.surveyRepo.Get(surveyID)
	if err != nil {
		return nil, NewNotFoundError("survey not found")
	}
	if survey.BusinessID != businessID {
		return nil, NewForbiddenError("you don't have access to this survey")
	}

	questions, err := s.surveyRepo.Questions(surveyID)
	if err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.ListBySurvey(surveyID)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, 2+len(questions))
	header = append(header, "Response ID", "Completed At")
	for _, q := range questions {
		header = append(header, q.Text)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, resp := range responses {
		answers, err := s.responseRepo.AnswersByResponse(resp.ID)
		if err != nil {
			return nil, err
		}
		byQuestion := make(map[uint]string, len(answers))
		for _, a := range answers {
			byQuestion[a.QuestionID] = a.Value
		}

		row := make([]string, 0, len(header))
		row = append(row,
			strconv.FormatUint(uint64(resp.ID), 10),
			resp.CompletedAt.Format(time.RFC3339),
		)
		for _, q := range questions {
			row = append(row, byQuestion[q.ID])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
