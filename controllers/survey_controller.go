package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	Surveys *services.SurveyService
}

func NewSurveyController(surveys *services.SurveyService) *SurveyController {
	return &SurveyController{Surveys: surveys}
}

// GET /api/surveys/:id — survey detail with questions, any authenticated
// user.
func (s *SurveyController) Detail(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	detail, err := s.Surveys.Detail(surveyID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}
