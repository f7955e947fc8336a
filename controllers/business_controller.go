package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// BusinessController serves the survey-authoring side: survey CRUD and
// result reporting.
type BusinessController struct {
	Surveys   *services.SurveyService
	Analytics *services.AnalyticsService
	Export    *services.ExportService
}

func NewBusinessController(
	surveys *services.SurveyService,
	analytics *services.AnalyticsService,
	export *services.ExportService,
) *BusinessController {
	return &BusinessController{Surveys: surveys, Analytics: analytics, Export: export}
}

// GET /api/business/surveys
func (b *BusinessController) ListSurveys(c *gin.Context) {
	surveys, err := b.Surveys.ListForBusiness(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, surveys)
}

// POST /api/business/surveys
func (b *BusinessController) CreateSurvey(c *gin.Context) {
	var req services.CreateSurveyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	survey, err := b.Surveys.Create(utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, survey)
}

// GET /api/business/surveys/:id/results/counts
func (b *BusinessController) ResponseCounts(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	counts, err := b.Analytics.ResponseCounts(utils.CurrentUserID(c), surveyID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /api/business/surveys/:id/results/demographics
func (b *BusinessController) Demographics(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	demo, err := b.Analytics.Demographics(utils.CurrentUserID(c), surveyID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, demo)
}

// GET /api/business/surveys/:id/results/export
func (b *BusinessController) ExportResults(c *gin.Context) {
	surveyID, ok := surveyIDParam(c)
	if !ok {
		return
	}
	data, err := b.Export.ResultsCSV(utils.CurrentUserID(c), surveyID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"survey_%d_results.csv\"", surveyID))
	c.Data(http.StatusOK, "text/csv", data)
}

func surveyIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid survey id")
		return 0, false
	}
	return uint(id), true
}
