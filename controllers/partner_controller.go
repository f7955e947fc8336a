package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// PartnerController serves the survey-taking side: eligible surveys,
// submissions, rewards, wallet and payouts.
type PartnerController struct {
	Surveys   *services.SurveyService
	Responses *services.ResponseService
	Wallet    *services.WalletService
	Payouts   *services.PayoutService
}

func NewPartnerController(
	surveys *services.SurveyService,
	responses *services.ResponseService,
	wallet *services.WalletService,
	payouts *services.PayoutService,
) *PartnerController {
	return &PartnerController{Surveys: surveys, Responses: responses, Wallet: wallet, Payouts: payouts}
}

// GET /api/partner/surveys
func (p *PartnerController) AvailableSurveys(c *gin.Context) {
	surveys, err := p.Surveys.AvailableForPartner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, surveys)
}

// GET /api/partner/surveys/completed
func (p *PartnerController) CompletedSurveys(c *gin.Context) {
	surveys, err := p.Surveys.CompletedForPartner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, surveys)
}

type SubmitResponseRequest struct {
	Answers []services.AnswerIn `json:"answers"`
}

// POST /api/partner/surveys/:id/responses
func (p *PartnerController) SubmitResponse(c *gin.Context) {
	surveyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid survey id")
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	responseID, err := p.Responses.Submit(utils.CurrentUserID(c), uint(surveyID), req.Answers)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"responseId": responseID})
}

// GET /api/partner/rewards
func (p *PartnerController) Rewards(c *gin.Context) {
	rewards, err := p.Wallet.RewardsFor(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rewards)
}

// GET /api/partner/wallet
func (p *PartnerController) WalletSummary(c *gin.Context) {
	wallet, err := p.Wallet.WalletFor(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, wallet)
}

type CreatePayoutRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// POST /api/partner/payouts
func (p *PartnerController) CreatePayout(c *gin.Context) {
	var req CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payout, err := p.Payouts.Request(utils.CurrentUserID(c), req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, payout)
}

// GET /api/partner/payouts
func (p *PartnerController) ListPayouts(c *gin.Context) {
	payouts, err := p.Payouts.ListForPartner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payouts)
}
