package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	surveySvc := services.NewSurveyService(db, surveyRepo, userRepo)
	responseSvc := services.NewResponseService(db, responseRepo, surveyRepo, rewardRepo)
	walletSvc := services.NewWalletService(rewardRepo, payoutRepo)
	payoutSvc := services.NewPayoutService(payoutRepo, walletSvc)
	analyticsSvc := services.NewAnalyticsService(surveyRepo, analyticsRepo)
	exportSvc := services.NewExportService(surveyRepo, responseRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	surveyCtrl := controllers.NewSurveyController(surveySvc)
	partnerCtrl := controllers.NewPartnerController(surveySvc, responseSvc, walletSvc, payoutSvc)
	businessCtrl := controllers.NewBusinessController(surveySvc, analyticsSvc, exportSvc)

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", middlewares.LoginRateLimit(rate.Limit(5), 10), authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Survey detail (any authenticated user)
	api.GET("/surveys/:id", middlewares.AuthMiddleware(cfg.JWTSecret), surveyCtrl.Detail)

	// Partner (survey takers)
	partner := api.Group("/partner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolePartner))
	{
		partner.GET("/surveys", partnerCtrl.AvailableSurveys)
		partner.GET("/surveys/completed", partnerCtrl.CompletedSurveys)
		partner.POST("/surveys/:id/responses", partnerCtrl.SubmitResponse)
		partner.GET("/rewards", partnerCtrl.Rewards)
		partner.GET("/wallet", partnerCtrl.WalletSummary)
		partner.GET("/payouts", partnerCtrl.ListPayouts)
		partner.POST("/payouts", partnerCtrl.CreatePayout)
	}

	// Business (survey authors)
	business := api.Group("/business", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleBusiness))
	{
		business.GET("/surveys", businessCtrl.ListSurveys)
		business.POST("/surveys", businessCtrl.CreateSurvey)
		business.GET("/surveys/:id/results/counts", businessCtrl.ResponseCounts)
		business.GET("/surveys/:id/results/demographics", businessCtrl.Demographics)
		business.GET("/surveys/:id/results/export", businessCtrl.ExportResults)
	}
}
