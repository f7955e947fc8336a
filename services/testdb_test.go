package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database and migrates the schema.
// cache=shared keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.PartnerProfile{}, &entity.BusinessProfile{},
		&entity.Survey{}, &entity.Question{},
		&entity.SurveyResponse{}, &entity.Answer{},
		&entity.Reward{}, &entity.PayoutRequest{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db *gorm.DB

	userRepo      *repository.UserRepository
	surveyRepo    *repository.SurveyRepository
	responseRepo  *repository.ResponseRepository
	rewardRepo    *repository.RewardRepository
	payoutRepo    *repository.PayoutRepository
	analyticsRepo *repository.AnalyticsRepository

	auth      *AuthService
	surveys   *SurveyService
	responses *ResponseService
	wallet    *WalletService
	payouts   *PayoutService
	analytics *AnalyticsService
	export    *ExportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		surveyRepo:    repository.NewSurveyRepository(db),
		responseRepo:  repository.NewResponseRepository(db),
		rewardRepo:    repository.NewRewardRepository(db),
		payoutRepo:    repository.NewPayoutRepository(db),
		analyticsRepo: repository.NewAnalyticsRepository(db),
	}
	f.auth = NewAuthService(db, f.userRepo, "test-secret", time.Hour)
	f.surveys = NewSurveyService(db, f.surveyRepo, f.userRepo)
	f.responses = NewResponseService(db, f.responseRepo, f.surveyRepo, f.rewardRepo)
	f.wallet = NewWalletService(f.rewardRepo, f.payoutRepo)
	f.payouts = NewPayoutService(f.payoutRepo, f.wallet)
	f.analytics = NewAnalyticsService(f.surveyRepo, f.analyticsRepo)
	f.export = NewExportService(f.surveyRepo, f.responseRepo)
	return f
}

func (f *fixture) createUser(t *testing.T, role, email string) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &entity.User{
		Email:    email,
		Username: strings.SplitN(email, "@", 2)[0],
		Password: string(hash),
		Role:     role,
	}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (f *fixture) createPartner(t *testing.T, email string) *entity.User {
	t.Helper()
	user := f.createUser(t, entity.RolePartner, email)
	if err := f.db.Create(&entity.PartnerProfile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("create partner profile: %v", err)
	}
	return user
}

func (f *fixture) createPartnerWithProfile(t *testing.T, email string, age *int, gender, location string) *entity.User {
	t.Helper()
	user := f.createUser(t, entity.RolePartner, email)
	profile := &entity.PartnerProfile{UserID: user.ID, Age: age, Gender: gender, Location: location}
	if err := f.db.Create(profile).Error; err != nil {
		t.Fatalf("create partner profile: %v", err)
	}
	return user
}

func (f *fixture) createBusiness(t *testing.T, email string) *entity.User {
	t.Helper()
	user := f.createUser(t, entity.RoleBusiness, email)
	if err := f.db.Create(&entity.BusinessProfile{UserID: user.ID, CompanyName: "Acme"}).Error; err != nil {
		t.Fatalf("create business profile: %v", err)
	}
	return user
}

func (f *fixture) createSurvey(t *testing.T, s *entity.Survey) *entity.Survey {
	t.Helper()
	if s.Status == "" {
		s.Status = entity.SurveyStatusActive
	}
	if err := f.db.Create(s).Error; err != nil {
		t.Fatalf("create survey: %v", err)
	}
	return s
}

func (f *fixture) createQuestion(t *testing.T, q *entity.Question) *entity.Question {
	t.Helper()
	if err := f.db.Create(q).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func errCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	se, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	return se.Code
}
