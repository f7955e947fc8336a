package services

import (
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Role     string

	// partner profile
	Age        *int
	Gender     string
	Location   string
	Occupation string
	Education  string

	// business profile
	CompanyName string
	Industry    string
	Size        string
	Website     string
}

// Register creates the user together with its role profile. The role is
// fixed here and never updated afterwards.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	if in.Role != entity.RolePartner && in.Role != entity.RoleBusiness {
		return nil, NewInvalidError("role must be partner or business")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewConflictError("email already registered")
	}
	count, err = s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewConflictError("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		FullName: strings.TrimSpace(in.FullName),
		Role:     in.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		switch in.Role {
		case entity.RolePartner:
			return s.userRepo.CreatePartnerProfile(tx, &entity.PartnerProfile{
				UserID:     user.ID,
				Age:        in.Age,
				Gender:     in.Gender,
				Location:   in.Location,
				Occupation: in.Occupation,
				Education:  in.Education,
			})
		case entity.RoleBusiness:
			return s.userRepo.CreateBusinessProfile(tx, &entity.BusinessProfile{
				UserID:      user.ID,
				CompanyName: in.CompanyName,
				Industry:    in.Industry,
				Size:        in.Size,
				Website:     in.Website,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, NewUnauthorizedError("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, NewNotFoundError("user not found")
	}
	return user, nil
}
