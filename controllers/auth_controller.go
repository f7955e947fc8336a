package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName"`
	Role     string `json:"role" binding:"required,oneof=partner business"`

	// partner demographics (optional)
	Age        *int   `json:"age"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
	Education  string `json:"education"`

	// business profile
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Website     string `json:"website"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(services.RegisterInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        req.Role,
		Age:         req.Age,
		Gender:      req.Gender,
		Location:    req.Location,
		Occupation:  req.Occupation,
		Education:   req.Education,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Size:        req.Size,
		Website:     req.Website,
	})
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "username": user.Username,
		"fullName": user.FullName, "role": user.Role,
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "username": user.Username,
			"fullName": user.FullName, "role": user.Role,
		},
	})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "username": user.Username,
		"fullName": user.FullName, "role": user.Role,
	})
}
