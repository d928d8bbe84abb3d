package controller

import (
	"errors"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and returns a JWT token plus the user profile
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration data"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Role:     model.RoleUser,
		IsActive: true,
	}

	if err := c.AuthService.Register(user); err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, 409, "Email already registered")
		case errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, 409, "Username already taken")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, _, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT token plus the user profile
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user)
}
