package controller

import (
	"errors"
	"strconv"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username      *string  `json:"username"`
	FullName      *string  `json:"full_name"`
	Avatar        *string  `json:"avatar"`
	HardnessIndex *float64 `json:"hardness_index"`
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProfileRequest true "profile fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, service.ProfileUpdate{
		Username:      req.Username,
		FullName:      req.FullName,
		Avatar:        req.Avatar,
		HardnessIndex: req.HardnessIndex,
	})
	if err != nil {
		if errors.Is(err, util.ErrUsernameTaken) {
			util.Error(ctx, 409, "Username already taken")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// GetUsers godoc
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetUser godoc
// @Summary Get one user (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := c.UserService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// swagger:model AdminUpdateUserRequest
type AdminUpdateUserRequest struct {
	UpdateProfileRequest
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UpdateUser godoc
// @Summary Update a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body AdminUpdateUserRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req AdminUpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var role *model.UserRole
	if req.Role != nil {
		r := model.UserRole(*req.Role)
		if r != model.RoleUser && r != model.RoleAdmin {
			util.BadRequest(ctx, "role must be user or admin")
			return
		}
		role = &r
	}

	user, err := c.UserService.AdminUpdateUser(uint(id), service.AdminUpdate{
		ProfileUpdate: service.ProfileUpdate{
			Username:      req.Username,
			FullName:      req.FullName,
			Avatar:        req.Avatar,
			HardnessIndex: req.HardnessIndex,
		},
		Email:    req.Email,
		Role:     role,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, 409, "Username already taken")
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, 409, "Email already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == uint(id) {
		util.BadRequest(ctx, "cannot delete your own account")
		return
	}

	if err := c.UserService.Delete(uint(id)); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
