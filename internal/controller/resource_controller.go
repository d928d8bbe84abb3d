package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	Generation *service.GenerationService
}

func NewResourceController(generation *service.GenerationService) *ResourceController {
	return &ResourceController{Generation: generation}
}

// swagger:model GenerateResourceRequest
type GenerateResourceRequest struct {
	Course      string `json:"course" binding:"required"`
	Description string `json:"description" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

// Generate godoc
// @Summary Generate study resources for a subtopic
// @Description Returns a Markdown resource bundle. On upstream failure a fixed fallback bundle is returned instead of an error. Resources are not stored.
// @Tags resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateResourceRequest true "resource parameters"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/resources/generate [post]
func (c *ResourceController) Generate(ctx *gin.Context) {
	var req GenerateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	body, usedFallback := c.Generation.GenerateResources(ctx.Request.Context(), service.ResourceRequest{
		Course:      req.Course,
		Description: req.Description,
		Time:        req.Time,
	})

	util.Success(ctx, gin.H{
		"resources":     body,
		"used_fallback": usedFallback,
	})
}
