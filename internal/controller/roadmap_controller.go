package controller

import (
	"errors"
	"strconv"
	"strings"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	Generation *service.GenerationService
	Roadmaps   *service.RoadmapService
}

func NewRoadmapController(generation *service.GenerationService, roadmaps *service.RoadmapService) *RoadmapController {
	return &RoadmapController{
		Generation: generation,
		Roadmaps:   roadmaps,
	}
}

// swagger:model CreateRoadmapRequest
type CreateRoadmapRequest struct {
	Topic          string `json:"topic" binding:"required"`
	Time           string `json:"time" binding:"required"`
	KnowledgeLevel string `json:"knowledge_level" binding:"required,oneof='Absolute Beginner' Beginner Moderate Expert"`
}

// validDuration accepts "<positive int> Weeks|Months".
func validDuration(s string) bool {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return false
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n <= 0 {
		return false
	}
	return parts[1] == "Weeks" || parts[1] == "Months"
}

// Create godoc
// @Summary Generate a learning roadmap
// @Description Generates a week-keyed roadmap via the AI upstream and stores it for the current user. On upstream or parse failure a fixed fallback roadmap of the same shape is returned instead of an error.
// @Tags roadmap
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateRoadmapRequest true "roadmap parameters"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/roadmap [post]
func (c *RoadmapController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		util.BadRequest(ctx, "topic must not be blank")
		return
	}
	if !validDuration(req.Time) {
		util.BadRequest(ctx, "time must be a positive number of Weeks or Months, e.g. \"4 Weeks\"")
		return
	}

	data, usedFallback, err := c.Generation.GenerateRoadmap(ctx.Request.Context(), claims.UserID, service.RoadmapRequest{
		Topic:          req.Topic,
		Duration:       req.Time,
		KnowledgeLevel: req.KnowledgeLevel,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"topic":           req.Topic,
		"time":            req.Time,
		"knowledge_level": req.KnowledgeLevel,
		"roadmap_data":    data,
		"used_fallback":   usedFallback,
	})
}

// List godoc
// @Summary List roadmaps of the current user
// @Tags roadmap
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Roadmap}
// @Router /api/roadmap [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmaps, err := c.Roadmaps.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmaps)
}

// Get godoc
// @Summary Fetch one stored roadmap by topic
// @Description Topic matching is exact and case-sensitive.
// @Tags roadmap
// @Produce json
// @Security ApiKeyAuth
// @Param topic path string true "topic"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/{topic} [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topic := ctx.Param("topic")
	roadmap, data, err := c.Roadmaps.GetByTopic(claims.UserID, topic)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"id":              roadmap.ID,
		"topic":           roadmap.Topic,
		"time":            roadmap.Time,
		"knowledge_level": roadmap.KnowledgeLevel,
		"roadmap_data":    data,
		"created_at":      roadmap.CreatedAt,
	})
}

// Delete godoc
// @Summary Delete one stored roadmap by topic
// @Tags roadmap
// @Produce json
// @Security ApiKeyAuth
// @Param topic path string true "topic"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/roadmap/{topic} [delete]
func (c *RoadmapController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topic := ctx.Param("topic")
	if err := c.Roadmaps.Delete(claims.UserID, topic); err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": topic})
}
