package controller

import (
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Generation *service.GenerationService
	QuizStats  *service.QuizStatService
}

func NewQuizController(generation *service.GenerationService, quizStats *service.QuizStatService) *QuizController {
	return &QuizController{
		Generation: generation,
		QuizStats:  quizStats,
	}
}

// swagger:model GenerateQuizRequest
type GenerateQuizRequest struct {
	Course      string `json:"course" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Subtopic    string `json:"subtopic" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Generate godoc
// @Summary Generate a quiz for a subtopic
// @Description Returns 5 multiple-choice questions. On upstream or parse failure a fixed fallback quiz of the same shape is returned instead of an error. Quizzes are not stored.
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateQuizRequest true "quiz parameters"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/quiz/generate [post]
func (c *QuizController) Generate(ctx *gin.Context) {
	var req GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, usedFallback := c.Generation.GenerateQuiz(ctx.Request.Context(), service.QuizRequest{
		Course:      req.Course,
		Topic:       req.Topic,
		Subtopic:    req.Subtopic,
		Description: req.Description,
	})

	util.Success(ctx, gin.H{
		"questions":     questions,
		"used_fallback": usedFallback,
	})
}

// swagger:model QuizStatRequest
type QuizStatRequest struct {
	Topic        string `json:"topic" binding:"required"`
	WeekNum      int    `json:"week_num" binding:"required,min=1"`
	SubtopicNum  int    `json:"subtopic_num" binding:"required,min=1"`
	NumCorrect   int    `json:"num_correct" binding:"min=0"`
	NumQuestions int    `json:"num_questions" binding:"required,min=1"`
	TimeTaken    int    `json:"time_taken" binding:"min=0"`
}

// RecordStat godoc
// @Summary Record a quiz result
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizStatRequest true "quiz result"
// @Success 201 {object} util.Response{data=model.QuizStat}
// @Failure 400 {object} util.Response
// @Router /api/quiz/stats [post]
func (c *QuizController) RecordStat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizStatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.NumCorrect > req.NumQuestions {
		util.BadRequest(ctx, "num_correct cannot exceed num_questions")
		return
	}

	stat := &model.QuizStat{
		UserID:       claims.UserID,
		Topic:        req.Topic,
		WeekNum:      req.WeekNum,
		SubtopicNum:  req.SubtopicNum,
		NumCorrect:   req.NumCorrect,
		NumQuestions: req.NumQuestions,
		TimeTaken:    req.TimeTaken,
	}

	if err := c.QuizStats.Record(ctx.Request.Context(), stat); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, stat)
}

// ListStats godoc
// @Summary List quiz results of the current user
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizStat}
// @Router /api/quiz/stats [get]
func (c *QuizController) ListStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.QuizStats.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
