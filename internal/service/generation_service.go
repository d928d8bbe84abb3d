package service

import (
	"context"
	"encoding/json"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// GenerationService runs the prompt -> completion -> sanitize -> normalize
// pipeline for roadmaps, quizzes and resources. Generation never fails
// outward: every stage error is captured here and replaced with fallback
// content of the same shape, so callers always receive something usable.
// Fallbacks are logged and counted at the point of capture, since the
// substitution is invisible in the response itself.
type GenerationService struct {
	ai          Completer
	roadmapRepo *repository.RoadmapRepository
}

func NewGenerationService(ai Completer, roadmapRepo *repository.RoadmapRepository) *GenerationService {
	return &GenerationService{
		ai:          ai,
		roadmapRepo: roadmapRepo,
	}
}

// GenerateRoadmap produces a week-keyed roadmap and persists it under the
// exact (user, topic) pair, overwriting any prior roadmap for that topic
// string. The roadmap is stored even when it is the fallback, so a later
// fetch returns what the user was shown. The returned bool reports whether
// fallback content was substituted. The error is non-nil only for the
// persistence write, never for generation.
func (s *GenerationService) GenerateRoadmap(ctx context.Context, userID uint, req RoadmapRequest) (model.RoadmapData, bool, error) {
	var data model.RoadmapData

	raw, err := s.ai.Complete(ctx, buildRoadmapPrompt(req))
	if err == nil {
		data, err = normalizeRoadmap(sanitizeModelOutput(raw))
	}

	usedFallback := err != nil
	if usedFallback {
		logger.Log.Warn("roadmap generation failed, using fallback",
			zap.Uint("userID", userID),
			zap.String("topic", req.Topic),
			zap.Error(err))
		data = fallbackRoadmap()
	}
	monitoring.RecordGeneration("roadmap", usedFallback)

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, usedFallback, err
	}

	roadmap := &model.Roadmap{
		UserID:         userID,
		Topic:          req.Topic,
		Time:           req.Duration,
		KnowledgeLevel: req.KnowledgeLevel,
		RoadmapData:    datatypes.JSON(encoded),
	}
	if err := s.roadmapRepo.Upsert(roadmap); err != nil {
		return nil, usedFallback, err
	}

	return data, usedFallback, nil
}

// GenerateQuiz produces a multiple-choice quiz. Quizzes are not persisted.
func (s *GenerationService) GenerateQuiz(ctx context.Context, req QuizRequest) ([]model.QuizQuestion, bool) {
	var questions []model.QuizQuestion

	raw, err := s.ai.Complete(ctx, buildQuizPrompt(req))
	if err == nil {
		questions, err = normalizeQuiz(sanitizeModelOutput(raw))
	}

	usedFallback := err != nil
	if usedFallback {
		logger.Log.Warn("quiz generation failed, using fallback",
			zap.String("course", req.Course),
			zap.String("subtopic", req.Subtopic),
			zap.Error(err))
		questions = fallbackQuiz()
	}
	monitoring.RecordGeneration("quiz", usedFallback)

	return questions, usedFallback
}

// GenerateResources produces a Markdown resource bundle. Not persisted.
func (s *GenerationService) GenerateResources(ctx context.Context, req ResourceRequest) (string, bool) {
	var body string

	raw, err := s.ai.Complete(ctx, buildResourcePrompt(req))
	if err == nil {
		body, err = normalizeResource(sanitizeModelOutput(raw))
	}

	usedFallback := err != nil
	if usedFallback {
		logger.Log.Warn("resource generation failed, using fallback",
			zap.String("course", req.Course),
			zap.Error(err))
		body = fallbackResources()
	}
	monitoring.RecordGeneration("resources", usedFallback)

	return body, usedFallback
}
