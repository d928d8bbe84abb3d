package service

import (
	"context"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
)

type QuizStatService struct {
	QuizStatRepo *repository.QuizStatRepository
	Dashboard    *DashboardService
}

func NewQuizStatService(quizStatRepo *repository.QuizStatRepository, dashboard *DashboardService) *QuizStatService {
	return &QuizStatService{
		QuizStatRepo: quizStatRepo,
		Dashboard:    dashboard,
	}
}

func (s *QuizStatService) Record(ctx context.Context, stat *model.QuizStat) error {
	if err := s.QuizStatRepo.Create(stat); err != nil {
		return err
	}
	s.Dashboard.InvalidateUser(ctx, stat.UserID)
	return nil
}

func (s *QuizStatService) List(userID uint) ([]model.QuizStat, error) {
	return s.QuizStatRepo.ListByUser(userID)
}
