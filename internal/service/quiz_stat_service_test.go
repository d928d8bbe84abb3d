package service

import (
	"context"
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizStatRecordAndList(t *testing.T) {
	db := newTestDB(t)
	quizRepo := repository.NewQuizStatRepository(db)
	dashboard := NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewRoadmapRepository(db),
		quizRepo,
		nil,
	)
	svc := NewQuizStatService(quizRepo, dashboard)

	stat := &model.QuizStat{
		UserID: 1, Topic: "Rust", WeekNum: 1, SubtopicNum: 2,
		NumCorrect: 4, NumQuestions: 5, TimeTaken: 42000,
	}
	require.NoError(t, svc.Record(context.Background(), stat))

	stats, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Rust", stats[0].Topic)
	assert.Equal(t, 4, stats[0].NumCorrect)

	other, err := svc.List(2)
	require.NoError(t, err)
	assert.Empty(t, other)
}
