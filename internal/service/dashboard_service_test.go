package service

import (
	"context"
	"encoding/json"
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedDashboardUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Email:         "learner@example.com",
		Username:      "learner",
		Password:      "hashed",
		Role:          model.RoleUser,
		HardnessIndex: 1.5,
		IsActive:      true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRoadmap(t *testing.T, db *gorm.DB, userID uint, topic string, data model.RoadmapData) {
	t.Helper()
	encoded, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Roadmap{
		UserID:         userID,
		Topic:          topic,
		Time:           "4 Weeks",
		KnowledgeLevel: "Beginner",
		RoadmapData:    datatypes.JSON(encoded),
	}).Error)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	user := seedDashboardUser(t, db)

	seedRoadmap(t, db, user.ID, "Rust", model.RoadmapData{
		"Week 1": {Topic: "Basics", Subtopics: []model.SubtopicEntry{
			{Subtopic: "Setup"}, {Subtopic: "Syntax"},
		}},
		"Week 2": {Topic: "Ownership", Subtopics: []model.SubtopicEntry{
			{Subtopic: "Borrowing"}, {Subtopic: "Moves"},
		}},
	})
	seedRoadmap(t, db, user.ID, "Go", model.RoadmapData{
		"Week 1": {Topic: "Basics", Subtopics: []model.SubtopicEntry{
			{Subtopic: "Setup"},
		}},
	})

	quizRepo := repository.NewQuizStatRepository(db)
	// Two attempts at the same subtopic count once.
	for _, st := range []model.QuizStat{
		{UserID: user.ID, Topic: "Rust", WeekNum: 1, SubtopicNum: 1, NumCorrect: 3, NumQuestions: 5, TimeTaken: 60000},
		{UserID: user.ID, Topic: "Rust", WeekNum: 1, SubtopicNum: 1, NumCorrect: 5, NumQuestions: 5, TimeTaken: 45000},
		{UserID: user.ID, Topic: "Rust", WeekNum: 2, SubtopicNum: 1, NumCorrect: 4, NumQuestions: 5, TimeTaken: 50000},
	} {
		stat := st
		require.NoError(t, quizRepo.Create(&stat))
	}

	svc := NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewRoadmapRepository(db),
		quizRepo,
		nil,
	)

	stats, err := svc.GetStats(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCourses)
	assert.Equal(t, int64(3), stats.CompletedQuizzes)
	assert.Equal(t, 1.5, stats.HardnessIndex)

	rust := stats.Progress["Rust"]
	assert.Equal(t, 2, rust.Completed)
	assert.Equal(t, 4, rust.Total)
	assert.Equal(t, 50.0, rust.Percent)

	golang := stats.Progress["Go"]
	assert.Equal(t, 0, golang.Completed)
	assert.Equal(t, 1, golang.Total)
	assert.Equal(t, 0.0, golang.Percent)
}

func TestDashboardStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewRoadmapRepository(db),
		repository.NewQuizStatRepository(db),
		nil,
	)

	_, err := svc.GetStats(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	active := seedDashboardUser(t, db)

	inactive := &model.User{
		Email:    "gone@example.com",
		Username: "gone",
		Password: "hashed",
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(inactive).Error)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	seedRoadmap(t, db, active.ID, "Rust", model.RoadmapData{
		"Week 1": {Topic: "Basics", Subtopics: []model.SubtopicEntry{{Subtopic: "Setup"}}},
	})

	quizRepo := repository.NewQuizStatRepository(db)
	require.NoError(t, quizRepo.Create(&model.QuizStat{
		UserID: active.ID, Topic: "Rust", WeekNum: 1, SubtopicNum: 1,
		NumCorrect: 5, NumQuestions: 5, TimeTaken: 30000,
	}))

	svc := NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewRoadmapRepository(db),
		quizRepo,
		nil,
	)

	stats, err := svc.GetAdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.TotalRoadmaps)
	assert.Equal(t, int64(1), stats.TotalQuizzes)
	assert.Len(t, stats.RecentUsers, 2)
}
