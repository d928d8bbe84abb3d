package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dashboardCacheKeyPrefix = "dashboard:stats:"
	adminStatsCacheKey      = "dashboard:admin_stats"
	dashboardCacheTTL       = time.Minute
)

type TopicProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type DashboardStats struct {
	TotalCourses     int64                    `json:"total_courses"`
	CompletedQuizzes int64                    `json:"completed_quizzes"`
	HardnessIndex    float64                  `json:"hardness_index"`
	Progress         map[string]TopicProgress `json:"progress"`
}

type AdminStats struct {
	TotalUsers    int64        `json:"total_users"`
	ActiveUsers   int64        `json:"active_users"`
	TotalRoadmaps int64        `json:"total_roadmaps"`
	TotalQuizzes  int64        `json:"total_quizzes"`
	RecentUsers   []model.User `json:"recent_users"`
}

// DashboardService aggregates per-user and admin statistics. Results are
// cached in Redis for a minute; quiz submissions invalidate the user entry.
type DashboardService struct {
	UserRepo     *repository.UserRepository
	RoadmapRepo  *repository.RoadmapRepository
	QuizStatRepo *repository.QuizStatRepository
	Redis        *redis.Client
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	roadmapRepo *repository.RoadmapRepository,
	quizStatRepo *repository.QuizStatRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		RoadmapRepo:  roadmapRepo,
		QuizStatRepo: quizStatRepo,
		Redis:        rdb,
	}
}

func (s *DashboardService) GetStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	cacheKey := fmt.Sprintf("%s%d", dashboardCacheKeyPrefix, userID)

	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached DashboardStats
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.computeStats(userID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, encoded, dashboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *DashboardService) computeStats(userID uint) (*DashboardStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	roadmaps, err := s.RoadmapRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	completedQuizzes, err := s.QuizStatRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	progress := make(map[string]TopicProgress, len(roadmaps))
	for _, rm := range roadmaps {
		var data model.RoadmapData
		if err := json.Unmarshal(rm.RoadmapData, &data); err != nil {
			continue
		}
		total := data.SubtopicCount()

		stats, err := s.QuizStatRepo.ListByUserAndTopic(userID, rm.Topic)
		if err != nil {
			return nil, err
		}
		// A subtopic counts once no matter how many attempts it has.
		seen := make(map[[2]int]bool, len(stats))
		for _, st := range stats {
			seen[[2]int{st.WeekNum, st.SubtopicNum}] = true
		}
		completed := len(seen)

		percent := 0.0
		if total > 0 {
			percent = float64(completed) / float64(total) * 100
		}
		progress[rm.Topic] = TopicProgress{Completed: completed, Total: total, Percent: percent}
	}

	return &DashboardStats{
		TotalCourses:     int64(len(roadmaps)),
		CompletedQuizzes: completedQuizzes,
		HardnessIndex:    user.HardnessIndex,
		Progress:         progress,
	}, nil
}

// InvalidateUser drops the cached stats for one user.
func (s *DashboardService) InvalidateUser(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf("%s%d", dashboardCacheKeyPrefix, userID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func (s *DashboardService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, adminStatsCacheKey).Result(); err == nil {
			var cached AdminStats
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalUsers, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.UserRepo.CountActive()
	if err != nil {
		return nil, err
	}
	totalRoadmaps, err := s.RoadmapRepo.Count()
	if err != nil {
		return nil, err
	}
	totalQuizzes, err := s.QuizStatRepo.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.UserRepo.FindRecent(5)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{
		TotalUsers:    totalUsers,
		ActiveUsers:   activeUsers,
		TotalRoadmaps: totalRoadmaps,
		TotalQuizzes:  totalQuizzes,
		RecentUsers:   recent,
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, adminStatsCacheKey, encoded, dashboardCacheTTL)
		}
	}

	return stats, nil
}
