package service

import (
	"encoding/json"
	"errors"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"

	"gorm.io/gorm"
)

// RoadmapService serves stored roadmaps. Reads always hit the database: a
// fetch right after regeneration must see the new content.
type RoadmapService struct {
	RoadmapRepo *repository.RoadmapRepository
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository) *RoadmapService {
	return &RoadmapService{RoadmapRepo: roadmapRepo}
}

// GetByTopic looks up the roadmap stored for the exact topic string.
func (s *RoadmapService) GetByTopic(userID uint, topic string) (*model.Roadmap, model.RoadmapData, error) {
	roadmap, err := s.RoadmapRepo.FindByUserAndTopic(userID, topic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrRoadmapNotFound
		}
		return nil, nil, err
	}

	var data model.RoadmapData
	if err := json.Unmarshal(roadmap.RoadmapData, &data); err != nil {
		return nil, nil, err
	}
	return roadmap, data, nil
}

func (s *RoadmapService) List(userID uint) ([]model.Roadmap, error) {
	return s.RoadmapRepo.ListByUser(userID)
}

func (s *RoadmapService) Delete(userID uint, topic string) error {
	err := s.RoadmapRepo.DeleteByUserAndTopic(userID, topic)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrRoadmapNotFound
	}
	return err
}
