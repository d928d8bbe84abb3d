package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// Upsert writes the roadmap for (user, topic), replacing any existing row for
// that exact topic string. Last writer wins; concurrent writes for the same
// key are not detected. Topic comparison is byte-exact, so deployments must
// keep a case-sensitive collation on the topic column.
func (r *RoadmapRepository) Upsert(roadmap *model.Roadmap) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"time", "knowledge_level", "roadmap_data", "created_at",
		}),
	}).Create(roadmap).Error
}

func (r *RoadmapRepository) FindByUserAndTopic(userID uint, topic string) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Where("user_id = ? AND topic = ?", userID, topic).First(&roadmap).Error
	return &roadmap, err
}

func (r *RoadmapRepository) ListByUser(userID uint) ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepository) DeleteByUserAndTopic(userID uint, topic string) error {
	res := r.DB.Where("user_id = ? AND topic = ?", userID, topic).Delete(&model.Roadmap{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoadmapRepository) CountByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Roadmap{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *RoadmapRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Roadmap{}).Count(&total).Error
	return total, err
}
