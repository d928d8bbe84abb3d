package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuizStatRepository struct {
	DB *gorm.DB
}

func NewQuizStatRepository(db *gorm.DB) *QuizStatRepository {
	return &QuizStatRepository{DB: db}
}

func (r *QuizStatRepository) Create(stat *model.QuizStat) error {
	return r.DB.Create(stat).Error
}

func (r *QuizStatRepository) ListByUser(userID uint) ([]model.QuizStat, error) {
	var stats []model.QuizStat
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&stats).Error
	return stats, err
}

func (r *QuizStatRepository) ListByUserAndTopic(userID uint, topic string) ([]model.QuizStat, error) {
	var stats []model.QuizStat
	err := r.DB.Where("user_id = ? AND topic = ?", userID, topic).Find(&stats).Error
	return stats, err
}

func (r *QuizStatRepository) CountByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizStat{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *QuizStatRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizStat{}).Count(&total).Error
	return total, err
}
