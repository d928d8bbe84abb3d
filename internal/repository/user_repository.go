package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

func (r *UserRepository) List(page, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64
	if err := r.DB.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.User{}).Count(&total).Error
	return total, err
}

func (r *UserRepository) CountActive() (int64, error) {
	var total int64
	err := r.DB.Model(&model.User{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

func (r *UserRepository) FindRecent(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at desc").Limit(limit).Find(&users).Error
	return users, err
}
