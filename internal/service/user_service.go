package service

import (
	"errors"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// ProfileUpdate carries optional self-service profile fields; nil means
// leave unchanged.
type ProfileUpdate struct {
	Username      *string
	FullName      *string
	Avatar        *string
	HardnessIndex *float64
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if update.Username != nil && *update.Username != user.Username {
		if _, err := s.UserRepo.FindByUsername(*update.Username); err == nil {
			return nil, util.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *update.Username
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.HardnessIndex != nil {
		user.HardnessIndex = *update.HardnessIndex
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.List(page, limit)
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AdminUpdate extends ProfileUpdate with fields only administrators may set.
type AdminUpdate struct {
	ProfileUpdate
	Email    *string
	Role     *model.UserRole
	IsActive *bool
}

func (s *UserService) AdminUpdateUser(id uint, update AdminUpdate) (*model.User, error) {
	user, err := s.UpdateProfile(id, update.ProfileUpdate)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.UserRepo.FindByEmail(*update.Email); err == nil {
			return nil, util.ErrEmailRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	return s.UserRepo.Delete(id)
}
