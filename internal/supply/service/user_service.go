package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListDistributors 分销商目录，供零售商选择补货对象
func (s *UserService) ListDistributors() ([]entity.User, error) {
	return s.userRepo.ListByRole(entity.RoleDistributor)
}

// ListSellers 零售商目录，供客户选择下单对象
func (s *UserService) ListSellers() ([]entity.User, error) {
	return s.userRepo.ListByRole(entity.RoleSeller)
}

func (s *UserService) GetByID(id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return user, nil
}
