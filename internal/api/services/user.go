package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"trailpack/internal/domain"
	r "trailpack/internal/redis"
	"trailpack/internal/repository"
	"trailpack/internal/util"
)

type UserService struct {
	userRepo  *repository.UserRepository
	userCache r.Cache[domain.User]
}

func NewUserService(userRepo *repository.UserRepository, rdb *goredis.Client) *UserService {
	return &UserService{
		userRepo:  userRepo,
		userCache: r.NewJSONCache[domain.User](rdb, "user", 5*time.Second),
	}
}

func (s *UserService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, _ := s.userCache.Get(ctx, userID.String())
	if user != nil {
		return user, nil
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	_ = s.userCache.Set(ctx, userID.String(), user)

	return user, nil
}

// ChangePassword verifies the current credential before replacing it.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 6 {
		return ErrInvalidInput
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if err := util.CheckPassword(user.Password, current); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := util.HashPassword(next)
	if err != nil {
		return ErrInternalError
	}

	if err := s.userRepo.UpdatePassword(userID, hashed); err != nil {
		return err
	}

	return s.userCache.Delete(ctx, userID.String())
}
