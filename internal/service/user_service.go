package service

import (
	"context"
	"fmt"
	"movie_catalog/db/postgres"
	"movie_catalog/internal/repository"
	errorHandler "movie_catalog/pkg/error"
	"time"
)

type IUserService interface {
	GetRoleNames(ctx context.Context, roleIds []int64) ([]string, error)
}

type UserService struct {
	userRepo repository.IUserRepository
	cacheTtl time.Duration
}

// UserSvc is read by the auth middleware.
var UserSvc *UserService

func NewUserService(userRepo repository.IUserRepository) *UserService {
	service := &UserService{
		userRepo: userRepo,
		cacheTtl: 10 * time.Minute,
	}
	UserSvc = service
	return service
}

//------------------------------------------
//------------------------------------------

// GetRoleNames maps the token's role ids to role names, redis cache first,
// role store second.
func (u *UserService) GetRoleNames(ctx context.Context, roleIds []int64) ([]string, error) {
	cached, _ := GetRoleNamesCache(ctx, roleIds)
	if len(cached) > 0 {
		return cached, nil
	}

	names, err := u.userRepo.GetRoleNames(roleIds)
	if err != nil {
		if postgres.IsConnectionNotAcceptingError(err) {
			errorHandler.SaveError("Role store is not accepting connections", err)
		} else {
			errorMessage := fmt.Sprintf("Error on reading role names: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return nil, err
	}

	if len(names) > 0 {
		_ = SetRoleNamesCache(ctx, roleIds, names, u.cacheTtl)
	}
	return names, nil
}
