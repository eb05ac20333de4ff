package repository

import (
	"movie_catalog/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	GetRoleNames(roleIds []int64) ([]string, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetRoleNames(roleIds []int64) ([]string, error) {
	var names []string
	err := r.db.
		Model(&model.Role{}).
		Where("id IN ?", roleIds).
		Pluck("name", &names).
		Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
