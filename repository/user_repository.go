package repository

import (
	"gorm.io/gorm"

	"event-discovery-app/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByUsername(db *gorm.DB, username string) (entity.User, error) {
	user := &entity.User{}
	err := db.Where("username = ?", username).First(user).Error
	if err != nil {
		return *user, err
	}
	return *user, err
}
