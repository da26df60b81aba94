package repository

import "github.com/makemate/agency-backend/internal/domain/entity"

// UserRepository defines the storage operations for users.
type UserRepository interface {
	Create(u entity.User) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetAll() []entity.User
}
