package repository

import "github.com/makemate/agency-backend/internal/domain/entity"

// ContactRepository defines the storage operations for contact submissions.
type ContactRepository interface {
	Create(c entity.NewContact) (*entity.Contact, error)
	GetByID(id int64) (*entity.Contact, error)
	GetAll() []entity.Contact
}
