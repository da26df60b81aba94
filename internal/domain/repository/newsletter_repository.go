package repository

import "github.com/makemate/agency-backend/internal/domain/entity"

// NewsletterRepository defines the storage operations for newsletter subscriptions.
type NewsletterRepository interface {
	Create(email string) (*entity.Newsletter, error)
	// CreateIfAbsent stores a subscription unless one exists for email.
	// The lookup and the insert happen atomically; created reports which case applied.
	CreateIfAbsent(email string) (n *entity.Newsletter, created bool, err error)
	GetByID(id int64) (*entity.Newsletter, error)
	GetByEmail(email string) (*entity.Newsletter, error)
	GetAll() []entity.Newsletter
}
