package memory

import (
	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/internal/domain/repository"
)

type ContactRepository struct {
	s *Store
}

// Create stores the submission under the next contact id and stamps CreatedAt.
func (r *ContactRepository) Create(c entity.NewContact) (*entity.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := r.s.contacts.insert(func(id int64) entity.Contact {
		return entity.Contact{
			ID:        id,
			Name:      c.Name,
			Email:     c.Email,
			Company:   c.Company,
			Subject:   c.Subject,
			Message:   c.Message,
			CreatedAt: r.s.now(),
		}
	})
	return &row, nil
}

func (r *ContactRepository) GetByID(id int64) (*entity.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.contacts.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *ContactRepository) GetAll() []entity.Contact {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contacts.all()
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
