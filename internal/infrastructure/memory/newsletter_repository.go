package memory

import (
	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/internal/domain/repository"
)

type NewsletterRepository struct {
	s *Store
}

// Create stores a subscription without checking for an existing one.
func (r *NewsletterRepository) Create(email string) (*entity.Newsletter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := r.insertLocked(email)
	return &row, nil
}

func (r *NewsletterRepository) CreateIfAbsent(email string) (*entity.Newsletter, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if row, ok := r.s.newsletters.find(byEmail(email)); ok {
		return &row, false, nil
	}
	row := r.insertLocked(email)
	return &row, true, nil
}

func (r *NewsletterRepository) insertLocked(email string) entity.Newsletter {
	return r.s.newsletters.insert(func(id int64) entity.Newsletter {
		return entity.Newsletter{ID: id, Email: email, CreatedAt: r.s.now()}
	})
}

func (r *NewsletterRepository) GetByID(id int64) (*entity.Newsletter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.newsletters.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *NewsletterRepository) GetByEmail(email string) (*entity.Newsletter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.newsletters.find(byEmail(email))
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *NewsletterRepository) GetAll() []entity.Newsletter {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.newsletters.all()
}

func byEmail(email string) func(entity.Newsletter) bool {
	return func(n entity.Newsletter) bool { return n.Email == email }
}

var _ repository.NewsletterRepository = (*NewsletterRepository)(nil)
