package memory

import (
	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/internal/domain/repository"
)

type UserRepository struct {
	s *Store
}

// Create stores u under the next user id. Usernames are unique.
func (r *UserRepository) Create(u entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users.find(func(x entity.User) bool { return x.Username == u.Username }); ok {
		return nil, repository.ErrAlreadyExists
	}
	row := r.s.users.insert(func(id int64) entity.User {
		u.ID = id
		return u
	})
	return &row, nil
}

func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.users.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.users.find(func(x entity.User) bool { return x.Username == username })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *UserRepository) GetAll() []entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.all()
}

var _ repository.UserRepository = (*UserRepository)(nil)
