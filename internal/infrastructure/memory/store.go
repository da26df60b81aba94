package memory

import (
	"sync"
	"time"

	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/internal/domain/repository"
)

// Store owns the users, contacts and newsletters collections and their
// identifier counters for the lifetime of the process. Nothing is persisted.
type Store struct {
	mu          sync.RWMutex
	users       *table[entity.User]
	contacts    *table[entity.Contact]
	newsletters *table[entity.Newsletter]

	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:       newTable[entity.User](),
		contacts:    newTable[entity.Contact](),
		newsletters: newTable[entity.Newsletter](),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Users() repository.UserRepository             { return &UserRepository{s: s} }
func (s *Store) Contacts() repository.ContactRepository       { return &ContactRepository{s: s} }
func (s *Store) Newsletters() repository.NewsletterRepository { return &NewsletterRepository{s: s} }

// Stats reports the number of stored records per kind.
type Stats struct {
	Users       int `json:"users"`
	Contacts    int `json:"contacts"`
	Newsletters int `json:"newsletters"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:       s.users.len(),
		Contacts:    s.contacts.len(),
		Newsletters: s.newsletters.len(),
	}
}
