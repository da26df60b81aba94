package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/internal/domain/entity"
	repo "github.com/makemate/agency-backend/internal/domain/repository"
)

type NewsletterService struct {
	Repo   repo.NewsletterRepository
	Logger logrus.FieldLogger
}

func NewNewsletterService(repo repo.NewsletterRepository, logger logrus.FieldLogger) *NewsletterService {
	return &NewsletterService{Repo: repo, Logger: logger}
}

// Subscribe records email once. A repeat subscription returns the existing
// record with created=false and is not an error.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*entity.Newsletter, bool, error) {
	n, created, err := s.Repo.CreateIfAbsent(email)
	if err != nil {
		return nil, false, fmt.Errorf("store newsletter subscription: %w", err)
	}
	if !created {
		newsletterDuplicates.Add(1)
		s.Logger.WithField("newsletter_id", n.ID).Debug("newsletter email already subscribed")
		return n, false, nil
	}
	newsletterSubscriptions.Add(1)
	s.Logger.WithField("newsletter_id", n.ID).Info("newsletter subscription stored")
	return n, true, nil
}

func (s *NewsletterService) Get(email string) (*entity.Newsletter, error) {
	return s.Repo.GetByEmail(email)
}

func (s *NewsletterService) All() []entity.Newsletter {
	return s.Repo.GetAll()
}
