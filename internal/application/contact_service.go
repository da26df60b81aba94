package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/internal/domain/entity"
	repo "github.com/makemate/agency-backend/internal/domain/repository"
	"github.com/makemate/agency-backend/pkg/helpers"
)

var ErrNotificationFailed = errors.New("contact notification failed")

const defaultNotifyTimeout = 15 * time.Second

type ContactService struct {
	Repo     repo.ContactRepository
	Notifier ContactNotifier // nil disables notifications
	Logger   logrus.FieldLogger
	// SyncNotify makes Submit wait for the notification and report its failure.
	// Otherwise the notification runs in the background and failures are only logged.
	SyncNotify    bool
	NotifyTimeout time.Duration

	wg sync.WaitGroup
}

func NewContactService(repo repo.ContactRepository, notifier ContactNotifier, logger logrus.FieldLogger, syncNotify bool, timeout time.Duration) *ContactService {
	return &ContactService{
		Repo:          repo,
		Notifier:      notifier,
		Logger:        logger,
		SyncNotify:    syncNotify,
		NotifyTimeout: timeout,
	}
}

// Submit stores the contact and then notifies the agency.
// The stored record is never rolled back when the notification fails.
func (s *ContactService) Submit(ctx context.Context, in entity.NewContact, origin Origin) (*entity.Contact, error) {
	c, err := s.Repo.Create(in)
	if err != nil {
		contactFailures.Add(1)
		return nil, fmt.Errorf("store contact: %w", err)
	}
	contactSubmissions.Add(1)

	fields := logrus.Fields{"contact_id": c.ID, "request_id": origin.RequestID}
	helpers.LogInfo(s.Logger, "contact submission stored", fields)

	if s.Notifier == nil {
		return c, nil
	}

	if s.SyncNotify {
		if err := s.notify(ctx, *c, origin); err != nil {
			notificationFailures.Add(1)
			return c, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
		}
		return c, nil
	}

	s.wg.Add(1)
	go func(c entity.Contact) {
		defer s.wg.Done()
		if err := s.notify(context.WithoutCancel(ctx), c, origin); err != nil {
			notificationFailures.Add(1)
			helpers.LogError(s.Logger, "contact notification failed", err, fields)
			return
		}
		s.Logger.WithFields(fields).Debug("contact notification sent")
	}(*c)
	return c, nil
}

func (s *ContactService) notify(ctx context.Context, c entity.Contact, origin Origin) error {
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Notifier.NotifyContact(ctx, c, origin)
}

// Wait blocks until background notifications have finished.
func (s *ContactService) Wait() {
	s.wg.Wait()
}

func (s *ContactService) Get(id int64) (*entity.Contact, error) {
	return s.Repo.GetByID(id)
}

func (s *ContactService) All() []entity.Contact {
	return s.Repo.GetAll()
}
