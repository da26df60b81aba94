package container

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/config"
	"github.com/makemate/agency-backend/internal/application"
	"github.com/makemate/agency-backend/internal/infrastructure/memory"
	"github.com/makemate/agency-backend/pkg/helpers"
	"github.com/makemate/agency-backend/pkg/mailer"
	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

var ErrNoMailTransport = errors.New("no direct mail transport configured (set SMTP_* or MAILGUN_*)")

// Container holds the components shared by the router modules.
// It is built once in main and passed down explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  *memory.Store

	MailDriver string
	Mailer     mailer.Sender            // nil when MAIL_SEND_ENABLED=false
	Publisher  *helpers.RabbitPublisher // set for the queue driver only

	Contacts    *application.ContactService
	Newsletters *application.NewsletterService
	Users       *application.UserService
}

func New(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Store:  memory.NewStore(),
	}

	var notifier application.ContactNotifier
	if cfg.MailSendEnabled {
		if err := c.buildMailer(); err != nil {
			return nil, err
		}
		n := &application.MailNotifier{
			Sender:      c.Mailer,
			From:        cfg.MailFrom,
			To:          cfg.NotifyEmail,
			AppName:     cfg.AppName,
			CompanyName: cfg.CompanyName,
		}
		if cfg.GeoLookupEnabled {
			n.Geo = mailtpl.IPAPIResolver{Client: &http.Client{Timeout: 3 * time.Second}}
		}
		notifier = n
	}

	c.Contacts = application.NewContactService(c.Store.Contacts(), notifier, logger, cfg.SyncNotify(), cfg.MailTimeout)
	c.Newsletters = application.NewNewsletterService(c.Store.Newsletters(), logger)
	c.Users = application.NewUserService(c.Store.Users(), logger)

	logger.WithFields(logrus.Fields{
		"mail_enabled": cfg.MailSendEnabled,
		"mail_driver":  c.MailDriver,
		"notify_mode":  cfg.MailNotifyMode,
	}).Info("container initialized")
	return c, nil
}

func (c *Container) buildMailer() error {
	cfg := c.Config
	c.MailDriver = cfg.ResolveMailDriver()
	switch c.MailDriver {
	case config.MailDriverQueue:
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			return fmt.Errorf("rabbitmq publisher: %w", err)
		}
		c.Publisher = pub
		c.Mailer = &mailer.Queue{Pub: pub}
	case config.MailDriverLog:
		c.Mailer = mailer.NewLogSender(c.Logger)
	default:
		s, err := DirectSender(cfg)
		if err != nil {
			return err
		}
		c.Mailer = s
	}
	return nil
}

// DirectSender returns a transport that delivers mail itself (SMTP or Mailgun).
// An explicit MAIL_DRIVER wins; otherwise the first fully configured provider is used.
func DirectSender(cfg *config.Config) (mailer.Sender, error) {
	driver := cfg.ResolveMailDriver()
	if driver != config.MailDriverSMTP && driver != config.MailDriverMailgun {
		switch {
		case cfg.SMTPConfigured():
			driver = config.MailDriverSMTP
		case cfg.MailgunConfigured():
			driver = config.MailDriverMailgun
		default:
			return nil, ErrNoMailTransport
		}
	}
	if driver == config.MailDriverSMTP {
		if !cfg.SMTPConfigured() {
			return nil, fmt.Errorf("smtp driver selected: %w", ErrNoMailTransport)
		}
		return &mailer.SMTP{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Secure:   cfg.SMTPSecure,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.MailFrom,
			Timeout:  cfg.MailTimeout,
		}, nil
	}
	if !cfg.MailgunConfigured() {
		return nil, fmt.Errorf("mailgun driver selected: %w", ErrNoMailTransport)
	}
	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	mg.Timeout = cfg.MailTimeout
	return mg, nil
}

// Close waits for in-flight notifications and releases the queue connection.
func (c *Container) Close() {
	if c.Contacts != nil {
		c.Contacts.Wait()
	}
	c.Publisher.Close()
}
