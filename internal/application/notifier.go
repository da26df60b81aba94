package application

import (
	"context"
	"fmt"

	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/pkg/mailer"
	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

// Origin describes where a submission came from. Every field is optional.
type Origin struct {
	RequestID string
	IP        string
	UserAgent string
}

// ContactNotifier tells the agency about a stored contact submission.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, c entity.Contact, origin Origin) error
}

// MailNotifier renders the contact notification templates and hands the
// result to a mail transport. Replies go straight to the submitter.
type MailNotifier struct {
	Sender      mailer.Sender
	From        string
	To          string
	AppName     string
	CompanyName string
	Geo         mailtpl.GeoResolver // optional
}

func (n *MailNotifier) NotifyContact(ctx context.Context, c entity.Contact, origin Origin) error {
	opts := []mailtpl.Option{
		mailtpl.WithTime(c.CreatedAt),
		mailtpl.WithIP(origin.IP),
		mailtpl.WithUserAgent(origin.UserAgent),
	}
	// Queued jobs are rendered by the email worker, which does its own geo lookup.
	js, queued := n.Sender.(mailer.JobSender)
	if n.Geo != nil && !queued {
		opts = append(opts, mailtpl.WithGeoFromIP(ctx, n.Geo, origin.IP))
	}
	data := mailtpl.NewContactData(n.AppName, n.CompanyName, c.ID,
		c.Name, c.Email, c.Company, c.Subject, c.Message, opts...)

	if queued {
		return js.SendJob(ctx, mailer.EmailJob{
			To:       n.To,
			From:     n.From,
			ReplyTo:  c.Email,
			Template: mailtpl.ContactNotification,
			Data:     mailtpl.ToMap(data),
		})
	}

	subject, text, html, err := mailtpl.Render(mailtpl.ContactNotification, data)
	if err != nil {
		return fmt.Errorf("render contact notification: %w", err)
	}
	return n.Sender.Send(ctx, mailer.Message{
		From:    n.From,
		To:      n.To,
		ReplyTo: c.Email,
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
}
