package mailer

import (
	"context"
	"errors"
)

// Message is one outbound email. HTML is optional; Text is the fallback body.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a Message through some transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var ErrNoRecipient = errors.New("mailer: message has no recipient")

func (m Message) validate() error {
	if m.To == "" {
		return ErrNoRecipient
	}
	return nil
}

// JobSender accepts unrendered template jobs and leaves rendering to the consumer.
type JobSender interface {
	SendJob(ctx context.Context, job EmailJob) error
}
