package mailer

import (
	"context"
	"fmt"
)

// Publisher is satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Queue hands rendered messages to the email worker instead of sending them inline.
type Queue struct {
	Pub Publisher
}

func (q *Queue) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	job := EmailJob{
		To:      msg.To,
		From:    msg.From,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}
	if err := q.Pub.PublishJSON(ctx, job); err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}
	return nil
}

// SendJob enqueues job as is; the worker renders Template with Data.
func (q *Queue) SendJob(ctx context.Context, job EmailJob) error {
	if job.To == "" {
		return ErrNoRecipient
	}
	if err := q.Pub.PublishJSON(ctx, job); err != nil {
		return fmt.Errorf("enqueue email job: %w", err)
	}
	return nil
}
