package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/config"
	"github.com/makemate/agency-backend/internal/container"
	"github.com/makemate/agency-backend/pkg/helpers"
	"github.com/makemate/agency-backend/pkg/mailer"
	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

const consumerTag = "email-worker"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env, cfg.LogLevel)
	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	sender, err := container.DirectSender(cfg)
	if err != nil {
		log.Fatalf("mail transport: %v", err)
	}

	conn, ch, err := helpers.OpenQueue(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	w := &worker{Sender: sender, Logger: logger, Timeout: cfg.MailTimeout}
	if cfg.GeoLookupEnabled {
		w.Geo = mailtpl.IPAPIResolver{Client: &http.Client{Timeout: 3 * time.Second}}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			w.handle(context.Background(), msg)
		}
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQEmailQueue).Info("email worker listening")
	<-stop
	logger.Info("shutting down...")
	_ = ch.Cancel(consumerTag, false)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// delivery is the part of amqp.Delivery the worker needs.
type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type worker struct {
	Sender  mailer.Sender
	Geo     mailtpl.GeoResolver // optional
	Logger  logrus.FieldLogger
	Timeout time.Duration
}

func (w *worker) handle(ctx context.Context, msg amqp.Delivery) {
	w.process(ctx, msg.MessageId, msg.Body, &msg)
}

// process decodes, renders and sends one job.
// Malformed or unrenderable jobs are dropped, failed sends are requeued.
func (w *worker) process(ctx context.Context, id string, body []byte, d delivery) {
	logger := w.Logger.WithField("message_id", id)

	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogError(logger, "bad message", err, nil)
		_ = d.Nack(false, false)
		return
	}
	helpers.NormalizeEmailJob(&job)

	msg, err := w.render(ctx, job)
	if err != nil {
		helpers.LogError(logger, "render failed", err, logrus.Fields{"template": job.Template})
		_ = d.Nack(false, false)
		return
	}

	timeout := w.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := w.Sender.Send(c, msg); err != nil {
		helpers.LogError(logger, "send failed", err, logrus.Fields{"to": msg.To})
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
	logger.WithFields(logrus.Fields{"to": msg.To, "subject": msg.Subject}).Info("email sent")
}

func (w *worker) render(ctx context.Context, job mailer.EmailJob) (mailer.Message, error) {
	if job.Template == "" {
		if job.To == "" {
			return mailer.Message{}, mailer.ErrNoRecipient
		}
		return job.Message(), nil
	}
	data, err := helpers.ContactDataFromJob(job)
	if err != nil {
		return mailer.Message{}, err
	}
	helpers.LocalizeContactData(ctx, w.Geo, &data)

	subject, text, html, err := mailtpl.Render(job.Template, data)
	if err != nil {
		return mailer.Message{}, err
	}
	job.Subject, job.Text, job.HTML = subject, text, html
	return job.Message(), nil
}
