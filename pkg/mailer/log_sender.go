package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender is the throwaway transport used when no real mail provider is
// configured: the message is written to the log and nothing leaves the process.
type LogSender struct {
	Logger logrus.FieldLogger
}

func NewLogSender(logger logrus.FieldLogger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{
		"to":       msg.To,
		"from":     msg.From,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
	}).Info("email captured by log transport")
	s.Logger.WithField("subject", msg.Subject).Debug(msg.Text)
	return nil
}
