package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/pkg/mailer"
	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

// MockSender is a mock implementation of mailer.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type fixedGeo struct{ geo mailtpl.Geo }

func (f fixedGeo) Lookup(context.Context, string) (mailtpl.Geo, error) { return f.geo, nil }

var storedContact = entity.Contact{
	ID:        4,
	Name:      "Jo",
	Email:     "jo@x.com",
	Company:   "Acme",
	Subject:   "Hi",
	Message:   "Hello there\nsecond line",
	CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
}

func TestMailNotifier_NotifyContact(t *testing.T) {
	sender := new(MockSender)
	n := &MailNotifier{
		Sender:      sender,
		From:        `"makemate Website" <no-reply@makemate.com>`,
		To:          "hello@makemate.com",
		AppName:     "makemate-api",
		CompanyName: "makemate",
		Geo:         fixedGeo{geo: mailtpl.Geo{City: "Paris", Country: "France", Timezone: "Europe/Paris"}},
	}

	var sent mailer.Message
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mailer.Message)
	}).Return(nil).Once()

	err := n.NotifyContact(context.Background(), storedContact, Origin{IP: "203.0.113.9", UserAgent: "curl/8"})
	require.NoError(t, err)
	sender.AssertExpectations(t)

	assert.Equal(t, "hello@makemate.com", sent.To)
	assert.Equal(t, n.From, sent.From)
	assert.Equal(t, "jo@x.com", sent.ReplyTo)
	assert.Equal(t, "New Contact Form Submission: Hi", sent.Subject)
	assert.Contains(t, sent.Text, "Company: Acme")
	assert.Contains(t, sent.Text, "Hello there\nsecond line")
	assert.Contains(t, sent.Text, "Location: Paris, France")
	assert.Contains(t, sent.Text, "User agent: curl/8")
	assert.True(t, strings.Contains(sent.HTML, "Hello there<br>second line"))
}

func TestMailNotifier_SenderError(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("rejected"))

	n := &MailNotifier{Sender: sender, To: "hello@makemate.com"}
	err := n.NotifyContact(context.Background(), storedContact, Origin{})
	assert.EqualError(t, err, "rejected")
}

type recordingPublisher struct {
	jobs []any
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.jobs = append(p.jobs, body)
	return nil
}

func TestMailNotifier_QueueGetsTemplateJob(t *testing.T) {
	pub := &recordingPublisher{}
	n := &MailNotifier{
		Sender:  &mailer.Queue{Pub: pub},
		From:    "no-reply@makemate.com",
		To:      "hello@makemate.com",
		AppName: "makemate-api",
		Geo:     fixedGeo{geo: mailtpl.Geo{City: "Paris"}},
	}

	require.NoError(t, n.NotifyContact(context.Background(), storedContact, Origin{IP: "203.0.113.9"}))
	require.Len(t, pub.jobs, 1)

	job := pub.jobs[0].(mailer.EmailJob)
	assert.Equal(t, mailtpl.ContactNotification, job.Template)
	assert.Equal(t, "jo@x.com", job.ReplyTo)
	assert.Empty(t, job.Subject)
	assert.Equal(t, "203.0.113.9", job.Data["IP"])
	assert.Equal(t, "", job.Data["Location"])

	data, err := mailtpl.FromMap(job.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(4), data.ContactID)
	assert.True(t, data.SubmittedAt.Equal(storedContact.CreatedAt))
}
