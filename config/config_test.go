package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "MAIL_SEND_ENABLED", "MAIL_DRIVER", "MAIL_NOTIFY_MODE", "MAIL_TIMEOUT", "NOTIFY_EMAIL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.MailSendEnabled)
	assert.Equal(t, MailDriverAuto, cfg.MailDriver)
	assert.Equal(t, NotifyModeSync, cfg.MailNotifyMode)
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
	assert.Equal(t, "hello@makemate.com", cfg.NotifyEmail)
	assert.True(t, cfg.SyncNotify())
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MAIL_DRIVER", "Mailgun")
	t.Setenv("MAIL_NOTIFY_MODE", "Async")
	t.Setenv("MAIL_TIMEOUT", "3s")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, MailDriverMailgun, cfg.MailDriver)
	assert.False(t, cfg.SyncNotify())
	assert.Equal(t, 3*time.Second, cfg.MailTimeout)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.True(t, cfg.SMTPSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("MAIL_SEND_ENABLED", "maybe")
	t.Setenv("MAIL_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 0, cfg.SMTPPort)
	assert.True(t, cfg.MailSendEnabled)
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
}

func TestResolveMailDriver(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "auto without credentials falls back to log",
			cfg:  Config{MailDriver: MailDriverAuto},
			want: MailDriverLog,
		},
		{
			name: "auto with partial smtp falls back to log",
			cfg:  Config{MailDriver: MailDriverAuto, SMTPHost: "smtp.test", SMTPPort: 587},
			want: MailDriverLog,
		},
		{
			name: "auto prefers smtp",
			cfg: Config{
				MailDriver: MailDriverAuto,
				SMTPHost:   "smtp.test", SMTPPort: 587, SMTPUser: "u", SMTPPass: "p",
				MailgunDomain: "mg.test", MailgunAPIKey: "key", MailgunSender: "no-reply@mg.test",
			},
			want: MailDriverSMTP,
		},
		{
			name: "auto picks mailgun",
			cfg: Config{
				MailDriver:    MailDriverAuto,
				MailgunDomain: "mg.test", MailgunAPIKey: "key", MailgunSender: "no-reply@mg.test",
			},
			want: MailDriverMailgun,
		},
		{
			name: "explicit queue",
			cfg:  Config{MailDriver: MailDriverQueue},
			want: MailDriverQueue,
		},
		{
			name: "unknown driver treated as auto",
			cfg:  Config{MailDriver: "carrier-pigeon"},
			want: MailDriverLog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolveMailDriver())
		})
	}
}
