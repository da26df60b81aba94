package helpers

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	dev := NewLogger("app", "development", "")
	assert.Equal(t, logrus.DebugLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)

	prod := NewLogger("app", "production", "")
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)

	override := NewLogger("app", "production", "warn")
	assert.Equal(t, logrus.WarnLevel, override.GetLevel())

	bogus := NewLogger("app", "production", "loud")
	assert.Equal(t, logrus.InfoLevel, bogus.GetLevel())
}

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "send failed", errors.New("boom"), logrus.Fields{"contact_id": 7})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "send failed", entry.Message)
	assert.Equal(t, "boom", entry.Data["error"])
	assert.Equal(t, 7, entry.Data["contact_id"])

	LogInfo(logger, "hello", nil)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}
