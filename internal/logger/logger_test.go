package logger_test

import (
	"testing"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/nais/springapps-orchestrator/internal/config"
	"github.com/nais/springapps-orchestrator/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "xml", Level: "info"})
		assert.ErrorContains(t, err, "invalid log format")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "json", Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("valid config", func(t *testing.T) {
		log, err := logger.New(config.Logger{Format: "TEXT", Level: "debug"})
		assert.NoError(t, err)
		assert.NotNil(t, log)
	})
}

func TestListener(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	listener := logger.Listener(log)

	listener(azlog.EventResponseError, "404 not found")
	listener(azlog.EventLRO, "polling")

	entries := hook.AllEntries()
	assert.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "404 not found", entries[0].Message)
	assert.Equal(t, string(azlog.EventResponseError), entries[0].Data["event"])
	assert.Equal(t, logrus.DebugLevel, entries[1].Level)
}
