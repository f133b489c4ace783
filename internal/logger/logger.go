package logger

import (
	"fmt"
	"strings"

	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/nais/springapps-orchestrator/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a new logger with the given format and level
func New(cfg config.Logger) (logrus.FieldLogger, error) {
	log := logrus.StandardLogger()

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %q", cfg.Format)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)

	// set an internal logger for the azure sdk
	sdkLogger := logrus.New()
	sdkLogger.SetLevel(logrus.WarnLevel)
	if level >= logrus.DebugLevel {
		sdkLogger.SetLevel(logrus.DebugLevel)
	}
	sdkLogger.SetFormatter(log.Formatter)
	azlog.SetListener(Listener(sdkLogger.WithField("component", "azure-sdk")))
	azlog.SetEvents(azlog.EventRetryPolicy, azlog.EventLRO, azlog.EventResponseError)

	return log, nil
}

// Listener forwards azure sdk log events to log. Failed responses are warnings, the rest is
// debug output.
func Listener(log logrus.FieldLogger) func(azlog.Event, string) {
	return func(event azlog.Event, msg string) {
		entry := log.WithField("event", string(event))
		if event == azlog.EventResponseError {
			entry.Warn(msg)
			return
		}
		entry.Debug(msg)
	}
}
