package utils

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
)

// InitLogger configures the shared logger. Safe to call once at startup;
// GetLogger falls back to sane defaults if it was never called.
func InitLogger(level, format string) {
	l := GetLogger()

	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}

	if format == "text" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// GetLogger returns the shared application logger
func GetLogger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	})
	return logger
}

// LogWithRequestID returns a logger entry tagged with the request ID for tracking
func LogWithRequestID(requestID string) *logrus.Entry {
	return GetLogger().WithField("request_id", requestID)
}
