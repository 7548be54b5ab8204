package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger: logger,
	}

	// Setup file output if path is provided
	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// LogHTTPRequest logs one completed HTTP request with its outcome
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"client_ip":  clientIP,
		"user_id":    userID,
		"request_id": requestID,
		"status":     statusCode,
		"latency_ms": latency.Milliseconds(),
	})

	switch {
	case err != nil:
		entry.WithError(err).Error("http request failed")
	case statusCode >= 500:
		entry.Error("http request")
	case statusCode >= 400:
		entry.Warn("http request")
	default:
		entry.Info("http request")
	}
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
