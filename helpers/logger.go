package helpers

import "bazaryar/productworker/logger"

// LoggerInterface defines the interface components log through; tests
// substitute their own implementation
type LoggerInterface interface {
	LogError(crawlerName string, err error)
	LogInfo(format string, args ...interface{})
}

// Logger delegates to the structured zerolog logger
type Logger struct{}

// NewLogger creates a new logger instance
func NewLogger() *Logger {
	return &Logger{}
}

// LogError logs an error with the crawler name attached
func (l *Logger) LogError(crawlerName string, err error) {
	logger.LogError(crawlerName, err, "crawl failed")
}

// LogInfo logs an informational message
func (l *Logger) LogInfo(format string, args ...interface{}) {
	logger.Info(format, args...)
}
