package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeNormalization represents query/price normalization errors
	ErrorTypeNormalization ErrorType = "normalization"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// CrawlerError represents a store-crawler error
type CrawlerError struct {
	Type    ErrorType
	Store   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *CrawlerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Store, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Store, e.Message)
}

// Unwrap returns the underlying error
func (e *CrawlerError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *CrawlerError) IsRetryable() bool {
	return e.Type == ErrorTypeNetwork
}

// New creates a new CrawlerError
func New(errType ErrorType, store, message string, err error) *CrawlerError {
	return &CrawlerError{
		Type:    errType,
		Store:   store,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(store, message string, err error) *CrawlerError {
	return New(ErrorTypeNetwork, store, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(store, message string, err error) *CrawlerError {
	return New(ErrorTypeParsing, store, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(store string, duration time.Duration) *CrawlerError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, store, message, nil)
}

// NewNormalization creates a new normalization error
func NewNormalization(store, message string, err error) *CrawlerError {
	return New(ErrorTypeNormalization, store, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(store, message string, err error) *CrawlerError {
	return New(ErrorTypePublisher, store, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *CrawlerError {
	return New(ErrorTypeConfiguration, "", message, err)
}
