package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents transport-level fetch failures
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeTimeout represents fetch timeouts
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeStatus represents non-2xx HTTP responses
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeNormalization represents record normalization errors
	ErrorTypeNormalization ErrorType = "normalization"
	// ErrorTypeStorage represents persistence errors
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// PipelineError represents an error raised by a pipeline stage
type PipelineError struct {
	Type       ErrorType
	Subject    string // URL or record identifier the error relates to
	Message    string
	StatusCode int
	Err        error
	Time       time.Time
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Subject, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Subject, e.Message)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error should abort the whole run.
// Only storage failures are fatal; fetch and parse errors degrade
// the current page or item and the run continues.
func (e *PipelineError) IsFatal() bool {
	return e.Type == ErrorTypeStorage || e.Type == ErrorTypeConfiguration
}

// New creates a new PipelineError
func New(errType ErrorType, subject, message string, err error) *PipelineError {
	return &PipelineError{
		Type:    errType,
		Subject: subject,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(subject, message string, err error) *PipelineError {
	return New(ErrorTypeNetwork, subject, message, err)
}

// NewTimeout creates a new timeout error
func NewTimeout(subject string, err error) *PipelineError {
	return New(ErrorTypeTimeout, subject, "request timed out", err)
}

// NewStatus creates a new non-2xx status error
func NewStatus(subject string, statusCode int) *PipelineError {
	e := New(ErrorTypeStatus, subject, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
	e.StatusCode = statusCode
	return e
}

// NewParsing creates a new parsing error
func NewParsing(subject, message string, err error) *PipelineError {
	return New(ErrorTypeParsing, subject, message, err)
}

// NewNormalization creates a new normalization error
func NewNormalization(subject, message string) *PipelineError {
	return New(ErrorTypeNormalization, subject, message, nil)
}

// NewStorage creates a new storage error
func NewStorage(subject, message string, err error) *PipelineError {
	return New(ErrorTypeStorage, subject, message, err)
}

// NewCache creates a new cache error
func NewCache(subject, message string, err error) *PipelineError {
	return New(ErrorTypeCache, subject, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *PipelineError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// TypeOf returns the ErrorType of err, or "" when err is not a PipelineError
func TypeOf(err error) ErrorType {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Type
	}
	return ""
}
