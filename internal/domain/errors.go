package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Evaluation specific errors
	CodeRegistrationNotFound ErrorCode = "REGISTRATION_NOT_FOUND"
	CodeJudgeUnavailable     ErrorCode = "JUDGE_UNAVAILABLE"
	CodeMalformedVerdict     ErrorCode = "MALFORMED_VERDICT"
	CodeEvaluationCancelled  ErrorCode = "EVALUATION_CANCELLED"
)

var (
	// ErrJudgeUnavailable marks a failed, timed out or unconfigured judge call.
	ErrJudgeUnavailable = errors.New("semantic judge unavailable")
	// ErrMalformedVerdict marks judge output that is not the expected three-field object.
	ErrMalformedVerdict = errors.New("malformed judge verdict")
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair reported alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewRegistrationNotFoundError(registrationID int64) *DomainError {
	return NewError(CodeRegistrationNotFound, fmt.Sprintf("Registration not found with ID: %d", registrationID), nil).
		WithContext("registration_id", registrationID)
}

func NewJudgeUnavailableError(cause error) *DomainError {
	return NewError(CodeJudgeUnavailable, "Semantic judge is unavailable", fmt.Errorf("%w: %v", ErrJudgeUnavailable, cause))
}

// NewEvaluationCancelledError reports a batch stopped by its context before every item was graded.
func NewEvaluationCancelledError(cause error) *DomainError {
	return NewError(CodeEvaluationCancelled, "Evaluation was cancelled before it completed", cause)
}

func NewMalformedVerdictError(cause error) *DomainError {
	return NewError(CodeMalformedVerdict, "Semantic judge returned a malformed verdict", fmt.Errorf("%w: %v", ErrMalformedVerdict, cause))
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	}
}
