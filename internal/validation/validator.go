package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"ai-assess/internal/domain"
	"ai-assess/internal/dto"
)

const (
	MaxAnswerLength = 20000
	MaxBatchItems   = 200
	MaxOptions      = 26
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEvaluateRequest validates a single evaluation request.
// An empty user_answer is valid and means the question was not attempted.
func (v *Validator) ValidateEvaluateRequest(req dto.EvaluateRequest) domain.ValidationErrors {
	return v.validateItem(req, "")
}

// ValidateBatchRequest validates every item of a batch; field names carry the item index.
func (v *Validator) ValidateBatchRequest(req dto.BatchEvaluateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Items) == 0 {
		errors = append(errors, domain.NewMissingFieldError("items"))
		return errors
	}
	if len(req.Items) > MaxBatchItems {
		errors = append(errors, domain.NewOutOfRangeError("items", len(req.Items), 1, MaxBatchItems))
		return errors
	}

	for i, item := range req.Items {
		errors = append(errors, v.validateItem(item, fmt.Sprintf("items[%d].", i))...)
	}
	return errors
}

// ValidateRegistrationID parses a positive registration id.
func (v *Validator) ValidateRegistrationID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}

func (v *Validator) validateItem(req dto.EvaluateRequest, prefix string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError(prefix+"question"))
	} else if n := utf8.RuneCountInString(req.Question); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError(prefix+"question", n, 1, MaxAnswerLength))
	}

	if strings.TrimSpace(req.ReferenceAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError(prefix+"reference_answer"))
	} else if n := utf8.RuneCountInString(req.ReferenceAnswer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError(prefix+"reference_answer", n, 1, MaxAnswerLength))
	}

	if n := utf8.RuneCountInString(req.UserAnswer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError(prefix+"user_answer", n, 0, MaxAnswerLength))
	}

	if len(req.Options) > MaxOptions {
		errors = append(errors, domain.NewOutOfRangeError(prefix+"options", len(req.Options), 0, MaxOptions))
	}

	return errors
}
