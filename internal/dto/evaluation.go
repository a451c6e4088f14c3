package dto

import (
	"time"

	"ai-assess/internal/domain"
)

// EvaluateRequest represents one answer to grade
// @Description Request body for grading an answer
type EvaluateRequest struct {
	Question        string   `json:"question" example:"What is the difference between a list and a tuple?"`
	UserAnswer      string   `json:"user_answer" example:"list is mutable"`
	ReferenceAnswer string   `json:"reference_answer" example:"Lists are mutable, tuples are immutable"`
	QuestionType    string   `json:"question_type" example:"SHORT_ANSWER"`
	Options         []string `json:"options,omitempty"`
}

// ToDomain converts the request, resolving the loosely typed question_type.
func (r EvaluateRequest) ToDomain() domain.EvaluationRequest {
	return domain.EvaluationRequest{
		QuestionText:    r.Question,
		UserAnswer:      r.UserAnswer,
		ReferenceAnswer: r.ReferenceAnswer,
		Kind:            domain.ParseQuestionKind(r.QuestionType),
		Options:         r.Options,
	}
}

// EvaluateResponse represents a verdict in the API response
type EvaluateResponse struct {
	IsCorrect    bool   `json:"is_correct"`
	Confidence   int    `json:"confidence"`
	Reason       string `json:"reason"`
	Method       string `json:"method"`
	QuestionKind string `json:"question_kind"`
}

// NewEvaluateResponse builds the response for a verdict.
func NewEvaluateResponse(kind domain.QuestionKind, v domain.Verdict) EvaluateResponse {
	return EvaluateResponse{
		IsCorrect:    v.IsCorrect,
		Confidence:   v.Confidence,
		Reason:       v.Reason,
		Method:       string(v.Method),
		QuestionKind: kind.String(),
	}
}

// BatchEvaluateRequest grades several answers at once
type BatchEvaluateRequest struct {
	Items []EvaluateRequest `json:"items"`
}

// BatchEvaluateResponse holds the verdicts in request order
type BatchEvaluateResponse struct {
	Verdicts []EvaluateResponse `json:"verdicts"`
	Correct  int                `json:"correct"`
	Total    int                `json:"total"`
	Warnings []string           `json:"warnings,omitempty"`
}

// ReportItemResponse is one graded question of a report
type ReportItemResponse struct {
	QuestionID   int64  `json:"question_id"`
	QuestionKind string `json:"question_kind"`
	Attempted    bool   `json:"attempted"`
	Skipped      bool   `json:"skipped"`
	IsCorrect    bool   `json:"is_correct"`
	Confidence   int    `json:"confidence"`
	Reason       string `json:"reason"`
	Method       string `json:"method"`
}

// ReportResponse is the scored report of a registration
type ReportResponse struct {
	ID             string               `json:"id"`
	RegistrationID int64                `json:"registration_id"`
	Total          int                  `json:"total"`
	Attempted      int                  `json:"attempted"`
	Correct        int                  `json:"correct"`
	ScorePercent   float64              `json:"score_percent"`
	Items          []ReportItemResponse `json:"items"`
	Warnings       []string             `json:"warnings,omitempty"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

// NewReportResponse flattens a domain report.
func NewReportResponse(r *domain.Report) ReportResponse {
	items := make([]ReportItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = ReportItemResponse{
			QuestionID:   it.QuestionID,
			QuestionKind: it.Kind.String(),
			Attempted:    it.Attempted,
			Skipped:      it.Skipped,
			IsCorrect:    it.Verdict.IsCorrect,
			Confidence:   it.Verdict.Confidence,
			Reason:       it.Verdict.Reason,
			Method:       string(it.Verdict.Method),
		}
	}
	return ReportResponse{
		ID:             r.ID,
		RegistrationID: r.RegistrationID,
		Total:          r.Total,
		Attempted:      r.Attempted,
		Correct:        r.Correct,
		ScorePercent:   r.ScorePercent,
		Items:          items,
		Warnings:       r.Warnings,
		GeneratedAt:    r.GeneratedAt,
	}
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
	Judge  string `json:"judge"`
}
