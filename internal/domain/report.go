package domain

import (
	"context"
	"time"
)

// Registration is a candidate's sitting of one question paper.
type Registration struct {
	ID              int64
	Email           string
	QuestionPaperID int64
	IsCompleted     bool
}

// AnswerSheetItem pairs one question of a paper with the candidate's stored answer.
// UserAnswer is empty when the candidate never answered the question.
type AnswerSheetItem struct {
	QuestionID      int64
	QuestionText    string
	ReferenceAnswer string
	QuestionType    string
	Options         []string
	UserAnswer      string
}

// Request converts the item into an evaluation request.
func (i AnswerSheetItem) Request() EvaluationRequest {
	return EvaluationRequest{
		QuestionText:    i.QuestionText,
		UserAnswer:      i.UserAnswer,
		ReferenceAnswer: i.ReferenceAnswer,
		Kind:            ParseQuestionKind(i.QuestionType),
		Options:         i.Options,
	}
}

// ItemResult is the graded outcome of one answer sheet item.
type ItemResult struct {
	QuestionID int64        `json:"question_id"`
	Kind       QuestionKind `json:"question_kind"`
	Attempted  bool         `json:"attempted"`
	Skipped    bool         `json:"skipped"`
	Verdict    Verdict      `json:"verdict"`
}

// Report is the aggregate score of a registration.
type Report struct {
	ID             string       `json:"id"`
	RegistrationID int64        `json:"registration_id"`
	Total          int          `json:"total"`
	Attempted      int          `json:"attempted"`
	Correct        int          `json:"correct"`
	ScorePercent   float64      `json:"score_percent"`
	Items          []ItemResult `json:"items"`
	Warnings       []string     `json:"warnings,omitempty"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// ResponseRepository reads registrations and stored answers.
type ResponseRepository interface {
	// FindRegistration returns nil, nil when the registration does not exist.
	FindRegistration(ctx context.Context, registrationID int64) (*Registration, error)
	ListAnswerSheet(ctx context.Context, registrationID int64) ([]AnswerSheetItem, error)
}

// BatchResult is the outcome of EvaluateBatch.
type BatchResult struct {
	Verdicts []Verdict
	Correct  int
	Total    int
	Warnings []string
}

// ReportService scores many answers at once.
type ReportService interface {
	ScoreRegistration(ctx context.Context, registrationID int64) (*Report, error)
	EvaluateBatch(ctx context.Context, reqs []EvaluationRequest) (*BatchResult, error)
}
