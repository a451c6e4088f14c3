package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ai-assess/internal/domain"
	"ai-assess/internal/repository/models"
)

// The tables belong to the assessment application and are only read here.
const (
	findRegistrationQuery = `SELECT id, email, question_paper_id, is_completed
		FROM app_testregistration
		WHERE id = ?`

	// Rows are ordered by response id so the latest response for a question comes last.
	listAnswerSheetQuery = `SELECT q.id AS question_id,
		q.text AS question_text,
		q.answer AS reference_answer,
		q.question_type AS question_type,
		q.options AS options,
		r.user_answer AS user_answer
		FROM app_testregistration t
		JOIN app_papersection s ON s.question_paper_id = t.question_paper_id
		JOIN app_question q ON q.section_id = s.id
		LEFT JOIN user_tests_userresponse r ON r.question_id = q.id AND r.registration_id = t.id
		WHERE t.id = ?
		ORDER BY s.id, q.id, r.id`
)

type sqlxResponseRepository struct {
	db DBTX
}

// NewResponseRepository creates a read-only repository over the upstream assessment tables.
func NewResponseRepository(db DBTX) domain.ResponseRepository {
	return &sqlxResponseRepository{db: db}
}

func (r *sqlxResponseRepository) FindRegistration(ctx context.Context, registrationID int64) (*domain.Registration, error) {
	var row models.Registration
	err := r.db.GetContext(ctx, &row, r.db.Rebind(findRegistrationQuery), registrationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find registration %d: %w", registrationID, err)
	}
	return &domain.Registration{
		ID:              row.ID,
		Email:           row.Email,
		QuestionPaperID: row.QuestionPaperID,
		IsCompleted:     row.IsCompleted,
	}, nil
}

func (r *sqlxResponseRepository) ListAnswerSheet(ctx context.Context, registrationID int64) ([]domain.AnswerSheetItem, error) {
	var rows []models.AnswerSheetRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listAnswerSheetQuery), registrationID); err != nil {
		return nil, fmt.Errorf("failed to list answer sheet for registration %d: %w", registrationID, err)
	}

	items := make([]domain.AnswerSheetItem, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		if i, seen := index[row.QuestionID]; seen {
			// A later response replaces an earlier one.
			if row.UserAnswer.Valid {
				items[i].UserAnswer = row.UserAnswer.String
			}
			continue
		}
		index[row.QuestionID] = len(items)
		items = append(items, toAnswerSheetItem(row))
	}
	return items, nil
}

func toAnswerSheetItem(row models.AnswerSheetRow) domain.AnswerSheetItem {
	return domain.AnswerSheetItem{
		QuestionID:      row.QuestionID,
		QuestionText:    row.QuestionText,
		ReferenceAnswer: row.ReferenceAnswer.String,
		QuestionType:    row.QuestionType.String,
		Options:         []string(row.Options),
		UserAnswer:      row.UserAnswer.String,
	}
}
