package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// StringSlice scans a JSON option list. Both arrays (["London", "Paris"]) and
// label maps ({"a": "London", "b": "Paris"}) are accepted; maps are ordered by label.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(bytesToParse, &list); err == nil {
		*s = list
		return nil
	}

	var labelled map[string]string
	if err := json.Unmarshal(bytesToParse, &labelled); err != nil {
		return fmt.Errorf("StringSlice Scan: options are neither a list nor a label map: %w", err)
	}
	labels := make([]string, 0, len(labelled))
	for k := range labelled {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	out := make(StringSlice, 0, len(labels))
	for _, k := range labels {
		out = append(out, labelled[k])
	}
	*s = out
	return nil
}

// Registration maps app_testregistration.
type Registration struct {
	ID              int64  `db:"id"`
	Email           string `db:"email"`
	QuestionPaperID int64  `db:"question_paper_id"`
	IsCompleted     bool   `db:"is_completed"`
}

// AnswerSheetRow is one question of a paper joined with the candidate's response.
// UserAnswer is NULL when the candidate never answered.
type AnswerSheetRow struct {
	QuestionID      int64          `db:"question_id"`
	QuestionText    string         `db:"question_text"`
	ReferenceAnswer sql.NullString `db:"reference_answer"`
	QuestionType    sql.NullString `db:"question_type"`
	Options         StringSlice    `db:"options"`
	UserAnswer      sql.NullString `db:"user_answer"`
}
