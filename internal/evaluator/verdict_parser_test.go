package evaluator

import (
	"errors"
	"testing"

	"ai-assess/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Verdict
	}{
		{
			name: "plain object",
			raw:  `{"is_correct": true, "confidence": 85, "reason": "Covers both key ideas"}`,
			want: domain.Verdict{IsCorrect: true, Confidence: 85, Reason: "Covers both key ideas", Method: domain.MethodSemantic},
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"is_correct\": false, \"confidence\": 90, \"reason\": \"Wrong algorithm\"}\n```",
			want: domain.Verdict{IsCorrect: false, Confidence: 90, Reason: "Wrong algorithm", Method: domain.MethodSemantic},
		},
		{
			name: "reasoning block and prose",
			raw:  "<think>\nthe candidate mentions {mutability}\n</think>\nHere you go: {\"is_correct\": true, \"confidence\": 70, \"reason\": \"ok\"} hope this helps",
			want: domain.Verdict{IsCorrect: true, Confidence: 70, Reason: "ok", Method: domain.MethodSemantic},
		},
		{
			name: "unit scale confidence and string boolean",
			raw:  `{"is_correct": "yes", "confidence": 0.8, "reason": "mostly right"}`,
			want: domain.Verdict{IsCorrect: true, Confidence: 80, Reason: "mostly right", Method: domain.MethodSemantic},
		},
		{
			name: "out of range confidence is clamped",
			raw:  `{"is_correct": true, "confidence": 150, "reason": "x"}`,
			want: domain.Verdict{IsCorrect: true, Confidence: 100, Reason: "x", Method: domain.MethodSemantic},
		},
		{
			name: "camelCase key and default reason",
			raw:  `{"isCorrect": false, "confidence": "40"}`,
			want: domain.Verdict{IsCorrect: false, Confidence: 40, Reason: defaultSemanticReason, Method: domain.MethodSemantic},
		},
		{
			name: "reason is collapsed to one line",
			raw:  `{"is_correct": true, "confidence": 60, "explanation": "first line\nsecond   line"}`,
			want: domain.Verdict{IsCorrect: true, Confidence: 60, Reason: "first line second line", Method: domain.MethodSemantic},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerdict(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseVerdict() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseVerdict_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"I cannot grade this answer.",
		`{"is_correct": true, "confidence": 80`,
		`{"confidence": 80, "reason": "no correctness"}`,
		`{"is_correct": true, "reason": "no confidence"}`,
		`{"is_correct": "perhaps", "confidence": 80}`,
		`{"is_correct": true, "confidence": "high"}`,
		"<think>{\"is_correct\": true, \"confidence\": 99}",
	}
	for _, in := range inputs {
		_, err := ParseVerdict(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, domain.ErrMalformedVerdict), in)
	}
}
