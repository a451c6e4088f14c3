package evaluator

import (
	"fmt"

	"ai-assess/internal/domain"
)

// Rubric is a grading instruction set for the semantic judge.
type Rubric struct {
	Name   string
	System string
	// Guidelines are appended to the prompt after the three answer blocks.
	Guidelines string
}

const verdictFormat = `Respond with ONLY a JSON object in exactly this format, no markdown and no extra keys:
{"is_correct": true, "confidence": 85, "reason": "one line explanation"}

- "is_correct" is a boolean
- "confidence" is an integer from 0 to 100
- "reason" is a single line under 30 words`

// ShortAnswerRubric grades free-text answers for conceptual correctness.
var ShortAnswerRubric = Rubric{
	Name: "short_answer",
	System: `You are a fair and lenient technical interviewer grading a candidate's short written answer.
You judge meaning, not wording.`,
	Guidelines: `Grading rules:
1. Mark the answer correct when it covers at least 50% of the key concepts in the reference answer.
2. Ignore grammar, spelling mistakes, word order and synonyms.
3. Accept answers written in Hindi, English or any mix of the two (Hinglish).
4. Do not require the exact terminology of the reference answer if the idea is right.
5. Mark the answer incorrect when it is factually wrong or answers a different question.`,
}

// CodeRubric grades code submissions for functional correctness.
var CodeRubric = Rubric{
	Name: "code",
	System: `You are a senior software engineer reviewing a candidate's solution to a coding question.
You judge whether the logic solves the stated problem, not whether it resembles the reference.`,
	Guidelines: `Grading rules:
1. Judge functional correctness: would this logic produce correct results for the problem as asked?
2. The reference solution is one possible approach; a different algorithm that is correct is also correct.
3. Any programming language is acceptable unless the question text explicitly requires a specific language.
4. Ignore boilerplate and scaffolding such as wrapper classes, main functions, imports or I/O handling
   that is not central to the algorithm.
5. Ignore style, naming, comments and minor syntax slips that do not change the logic.
6. Mark the solution incorrect when it solves a different problem than the one asked,
   or when its core logic is wrong.`,
}

// RubricFor returns the rubric used for a question kind.
func RubricFor(kind domain.QuestionKind) Rubric {
	if kind == domain.KindCode {
		return CodeRubric
	}
	return ShortAnswerRubric
}

// BuildPrompt embeds the question, reference and candidate answer into the rubric prompt.
func (r Rubric) BuildPrompt(question, referenceAnswer, userAnswer string) string {
	return fmt.Sprintf(`Question:
%s

Reference Answer:
%s

Candidate's Answer:
%s

%s

%s`, question, referenceAnswer, userAnswer, r.Guidelines, verdictFormat)
}
