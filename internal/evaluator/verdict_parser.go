package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ai-assess/internal/domain"

	"github.com/tidwall/gjson"
)

const defaultSemanticReason = "Evaluated by semantic judge"

// stripWrapping removes reasoning blocks and markdown fences around the verdict
// and narrows the text to the outermost JSON object.
func stripWrapping(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	for {
		thinkStart := strings.Index(cleaned, "<think>")
		if thinkStart == -1 {
			break
		}
		thinkEnd := strings.Index(cleaned, "</think>")
		if thinkEnd == -1 || thinkEnd < thinkStart {
			cleaned = cleaned[:thinkStart]
			break
		}
		cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return "", fmt.Errorf("no JSON object found in judge output")
	}
	return cleaned[jsonStart : jsonEnd+1], nil
}

func firstExisting(json string, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := gjson.Get(json, p); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func parseCorrectness(r gjson.Result) (bool, error) {
	switch r.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.Number:
		return r.Int() != 0, nil
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(r.Str)) {
		case "true", "yes", "correct", "1":
			return true, nil
		case "false", "no", "incorrect", "0":
			return false, nil
		}
	}
	return false, fmt.Errorf("is_correct is not a boolean: %s", r.Raw)
}

func parseConfidence(r gjson.Result) (int, error) {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(r.Str), "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("confidence is not numeric: %s", r.Raw)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("confidence is not numeric: %s", r.Raw)
	}
	// Judges occasionally answer on a 0..1 scale.
	if f > 0 && f < 1 {
		f *= 100
	}
	return domain.ClampConfidence(int(math.Round(f))), nil
}

// ParseVerdict extracts the {is_correct, confidence, reason} object from judge output.
// Errors wrap domain.ErrMalformedVerdict.
func ParseVerdict(raw string) (domain.Verdict, error) {
	body, err := stripWrapping(raw)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", domain.ErrMalformedVerdict, err)
	}
	if !gjson.Valid(body) {
		return domain.Verdict{}, fmt.Errorf("%w: invalid JSON %q", domain.ErrMalformedVerdict, body)
	}

	correctField := firstExisting(body, "is_correct", "isCorrect", "correct")
	if !correctField.Exists() {
		return domain.Verdict{}, fmt.Errorf("%w: missing is_correct", domain.ErrMalformedVerdict)
	}
	correct, err := parseCorrectness(correctField)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", domain.ErrMalformedVerdict, err)
	}

	confidenceField := firstExisting(body, "confidence", "confidence_score")
	if !confidenceField.Exists() {
		return domain.Verdict{}, fmt.Errorf("%w: missing confidence", domain.ErrMalformedVerdict)
	}
	confidence, err := parseConfidence(confidenceField)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", domain.ErrMalformedVerdict, err)
	}

	reason := strings.Join(strings.Fields(firstExisting(body, "reason", "explanation").String()), " ")
	if reason == "" {
		reason = defaultSemanticReason
	}

	return domain.NewVerdict(correct, confidence, reason, domain.MethodSemantic), nil
}
