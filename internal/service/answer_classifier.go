package service

import (
	"strings"

	"github.com/lshigami/CodeClinic/internal/model"
)

// InferAnswerType derives a solution's answer type from its source text with
// keyword heuristics. It runs locally and never depends on AI availability.
func InferAnswerType(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "example") || strings.Contains(t, "sample"):
		return model.AnswerTypeExample
	case strings.Contains(t, "explain") || strings.Contains(t, "why") || strings.Contains(t, "how does"):
		return model.AnswerTypeExplanation
	case strings.Contains(t, "opinion") || strings.Contains(t, "best"):
		return model.AnswerTypeOpinion
	default:
		return model.AnswerTypeDirect
	}
}
