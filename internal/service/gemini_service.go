package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/CodeClinic/config"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService is the AI collaborator used by the submission path. Both
// calls may fail; callers must degrade gracefully instead of propagating the
// failure to the user.
type GeminiLLMService interface {
	// Enabled reports whether the service holds a usable client. When false
	// the submission path must not attempt either call.
	Enabled() bool
	// ClassifyProblem returns one topic from the fixed topic set, or
	// "Uncategorized" when the model answers outside of it.
	ClassifyProblem(ctx context.Context, description string) (string, error)
	// GenerateSolution returns solution text for the problem description.
	GenerateSolution(ctx context.Context, description string) (string, error)
}

// classifyTopics is the closed set the classify prompt constrains to.
var classifyTopics = []string{
	"Arrays", "Strings", "Math", "Binary Search", "Graphs",
	"Dynamic Programming", "Sorting", "Hashmaps", "Recursion", "Trees",
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{client: client.GenerativeModel(cfg.GeminiModel), cfg: cfg}, nil
}

func (s *geminiLLMService) Enabled() bool {
	return s.client != nil
}

func (s *geminiLLMService) ClassifyProblem(ctx context.Context, description string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	prompt := fmt.Sprintf(
		"Classify this coding problem into ONE topic from:\n[%s]\n\nReturn ONLY the topic name.\n\n%s",
		strings.Join(classifyTopics, ", "), description)

	raw, err := s.generateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during topic classification")
		return "", err
	}
	return normalizeTopic(raw), nil
}

func (s *geminiLLMService) GenerateSolution(ctx context.Context, description string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	prompt := fmt.Sprintf(
		"Solve the following coding problem clearly.\nExplain the approach and provide code.\n\n%s",
		description)

	text, err := s.generateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during solution generation")
		return "", err
	}
	return text, nil
}

func (s *geminiLLMService) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullText += string(txt)
		}
	}
	if fullText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(fullText), nil
}

// normalizeTopic maps any model output outside the fixed topic set to
// "Uncategorized".
func normalizeTopic(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, topic := range classifyTopics {
		if trimmed == topic {
			return topic
		}
	}
	return model.TopicUncategorized
}
