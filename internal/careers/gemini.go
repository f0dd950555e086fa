package careers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pathfinders-assessment/internal/domain"
	"pathfinders-assessment/internal/logging"
)

const defaultModel = "gemini-2.0-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAdvisor asks a Gemini model for interests. When the call fails and a
// fallback is set, the fallback answers instead.
type GeminiAdvisor struct {
	models   contentGenerator
	model    string
	fallback Advisor
}

func NewGeminiAdvisor(ctx context.Context, apiKey, model string, fallback Advisor) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiAdvisor(client.Models, model, fallback), nil
}

func newGeminiAdvisor(models contentGenerator, model string, fallback Advisor) *GeminiAdvisor {
	if model == "" {
		model = defaultModel
	}
	return &GeminiAdvisor{models: models, model: model, fallback: fallback}
}

func (a *GeminiAdvisor) Suggest(ctx context.Context, dominant domain.Category, totals map[domain.Category]int) ([]string, error) {
	interests, err := a.generate(ctx, dominant, totals)
	if err == nil {
		return interests, nil
	}
	if a.fallback == nil {
		return nil, err
	}
	logging.WithContext(ctx).WithError(err).Warn("gemini suggestions failed, using fallback")
	return a.fallback.Suggest(ctx, dominant, totals)
}

func (a *GeminiAdvisor) generate(ctx context.Context, dominant domain.Category, totals map[domain.Category]int) ([]string, error) {
	prompt, err := buildPrompt(dominant, totals)
	if err != nil {
		return nil, err
	}
	result, err := a.models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	raw := result.Text()
	logging.WithContext(ctx).Debugf("gemini raw response: %s", raw)
	return parseInterests(raw)
}

func buildPrompt(dominant domain.Category, totals map[domain.Category]int) (string, error) {
	scores, err := json.Marshal(totals)
	if err != nil {
		return "", fmt.Errorf("encode scores: %w", err)
	}
	return fmt.Sprintf(
		"Based on a personality assessment, the user scored highest in %q category with these scores: %s. "+
			"Generate %d relevant career interests/fields for this person. "+
			`Reply with JSON only, shaped as {"interests": ["..."]}.`,
		dominant, scores, InterestCount,
	), nil
}

// parseInterests accepts either {"interests": [...]} or a bare array, with
// or without a markdown code fence around it.
func parseInterests(raw string) ([]string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "` \n")
	if clean == "" {
		return nil, errors.New("empty model response")
	}

	var interests []string
	if strings.HasPrefix(clean, "[") {
		if err := json.Unmarshal([]byte(clean), &interests); err != nil {
			return nil, fmt.Errorf("decode interests: %w", err)
		}
	} else {
		var wrapped struct {
			Interests []string `json:"interests"`
		}
		if err := json.Unmarshal([]byte(clean), &wrapped); err != nil {
			return nil, fmt.Errorf("decode interests: %w", err)
		}
		interests = wrapped.Interests
	}

	out := make([]string, 0, InterestCount)
	for _, s := range interests {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if len(out) == InterestCount {
			break
		}
	}
	if len(out) == 0 {
		return nil, errors.New("model returned no interests")
	}
	return out, nil
}
