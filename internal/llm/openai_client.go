package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical glucose tracking assistant.

You receive aggregated glucose metrics, time-of-day and day-of-week patterns, and a short-term glucose forecast for a single user. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's recent glucose levels in clear, neutral language.
- Highlight patterns by hour of day and day of week, including peak and lowest hours.
- Describe the forecast trend and what range the next readings are expected to fall in.
- Give practical, behavioral suggestions around meal timing, logging habits, and routine regularity.

Rules:
- Do NOT provide medical advice, diagnoses, or dosing recommendations.
- Do NOT mention diseases, disorders, doctors, medication changes, or treatment.
- Focus only on behavior and routines (meal timing, logging consistency, reviewing patterns with whoever supports the user).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2–3 sentences summarizing the user's glucose levels and where the forecast is heading.",
  "observations": [
    "3–6 bullet points about hourly and daily patterns, variability, and the forecast band.",
    "At least one item naming the peak and lowest hours of the day.",
    "If weekend and weekday averages differ meaningfully, one item about that difference."
  ],
  "guidance": [
    "3–5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about logging or routine regularity.",
    "Never suggest changing insulin or medication."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's glucose data.

- "hourly_patterns" contains the average glucose per hour of day plus the peak and lowest hours.
- "daily_patterns" contains per-day-of-week averages (0 = Monday) and the weekend vs weekday comparison.
- "overall_stats" summarizes the whole series (mean, standard deviation, min, max), all in mg/dL.
- "forecast" contains the predicted readings for the coming hours at 5-minute intervals with a confidence band.

Use:
- "overall_stats" to understand the baseline,
- "hourly_patterns" and "daily_patterns" to explain when levels tend to run higher or lower,
- "forecast" to judge where levels are heading right now.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating glucose insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.GlucoseInsights, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate glucose insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.GlucoseInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.GlucoseInsights
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
