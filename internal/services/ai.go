package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/task-tracker/internal/models"
)

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestDrafts asks the model to extract task drafts from text
func (s *AIService) SuggestDrafts(ctx context.Context, text string) ([]models.TaskDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(time.Now(), text),
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseDrafts(resp.Choices[0].Message.Content)
}

func buildPrompt(now time.Time, text string) string {
	return fmt.Sprintf(`You extract to-do items from text.

Current date: %s

Text:
%s

Return a JSON array of tasks in this shape:
[
  {
    "title": "short title, at most %d characters",
    "description": "what needs doing, at most %d characters",
    "priority": "low | medium | high",
    "due_date": "YYYY-MM-DD, or an empty string when no deadline is stated"
  }
]

Rules:
- Return [] when the text contains no tasks
- Turn relative deadlines ("tomorrow", "next week") into concrete dates
- Return JSON only, no commentary`, now.Format(time.DateOnly), text, models.MaxTitleLength, models.MaxDescriptionLength)
}

func parseDrafts(content string) ([]models.TaskDraft, error) {
	var drafts []models.TaskDraft
	if err := json.Unmarshal([]byte(content), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}
	return drafts, nil
}
