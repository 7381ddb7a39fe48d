// Package summarizer produces the optional LLM personality summary from
// a capped sample of the user's posts and replies.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"skylens/internal/config"
	"skylens/internal/core"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4oMini

type Summarizer struct {
	Logger *slog.Logger
	Config *config.Config

	client *openai.Client
	model  string
}

func (s *Summarizer) Init(context.Context) error {
	s.Logger = s.Logger.With("component", "summarizer.Summarizer")

	if s.Config.OpenAIKey == "" {
		s.Logger.Info("no OpenAI key configured, summaries disabled")
		return nil
	}

	s.model = s.Config.OpenAIModel
	if s.model == "" {
		s.model = defaultModel
	}
	s.client = openai.NewClient(s.Config.OpenAIKey)
	return nil
}

// Enabled reports whether a summary can be produced at all. A disabled
// summarizer is not an error: the analysis just omits the summary.
func (s *Summarizer) Enabled() bool {
	return s.client != nil
}

// Summarize asks the model for a short personality summary plus a spirit
// animal. An empty sample is a valid terminal state and yields nil.
func (s *Summarizer) Summarize(ctx context.Context, sample core.ContentSample, displayName, locale string) (*core.Summary, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if len(sample.OriginalPosts) == 0 && len(sample.ReplyPosts) == 0 {
		return nil, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(locale),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(sample, displayName),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	summary := &core.Summary{}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), summary); err != nil {
		return nil, fmt.Errorf("decoding summary response: %w", err)
	}

	return summary, nil
}

func systemPrompt(locale string) string {
	if strings.Contains(locale, "zh") {
		return "你是一个社交媒体性格分析助手。根据用户的帖子和回复，写一段友善幽默的性格总结，" +
			"并选择一种最能代表这位用户的动物。" +
			`用 JSON 回答：{"summary": "...", "animal": "...", "animalReason": "..."}`
	}
	return "You are a social media personality analyst. Given a user's posts and replies, " +
		"write a friendly, lightly humorous personality summary and pick the animal that best " +
		"represents them. " +
		`Answer in JSON: {"summary": "...", "animal": "...", "animalReason": "..."}`
}

func userPrompt(sample core.ContentSample, displayName string) string {
	var sb strings.Builder

	if displayName != "" {
		fmt.Fprintf(&sb, "User: %s\n\n", displayName)
	}

	sb.WriteString("Original posts:\n")
	for _, text := range sample.OriginalPosts {
		fmt.Fprintf(&sb, "- %s\n", text)
	}

	sb.WriteString("\nReplies:\n")
	for _, text := range sample.ReplyPosts {
		fmt.Fprintf(&sb, "- %s\n", text)
	}

	return sb.String()
}
