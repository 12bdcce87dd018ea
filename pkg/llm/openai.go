package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"bazireport/internal/model"
)

// OpenAIClient is the alternative narrative provider, selected by
// configuration. Same contract and retry policy as the Anthropic
// client, without incremental delivery.
type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
	retry     retryPolicy
}

func NewOpenAIClient(apiKey, modelName string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	m := openai.ChatModelGPT4o
	if modelName != "" {
		m = openai.ChatModel(modelName)
	}

	return &OpenAIClient{
		client:    &client,
		model:     m,
		modelName: string(m),
		retry:     defaultRetryPolicy,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, chart model.ChartRecord) (*Narrative, error) {
	userPrompt := renderUserPrompt(chart)

	text, err := generateWithRetry(ctx, c.retry, func() (string, error) {
		return c.complete(ctx, userPrompt)
	})
	if err != nil {
		return nil, classify(err)
	}

	return &Narrative{Text: text, Model: c.modelName}, nil
}

func (c *OpenAIClient) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     c.model,
		MaxTokens: openai.Int(maxReportTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Category: CategoryEmpty, Err: errors.New("no choices in model response")}
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", &ServiceError{Category: CategoryEmpty, Err: errors.New("no content in model response")}
	}

	return text, nil
}
