package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"bazireport/internal/model"
)

// AnthropicClient is the primary narrative provider. The response is
// consumed as a token stream and accumulated; callers see a single
// blocking call that returns the full text.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
	retry     retryPolicy
	onDelta   func(string)
}

func NewAnthropicClient(apiKey, modelName string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := anthropic.ModelClaudeSonnet4_5
	if modelName != "" {
		m = anthropic.Model(modelName)
	}

	return &AnthropicClient{
		client:    &client,
		model:     m,
		modelName: string(m),
		retry:     defaultRetryPolicy,
	}
}

// OnDelta registers a callback invoked with each streamed text
// fragment, for telemetry only. Must be set before Generate is used.
func (c *AnthropicClient) OnDelta(fn func(string)) {
	c.onDelta = fn
}

func (c *AnthropicClient) Generate(ctx context.Context, chart model.ChartRecord) (*Narrative, error) {
	userPrompt := renderUserPrompt(chart)

	text, err := generateWithRetry(ctx, c.retry, func() (string, error) {
		return c.complete(ctx, userPrompt)
	})
	if err != nil {
		return nil, classify(err)
	}

	return &Narrative{Text: text, Model: c.modelName}, nil
}

func (c *AnthropicClient) complete(ctx context.Context, userPrompt string) (string, error) {
	stream := c.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxReportTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return "", err
		}

		if c.onDelta != nil {
			switch ev := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					c.onDelta(delta.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &ServiceError{Category: CategoryEmpty, Err: errors.New("no content in model response")}
	}

	return text, nil
}
