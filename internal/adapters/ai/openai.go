package ai

import (
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"churnscope/internal/agents"
	"churnscope/pkg/errors"
	"churnscope/pkg/logger"
)

const (
	defaultTimeout     = 60 * time.Second
	defaultTemperature = 0.1
	defaultMaxTokens   = 2000
)

// Ensure OpenAIChatModel implements the supervisor's chat model interface
var _ agents.ChatModel = (*OpenAIChatModel)(nil)

// OpenAIChatModel backs the supervisor's planning and synthesis calls using
// the official OpenAI Go SDK. Temperature is kept low so plans stay
// structured and parseable.
type OpenAIChatModel struct {
	client  openai.Client
	model   openai.ChatModel
	timeout time.Duration
	log     *logger.Logger
}

// NewOpenAIChatModel creates a chat model client.
func NewOpenAIChatModel(apiKey, model string) (*OpenAIChatModel, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "openai API key is required")
	}
	if model == "" {
		model = openai.ChatModelGPT4o
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIChatModel{
		client:  client,
		model:   openai.ChatModel(model),
		timeout: defaultTimeout,
		log:     logger.Get().With("component", "openai_chat", "model", model),
	}, nil
}

// Complete runs a single system+user chat completion and returns the text
// of the first choice.
func (m *OpenAIChatModel) Complete(ctx context.Context, system, user string) (string, error) {
	if user == "" {
		return "", errors.Wrap(errors.ErrInvalidInput, "user message cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var msgs []openai.ChatCompletionMessageParamUnion
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	msgs = append(msgs, openai.UserMessage(user))

	response, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               m.model,
		Messages:            msgs,
		Temperature:         openai.Float(defaultTemperature),
		MaxCompletionTokens: openai.Int(defaultMaxTokens),
	})
	if err != nil {
		return "", errors.Wrap(err, "openai API call failed")
	}

	if len(response.Choices) == 0 {
		return "", errors.Wrap(errors.ErrInternal, "no choices returned")
	}

	m.log.Debugw("Chat completion",
		"prompt_tokens", response.Usage.PromptTokens,
		"completion_tokens", response.Usage.CompletionTokens,
	)

	return response.Choices[0].Message.Content, nil
}
