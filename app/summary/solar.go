// Package summary contains a client for the summarization service.
package summary

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slog"
)

//go:embed data/prompt.tmpl
var prompt string

var promptTmpl = template.Must(template.New("prompt").Parse(prompt))

const systemPrompt = "You are an assistant that summarizes multiple news articles in Korean, providing concise phrases."

// Defaults for the Upstage Solar API.
const (
	DefaultBaseURL = "https://api.upstage.ai/v1/solar"
	DefaultModel   = "solar-1-mini-chat"
)

// ErrEmptyResponse is returned when the service responds without any text.
var ErrEmptyResponse = errors.New("empty response")

//go:generate moq -out mock_openai_client.go . OpenAIClient

// OpenAIClient is interface for OpenAI-compatible client with the possibility to mock it
type OpenAIClient interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Params defines parameters for Solar client.
type Params struct {
	Token     string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Solar is a client to make requests to Upstage Solar chat API.
// The API speaks OpenAI chat completions protocol.
type Solar struct {
	log       *slog.Logger
	cl        OpenAIClient
	model     string
	maxTokens int
}

// NewSolar creates new Solar client.
func NewSolar(lg *slog.Logger, cl *http.Client, params Params) *Solar {
	config := openai.DefaultConfig(params.Token)
	config.HTTPClient = cl
	config.BaseURL = DefaultBaseURL
	if params.BaseURL != "" {
		config.BaseURL = strings.TrimSuffix(params.BaseURL, "/")
	}

	model := params.Model
	if model == "" {
		model = DefaultModel
	}

	return &Solar{
		log:       lg,
		cl:        &loggingClient{log: lg, cl: openai.NewClientWithConfig(config)},
		model:     model,
		maxTokens: params.MaxTokens,
	}
}

// Summarize condenses the given text into a short numbered list of phrases.
func (s *Solar) Summarize(ctx context.Context, text string) (string, error) {
	buf := &strings.Builder{}
	if err := promptTmpl.Execute(buf, text); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buf.String()},
		},
	}

	resp, err := s.cl.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response: %w", ErrEmptyResponse)
	}

	result := resp.Choices[0].Message.Content
	if result == "" {
		return "", ErrEmptyResponse
	}

	return result, nil
}

type loggingClient struct {
	log *slog.Logger
	cl  OpenAIClient
}

func (l *loggingClient) CreateChatCompletion(
	ctx context.Context,
	req openai.ChatCompletionRequest,
) (openai.ChatCompletionResponse, error) {
	l.log.DebugCtx(ctx, "sending request to solar",
		slog.String("model", req.Model),
		slog.Int("prompt_runes", promptRunes(req.Messages)),
	)

	resp, err := l.cl.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			l.log.WarnCtx(ctx, "solar responded with error",
				slog.Int("status", apiErr.HTTPStatusCode),
				slog.String("message", apiErr.Message),
			)
		}
		return resp, err
	}

	l.log.DebugCtx(ctx, "response received from solar",
		slog.Int("choices", len(resp.Choices)),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return resp, nil
}

func promptRunes(msgs []openai.ChatCompletionMessage) (n int) {
	for _, m := range msgs {
		n += len([]rune(m.Content))
	}
	return n
}
