package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
	"github.com/timemachine-studios/timemachine-proxy/pkg/logger"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
	"github.com/timemachine-studios/timemachine-proxy/pkg/pollinations"
)

const chatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

const imageFailureFragment = "Sorry, I had trouble generating that image. Please try again."

type client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

func NewClient(apiKey string) *client {
	return &client{
		apiKey:  apiKey,
		baseURL: chatCompletionsURL,
		hc:      &http.Client{},
	}
}

// CreateChatCompletion runs one non-streaming completion and folds any
// generate_image tool calls into the returned content as markdown.
func (c *client) CreateChatCompletion(
	ctx context.Context,
	messages []domain.ChatMessage,
	model string,
	temperature float64,
	maxTokens int,
	tools []domain.Tool,
) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq: %w", domain.ErrMissingAPIKey)
	}

	body, err := c.prepareRequest(messages, model, temperature, maxTokens, tools)
	if err != nil {
		return "", fmt.Errorf("preparing request: %w", err)
	}

	resp, err := c.sendRequest(ctx, body)
	if err != nil {
		return "", fmt.Errorf("sending request to %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	return c.processResponse(ctx, resp)
}

func (c *client) prepareRequest(
	messages []domain.ChatMessage,
	model string,
	temperature float64,
	maxTokens int,
	tools []domain.Tool,
) ([]byte, error) {
	req := chatCompletionsRequest{
		Messages:    messages,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	}

	if len(tools) > 0 {
		req.Tools = tools
		req.ToolChoice = "auto"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling chat request: %w", err)
	}

	return body, nil
}

func (c *client) sendRequest(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing HTTP request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	return resp, nil
}

func (c *client) processResponse(ctx context.Context, resp *http.Response) (string, error) {
	var response chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", &domain.DecodeError{Provider: "groq", Err: err}
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion response from API")
	}

	message := response.Choices[0].Message
	content := message.Content

	for _, call := range message.ToolCalls {
		if call.Function.Name != persona.GenerateImageFunction {
			continue
		}

		var params pollinations.ImageParams
		if err := json.Unmarshal([]byte(call.Function.Arguments), &params); err != nil {
			slog.ErrorContext(ctx, "parsing image tool arguments", "args", call.Function.Arguments, logger.Err(err))
			content += "\n\n" + imageFailureFragment
			continue
		}

		content += "\n\n" + pollinations.CreateImageMarkdown(params)
	}

	return content, nil
}
