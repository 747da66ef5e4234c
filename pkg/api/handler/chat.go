package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/timemachine-studios/timemachine-proxy/pkg/api/response"
	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
	"github.com/timemachine-studios/timemachine-proxy/pkg/logger"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
)

type CompletionProvider interface {
	CreateChatCompletion(
		ctx context.Context,
		messages []domain.ChatMessage,
		model string,
		temperature float64,
		maxTokens int,
		tools []domain.Tool,
	) (string, error)
}

type RateLimiter interface {
	Check(clientID string, p persona.Persona) bool
	Increment(clientID string, p persona.Persona)
}

const defaultImagePrompt = "What's in this image?"

const highLoadMessage = "We are facing huge load on our servers and thus we've had to temporarily limit access to maintain system stability. Please be patient, this thing doesn't grow on trees."

type chat struct {
	cerebras CompletionProvider
	groq     CompletionProvider
	limiter  RateLimiter
	writer   response.JSONResponseWriter
}

func NewChat(cerebras, groq CompletionProvider, limiter RateLimiter) *chat {
	return &chat{
		cerebras: cerebras,
		groq:     groq,
		limiter:  limiter,
		writer:   response.JSONResponseWriter{},
	}
}

type chatRequest struct {
	Messages  []incomingMessage `json:"messages"`
	Persona   string            `json:"persona"`
	ImageData imageData         `json:"imageData"`
}

type incomingMessage struct {
	Content string `json:"content"`
	IsAI    bool   `json:"isAI"`
}

// imageData accepts either a single data-URI string or a list of them.
type imageData []string

func (d *imageData) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*d = imageData{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*d = list
	return nil
}

type chatResponse struct {
	Content  string `json:"content"`
	Thinking string `json:"thinking,omitempty"`
}

func (h *chat) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		h.writer.WriteEmptyResponse(w, http.StatusOK)
		return
	case http.MethodPost:
	default:
		h.writer.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ctx := r.Context()

	// Message validation precedes any rate-limit work: a malformed body must
	// not consume quota or fabricate a bucket.
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "Invalid messages format")
		return
	}

	p, err := persona.Parse(req.Persona)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "Invalid persona")
		return
	}

	clientID := resolveClientID(r)

	if !h.limiter.Check(clientID, p) {
		slog.InfoContext(ctx, "rate limit hit", "clientID", clientID, "persona", p.Key())
		h.writer.WriteRateLimitResponse(w)
		return
	}

	content, err := h.complete(ctx, p, req)
	if err != nil {
		slog.ErrorContext(ctx, "generating chat completion", "persona", p.Key(), logger.Err(err))
		if isRateLimitError(err) {
			h.writer.WriteRateLimitResponse(w)
			return
		}
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, highLoadMessage)
		return
	}

	h.limiter.Increment(clientID, p)

	res := chatResponse{Content: content}
	if p.HasThinking() {
		res.Content, res.Thinking = extractThinking(content)
	}

	h.writer.WriteSuccessResponse(w, res)
}

func (h *chat) complete(ctx context.Context, p persona.Persona, req chatRequest) (string, error) {
	hasImage := len(req.ImageData) > 0
	cfg := p.Config()

	provider := h.groq
	if p.Provider(hasImage) == persona.ProviderCerebras {
		provider = h.cerebras
	}

	tools := []domain.Tool{persona.ImageGenerationTool()}

	return provider.CreateChatCompletion(
		ctx,
		buildMessages(p, req),
		p.Model(hasImage),
		cfg.Temperature,
		cfg.MaxTokens,
		tools,
	)
}

// buildMessages produces the canonical message list. With an image attached
// the whole conversation collapses into a single multimodal user turn; the
// vision model does not need prior turns re-sent.
func buildMessages(p persona.Persona, req chatRequest) []domain.ChatMessage {
	prompt := p.EnhancedSystemPrompt()

	if len(req.ImageData) > 0 {
		text := defaultImagePrompt
		if last := lastUserText(req.Messages); last != "" {
			text = last
		}

		parts := []domain.ContentPart{domain.TextPart(prompt + "\n\n" + text)}
		for _, url := range req.ImageData {
			parts = append(parts, domain.ImagePart(url))
		}

		return []domain.ChatMessage{{Role: domain.ChatMessageRoleUser, Parts: parts}}
	}

	messages := make([]domain.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatMessageRoleSystem, Content: prompt})
	for _, m := range req.Messages {
		role := domain.ChatMessageRoleUser
		if m.IsAI {
			role = domain.ChatMessageRoleAssistant
		}
		messages = append(messages, domain.ChatMessage{Role: role, Content: m.Content})
	}
	return messages
}

func lastUserText(messages []incomingMessage) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[len(messages)-1].Content
}

// resolveClientID falls back to a shared sentinel when no forwarding header
// is present; clients behind such a proxy share one bucket.
func resolveClientID(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	return "unknown"
}

func isRateLimitError(err error) bool {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode == http.StatusTooManyRequests
	}
	msg := err.Error()
	return strings.Contains(msg, "Rate limit") || strings.Contains(msg, "429")
}
