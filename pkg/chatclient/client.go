package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
)

type MessageState int

const (
	StatePending MessageState = iota
	StateComplete
)

// Message is one turn of the tab-local conversation. An assistant turn is
// appended as a Pending placeholder and completed in place when the proxy
// replies; there is no incremental token streaming.
type Message struct {
	ID        int64
	Content   string
	IsAI      bool
	Thinking  string
	ImageData []string
	State     MessageState
}

type EmotionListener func(domain.Emotion)

const (
	maxAttachedImages = 3

	retryMessage = "Failed to generate response. Please try again."
)

var mentionRe = regexp.MustCompile(`^@(girlie|pro)\s+(.+)$`)

var ErrRequestInFlight = errors.New("another message is in flight")

// Client reconciles proxy responses into a single conversation: it routes
// @persona mentions, keeps the pending-placeholder lifecycle, extracts the
// emotion tag and surfaces typed rate-limit failures.
type Client struct {
	endpoint string
	hc       *http.Client

	mu        sync.Mutex
	sessionID string
	persona   persona.Persona
	messages  []Message
	nextID    int64
	emotion   domain.Emotion
	lastErr   string
	sending   bool
	onEmotion EmotionListener
}

// NewClient creates a client for the proxy chat endpoint URL.
func NewClient(endpoint string) *Client {
	c := &Client{
		endpoint: endpoint,
		hc:       &http.Client{},
		emotion:  domain.EmotionJoy,
	}
	c.reset(persona.Default)
	return c
}

// OnEmotion registers the single cross-cutting emotion consumer (the music
// player). The listener is called outside the client lock.
func (c *Client) OnEmotion(fn EmotionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEmotion = fn
}

// SendMessage appends the user turn, a pending assistant placeholder, and
// resolves the placeholder from the proxy reply. An @girlie/@pro prefix
// routes this message only, without switching the active persona.
func (c *Client) SendMessage(ctx context.Context, text string, images ...string) error {
	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return ErrRequestInFlight
	}
	if strings.TrimSpace(text) == "" && len(images) == 0 {
		c.mu.Unlock()
		return errors.New("message has no content")
	}
	if len(images) > maxAttachedImages {
		images = images[:maxAttachedImages]
	}

	p := c.persona
	body := text
	if m := mentionRe.FindStringSubmatch(text); m != nil {
		p, _ = persona.Parse(m[1])
		body = m[2]
	}

	c.sending = true
	c.lastErr = ""
	c.messages = append(c.messages, Message{
		ID:        c.allocID(),
		Content:   body,
		ImageData: images,
		State:     StateComplete,
	})
	pendingID := c.allocID()
	c.messages = append(c.messages, Message{ID: pendingID, IsAI: true, State: StatePending})

	history := make([]proxyMessage, 0, len(c.messages)-1)
	for _, m := range c.messages {
		if m.ID == pendingID {
			continue
		}
		history = append(history, proxyMessage{Content: m.Content, IsAI: m.IsAI})
	}
	c.mu.Unlock()

	result, err := c.post(ctx, history, p, images)

	c.mu.Lock()
	c.sending = false

	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			// The UI shows a dedicated modal instead; drop the placeholder.
			c.removeMessage(pendingID)
			c.mu.Unlock()
			return err
		}
		c.lastErr = retryMessage
		c.mu.Unlock()
		return err
	}

	cleaned, emotion, found := cleanContent(result.Content)
	if found {
		c.emotion = emotion
	}
	listener := c.onEmotion
	published := c.emotion

	c.completeMessage(pendingID, cleaned, result.Thinking)
	c.mu.Unlock()

	if found && listener != nil {
		listener(published)
	}
	return nil
}

// SetPersona switches the active persona and starts a fresh session greeted
// by that persona.
func (c *Client) SetPersona(p persona.Persona) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(p)
}

// StartNewChat starts a fresh session with the current persona.
func (c *Client) StartNewChat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(c.persona)
}

func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Client) CurrentEmotion() domain.Emotion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emotion
}

// Err returns the UI-visible error banner text, empty when the last send
// succeeded or rate-limited (the modal covers that case).
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Client) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

func (c *Client) Persona() persona.Persona {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persona
}

func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Client) reset(p persona.Persona) {
	c.sessionID = uuid.NewString()
	c.persona = p
	c.lastErr = ""
	greeting, _, _ := cleanContent(p.Config().InitialMessage)
	c.messages = []Message{{
		ID:      c.allocID(),
		Content: greeting,
		IsAI:    true,
		State:   StateComplete,
	}}
}

func (c *Client) allocID() int64 {
	c.nextID++
	return c.nextID
}

func (c *Client) removeMessage(id int64) {
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}

func (c *Client) completeMessage(id int64, content, thinking string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content = content
			c.messages[i].Thinking = thinking
			c.messages[i].State = StateComplete
			return
		}
	}
}

type proxyMessage struct {
	Content string `json:"content"`
	IsAI    bool   `json:"isAI"`
}

type proxyRequest struct {
	Messages  []proxyMessage `json:"messages"`
	Persona   string         `json:"persona"`
	ImageData any            `json:"imageData,omitempty"`
}

type proxyResponse struct {
	Content  string `json:"content"`
	Thinking string `json:"thinking"`
	Error    string `json:"error"`
	Type     string `json:"type"`
}

func (c *Client) post(ctx context.Context, history []proxyMessage, p persona.Persona, images []string) (*proxyResponse, error) {
	reqBody := proxyRequest{Messages: history, Persona: p.Key()}
	switch len(images) {
	case 0:
	case 1:
		reqBody.ImageData = images[0]
	default:
		reqBody.ImageData = images
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing HTTP request: %w", err)
	}
	defer resp.Body.Close()

	var result proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || result.Type == "rateLimit" {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return nil, errors.New(result.Error)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return &result, nil
}
