package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
)

func testClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key")
	c.baseURL = server.URL
	return c
}

func completionBody(content string, toolCalls ...map[string]any) string {
	message := map[string]any{"role": "assistant", "content": content}
	if len(toolCalls) > 0 {
		message["tool_calls"] = toolCalls
	}
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": message}},
	})
	return string(body)
}

func imageToolCall(args string) map[string]any {
	return map[string]any{
		"id":   "call_1",
		"type": "function",
		"function": map[string]any{
			"name":      "generate_image",
			"arguments": args,
		},
	}
}

func TestCreateChatCompletion_MissingKey(t *testing.T) {
	c := NewClient("")

	_, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestCreateChatCompletion_RequestShape(t *testing.T) {
	var body map[string]any
	var auth string

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(completionBody("hi")))
	})

	messages := []domain.ChatMessage{{Role: domain.ChatMessageRoleUser, Content: "hello"}}
	tools := []domain.Tool{persona.ImageGenerationTool()}
	if _, err := c.CreateChatCompletion(context.Background(), messages, "llama3-70b-8192", 0.7, 1000, tools); err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}

	if auth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer token", auth)
	}
	if body["model"] != "llama3-70b-8192" {
		t.Errorf("model = %v", body["model"])
	}
	if body["stream"] != false {
		t.Errorf("stream = %v, want false", body["stream"])
	}
	if body["tool_choice"] != "auto" {
		t.Errorf("tool_choice = %v, want auto", body["tool_choice"])
	}
	if body["max_tokens"] != float64(1000) {
		t.Errorf("max_tokens = %v, want 1000", body["max_tokens"])
	}
}

func TestCreateChatCompletion_AppendsImageMarkdown(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("Here you go!", imageToolCall(`{"prompt":"a red fox"}`))))
	})

	content, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)
	if err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}

	if !strings.HasPrefix(content, "Here you go!\n\n![Generated Image](") {
		t.Errorf("content = %q, want text plus blank-line-separated image markdown", content)
	}
	if !strings.Contains(content, "a%20red%20fox") {
		t.Errorf("content = %q, missing encoded prompt", content)
	}
	if !strings.Contains(content, "width=1080") || !strings.Contains(content, "height=1920") {
		t.Errorf("content = %q, missing default dimensions", content)
	}
}

func TestCreateChatCompletion_BadToolArgsDegradesGracefully(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("Sure!", imageToolCall(`{not json`))))
	})

	content, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)
	if err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}

	want := "Sure!\n\n" + imageFailureFragment
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestCreateChatCompletion_IgnoresUnknownToolCalls(t *testing.T) {
	call := map[string]any{
		"id":   "call_1",
		"type": "function",
		"function": map[string]any{
			"name":      "send_email",
			"arguments": `{}`,
		},
	}
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("done", call)))
	})

	content, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)
	if err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}
	if content != "done" {
		t.Errorf("content = %q, want %q", content, "done")
	}
}

func TestCreateChatCompletion_UpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota"}`))
	})

	_, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", upstream.StatusCode)
	}
	if !strings.Contains(upstream.Body, "quota") {
		t.Errorf("body = %q, want upstream body preserved", upstream.Body)
	}
}

func TestCreateChatCompletion_EmptyChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)
	if err == nil || !strings.Contains(err.Error(), "no completion response") {
		t.Errorf("err = %v, want no-completion error", err)
	}
}

func TestCreateChatCompletion_DecodeError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{{{`))
	})

	_, err := c.CreateChatCompletion(context.Background(), nil, "m", 0.5, 100, nil)

	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("err = %v, want DecodeError", err)
	}
}
