package domain

import (
	"encoding/json"
	"testing"
)

func TestChatMessage_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		message ChatMessage
		want    string
	}{
		{
			name:    "text turn keeps string content",
			message: ChatMessage{Role: ChatMessageRoleUser, Content: "hi"},
			want:    `{"role":"user","content":"hi"}`,
		},
		{
			name:    "empty content still a string",
			message: ChatMessage{Role: ChatMessageRoleAssistant},
			want:    `{"role":"assistant","content":""}`,
		},
		{
			name: "multimodal turn becomes a part list",
			message: ChatMessage{
				Role:  ChatMessageRoleUser,
				Parts: []ContentPart{TextPart("what is this?"), ImagePart("data:image/png;base64,AAAA")},
			},
			want: `{"role":"user","content":[{"type":"text","text":"what is this?"},{"type":"image_url","image_url":{"url":"data:image/png;base64,AAAA"}}]}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := json.Marshal(test.message)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != test.want {
				t.Errorf("got %s, want %s", data, test.want)
			}
		})
	}
}
