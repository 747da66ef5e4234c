package chatclient

import (
	"regexp"
	"strings"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
)

var emotionRe = regexp.MustCompile(`(?i)<emotion>([a-z]+)</emotion>`)

// cleanContent strips the first emotion tag from displayed text and reports
// the parsed emotion. Unrecognized tag values map to joy, not an error.
func cleanContent(content string) (string, domain.Emotion, bool) {
	m := emotionRe.FindStringSubmatchIndex(content)
	if m == nil {
		return content, "", false
	}

	emotion := domain.ParseEmotion(content[m[2]:m[3]])
	cleaned := strings.TrimSpace(content[:m[0]] + content[m[1]:])
	return cleaned, emotion, true
}
