package handler

import (
	"regexp"
	"strings"
)

var thinkRe = regexp.MustCompile(`(?s)<think>(.*?)</think>`)

// extractThinking splits a reply into visible content and the first
// <think>...</think> block. Without a block the whole reply is content.
func extractThinking(reply string) (content, thinking string) {
	loc := thinkRe.FindStringSubmatchIndex(reply)
	if loc == nil {
		return strings.TrimSpace(reply), ""
	}

	thinking = strings.TrimSpace(reply[loc[2]:loc[3]])
	content = strings.TrimSpace(reply[:loc[0]] + reply[loc[1]:])
	return content, thinking
}
