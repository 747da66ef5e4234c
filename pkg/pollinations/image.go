package pollinations

import (
	"fmt"
	"net/url"
)

const (
	defaultWidth  = 1080
	defaultHeight = 1920

	imageModel = "gptimage"

	// Static access token required by the Pollinations backend. It ships in
	// every generated URL; the image host treats it as a quota key, not a
	// secret.
	accessToken = "9kKT5olE9spTxJgF"
)

// ImageParams mirrors the generate_image tool call arguments. Bounds are
// declared in the tool schema; values here are trusted.
type ImageParams struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// GenerateImageURL builds the deterministic image URL. No network call is
// made; fetching is deferred to the client rendering the markdown.
func GenerateImageURL(params ImageParams) string {
	width := params.Width
	if width == 0 {
		width = defaultWidth
	}
	height := params.Height
	if height == 0 {
		height = defaultHeight
	}

	return fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=%d&height=%d&enhance=true&nologo=true&model=%s&token=%s",
		url.PathEscape(params.Prompt), width, height, imageModel, accessToken,
	)
}

func CreateImageMarkdown(params ImageParams) string {
	return fmt.Sprintf("![Generated Image](%s)", GenerateImageURL(params))
}
