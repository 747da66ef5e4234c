package persona

import (
	"fmt"

	"github.com/timemachine-studios/timemachine-proxy/pkg/domain"
)

// Persona is one of the fixed assistant personalities. The set is closed:
// adding a persona means extending the enum and every switch over it.
type Persona int

const (
	Default Persona = iota
	Girlie
	Pro
)

// Parse resolves a request persona key. An empty key means Default.
func Parse(key string) (Persona, error) {
	switch key {
	case "", "default":
		return Default, nil
	case "girlie":
		return Girlie, nil
	case "pro":
		return Pro, nil
	default:
		return Default, fmt.Errorf("%w: %q", domain.ErrInvalidPersona, key)
	}
}

func All() []Persona {
	return []Persona{Default, Girlie, Pro}
}

func (p Persona) Key() string {
	switch p {
	case Girlie:
		return "girlie"
	case Pro:
		return "pro"
	default:
		return "default"
	}
}

// Config holds the immutable per-persona settings. Loaded once at process
// start, never mutated.
type Config struct {
	Name           string
	SystemPrompt   string
	InitialMessage string
	Model          string
	Temperature    float64
	MaxTokens      int
	DailyLimit     int
}

func (p Persona) Config() Config {
	switch p {
	case Girlie:
		return girlieConfig
	case Pro:
		return proConfig
	default:
		return defaultConfig
	}
}

// HasThinking reports whether the persona's model emits a <think> trace that
// must be split out of the visible reply.
func (p Persona) HasThinking() bool {
	return p == Pro
}

type Provider int

const (
	ProviderCerebras Provider = iota
	ProviderGroq
)

// VisionModel is the multimodal model used whenever an image is attached,
// regardless of the persona's own model.
const VisionModel = "meta-llama/llama-4-maverick-17b-128e-instruct"

// Provider selects the upstream for a request. Default runs on Cerebras when
// no image is attached; image requests and every other persona go to Groq.
// This is persona business logic, not an adapter concern.
func (p Persona) Provider(hasImage bool) Provider {
	if p == Default && !hasImage {
		return ProviderCerebras
	}
	return ProviderGroq
}

func (p Persona) Model(hasImage bool) string {
	if hasImage {
		return VisionModel
	}
	return p.Config().Model
}

// EnhancedSystemPrompt is the persona prompt plus the image tool instructions
// that are appended to every request.
func (p Persona) EnhancedSystemPrompt() string {
	return p.Config().SystemPrompt + `

You have access to an image generation tool. When users request images, use the generate_image function with appropriate parameters. Always enhance the user's prompt with detailed descriptions for better image quality.

Remember to always talk to the user like a real human who genuinely cares.`
}
