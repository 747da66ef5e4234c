package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Emotion is the ambient mood a reply carries, consumed by the music player.
type Emotion string

const (
	EmotionSadness    Emotion = "sadness"
	EmotionJoy        Emotion = "joy"
	EmotionLove       Emotion = "love"
	EmotionExcitement Emotion = "excitement"
	EmotionAnger      Emotion = "anger"
	EmotionMotivation Emotion = "motivation"
	EmotionJealousy   Emotion = "jealousy"
	EmotionRelaxation Emotion = "relaxation"
	EmotionAnxiety    Emotion = "anxiety"
	EmotionHope       Emotion = "hope"
)

var knownEmotions = []Emotion{
	EmotionSadness, EmotionJoy, EmotionLove, EmotionExcitement, EmotionAnger,
	EmotionMotivation, EmotionJealousy, EmotionRelaxation, EmotionAnxiety, EmotionHope,
}

// ParseEmotion maps a raw tag value onto the fixed vocabulary. Unrecognized
// values fall back to joy rather than failing.
func ParseEmotion(raw string) Emotion {
	e := Emotion(strings.ToLower(raw))
	return lo.Ternary(lo.Contains(knownEmotions, e), e, EmotionJoy)
}
