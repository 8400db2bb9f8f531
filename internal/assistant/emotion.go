package assistant

import (
	"context"
	"log/slog"
	"strings"
)

// sadPolarityThreshold is the polarity score below which otherwise unmatched
// text classifies as sad.
const sadPolarityThreshold = -0.1

// Classifier derives a coarse emotion from keyword tables with a polarity
// fallback. The keyword tables are English-only, so non-English input is
// normalized through the detector's translate path first.
type Classifier struct {
	detector *LanguageDetector
	scorer   Scorer
	logger   *slog.Logger
}

// NewClassifier wires the emotion classifier.
func NewClassifier(detector *LanguageDetector, scorer Scorer, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{detector: detector, scorer: scorer, logger: logger}
}

// Classify returns the emotion for the message. Keyword precedence is fixed:
// stressed wins over sad wins over anxious. When no keyword hits, polarity
// below the sad threshold yields sad, otherwise default. Any failure along
// the way yields default, never an error.
func (c *Classifier) Classify(ctx context.Context, text string, locale Locale) (emotion Emotion) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("emotion classification failed", "panic", r)
			emotion = EmotionDefault
		}
	}()

	normalized := text
	if locale != LocaleEnglish && c.detector != nil {
		normalized = c.detector.Translate(ctx, text, LocaleEnglish)
	}
	lowered := strings.ToLower(normalized)

	switch {
	case containsAny(lowered, stressKeywords):
		return EmotionStressed
	case containsAny(lowered, sadKeywords):
		return EmotionSad
	case containsAny(lowered, anxiousKeywords):
		return EmotionAnxious
	}

	if c.scorer != nil {
		score, err := c.scorer.Polarity(lowered)
		if err != nil {
			c.logger.Warn("polarity scoring failed", "error", err)
			return EmotionDefault
		}
		if score < sadPolarityThreshold {
			return EmotionSad
		}
	}
	return EmotionDefault
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
