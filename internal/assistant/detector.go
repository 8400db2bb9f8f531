package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pemistahl/lingua-go"
)

const defaultExternalTimeout = 5 * time.Second

// LanguageDetector maps free text to a supported locale and normalizes
// non-English text before sentiment scoring. The remote translator is
// optional; detection always has the offline lingua model to fall back on,
// and every failure path degrades silently to English / original text.
type LanguageDetector struct {
	translator Translator
	offline    lingua.LanguageDetector
	timeout    time.Duration
	logger     *slog.Logger
}

// NewLanguageDetector builds a detector. translator may be nil, in which case
// detection is purely offline and Translate is a no-op pass-through.
func NewLanguageDetector(translator Translator, timeout time.Duration, logger *slog.Logger) *LanguageDetector {
	if timeout <= 0 {
		timeout = defaultExternalTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	offline := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Hindi).
		Build()
	return &LanguageDetector{translator: translator, offline: offline, timeout: timeout, logger: logger}
}

// Detect returns the supported locale for the text. Detection never fails to
// the caller: remote errors fall back to the offline model, and anything the
// offline model cannot place defaults to English.
func (d *LanguageDetector) Detect(ctx context.Context, text string) Locale {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return LocaleEnglish
	}

	if d.translator != nil {
		callCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()
		tag, err := d.translator.DetectLanguage(callCtx, trimmed)
		if err == nil {
			return NormalizeLocale(tag)
		}
		d.logger.Warn("remote language detection failed, falling back to offline model", "error", err)
	}

	if lang, ok := d.offline.DetectLanguageOf(trimmed); ok && lang == lingua.Hindi {
		return LocaleHindi
	}
	return LocaleEnglish
}

// Translate converts text to the target locale. Used only to normalize
// non-English input to English before keyword and polarity scoring; on any
// failure the original text is returned so a translation outage never blocks
// the pipeline.
func (d *LanguageDetector) Translate(ctx context.Context, text string, target Locale) string {
	if d.translator == nil || strings.TrimSpace(text) == "" {
		return text
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	translated, err := d.translator.Translate(callCtx, text, target)
	if err != nil {
		d.logger.Warn("translation failed, keeping original text", "target", string(target), "error", err)
		return text
	}
	return translated
}
