// Package voice converts speech to text and text to speech for the spoken
// conversation surface. Audio is expected as mono 16 kHz 16-bit PCM WAV;
// normalization happens upstream of this package.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/serenitylabs/serenity/internal/assistant"
)

var (
	// ErrUnavailable indicates no speech engine is configured.
	ErrUnavailable = errors.New("voice functionality not available")
	// ErrUnknownAudio indicates the engine produced no transcript.
	ErrUnknownAudio = errors.New("could not understand audio")
)

// Recognizer converts audio to text.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, locale assistant.Locale) (string, error)
}

// Synthesizer converts text to audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, locale assistant.Locale) ([]byte, error)
}

// Handler fronts the speech engines with availability checks and bounded
// timeouts. Either engine may be nil when unconfigured.
type Handler struct {
	recognizer  Recognizer
	synthesizer Synthesizer
	timeout     time.Duration
	logger      *slog.Logger
}

// NewHandler wires the voice handler.
func NewHandler(recognizer Recognizer, synthesizer Synthesizer, timeout time.Duration, logger *slog.Logger) *Handler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{recognizer: recognizer, synthesizer: synthesizer, timeout: timeout, logger: logger}
}

// Available reports whether both speech directions are configured.
func (h *Handler) Available() bool {
	return h.recognizer != nil && h.synthesizer != nil
}

// CanRecognize reports whether speech-to-text is configured.
func (h *Handler) CanRecognize() bool { return h.recognizer != nil }

// CanSynthesize reports whether text-to-speech is configured.
func (h *Handler) CanSynthesize() bool { return h.synthesizer != nil }

// Transcribe converts audio to text in the given locale.
func (h *Handler) Transcribe(ctx context.Context, audio []byte, locale assistant.Locale) (string, error) {
	if h.recognizer == nil {
		return "", ErrUnavailable
	}
	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	text, err := h.recognizer.Recognize(callCtx, audio, locale)
	if err != nil {
		h.logger.Warn("speech recognition failed", "locale", string(locale), "error", err)
		return "", err
	}
	return text, nil
}

// Speak renders text as audio in the given locale.
func (h *Handler) Speak(ctx context.Context, text string, locale assistant.Locale) ([]byte, error) {
	if h.synthesizer == nil {
		return nil, ErrUnavailable
	}
	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	audio, err := h.synthesizer.Synthesize(callCtx, text, locale)
	if err != nil {
		h.logger.Warn("speech synthesis failed", "locale", string(locale), "error", err)
		return nil, err
	}
	return audio, nil
}

// SpeechTag maps a supported locale to the speech engines' language tag.
func SpeechTag(locale assistant.Locale) string {
	if locale == assistant.LocaleHindi {
		return "hi-IN"
	}
	return "en-US"
}
