package assistant

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator implements Translator against the Cloud Translation API.
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator dials the Cloud Translation API with an API key.
func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	if apiKey == "" {
		return nil, errors.New("translate api key missing")
	}
	client, err := translate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("translate client: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

// DetectLanguage returns the raw BCP-47 tag of the strongest detection.
func (g *GoogleTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	detections, err := g.client.DetectLanguage(ctx, []string{text})
	if err != nil {
		return "", err
	}
	if len(detections) == 0 || len(detections[0]) == 0 {
		return "", errors.New("no language detected")
	}
	return detections[0][0].Language.String(), nil
}

// Translate renders text in the target locale.
func (g *GoogleTranslator) Translate(ctx context.Context, text string, target Locale) (string, error) {
	tag, err := language.Parse(string(target))
	if err != nil {
		return "", fmt.Errorf("parse target locale: %w", err)
	}
	translations, err := g.client.Translate(ctx, []string{text}, tag, nil)
	if err != nil {
		return "", err
	}
	if len(translations) == 0 {
		return "", errors.New("empty translation result")
	}
	return translations[0].Text, nil
}

// Close releases the underlying API client.
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
