package voice

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/serenitylabs/serenity/internal/assistant"
)

const (
	sampleRateHertz = 16000
	speakingRate    = 0.95
)

// GoogleRecognizer implements Recognizer with the Cloud Speech-to-Text API.
type GoogleRecognizer struct {
	client *speech.Client
}

// NewGoogleRecognizer dials the Speech-to-Text API with default credentials.
func NewGoogleRecognizer(ctx context.Context) (*GoogleRecognizer, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &GoogleRecognizer{client: client}, nil
}

func (g *GoogleRecognizer) Recognize(ctx context.Context, audio []byte, locale assistant.Locale) (string, error) {
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: sampleRateHertz,
			LanguageCode:    SpeechTag(locale),
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", err
	}
	for _, result := range resp.GetResults() {
		if alts := result.GetAlternatives(); len(alts) > 0 && alts[0].GetTranscript() != "" {
			return alts[0].GetTranscript(), nil
		}
	}
	return "", ErrUnknownAudio
}

// Close releases the underlying API client.
func (g *GoogleRecognizer) Close() error { return g.client.Close() }

// GoogleSynthesizer implements Synthesizer with the Cloud Text-to-Speech API.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

// NewGoogleSynthesizer dials the Text-to-Speech API with default credentials.
func NewGoogleSynthesizer(ctx context.Context) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("texttospeech client: %w", err)
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string, locale assistant.Locale) ([]byte, error) {
	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: SpeechTag(locale),
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_LINEAR16,
			SpeakingRate:  speakingRate,
		},
	})
	if err != nil {
		return nil, err
	}
	return resp.GetAudioContent(), nil
}

// Close releases the underlying API client.
func (g *GoogleSynthesizer) Close() error { return g.client.Close() }
