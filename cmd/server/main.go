package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/serenitylabs/serenity/internal/assistant"
	"github.com/serenitylabs/serenity/internal/config"
	"github.com/serenitylabs/serenity/internal/httpapi"
	"github.com/serenitylabs/serenity/internal/logging"
	"github.com/serenitylabs/serenity/internal/server"
	"github.com/serenitylabs/serenity/internal/session"
	"github.com/serenitylabs/serenity/internal/voice"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger("serenity")

	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("session store: %w", err))
	}
	defer closeStore()

	var translator assistant.Translator
	if cfg.Translate.APIKey != "" {
		googleTranslator, err := assistant.NewGoogleTranslator(ctx, cfg.Translate.APIKey)
		if err != nil {
			logger.Warn("translate client unavailable, using offline detection only", slog.String("reason", err.Error()))
		} else {
			translator = googleTranslator
			defer googleTranslator.Close()
		}
	} else {
		logger.Info("no translate api key configured, using offline detection only")
	}

	detector := assistant.NewLanguageDetector(translator, cfg.Translate.Timeout, logger)
	scanner := assistant.NewScanner(logger)
	classifier := assistant.NewClassifier(detector, assistant.NewVaderScorer(), logger)

	composer, err := assistant.NewComposer(store, detector, scanner, classifier, logger, assistant.ComposerOptions{
		IncludeFollowUp: cfg.Responder.IncludeFollowUp,
	})
	if err != nil {
		panic(fmt.Errorf("composer init error: %w", err))
	}

	voiceHandler := buildVoiceHandler(ctx, cfg, logger)

	router := server.NewRouter("serenity", func(r chi.Router) {
		httpapi.RegisterRoutes(r, composer, voiceHandler, logger)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func buildStore(ctx context.Context, cfg config.Config) (assistant.Store, func(), error) {
	if cfg.Session.Backend != config.SessionBackendFirestore {
		return session.NewMemoryStore(), func() {}, nil
	}

	databaseID := "serenity-prod"
	if cfg.Session.EmulatorHost != "" {
		if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.Session.EmulatorHost); err != nil {
			return nil, nil, fmt.Errorf("set FIRESTORE_EMULATOR_HOST: %w", err)
		}
		databaseID = "(default)"
	}
	client, err := firestore.NewClientWithDatabase(ctx, cfg.GCPProjectID, databaseID)
	if err != nil {
		return nil, nil, fmt.Errorf("firestore client: %w", err)
	}
	return session.NewFirestoreStore(client), func() { _ = client.Close() }, nil
}

// buildVoiceHandler dials the speech engines when voice is enabled. Either
// engine failing to dial degrades that direction rather than aborting startup.
func buildVoiceHandler(ctx context.Context, cfg config.Config, logger *slog.Logger) *voice.Handler {
	if !cfg.Voice.Enabled {
		return voice.NewHandler(nil, nil, cfg.Voice.Timeout, logger)
	}

	var recognizer voice.Recognizer
	if r, err := voice.NewGoogleRecognizer(ctx); err != nil {
		logger.Warn("speech-to-text unavailable", slog.String("reason", err.Error()))
	} else {
		recognizer = r
	}

	var synthesizer voice.Synthesizer
	if s, err := voice.NewGoogleSynthesizer(ctx); err != nil {
		logger.Warn("text-to-speech unavailable", slog.String("reason", err.Error()))
	} else {
		synthesizer = s
	}

	return voice.NewHandler(recognizer, synthesizer, cfg.Voice.Timeout, logger)
}
