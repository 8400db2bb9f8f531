package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/serenitylabs/serenity/internal/apierrors"
	"github.com/serenitylabs/serenity/internal/assistant"
	"github.com/serenitylabs/serenity/internal/logging"
	"github.com/serenitylabs/serenity/internal/meditation"
	"github.com/serenitylabs/serenity/internal/voice"
)

// RegisterRoutes mounts the chat, meditation, resources and voice endpoints.
func RegisterRoutes(r chi.Router, composer *assistant.Composer, voiceHandler *voice.Handler, logger *slog.Logger) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", chat(composer, logger))
		r.Get("/meditation/{sessionType}/{duration}", startMeditation(composer))
		r.Get("/resources", getResources(composer))

		r.Route("/voice", func(r chi.Router) {
			r.Post("/transcribe", transcribe(voiceHandler))
			r.Post("/synthesize", synthesize(voiceHandler))
			r.Get("/status", voiceStatus(voiceHandler))
		})
	})
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

type chatResponse struct {
	Success        bool                  `json:"success"`
	ConversationID string                `json:"conversation_id"`
	Response       string                `json:"response"`
	Language       assistant.Locale      `json:"language"`
	SessionType    assistant.SessionType `json:"session_type,omitempty"`
	Emotion        assistant.Emotion     `json:"emotion,omitempty"`
	CrisisDetected bool                  `json:"crisis_detected"`
}

func chat(composer *assistant.Composer, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, "bad_request", "invalid request body")
			return
		}
		// Empty messages never reach the composer.
		if strings.TrimSpace(req.Message) == "" {
			writeError(w, r, "bad_request", "message cannot be empty")
			return
		}
		if req.ConversationID == "" {
			req.ConversationID = uuid.New().String()
		}

		log := logging.WithConversation(logging.WithRequestID(logger, middleware.GetReqID(r.Context())), req.ConversationID)

		envelope := composer.Respond(r.Context(), req.ConversationID, req.Message)
		if envelope.CrisisDetected {
			log.Warn("crisis language detected")
		}
		writeJSON(w, http.StatusOK, chatResponse{
			Success:        true,
			ConversationID: req.ConversationID,
			Response:       envelope.Text,
			Language:       envelope.Locale,
			SessionType:    envelope.SessionType,
			Emotion:        envelope.Emotion,
			CrisisDetected: envelope.CrisisDetected,
		})
	}
}

func startMeditation(composer *assistant.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := composer.Locale(r.Context(), r.URL.Query().Get("conversation_id"))
		script := meditation.Lookup(chi.URLParam(r, "sessionType"), chi.URLParam(r, "duration"), locale)

		writeJSON(w, http.StatusOK, map[string]any{
			"success":           true,
			"meditation_script": script.Lines,
			"language":          script.Locale,
			"session_type":      script.SessionType,
			"duration":          script.Duration,
		})
	}
}

func getResources(composer *assistant.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := composer.Locale(r.Context(), r.URL.Query().Get("conversation_id"))
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"resources": assistant.MentalHealthResources(locale),
			"language":  locale,
		})
	}
}

type transcribeRequest struct {
	AudioData string `json:"audio_data"`
	Language  string `json:"language"`
}

func transcribe(voiceHandler *voice.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if voiceHandler == nil || !voiceHandler.CanRecognize() {
			writeError(w, r, "unavailable", "voice functionality not available on this server")
			return
		}
		var req transcribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, "bad_request", "invalid request body")
			return
		}
		if req.AudioData == "" {
			writeError(w, r, "bad_request", "no audio data provided")
			return
		}
		audio, err := base64.StdEncoding.DecodeString(req.AudioData)
		if err != nil {
			writeError(w, r, "bad_request", "audio data is not valid base64")
			return
		}

		locale := assistant.NormalizeLocale(req.Language)
		text, err := voiceHandler.Transcribe(r.Context(), audio, locale)
		if err != nil {
			if errors.Is(err, voice.ErrUnknownAudio) {
				writeError(w, r, "bad_request", "could not understand audio")
				return
			}
			writeError(w, r, "internal", "error processing speech input")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"text":     text,
			"language": locale,
		})
	}
}

type synthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func synthesize(voiceHandler *voice.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if voiceHandler == nil || !voiceHandler.CanSynthesize() {
			writeError(w, r, "unavailable", "voice functionality not available on this server")
			return
		}
		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, "bad_request", "invalid request body")
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			writeError(w, r, "bad_request", "no text provided")
			return
		}

		locale := assistant.NormalizeLocale(req.Language)
		audio, err := voiceHandler.Speak(r.Context(), req.Text, locale)
		if err != nil {
			writeError(w, r, "internal", "error generating speech output")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"audio_data": base64.StdEncoding.EncodeToString(audio),
			"language":   locale,
		})
	}
}

func voiceStatus(voiceHandler *voice.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available := voiceHandler != nil && voiceHandler.Available()
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"status": map[string]any{
				"available":           available,
				"speech_recognition":  voiceHandler != nil && voiceHandler.CanRecognize(),
				"text_to_speech":      voiceHandler != nil && voiceHandler.CanSynthesize(),
				"supported_languages": []assistant.Locale{assistant.LocaleEnglish, assistant.LocaleHindi},
			},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, code, message string) {
	writeJSON(w, apierrors.ToStatusCode(code), apierrors.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
