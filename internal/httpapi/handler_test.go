package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/serenitylabs/serenity/internal/assistant"
	"github.com/serenitylabs/serenity/internal/session"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	detector := assistant.NewLanguageDetector(nil, time.Second, logger)
	classifier := assistant.NewClassifier(detector, assistant.NewVaderScorer(), logger)
	composer, err := assistant.NewComposer(session.NewMemoryStore(), detector, assistant.NewScanner(logger), classifier, logger, assistant.ComposerOptions{IncludeFollowUp: true})
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, composer, nil, logger)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%s %s: invalid JSON response: %v", method, path, err)
	}
	return rec, payload
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doJSON(t, router, http.MethodPost, "/v1/chat", `{"message": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if payload["code"] != "bad_request" {
		t.Fatalf("expected bad_request error code, got %v", payload["code"])
	}
}

func TestChatRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/chat", `{"message": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatFirstMessageConfirmsLanguage(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doJSON(t, router, http.MethodPost, "/v1/chat", `{"message": "hello, I need someone to talk to"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if payload["success"] != true {
		t.Fatalf("expected success, got %v", payload)
	}
	if payload["session_type"] != string(assistant.SessionLanguageConfirmed) {
		t.Fatalf("expected language_confirmed on first contact, got %v", payload["session_type"])
	}
	id, _ := payload["conversation_id"].(string)
	if id == "" {
		t.Fatal("expected a generated conversation_id")
	}
	if payload["language"] != string(assistant.LocaleEnglish) {
		t.Fatalf("expected English, got %v", payload["language"])
	}

	// Same conversation, second message: normal reply now.
	_, second := doJSON(t, router, http.MethodPost, "/v1/chat", `{"conversation_id": "`+id+`", "message": "I feel so anxious about my exam"}`)
	if second["session_type"] == string(assistant.SessionLanguageConfirmed) {
		t.Fatal("handshake must not repeat")
	}
	if second["emotion"] != string(assistant.EmotionAnxious) {
		t.Fatalf("expected anxious, got %v", second["emotion"])
	}
}

func TestMeditationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doJSON(t, router, http.MethodGet, "/v1/meditation/breathing/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	lines, ok := payload["meditation_script"].([]any)
	if !ok || len(lines) != 10 {
		t.Fatalf("expected the 10-line breathing script, got %v", payload["meditation_script"])
	}
	if payload["language"] != string(assistant.LocaleEnglish) {
		t.Fatalf("expected English default, got %v", payload["language"])
	}
}

func TestResourcesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doJSON(t, router, http.MethodGet, "/v1/resources", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := payload["resources"].(map[string]any); !ok {
		t.Fatalf("expected a resources object, got %v", payload["resources"])
	}
}

func TestVoiceEndpointsWithoutHandler(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doJSON(t, router, http.MethodGet, "/v1/voice/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", rec.Code)
	}
	status, _ := payload["status"].(map[string]any)
	if status == nil || status["available"] != false {
		t.Fatalf("expected available=false, got %v", payload)
	}

	rec, payload = doJSON(t, router, http.MethodPost, "/v1/voice/transcribe", `{"audio_data": "aGVsbG8="}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("transcribe: expected 503, got %d", rec.Code)
	}
	if payload["code"] != "unavailable" {
		t.Fatalf("expected unavailable error code, got %v", payload["code"])
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/voice/synthesize", `{"text": "hello"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("synthesize: expected 503, got %d", rec.Code)
	}
}
