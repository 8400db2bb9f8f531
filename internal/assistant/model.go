package assistant

import (
	"context"
	"errors"
	"time"
)

// Locale is a supported conversation language.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
)

// Supported reports whether the locale is one this deployment serves.
func (l Locale) Supported() bool {
	return l == LocaleEnglish || l == LocaleHindi
}

// NormalizeLocale maps a raw detector tag to a supported locale. Hindi and
// Latin-script Hindi map to hi; everything else degrades to English.
func NormalizeLocale(raw string) Locale {
	switch raw {
	case "hi", "hi-Latn":
		return LocaleHindi
	default:
		return LocaleEnglish
	}
}

// Emotion is a coarse mood category derived from keyword match or polarity fallback.
type Emotion string

const (
	EmotionStressed Emotion = "stressed"
	EmotionSad      Emotion = "sad"
	EmotionAnxious  Emotion = "anxious"
	EmotionDefault  Emotion = "default"
)

// SessionType tags the kind of reply carried by a ResponseEnvelope.
type SessionType string

const (
	SessionLanguageConfirmed SessionType = "language_confirmed"
	SessionMeditationOffer   SessionType = "meditation_offer"
)

// ConversationState holds the per-conversation flags the composer mutates.
// It is created on the first message and lives for the conversation's lifetime.
type ConversationState struct {
	ID                string    `json:"id" firestore:"id"`
	Title             string    `json:"title" firestore:"title"`
	Locale            Locale    `json:"locale" firestore:"locale"`
	LanguageConfirmed bool      `json:"language_confirmed" firestore:"language_confirmed"`
	CreatedAt         time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" firestore:"updated_at"`
}

// ChatMessage is one transcript entry in a conversation.
type ChatMessage struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversation_id"`
	Role           string    `json:"role" firestore:"role"` // "user" or "assistant"
	Content        string    `json:"content" firestore:"content"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
}

// ClassificationResult is the per-message outcome of the crisis scan and
// emotion classification, consumed immediately by the composer. Crisis
// short-circuits: a crisis result carries no emotion.
type ClassificationResult struct {
	Emotion Emotion
	Crisis  bool
	Locale  Locale
}

// ResponseEnvelope is the finished reply returned to the caller. Immutable
// once built.
type ResponseEnvelope struct {
	Text           string      `json:"text"`
	Locale         Locale      `json:"locale"`
	SessionType    SessionType `json:"session_type,omitempty"`
	Emotion        Emotion     `json:"emotion,omitempty"`
	CrisisDetected bool        `json:"crisis_detected"`
	VoiceMode      bool        `json:"voice_mode,omitempty"`
}

// Store persists conversation state and transcript entries.
type Store interface {
	GetState(ctx context.Context, conversationID string) (*ConversationState, error)
	PutState(ctx context.Context, state *ConversationState) error
	AppendMessage(ctx context.Context, message *ChatMessage) error
	RecentMessages(ctx context.Context, conversationID string, limit int) ([]*ChatMessage, error)
}

// Translator is the remote detect/translate capability. Network-backed and
// fallible; callers must degrade on error rather than propagate.
type Translator interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text string, target Locale) (string, error)
}

// Scorer produces a polarity score in [-1, 1] for English text.
type Scorer interface {
	Polarity(text string) (float64, error)
}

// ErrConversationNotFound is returned by stores when no state exists for an ID.
var ErrConversationNotFound = errors.New("conversation not found")
