package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	randv2 "math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComposerOptions tunes response assembly.
type ComposerOptions struct {
	// IncludeFollowUp appends a proactive follow-up question to empathetic
	// replies. On by default in production; disabled for terse surfaces.
	IncludeFollowUp bool
	// Rand selects among template variants. Inject a seeded source for
	// deterministic tests; nil uses the shared global source.
	Rand *randv2.Rand
}

// Composer runs the per-message pipeline: handshake on first contact, then
// crisis scan, emotion classification and response assembly. It always
// returns a well-formed envelope; every internal failure degrades to a fixed
// apology in the conversation's last-known locale.
type Composer struct {
	store      Store
	detector   *LanguageDetector
	scanner    *Scanner
	classifier *Classifier
	logger     *slog.Logger

	includeFollowUp bool
	rng             *randv2.Rand

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewComposer wires the composer with its collaborators.
func NewComposer(store Store, detector *LanguageDetector, scanner *Scanner, classifier *Classifier, logger *slog.Logger, opts ComposerOptions) (*Composer, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if detector == nil {
		return nil, errors.New("language detector is required")
	}
	if scanner == nil {
		return nil, errors.New("crisis scanner is required")
	}
	if classifier == nil {
		return nil, errors.New("emotion classifier is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		store:           store,
		detector:        detector,
		scanner:         scanner,
		classifier:      classifier,
		logger:          logger,
		includeFollowUp: opts.IncludeFollowUp,
		rng:             opts.Rand,
		locks:           make(map[string]*sync.Mutex),
	}, nil
}

// Respond processes one inbound message for a conversation. Messages for the
// same conversation are serialized; the transport layer may deliver them
// concurrently.
func (c *Composer) Respond(ctx context.Context, conversationID, message string) (envelope *ResponseEnvelope) {
	lock := c.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	// Outermost safety net: the composer returns a well-formed envelope no
	// matter what fails underneath, defaulting to English when the
	// conversation locale never got established.
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("message processing failed, returning fallback", "conversationId", conversationID, "panic", r)
			envelope = &ResponseEnvelope{Text: fallbackResponse(LocaleEnglish), Locale: LocaleEnglish}
		}
	}()

	state := c.loadOrCreateState(ctx, conversationID, message)
	envelope = c.respond(ctx, state, message)
	c.record(ctx, state, message, envelope)
	return envelope
}

// Locale returns the last-known locale for a conversation, defaulting to
// English when the conversation is unknown.
func (c *Composer) Locale(ctx context.Context, conversationID string) Locale {
	state, err := c.store.GetState(ctx, conversationID)
	if err != nil || !state.Locale.Supported() {
		return LocaleEnglish
	}
	return state.Locale
}

func (c *Composer) respond(ctx context.Context, state *ConversationState, message string) (envelope *ResponseEnvelope) {
	defer func() {
		if r := recover(); r != nil {
			locale := state.Locale
			if !locale.Supported() {
				locale = LocaleEnglish
			}
			c.logger.Error("message processing failed, returning fallback", "conversationId", state.ID, "panic", r)
			envelope = &ResponseEnvelope{Text: fallbackResponse(locale), Locale: locale}
		}
	}()

	detected := c.detector.Detect(ctx, message)

	// The handshake is exclusive: the first message only confirms the
	// conversation language, never classifies crisis or emotion.
	if !state.LanguageConfirmed {
		return c.confirmLanguage(state, message, detected)
	}

	state.Locale = detected

	result := c.classify(ctx, message, detected)
	if result.Crisis {
		return &ResponseEnvelope{
			Text:           CrisisResponse(result.Locale),
			Locale:         result.Locale,
			CrisisDetected: true,
		}
	}

	if isMeditationRequest(message) {
		empathy := c.pick(empatheticLines(result.Emotion, result.Locale))
		return &ResponseEnvelope{
			Text:        empathy + "\n\n" + meditationMenu(result.Locale),
			Locale:      result.Locale,
			SessionType: SessionMeditationOffer,
		}
	}

	var sb strings.Builder
	sb.WriteString(c.pick(empatheticLines(result.Emotion, result.Locale)))
	if result.Emotion == EmotionStressed || result.Emotion == EmotionAnxious || result.Emotion == EmotionSad {
		sb.WriteString("\n\n")
		sb.WriteString(c.pick(tipsFor(result.Locale)))
	}
	if c.includeFollowUp {
		sb.WriteString("\n\n")
		sb.WriteString(followUpFor(result.Emotion, result.Locale))
	}

	return &ResponseEnvelope{Text: sb.String(), Locale: result.Locale, Emotion: result.Emotion}
}

// classify runs the crisis scan and, when clear, the emotion classifier.
// Crisis short-circuits: the result then carries no emotion.
func (c *Composer) classify(ctx context.Context, message string, locale Locale) ClassificationResult {
	if c.scanner.Scan(message, locale) {
		return ClassificationResult{Crisis: true, Locale: locale}
	}
	return ClassificationResult{Emotion: c.classifier.Classify(ctx, message, locale), Locale: locale}
}

// confirmLanguage handles the AWAITING_LANGUAGE_CONFIRM -> CONFIRMED
// transition. An explicit preference keyword wins over the detected locale,
// English checked first so "english" containing "en" cannot flip to Hindi.
func (c *Composer) confirmLanguage(state *ConversationState, message string, detected Locale) *ResponseEnvelope {
	lowered := strings.ToLower(message)

	confirmed := detected
	switch {
	case containsAny(lowered, englishPreferenceKeywords):
		confirmed = LocaleEnglish
	case containsAny(lowered, hindiPreferenceKeywords):
		confirmed = LocaleHindi
	}

	state.Locale = confirmed
	state.LanguageConfirmed = true

	voiceMode := containsAny(lowered, voiceModePhrases)
	greetings := textGreetings
	if voiceMode {
		greetings = voiceGreetings
	}
	greeting, ok := greetings[confirmed]
	if !ok {
		greeting = greetings[LocaleEnglish]
	}

	return &ResponseEnvelope{
		Text:        greeting,
		Locale:      confirmed,
		SessionType: SessionLanguageConfirmed,
		VoiceMode:   voiceMode,
	}
}

func (c *Composer) loadOrCreateState(ctx context.Context, conversationID, firstMessage string) *ConversationState {
	state, err := c.store.GetState(ctx, conversationID)
	if err == nil {
		return state
	}
	if !errors.Is(err, ErrConversationNotFound) {
		c.logger.Warn("state load failed, starting fresh", "conversationId", conversationID, "error", err)
	}
	now := time.Now().UTC()
	return &ConversationState{
		ID:        conversationID,
		Title:     deriveConversationTitle(firstMessage),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// record persists the updated state and both transcript halves. Persistence
// failures are soft: the reply has already been composed and must reach the
// user regardless.
func (c *Composer) record(ctx context.Context, state *ConversationState, message string, envelope *ResponseEnvelope) {
	now := time.Now().UTC()
	state.UpdatedAt = now
	if err := c.store.PutState(ctx, state); err != nil {
		c.logger.Warn("state persist failed", "conversationId", state.ID, "error", err)
	}

	entries := []*ChatMessage{
		{ID: uuid.New().String(), ConversationID: state.ID, Role: "user", Content: message, CreatedAt: now},
		{ID: uuid.New().String(), ConversationID: state.ID, Role: "assistant", Content: envelope.Text, CreatedAt: now},
	}
	for _, entry := range entries {
		if err := c.store.AppendMessage(ctx, entry); err != nil {
			c.logger.Warn("transcript append failed", "conversationId", state.ID, "error", err)
		}
	}
}

func (c *Composer) conversationLock(conversationID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[conversationID] = lock
	}
	return lock
}

func (c *Composer) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	if c.rng != nil {
		return options[c.rng.IntN(len(options))]
	}
	return options[randv2.IntN(len(options))]
}

func isMeditationRequest(message string) bool {
	lowered := strings.ToLower(message)
	if containsAny(lowered, meditationStems) {
		return true
	}
	return containsAny(message, hindiMeditationTerms)
}

func deriveConversationTitle(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return fmt.Sprintf("Serenity Chat %s", time.Now().Format("Jan 02 15:04"))
	}
	words := strings.Fields(trimmed)
	if len(words) > 6 {
		words = words[:6]
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
