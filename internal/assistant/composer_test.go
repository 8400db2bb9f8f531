package assistant

import (
	"context"
	randv2 "math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"
)

func newTestComposer(t *testing.T, store Store, opts ComposerOptions) *Composer {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = randv2.New(randv2.NewPCG(1, 2))
	}
	detector := NewLanguageDetector(&stubTranslator{tag: "en"}, time.Second, discardLogger())
	classifier := NewClassifier(detector, &stubScorer{}, discardLogger())
	composer, err := NewComposer(store, detector, NewScanner(discardLogger()), classifier, discardLogger(), opts)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return composer
}

func confirmedState(id string, locale Locale) *ConversationState {
	now := time.Now().UTC()
	return &ConversationState{ID: id, Locale: locale, LanguageConfirmed: true, CreatedAt: now, UpdatedAt: now}
}

func TestFirstMessageAlwaysHandshake(t *testing.T) {
	store := newStubStore()
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: true})

	// Even a crisis phrase on the first message only confirms language.
	envelope := composer.Respond(context.Background(), "conv-1", "I feel hopeless")
	if envelope.SessionType != SessionLanguageConfirmed {
		t.Fatalf("expected language_confirmed, got %q", envelope.SessionType)
	}
	if envelope.CrisisDetected {
		t.Fatal("handshake must not run crisis detection")
	}

	state, err := store.GetState(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("state not persisted: %v", err)
	}
	if !state.LanguageConfirmed || state.Locale != LocaleEnglish {
		t.Fatalf("unexpected state after handshake: %+v", state)
	}

	// The transition happens exactly once.
	second := composer.Respond(context.Background(), "conv-1", "hello again")
	if second.SessionType == SessionLanguageConfirmed {
		t.Fatal("handshake ran twice for the same conversation")
	}
}

func TestHandshakeExplicitPreferenceBeatsDetection(t *testing.T) {
	store := newStubStore()
	composer := newTestComposer(t, store, ComposerOptions{})

	envelope := composer.Respond(context.Background(), "conv-hi", "hindi please")
	if envelope.Locale != LocaleHindi {
		t.Fatalf("expected explicit Hindi preference, got %s", envelope.Locale)
	}
	if envelope.Text != textGreetings[LocaleHindi] {
		t.Fatal("expected Hindi text greeting")
	}
}

func TestHandshakeVoiceMode(t *testing.T) {
	store := newStubStore()
	composer := newTestComposer(t, store, ComposerOptions{})

	envelope := composer.Respond(context.Background(), "conv-v", "I would like to communicate in English")
	if !envelope.VoiceMode {
		t.Fatal("expected voice mode greeting")
	}
	if envelope.Text != voiceGreetings[LocaleEnglish] {
		t.Fatal("expected conversational voice greeting")
	}
}

func TestCrisisShortCircuitIsIdempotent(t *testing.T) {
	store := newStubStore()
	_ = store.PutState(context.Background(), confirmedState("conv-c", LocaleEnglish))
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: true})

	for i := 0; i < 3; i++ {
		envelope := composer.Respond(context.Background(), "conv-c", "I want to end my life")
		if !envelope.CrisisDetected {
			t.Fatalf("attempt %d: expected crisis envelope", i)
		}
		if envelope.Text != CrisisResponse(LocaleEnglish) {
			t.Fatalf("attempt %d: expected full crisis template", i)
		}
		if envelope.Emotion != "" {
			t.Fatalf("attempt %d: emotion classification must not run on crisis messages", i)
		}
	}

	state, _ := store.GetState(context.Background(), "conv-c")
	if !state.LanguageConfirmed || state.Locale != LocaleEnglish {
		t.Fatalf("crisis replies must not advance conversation state: %+v", state)
	}
}

func TestAnxiousReplyOrdering(t *testing.T) {
	store := newStubStore()
	_ = store.PutState(context.Background(), confirmedState("conv-a", LocaleEnglish))
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: true})

	envelope := composer.Respond(context.Background(), "conv-a", "I feel so anxious about my exam")
	if envelope.Emotion != EmotionAnxious {
		t.Fatalf("expected anxious, got %s", envelope.Emotion)
	}

	parts := strings.Split(envelope.Text, "\n\n")
	if len(parts) != 3 {
		t.Fatalf("expected empathy + tip + follow-up, got %d parts", len(parts))
	}
	if !slices.Contains(empatheticResponses[LocaleEnglish][EmotionAnxious], parts[0]) {
		t.Fatalf("first part is not an anxious empathy line: %q", parts[0])
	}
	if !slices.Contains(stressReliefTips[LocaleEnglish], parts[1]) {
		t.Fatalf("second part is not a stress relief tip: %q", parts[1])
	}
	if parts[2] != proactiveFollowUps[LocaleEnglish][EmotionAnxious] {
		t.Fatalf("third part is not the anxious follow-up: %q", parts[2])
	}
}

func TestDefaultReplySkipsTip(t *testing.T) {
	store := newStubStore()
	_ = store.PutState(context.Background(), confirmedState("conv-d", LocaleEnglish))
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: true})

	envelope := composer.Respond(context.Background(), "conv-d", "tell me about yourself")
	if envelope.Emotion != EmotionDefault {
		t.Fatalf("expected default, got %s", envelope.Emotion)
	}
	parts := strings.Split(envelope.Text, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected empathy + follow-up only, got %d parts", len(parts))
	}
}

func TestFollowUpDisabled(t *testing.T) {
	store := newStubStore()
	_ = store.PutState(context.Background(), confirmedState("conv-f", LocaleEnglish))
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: false})

	envelope := composer.Respond(context.Background(), "conv-f", "I feel so anxious about my exam")
	parts := strings.Split(envelope.Text, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected empathy + tip without follow-up, got %d parts", len(parts))
	}
}

func TestMeditationOffer(t *testing.T) {
	store := newStubStore()
	_ = store.PutState(context.Background(), confirmedState("conv-m", LocaleEnglish))
	composer := newTestComposer(t, store, ComposerOptions{IncludeFollowUp: true})

	envelope := composer.Respond(context.Background(), "conv-m", "can we try some meditation?")
	if envelope.SessionType != SessionMeditationOffer {
		t.Fatalf("expected meditation_offer, got %q", envelope.SessionType)
	}
	if !strings.Contains(envelope.Text, "guided meditation") {
		t.Fatal("expected the meditation menu in the reply")
	}
}

func TestComposerSurvivesStorePanic(t *testing.T) {
	composer := newTestComposer(t, panickyStore{}, ComposerOptions{})

	envelope := composer.Respond(context.Background(), "conv-p", "hello")
	if envelope == nil {
		t.Fatal("composer must always return an envelope")
	}
	if envelope.Text != fallbackResponses[LocaleEnglish] {
		t.Fatalf("expected fallback apology, got %q", envelope.Text)
	}
}

func TestRespondRecordsTranscript(t *testing.T) {
	store := newStubStore()
	composer := newTestComposer(t, store, ComposerOptions{})

	composer.Respond(context.Background(), "conv-t", "hello there")
	messages, err := store.RecentMessages(context.Background(), "conv-t", 10)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected user + assistant transcript entries, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Fatalf("unexpected transcript roles: %s, %s", messages[0].Role, messages[1].Role)
	}
}

func TestDeriveConversationTitle(t *testing.T) {
	got := deriveConversationTitle("need help with exam stress tonight please")
	if got != "Need Help With Exam Stress Tonight" {
		t.Fatalf("unexpected title: %q", got)
	}
	if fallback := deriveConversationTitle("  "); !strings.HasPrefix(fallback, "Serenity Chat") {
		t.Fatalf("unexpected fallback title: %q", fallback)
	}
}
