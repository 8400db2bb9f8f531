package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serenitylabs/serenity/internal/assistant"
)

func TestMemoryStoreStateRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetState(ctx, "missing"); !errors.Is(err, assistant.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}

	state := &assistant.ConversationState{
		ID:                "conv-1",
		Locale:            assistant.LocaleHindi,
		LanguageConfirmed: true,
		CreatedAt:         time.Now().UTC(),
	}
	if err := store.PutState(ctx, state); err != nil {
		t.Fatalf("PutState: %v", err)
	}

	got, err := store.GetState(ctx, "conv-1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if got.Locale != assistant.LocaleHindi || !got.LanguageConfirmed {
		t.Fatalf("unexpected state: %+v", got)
	}

	// The store hands out copies, not aliases.
	got.Locale = assistant.LocaleEnglish
	again, _ := store.GetState(ctx, "conv-1")
	if again.Locale != assistant.LocaleHindi {
		t.Fatal("mutating a returned state must not affect the store")
	}
}

func TestMemoryStoreRecentMessages(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i, content := range []string{"first", "second", "third"} {
		err := store.AppendMessage(ctx, &assistant.ChatMessage{
			ID:             string(rune('a' + i)),
			ConversationID: "conv-1",
			Role:           "user",
			Content:        content,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
	}

	recent, err := store.RecentMessages(ctx, "conv-1", 2)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(recent))
	}
	if recent[0].Content != "second" || recent[1].Content != "third" {
		t.Fatalf("expected the most recent messages in order, got %s, %s", recent[0].Content, recent[1].Content)
	}

	all, _ := store.RecentMessages(ctx, "conv-1", 0)
	if len(all) != 3 {
		t.Fatalf("expected all messages for non-positive limit, got %d", len(all))
	}

	none, _ := store.RecentMessages(ctx, "other", 5)
	if len(none) != 0 {
		t.Fatalf("expected no messages for unknown conversation, got %d", len(none))
	}
}
