// Package session persists conversation state and transcripts. The Firestore
// store backs production; the in-memory store serves tests and
// credential-less runs.
package session

import (
	"context"
	"sync"

	"github.com/serenitylabs/serenity/internal/assistant"
)

// MemoryStore is an in-process assistant.Store. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	states   map[string]assistant.ConversationState
	messages map[string][]assistant.ChatMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states:   make(map[string]assistant.ConversationState),
		messages: make(map[string][]assistant.ChatMessage),
	}
}

func (s *MemoryStore) GetState(_ context.Context, conversationID string) (*assistant.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[conversationID]
	if !ok {
		return nil, assistant.ErrConversationNotFound
	}
	copied := state
	return &copied, nil
}

func (s *MemoryStore) PutState(_ context.Context, state *assistant.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ID] = *state
	return nil
}

func (s *MemoryStore) AppendMessage(_ context.Context, message *assistant.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], *message)
	return nil
}

func (s *MemoryStore) RecentMessages(_ context.Context, conversationID string, limit int) ([]*assistant.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.messages[conversationID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	recent := make([]*assistant.ChatMessage, 0, limit)
	for i := len(all) - limit; i < len(all); i++ {
		copied := all[i]
		recent = append(recent, &copied)
	}
	return recent, nil
}
