package assistant

import (
	"context"
	"errors"
)

// stubTranslator scripts the remote detect/translate capability.
type stubTranslator struct {
	tag        string
	translated string
	err        error
}

func (s *stubTranslator) DetectLanguage(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.tag, nil
}

func (s *stubTranslator) Translate(_ context.Context, text string, _ Locale) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.translated != "" {
		return s.translated, nil
	}
	return text, nil
}

// stubScorer returns a fixed polarity.
type stubScorer struct {
	score float64
	err   error
}

func (s *stubScorer) Polarity(string) (float64, error) {
	return s.score, s.err
}

// stubStore is a minimal in-test Store.
type stubStore struct {
	states   map[string]ConversationState
	messages []*ChatMessage
}

func newStubStore() *stubStore {
	return &stubStore{states: make(map[string]ConversationState)}
}

func (s *stubStore) GetState(_ context.Context, id string) (*ConversationState, error) {
	state, ok := s.states[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	copied := state
	return &copied, nil
}

func (s *stubStore) PutState(_ context.Context, state *ConversationState) error {
	s.states[state.ID] = *state
	return nil
}

func (s *stubStore) AppendMessage(_ context.Context, message *ChatMessage) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubStore) RecentMessages(_ context.Context, id string, limit int) ([]*ChatMessage, error) {
	var recent []*ChatMessage
	for _, m := range s.messages {
		if m.ConversationID == id {
			recent = append(recent, m)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[len(recent)-limit:]
	}
	return recent, nil
}

// panickyStore blows up on every call; exercises the composer's safety net.
type panickyStore struct{}

func (panickyStore) GetState(context.Context, string) (*ConversationState, error) {
	panic("store exploded")
}
func (panickyStore) PutState(context.Context, *ConversationState) error { panic("store exploded") }
func (panickyStore) AppendMessage(context.Context, *ChatMessage) error  { panic("store exploded") }
func (panickyStore) RecentMessages(context.Context, string, int) ([]*ChatMessage, error) {
	panic("store exploded")
}

var errStubUnavailable = errors.New("stub unavailable")
