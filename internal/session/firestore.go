package session

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/serenitylabs/serenity/internal/assistant"
)

const (
	conversationsCollection = "conversations"
	messagesCollection      = "conversation_messages"
)

// FirestoreStore persists conversation state and transcripts in Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an existing Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetState(ctx context.Context, conversationID string) (*assistant.ConversationState, error) {
	doc, err := s.client.Collection(conversationsCollection).Doc(conversationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, assistant.ErrConversationNotFound
		}
		return nil, err
	}
	var state assistant.ConversationState
	if err := doc.DataTo(&state); err != nil {
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	state.ID = doc.Ref.ID
	return &state, nil
}

func (s *FirestoreStore) PutState(ctx context.Context, state *assistant.ConversationState) error {
	_, err := s.client.Collection(conversationsCollection).Doc(state.ID).Set(ctx, state)
	return err
}

func (s *FirestoreStore) AppendMessage(ctx context.Context, message *assistant.ChatMessage) error {
	_, err := s.client.Collection(messagesCollection).Doc(message.ID).Set(ctx, message)
	return err
}

func (s *FirestoreStore) RecentMessages(ctx context.Context, conversationID string, limit int) ([]*assistant.ChatMessage, error) {
	if limit <= 0 {
		limit = 1
	}
	iter := s.client.Collection(messagesCollection).
		Where("conversation_id", "==", conversationID).
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)

	var reversed []*assistant.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var message assistant.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, fmt.Errorf("unmarshal message: %w", err)
		}
		message.ID = doc.Ref.ID
		reversed = append(reversed, &message)
	}

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed, nil
}
