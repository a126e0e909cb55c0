package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lookdine/lookdine/internal/client/store"
)

// ChatService keeps the cleared/deleted chat-id lists that filter the chat
// screen. Both lists live in the local store and survive restarts.
type ChatService struct {
	store store.Store
}

func NewChatService(st store.Store) *ChatService {
	return &ChatService{store: st}
}

// loadIDs reads a JSON string array from the given key. Absent or corrupt
// values are treated as empty; corruption clears the offending key.
func (s *ChatService) loadIDs(ctx context.Context, key string) ([]string, error) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		_ = s.store.Delete(ctx, key)
		return nil, nil
	}
	return ids, nil
}

// appendID adds id to the list under key unless it is already present.
func (s *ChatService) appendID(ctx context.Context, key, id string) error {
	ids, err := s.loadIDs(ctx, key)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}

	raw, err := json.Marshal(append(ids, id))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.store.Set(ctx, key, raw)
}

// Status returns the cleared and deleted chat-id lists.
func (s *ChatService) Status(ctx context.Context) (cleared, deleted []string, err error) {
	if cleared, err = s.loadIDs(ctx, store.KeyClearedChats); err != nil {
		return nil, nil, err
	}
	if deleted, err = s.loadIDs(ctx, store.KeyDeletedChats); err != nil {
		return nil, nil, err
	}
	return cleared, deleted, nil
}

// ClearChat marks a conversation's history as cleared. Idempotent.
func (s *ChatService) ClearChat(ctx context.Context, chatID string) error {
	return s.appendID(ctx, store.KeyClearedChats, chatID)
}

// DeleteChat removes a conversation from the list. Idempotent.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	return s.appendID(ctx, store.KeyDeletedChats, chatID)
}
