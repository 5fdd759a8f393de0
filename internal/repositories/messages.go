package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
	"github.com/campusmarket/marketstore/internal/storage"
)

// Conversations and messages are stored per user: each user owns a private
// copy of their threads, keyed by their identifier. Sending never touches the
// other participant's documents.
func conversationsKey(userID string) string {
	return fmt.Sprintf("conversations-%s", userID)
}

func messagesKey(userID string) string {
	return fmt.Sprintf("messages-%s", userID)
}

// MessageRepository owns one user's conversation list and the per-conversation
// message map that goes with it.
type MessageRepository struct {
	storage storage.Storage
}

func NewMessageRepository(s storage.Storage) *MessageRepository {
	return &MessageRepository{storage: s}
}

// LoadConversations returns the user's conversation list.
func (r *MessageRepository) LoadConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	key := conversationsKey(userID)

	raw, err := r.storage.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Conversation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}

	var conversations []models.Conversation
	if err := json.Unmarshal(raw, &conversations); err != nil {
		logger.Log.Warnw("discarding corrupt conversation list", "key", key, "error", err)
		return []models.Conversation{}, nil
	}
	for i := range conversations {
		if err := conversations[i].Validate(); err != nil {
			logger.Log.Warnw("discarding invalid conversation list", "key", key, "error", err)
			return []models.Conversation{}, nil
		}
	}
	return conversations, nil
}

// SaveConversations persists the user's full conversation list.
func (r *MessageRepository) SaveConversations(ctx context.Context, userID string, conversations []models.Conversation) error {
	raw, err := json.Marshal(conversations)
	if err != nil {
		return fmt.Errorf("encode conversations: %w", err)
	}
	if err := r.storage.Set(ctx, conversationsKey(userID), raw); err != nil {
		return fmt.Errorf("save conversations: %w", err)
	}
	return nil
}

// LoadMessages returns the user's message lists keyed by conversation id.
func (r *MessageRepository) LoadMessages(ctx context.Context, userID string) (map[string][]models.Message, error) {
	key := messagesKey(userID)

	raw, err := r.storage.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return map[string][]models.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	var messages map[string][]models.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		logger.Log.Warnw("discarding corrupt message map", "key", key, "error", err)
		return map[string][]models.Message{}, nil
	}
	for _, list := range messages {
		for i := range list {
			if err := list[i].Validate(); err != nil {
				logger.Log.Warnw("discarding invalid message map", "key", key, "error", err)
				return map[string][]models.Message{}, nil
			}
		}
	}
	if messages == nil {
		messages = map[string][]models.Message{}
	}
	return messages, nil
}

// SaveMessages persists the user's full message map.
func (r *MessageRepository) SaveMessages(ctx context.Context, userID string, messages map[string][]models.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := r.storage.Set(ctx, messagesKey(userID), raw); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	return nil
}
