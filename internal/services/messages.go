package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
)

// ThreadCollection defines the persistence operations for one user's
// conversation list and message map. Every operation is scoped to the acting
// user's documents; the other participant's copies are never touched.
type ThreadCollection interface {
	LoadConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	SaveConversations(ctx context.Context, userID string, conversations []models.Conversation) error
	LoadMessages(ctx context.Context, userID string) (map[string][]models.Message, error)
	SaveMessages(ctx context.Context, userID string, messages map[string][]models.Message) error
}

// MessageService handles conversations and their message lists. The acting
// user is passed explicitly; the service holds no session state.
type MessageService struct {
	threads ThreadCollection
}

// NewMessageService creates a new MessageService.
func NewMessageService(threads ThreadCollection) *MessageService {
	return &MessageService{threads: threads}
}

// CreateOrGetConversation returns the id of the existing conversation between
// the two users — scoped to the product when one is supplied — or creates a
// new one with an empty message list and zero unread count.
func (svc *MessageService) CreateOrGetConversation(ctx context.Context, self models.User, other models.Participant, productID, productTitle string) (string, error) {
	conversations, err := svc.threads.LoadConversations(ctx, self.ID)
	if err != nil {
		return "", err
	}

	for _, c := range conversations {
		if c.Has(self.ID) && c.Has(other.ID) && (productID == "" || c.ProductID == productID) {
			return c.ID, nil
		}
	}

	conversation := models.Conversation{
		ID: uuid.NewString(),
		Participants: []models.Participant{
			{ID: self.ID, Name: self.Name, College: self.College},
			other,
		},
		ProductID:    productID,
		ProductTitle: productTitle,
		UpdatedAt:    time.Now().UTC(),
		UnreadCount:  0,
	}

	messages, err := svc.threads.LoadMessages(ctx, self.ID)
	if err != nil {
		return "", err
	}
	messages[conversation.ID] = []models.Message{}

	if err := svc.threads.SaveConversations(ctx, self.ID, append(conversations, conversation)); err != nil {
		return "", err
	}
	if err := svc.threads.SaveMessages(ctx, self.ID, messages); err != nil {
		return "", err
	}

	logger.Log.Infow("conversation created",
		"conversation_id", conversation.ID,
		"user_id", self.ID,
		"product_id", productID,
	)
	return conversation.ID, nil
}

// SendMessage appends a message to the conversation, caches it as the
// conversation's last message, and bumps the shared unread counter. The
// counter has no per-participant breakdown: the sender's own send increments
// it too. An unknown conversation id is a silent no-op.
func (svc *MessageService) SendMessage(ctx context.Context, self models.User, conversationID, content, productID string) error {
	conversations, err := svc.threads.LoadConversations(ctx, self.ID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range conversations {
		if conversations[i].ID == conversationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Log.Debugw("send to unknown conversation ignored", "conversation_id", conversationID)
		return nil
	}

	receiver, ok := conversations[idx].Other(self.ID)
	if !ok {
		return nil
	}

	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       self.ID,
		SenderName:     self.Name,
		ReceiverID:     receiver.ID,
		ReceiverName:   receiver.Name,
		Content:        content,
		Timestamp:      time.Now().UTC(),
		Read:           false,
		ProductID:      productID,
		ProductTitle:   conversations[idx].ProductTitle,
	}

	messages, err := svc.threads.LoadMessages(ctx, self.ID)
	if err != nil {
		return err
	}
	messages[conversationID] = append(messages[conversationID], message)

	conversations[idx].LastMessage = &message
	conversations[idx].UpdatedAt = message.Timestamp
	conversations[idx].UnreadCount++

	if err := svc.threads.SaveConversations(ctx, self.ID, conversations); err != nil {
		return err
	}
	return svc.threads.SaveMessages(ctx, self.ID, messages)
}

// MarkRead zeroes the conversation's unread counter and flips the read flag
// on every message addressed to the acting user. Messages addressed to the
// other participant keep their flag.
func (svc *MessageService) MarkRead(ctx context.Context, self models.User, conversationID string) error {
	conversations, err := svc.threads.LoadConversations(ctx, self.ID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range conversations {
		if conversations[i].ID == conversationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	conversations[idx].UnreadCount = 0

	messages, err := svc.threads.LoadMessages(ctx, self.ID)
	if err != nil {
		return err
	}
	list := messages[conversationID]
	for i := range list {
		if list[i].ReceiverID == self.ID {
			list[i].Read = true
		}
	}
	messages[conversationID] = list

	if err := svc.threads.SaveConversations(ctx, self.ID, conversations); err != nil {
		return err
	}
	return svc.threads.SaveMessages(ctx, self.ID, messages)
}

// UnreadCount sums the unread counters across the user's conversations.
func (svc *MessageService) UnreadCount(ctx context.Context, self models.User) (int, error) {
	conversations, err := svc.threads.LoadConversations(ctx, self.ID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range conversations {
		total += c.UnreadCount
	}
	return total, nil
}

// Conversations returns the user's threads, most recently updated first.
func (svc *MessageService) Conversations(ctx context.Context, self models.User) ([]models.Conversation, error) {
	conversations, err := svc.threads.LoadConversations(ctx, self.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})
	return conversations, nil
}

// RecentConversations returns the newest threads that have at least one
// message, for the dashboard activity feed.
func (svc *MessageService) RecentConversations(ctx context.Context, self models.User, n int) ([]models.Conversation, error) {
	conversations, err := svc.Conversations(ctx, self)
	if err != nil {
		return nil, err
	}

	recent := []models.Conversation{}
	for _, c := range conversations {
		if c.LastMessage != nil {
			recent = append(recent, c)
		}
	}
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent, nil
}

// Messages returns the conversation's message list in append order.
func (svc *MessageService) Messages(ctx context.Context, self models.User, conversationID string) ([]models.Message, error) {
	messages, err := svc.threads.LoadMessages(ctx, self.ID)
	if err != nil {
		return nil, err
	}
	list, ok := messages[conversationID]
	if !ok {
		return []models.Message{}, nil
	}
	return list, nil
}
