package models

import (
	"fmt"
	"time"
)

// Message is a single entry in a conversation's message list.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	ReceiverID     string    `json:"receiverId"`
	ReceiverName   string    `json:"receiverName"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
	ProductID      string    `json:"productId,omitempty"`    // Copied from the conversation
	ProductTitle   string    `json:"productTitle,omitempty"` // Copied from the conversation
}

// Validate rejects structurally broken records.
func (m *Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message: empty id")
	}
	if m.ConversationID == "" {
		return fmt.Errorf("message %s: empty conversation id", m.ID)
	}
	if m.SenderID == "" || m.ReceiverID == "" {
		return fmt.Errorf("message %s: missing sender or receiver", m.ID)
	}
	return nil
}
