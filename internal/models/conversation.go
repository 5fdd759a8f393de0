package models

import (
	"fmt"
	"time"
)

// Participant is a snapshot of one side of a conversation, taken when the
// conversation is created.
type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	College string `json:"college"`
}

// Conversation is a two-party message thread, optionally scoped to one
// product listing.
type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"` // Exactly two
	ProductID    string        `json:"productId,omitempty"`
	ProductTitle string        `json:"productTitle,omitempty"`
	LastMessage  *Message      `json:"lastMessage,omitempty"` // Cached copy of the newest message
	UpdatedAt    time.Time     `json:"updatedAt"`
	UnreadCount  int           `json:"unreadCount"` // Shared counter, not per participant
}

// Validate rejects structurally broken records.
func (c *Conversation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conversation: empty id")
	}
	if len(c.Participants) != 2 {
		return fmt.Errorf("conversation %s: expected 2 participants, got %d", c.ID, len(c.Participants))
	}
	if c.UnreadCount < 0 {
		return fmt.Errorf("conversation %s: negative unread count", c.ID)
	}
	return nil
}

// Other returns the first participant whose id differs from the given one.
// The second return is false when no such participant exists.
func (c *Conversation) Other(userID string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.ID != userID {
			return p, true
		}
	}
	return Participant{}, false
}

// Has reports whether the given user is one of the two participants.
func (c *Conversation) Has(userID string) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
