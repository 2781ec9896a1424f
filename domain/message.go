// Package domain contains core concepts of the classroom system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"github.com/google/uuid"
	"time"
)

// Message represents an immutable chat line received by the server.
type Message struct {
	ID        uuid.UUID // unique identifier
	SenderID  string
	Content   string
	CreatedAt time.Time
}

func NewMessage(senderID, content string) Message {
	return Message{
		ID:        uuid.New(),
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
