package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage pakai seq (bigserial) sebagai kursor polling,
// client fetch pesan dengan seq > after_id
type ChatMessage struct {
	ID             uuid.UUID `db:"id"`
	Seq            int64     `db:"seq"`
	ConversationID uuid.UUID `db:"conversation_id"`
	SenderID       uuid.UUID `db:"sender_id"`
	RecipientID    uuid.UUID `db:"recipient_id"`
	Body           string    `db:"body"`
	CreatedAt      time.Time `db:"created_at"`
}
