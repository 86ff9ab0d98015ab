package response

import (
	"time"

	"servisku/internal/data/entity"
)

type ChatMessageResponse struct {
	ID             string    `json:"id"`
	Seq            int64     `json:"seq"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatPollResponse: client simpan last_seq lalu kirim balik sebagai after_id
type ChatPollResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	LastSeq  int64                 `json:"last_seq"`
}

func ChatMessageToResponse(msg *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             msg.ID.String(),
		Seq:            msg.Seq,
		ConversationID: msg.ConversationID.String(),
		SenderID:       msg.SenderID.String(),
		RecipientID:    msg.RecipientID.String(),
		Body:           msg.Body,
		CreatedAt:      msg.CreatedAt,
	}
}
