package repository

import (
	"context"
	"fmt"

	"servisku/internal/data/entity"
	"servisku/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) (int64, error)
	FindAfterSeq(ctx context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]*entity.ChatMessage, error)
	LatestSeq(ctx context.Context, conversationID uuid.UUID) (int64, error)
}

type chatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChatRepository(db database.PgxIface, log *zap.Logger) ChatRepository {
	return &chatRepository{
		db:  db,
		log: log.With(zap.String("repository", "chat")),
	}
}

// Create insert pesan dan return seq (bigserial) hasil insert
func (r *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) (int64, error) {
	query := `
		INSERT INTO chat_messages (id, conversation_id, sender_id, recipient_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`

	var seq int64
	err := r.db.QueryRow(ctx, query,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.RecipientID,
		message.Body,
		message.CreatedAt,
	).Scan(&seq)

	if err != nil {
		r.log.Error("Failed to create chat message",
			zap.Error(err),
			zap.String("conversation_id", message.ConversationID.String()),
		)
		return 0, fmt.Errorf("create chat message in conversation %s: %w", message.ConversationID.String(), err)
	}

	message.Seq = seq
	return seq, nil
}

// FindAfterSeq: kontrak polling "fetch since last-seen-id",
// pesan diurutkan naik berdasarkan seq supaya client tinggal append
func (r *chatRepository) FindAfterSeq(ctx context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, seq, conversation_id, sender_id, recipient_id, body, created_at
		FROM chat_messages
		WHERE conversation_id = $1 AND seq > $2
		ORDER BY seq
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, conversationID, afterSeq, limit)
	if err != nil {
		r.log.Error("Failed to find chat messages",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
			zap.Int64("after_seq", afterSeq),
		)
		return nil, fmt.Errorf("find messages in conversation %s: %w", conversationID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.ChatMessage
	for rows.Next() {
		var msg entity.ChatMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Seq,
			&msg.ConversationID,
			&msg.SenderID,
			&msg.RecipientID,
			&msg.Body,
			&msg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan chat message row", zap.Error(err))
			return nil, fmt.Errorf("scan chat message row: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat message rows: %w", err)
	}

	return messages, nil
}

func (r *chatRepository) LatestSeq(ctx context.Context, conversationID uuid.UUID) (int64, error) {
	var seq int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM chat_messages WHERE conversation_id = $1`,
		conversationID,
	).Scan(&seq)
	if err != nil {
		r.log.Error("Failed to get latest chat seq",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return 0, fmt.Errorf("latest seq for conversation %s: %w", conversationID.String(), err)
	}

	return seq, nil
}
