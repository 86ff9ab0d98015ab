package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/dto/response"
	"servisku/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	chatPollLimit = 100
	chatSeqKeyTTL = 24 * time.Hour
	chatSeqKeyFmt = "chat:seq:%s"
)

type ChatService interface {
	SendMessage(ctx context.Context, senderID string, req *request.SendMessageRequest) (*response.ChatMessageResponse, error)
	PollMessages(ctx context.Context, userID, peerID string, afterID int64) (*response.ChatPollResponse, error)
}

type chatService struct {
	repo  *repository.Repository
	cache *redis.Client
	log   *zap.Logger
}

func NewChatService(repo *repository.Repository, cache *redis.Client, log *zap.Logger) ChatService {
	return &chatService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "chat")),
	}
}

// ConversationID deterministik dari pasangan user, urutan pengirim tidak berpengaruh
func ConversationID(a, b uuid.UUID) uuid.UUID {
	pair := []string{a.String(), b.String()}
	sort.Strings(pair)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(pair[0]+":"+pair[1]))
}

func (s *chatService) SendMessage(ctx context.Context, senderID string, req *request.SendMessageRequest) (*response.ChatMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sender, err := uuid.Parse(senderID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", senderID, err)
	}

	recipient, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient ID format %s: %w", req.RecipientID, err)
	}
	if recipient == sender {
		return nil, fmt.Errorf("invalid recipient, cannot send message to yourself")
	}

	user, err := s.repo.User.FindByID(ctx, recipient)
	if err != nil || user == nil {
		return nil, fmt.Errorf("recipient %s not found", req.RecipientID)
	}

	message := &entity.ChatMessage{
		ID:             uuid.New(),
		ConversationID: ConversationID(sender, recipient),
		SenderID:       sender,
		RecipientID:    recipient,
		Body:           req.Body,
		CreatedAt:      time.Now(),
	}

	seq, err := s.repo.Chat.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	// Cache latest seq per conversation; gagal cache tidak menggagalkan kirim
	key := fmt.Sprintf(chatSeqKeyFmt, message.ConversationID.String())
	if err := s.cache.Set(ctx, key, strconv.FormatInt(seq, 10), chatSeqKeyTTL).Err(); err != nil {
		s.log.Warn("Failed to cache chat seq",
			zap.Error(err),
			zap.String("conversation_id", message.ConversationID.String()),
		)
	}

	resp := response.ChatMessageToResponse(message)
	return &resp, nil
}

// PollMessages mengembalikan pesan dengan seq > afterID pada percakapan
// user dengan peer. Kalau cache bilang belum ada pesan baru, query DB dilewati.
func (s *chatService) PollMessages(ctx context.Context, userID, peerID string, afterID int64) (*response.ChatPollResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	pid, err := uuid.Parse(peerID)
	if err != nil {
		return nil, fmt.Errorf("invalid peer ID format %s: %w", peerID, err)
	}

	if afterID < 0 {
		afterID = 0
	}

	conversationID := ConversationID(uid, pid)

	key := fmt.Sprintf(chatSeqKeyFmt, conversationID.String())
	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		if latest, perr := strconv.ParseInt(cached, 10, 64); perr == nil && latest <= afterID {
			return &response.ChatPollResponse{
				Messages: []response.ChatMessageResponse{},
				LastSeq:  afterID,
			}, nil
		}
	} else if err == redis.Nil {
		// Cache kosong, isi ulang dari DB supaya poll berikutnya murah
		if latest, derr := s.repo.Chat.LatestSeq(ctx, conversationID); derr == nil {
			if serr := s.cache.Set(ctx, key, strconv.FormatInt(latest, 10), chatSeqKeyTTL).Err(); serr != nil {
				s.log.Warn("Failed to cache chat seq", zap.Error(serr))
			}
			if latest <= afterID {
				return &response.ChatPollResponse{
					Messages: []response.ChatMessageResponse{},
					LastSeq:  afterID,
				}, nil
			}
		}
	} else {
		s.log.Warn("Failed to read cached chat seq", zap.Error(err))
	}

	messages, err := s.repo.Chat.FindAfterSeq(ctx, conversationID, afterID, chatPollLimit)
	if err != nil {
		return nil, fmt.Errorf("poll messages: %w", err)
	}

	lastSeq := afterID
	messageResponses := make([]response.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		messageResponses[i] = response.ChatMessageToResponse(msg)
		if msg.Seq > lastSeq {
			lastSeq = msg.Seq
		}
	}

	return &response.ChatPollResponse{
		Messages: messageResponses,
		LastSeq:  lastSeq,
	}, nil
}
