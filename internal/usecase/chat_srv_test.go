package usecase

import (
	"context"
	"testing"
	"time"

	"servisku/internal/data/entity"
	"servisku/internal/data/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestConversationIDSymmetric: ID percakapan sama dari kedua arah
func TestConversationIDSymmetric(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Equal(t, ConversationID(a, b), ConversationID(b, a))
}

func TestConversationIDDistinctPairs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	assert.NotEqual(t, ConversationID(a, b), ConversationID(a, c))
	assert.NotEqual(t, ConversationID(a, b), ConversationID(b, c))
}

func TestConversationIDDeterministic(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t, ConversationID(a, b), ConversationID(a, b))
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
	latest   int64

	gotAfterSeq int64
	gotLimit    int
}

func (f *fakeChatRepo) Create(ctx context.Context, message *entity.ChatMessage) (int64, error) {
	f.latest++
	message.Seq = f.latest
	f.messages = append(f.messages, message)
	return f.latest, nil
}

func (f *fakeChatRepo) FindAfterSeq(ctx context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]*entity.ChatMessage, error) {
	f.gotAfterSeq = afterSeq
	f.gotLimit = limit

	var out []*entity.ChatMessage
	for _, msg := range f.messages {
		if msg.ConversationID == conversationID && msg.Seq > afterSeq {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) LatestSeq(ctx context.Context, conversationID uuid.UUID) (int64, error) {
	return f.latest, nil
}

// Client mengarah ke alamat mati, semua perintah error dan service
// harus jatuh ke jalur DB tanpa gagal.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newChatServiceForTest(repo *fakeChatRepo) ChatService {
	return NewChatService(&repository.Repository{Chat: repo}, deadRedis(), zap.NewNop())
}

func TestPollMessagesReturnsOnlyAfterID(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	conv := ConversationID(userA, userB)

	repo := &fakeChatRepo{
		messages: []*entity.ChatMessage{
			{ID: uuid.New(), ConversationID: conv, SenderID: userA, RecipientID: userB, Seq: 1, Body: "halo"},
			{ID: uuid.New(), ConversationID: conv, SenderID: userB, RecipientID: userA, Seq: 2, Body: "halo juga"},
			{ID: uuid.New(), ConversationID: conv, SenderID: userA, RecipientID: userB, Seq: 3, Body: "sudah selesai?"},
		},
		latest: 3,
	}
	svc := newChatServiceForTest(repo)

	resp, err := svc.PollMessages(context.Background(), userA.String(), userB.String(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 2)
	assert.Equal(t, int64(2), resp.Messages[0].Seq)
	assert.Equal(t, int64(3), resp.Messages[1].Seq)
	assert.Equal(t, int64(3), resp.LastSeq)
	assert.Equal(t, int64(1), repo.gotAfterSeq)
}

func TestPollMessagesEmptyKeepsLastSeq(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	repo := &fakeChatRepo{latest: 5}
	svc := newChatServiceForTest(repo)

	resp, err := svc.PollMessages(context.Background(), userA.String(), userB.String(), 5)
	require.NoError(t, err)

	assert.Empty(t, resp.Messages)
	assert.Equal(t, int64(5), resp.LastSeq)
}

func TestPollMessagesNegativeAfterIDTreatedAsZero(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	conv := ConversationID(userA, userB)

	repo := &fakeChatRepo{
		messages: []*entity.ChatMessage{
			{ID: uuid.New(), ConversationID: conv, SenderID: userA, RecipientID: userB, Seq: 1, Body: "halo"},
		},
		latest: 1,
	}
	svc := newChatServiceForTest(repo)

	resp, err := svc.PollMessages(context.Background(), userA.String(), userB.String(), -7)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, int64(0), repo.gotAfterSeq)
	assert.Equal(t, int64(1), resp.LastSeq)
}

func TestPollMessagesRejectsBadPeerID(t *testing.T) {
	svc := newChatServiceForTest(&fakeChatRepo{})

	_, err := svc.PollMessages(context.Background(), uuid.NewString(), "not-a-uuid", 0)
	assert.Error(t, err)
}
