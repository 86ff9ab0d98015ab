package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"servisku/internal/dto/request"
	"servisku/internal/dto/response"
	"servisku/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatService struct {
	poll    *response.ChatPollResponse
	pollErr error

	gotUserID  string
	gotPeerID  string
	gotAfterID int64
}

func (f *fakeChatService) SendMessage(ctx context.Context, senderID string, req *request.SendMessageRequest) (*response.ChatMessageResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeChatService) PollMessages(ctx context.Context, userID, peerID string, afterID int64) (*response.ChatPollResponse, error) {
	f.gotUserID = userID
	f.gotPeerID = peerID
	f.gotAfterID = afterID
	return f.poll, f.pollErr
}

func newChatRouter(svc *fakeChatService) *chi.Mux {
	handler := NewChatHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/chats/{peerId}", handler.PollMessages)
	return r
}

func TestPollMessagesParsesAfterID(t *testing.T) {
	svc := &fakeChatService{poll: &response.ChatPollResponse{LastSeq: 42}}
	router := newChatRouter(svc)

	userID := uuid.New()
	peerID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/chats/"+peerID.String()+"?after_id=42", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "customer"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), svc.gotUserID)
	assert.Equal(t, peerID.String(), svc.gotPeerID)
	assert.Equal(t, int64(42), svc.gotAfterID)
}

func TestPollMessagesAfterIDDefaultsToZero(t *testing.T) {
	svc := &fakeChatService{poll: &response.ChatPollResponse{}}
	router := newChatRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/chats/"+uuid.NewString(), nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "customer"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), svc.gotAfterID)
}

func TestPollMessagesRequiresAuth(t *testing.T) {
	svc := &fakeChatService{}
	router := newChatRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/chats/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.gotUserID)
}
