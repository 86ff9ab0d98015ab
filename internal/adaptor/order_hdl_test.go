package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

type fakeOrderService struct {
	order     *response.OrderResponse
	updateErr error

	gotActorID string
	gotRole    string
	gotOrderID string
	gotStatus  string
	called     bool
}

func (f *fakeOrderService) Checkout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.OrderResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeOrderService) GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeOrderService) GetOrderByID(ctx context.Context, actorID, actorRole, orderID string) (*response.OrderResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, actorID, actorRole, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	f.called = true
	f.gotActorID = actorID
	f.gotRole = actorRole
	f.gotOrderID = orderID
	f.gotStatus = req.Status
	return f.order, f.updateErr
}

func (f *fakeOrderService) ListOrders(ctx context.Context, req *request.PaginatedRequest, status, kind *string) (*response.PaginatedResponse[response.OrderResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeOrderService) AssignTechnician(ctx context.Context, orderID string, req *request.AssignTechnicianRequest) (*response.OrderResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeOrderService) ListAssignedOrders(ctx context.Context, technicianUserID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func newOrderRouter(svc *fakeOrderService) *chi.Mux {
	handler := NewOrderHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Patch("/api/orders/{id}/status", handler.UpdateStatus)
	return r
}

func patchStatus(router *chi.Mux, orderID, body string, ctx context.Context) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID+"/status", strings.NewReader(body))
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateStatusPassesActorAndRole(t *testing.T) {
	svc := &fakeOrderService{order: &response.OrderResponse{Status: "PAID"}}
	router := newOrderRouter(svc)

	userID := uuid.New()
	ctx := utils.SetUserContext(context.Background(), userID, "admin")
	rec := patchStatus(router, "order-1", `{"status":"PAID"}`, ctx)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.called)
	assert.Equal(t, userID.String(), svc.gotActorID)
	assert.Equal(t, "admin", svc.gotRole)
	assert.Equal(t, "order-1", svc.gotOrderID)
	assert.Equal(t, "PAID", svc.gotStatus)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &fakeOrderService{}
	router := newOrderRouter(svc)

	ctx := utils.SetUserContext(context.Background(), uuid.New(), "admin")
	rec := patchStatus(router, "order-1", `{"status":"SHIPPED"}`, ctx)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called, "service must not be reached on validation failure")
}

func TestUpdateStatusRequiresAuth(t *testing.T) {
	svc := &fakeOrderService{}
	router := newOrderRouter(svc)

	rec := patchStatus(router, "order-1", `{"status":"PAID"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, svc.called)
}

func TestUpdateStatusErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"role not allowed", fmt.Errorf("unauthorized to update this order"), http.StatusForbidden},
		{"invalid transition", fmt.Errorf("invalid transition from COMPLETED to PAID"), http.StatusBadRequest},
		{"lost race", fmt.Errorf("cannot update order ORD-1, status already changed"), http.StatusBadRequest},
		{"missing order", fmt.Errorf("order order-1 not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{updateErr: tt.err}
			router := newOrderRouter(svc)

			ctx := utils.SetUserContext(context.Background(), uuid.New(), "technician")
			rec := patchStatus(router, "order-1", `{"status":"IN_PROGRESS"}`, ctx)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
