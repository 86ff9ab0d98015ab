package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRentalService struct {
	quote    *response.RentalQuoteResponse
	quoteErr error

	gotItemID string
	gotReq    *request.RentalQuoteRequest
}

func (f *fakeRentalService) GetRentalItems(ctx context.Context, req *request.PaginatedRequest, filter repository.RentalItemFilter) (*response.PaginatedResponse[response.RentalItemResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRentalService) GetRentalItemByID(ctx context.Context, itemID string) (*response.RentalItemResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRentalService) GetQuote(ctx context.Context, itemID string, req *request.RentalQuoteRequest) (*response.RentalQuoteResponse, error) {
	f.gotItemID = itemID
	f.gotReq = req
	return f.quote, f.quoteErr
}

func (f *fakeRentalService) GetStockAggregate(ctx context.Context) (*response.StockAggregateResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRentalService) CreateRentalItem(ctx context.Context, req *request.RentalItemRequest) (*response.RentalItemResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRentalService) UpdateRentalItem(ctx context.Context, itemID string, req *request.RentalItemRequest) (*response.RentalItemResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRentalService) DeleteRentalItem(ctx context.Context, itemID string) error {
	return fmt.Errorf("not implemented")
}

func newQuoteRouter(svc *fakeRentalService) *chi.Mux {
	handler := NewRentalHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/rentals/{id}/quote", handler.GetQuote)
	return r
}

func TestGetQuoteReturnsCalculatedQuote(t *testing.T) {
	svc := &fakeRentalService{
		quote: &response.RentalQuoteResponse{
			ActualDays:         5,
			BasePrice:          250000,
			Discount:           25000,
			DiscountPercentage: 10,
			Subtotal:           225000,
			Deposit:            500000,
			Total:              725000,
		},
	}
	router := newQuoteRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/rentals/abc-123/quote?duration_type=weekly&duration=7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", svc.gotItemID)
	assert.Equal(t, "weekly", svc.gotReq.DurationType)
	assert.Equal(t, 7, svc.gotReq.Duration)

	var body struct {
		Status  bool                         `json:"status"`
		Message string                       `json:"message"`
		Data    response.RentalQuoteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, int64(225000), body.Data.Subtotal)
	assert.Equal(t, int64(500000), body.Data.Deposit)
	assert.Equal(t, int64(725000), body.Data.Total)
}

func TestGetQuoteDurationDefaultsToZero(t *testing.T) {
	svc := &fakeRentalService{quote: &response.RentalQuoteResponse{}}
	router := newQuoteRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/rentals/abc-123/quote?duration_type=daily", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.gotReq.Duration)
}

func TestGetQuoteErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid duration type", fmt.Errorf("invalid duration type mingguan"), http.StatusBadRequest},
		{"item not found", fmt.Errorf("rental item abc-123 not found"), http.StatusNotFound},
		{"internal", fmt.Errorf("quote rental item: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRentalService{quoteErr: tt.err}
			router := newQuoteRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/rentals/abc-123/quote?duration_type=weekly", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
