package transfers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var owner = domain.Actor{ID: 2, Role: domain.RoleUser}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func NewMock(t *testing.T) (*TransferHandler, *MockService, *MockActorResolver) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	resolver := NewMockActorResolver(ctrl)
	handler := New(service, resolver)
	return handler, service, resolver
}

func TestTransfer(t *testing.T) {
	handler, service, resolver := NewMock(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		amount := decimal.RequireFromString("100.50")
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().
			Transfer(gomock.Any(), owner, 1, 3, amount, (*string)(nil)).
			Return(&domain.Transfer{ID: 10, FromCardID: 1, ToCardID: 3, Amount: amount,
				Timestamp: now, Status: domain.TransferStatusSuccess}, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=3&amount=100.50", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SUCCESS")
	})

	t.Run("with description", func(t *testing.T) {
		amount := decimal.RequireFromString("50")
		description := "rent"
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().
			Transfer(gomock.Any(), owner, 1, 3, amount, &description).
			Return(&domain.Transfer{ID: 11, FromCardID: 1, ToCardID: 3, Amount: amount,
				Timestamp: now, Description: &description, Status: domain.TransferStatusSuccess}, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=3&amount=50&description=rent", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "rent")
	})

	t.Run("insufficient funds", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().
			Transfer(gomock.Any(), owner, 1, 3, decimal.RequireFromString("9000"), (*string)(nil)).
			Return(nil, domain.ErrInsufficientFunds)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=3&amount=9000", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("garbage amount", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=3&amount=lots", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative amount", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=3&amount=-5", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing card ids", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?amount=10", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid source card ID")
	})

	t.Run("foreign card", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().
			Transfer(gomock.Any(), owner, 1, 8, decimal.RequireFromString("10"), (*string)(nil)).
			Return(nil, domain.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost,
			"/api/transactions/transfer/my-cards?fromCardId=1&toCardId=8&amount=10", nil)
		w := httptest.NewRecorder()

		handler.Transfer(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMyTransfers(t *testing.T) {
	handler, service, resolver := NewMock(t)

	resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
	service.EXPECT().MyTransfers(gomock.Any(), owner).Return([]domain.Transfer{
		{ID: 10, FromCardID: 1, ToCardID: 3, Amount: decimal.NewFromInt(100),
			Timestamp: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), Status: domain.TransferStatusSuccess},
		{ID: 9, FromCardID: 1, ToCardID: 3, Amount: decimal.NewFromInt(9000),
			Timestamp: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), Status: domain.TransferStatusFailed},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/my", nil)
	w := httptest.NewRecorder()

	handler.MyTransfers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SUCCESS")
	assert.Contains(t, w.Body.String(), "FAILED")
}

func TestCardTransfers(t *testing.T) {
	handler, service, resolver := NewMock(t)

	t.Run("success", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().CardTransfers(gomock.Any(), owner, 3).Return([]domain.Transfer{
			{ID: 10, FromCardID: 1, ToCardID: 3, Amount: decimal.NewFromInt(100),
				Timestamp: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), Status: domain.TransferStatusSuccess},
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/transactions/card/3", nil), "id", "3")
		w := httptest.NewRecorder()

		handler.CardTransfers(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SUCCESS")
	})

	t.Run("foreign card", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)
		service.EXPECT().CardTransfers(gomock.Any(), owner, 8).Return(nil, domain.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/transactions/card/8", nil), "id", "8")
		w := httptest.NewRecorder()

		handler.CardTransfers(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("garbage id", func(t *testing.T) {
		resolver.EXPECT().ResolveActor(gomock.Any()).Return(owner, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/transactions/card/abc", nil), "id", "abc")
		w := httptest.NewRecorder()

		handler.CardTransfers(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid card ID")
	})
}

func TestMyTransfersUnresolved(t *testing.T) {
	handler, _, resolver := NewMock(t)

	resolver.EXPECT().ResolveActor(gomock.Any()).Return(domain.Actor{}, domain.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/my", nil)
	w := httptest.NewRecorder()

	handler.MyTransfers(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
