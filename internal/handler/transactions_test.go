package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/middleware"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMovementService struct {
	dispatchEntry *model.StockTransaction
	dispatchErr   error
	gotTarget     service.DispatchTarget
	gotUserID     uuid.UUID
}

var _ service.MovementService = (*stubMovementService)(nil)

func (s *stubMovementService) Dispatch(_ context.Context, userID uuid.UUID, target service.DispatchTarget, _ dto.DispatchRequest) (*model.StockTransaction, error) {
	s.gotUserID = userID
	s.gotTarget = target
	return s.dispatchEntry, s.dispatchErr
}

func (s *stubMovementService) Transfer(_ context.Context, userID uuid.UUID, target service.DispatchTarget, _ dto.TransferRequest) (*model.StockTransaction, error) {
	s.gotUserID = userID
	s.gotTarget = target
	return s.dispatchEntry, s.dispatchErr
}

func (s *stubMovementService) RecentTransactions(_ context.Context, _ dto.TransactionFilter) ([]dto.TransactionResponse, error) {
	return nil, nil
}

func newDispatchRouter(svc service.MovementService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTransactionsHandler(svc)
	handlers := []gin.HandlerFunc{}
	if authed {
		handlers = append(handlers, func(c *gin.Context) {
			c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
				UserID: uuid.New().String(),
				Role:   model.RoleStockInCharge,
			})
		})
	}
	handlers = append(handlers, h.Dispatch)
	r.POST("/v1/transactions/out", handlers...)
	return r
}

func postDispatch(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/transactions/out", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validDispatchBody() map[string]interface{} {
	return map[string]interface{}{
		"drum_stock_id":      uuid.New().String(),
		"quantity":           "200",
		"dispatched_company": "ABC Projects",
		"invoice_number":     "INV-4521",
	}
}

func TestDispatchHandlerCreated(t *testing.T) {
	svc := &stubMovementService{dispatchEntry: &model.StockTransaction{Type: model.TxTypeOut}}
	r := newDispatchRouter(svc, true)

	w := postDispatch(t, r, validDispatchBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Stock dispatched successfully")
	assert.NotEqual(t, uuid.Nil, svc.gotUserID)
}

func TestDispatchHandlerBothTargetsRejected(t *testing.T) {
	svc := &stubMovementService{}
	r := newDispatchRouter(svc, true)

	body := validDispatchBody()
	body["loose_stock_id"] = uuid.New().String()
	w := postDispatch(t, r, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not both")
}

func TestDispatchHandlerValidation(t *testing.T) {
	svc := &stubMovementService{}
	r := newDispatchRouter(svc, true)

	body := validDispatchBody()
	delete(body, "invoice_number")
	w := postDispatch(t, r, body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "InvoiceNumber")
}

func TestDispatchHandlerUnauthenticated(t *testing.T) {
	svc := &stubMovementService{}
	r := newDispatchRouter(svc, false)

	w := postDispatch(t, r, validDispatchBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDispatchHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		kind service.ErrorKind
		want int
	}{
		{service.KindStockNotFound, http.StatusNotFound},
		{service.KindInsufficientStock, http.StatusBadRequest},
		{service.KindCoilQuantityMismatch, http.StatusBadRequest},
		{service.KindMissingTarget, http.StatusBadRequest},
		{service.KindNegativeBalance, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		svc := &stubMovementService{dispatchErr: &service.StockError{Kind: tc.kind, Detail: "detail"}}
		r := newDispatchRouter(svc, true)

		w := postDispatch(t, r, validDispatchBody())
		assert.Equal(t, tc.want, w.Code, "kind %s", tc.kind)
		assert.Contains(t, w.Body.String(), string(tc.kind))
	}
}

func TestDispatchHandlerHidesStorageErrors(t *testing.T) {
	driverErr := errors.New(`pq: duplicate key value violates unique constraint "idx_drum_stocks_drum_number"`)
	svc := &stubMovementService{dispatchErr: driverErr}
	r := newDispatchRouter(svc, true)

	w := postDispatch(t, r, validDispatchBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "duplicate key")
	assert.NotContains(t, w.Body.String(), "pq:")
}
