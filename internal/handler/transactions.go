package handler

import (
	"net/http"

	"github.com/aashishdubey1/stock-inventory/internal/apierror"
	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionsHandler struct{ svc service.MovementService }

func NewTransactionsHandler(svc service.MovementService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// resolveTarget collapses the optional drum/loose reference pair into the
// engine's tagged target. Both-set and neither-set are caller input errors.
func resolveTarget(c *gin.Context, drumID, looseID *string) (service.DispatchTarget, bool) {
	if drumID != nil && looseID != nil {
		c.JSON(http.StatusBadRequest, apierror.New("provide either drum_stock_id or loose_stock_id, not both"))
		return service.DispatchTarget{}, false
	}
	if drumID != nil {
		id, err := uuid.Parse(*drumID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid drum_stock_id"))
			return service.DispatchTarget{}, false
		}
		return service.DrumTarget(id), true
	}
	if looseID != nil {
		id, err := uuid.Parse(*looseID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid loose_stock_id"))
			return service.DispatchTarget{}, false
		}
		return service.LooseTarget(id), true
	}
	// Neither reference: the zero target lets the engine answer MissingTarget.
	return service.DispatchTarget{}, true
}

// Dispatch handles POST /v1/transactions/out.
func (h *TransactionsHandler) Dispatch(c *gin.Context) {
	var req dto.DispatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := resolveTarget(c, req.DrumStockID, req.LooseStockID)
	if !ok {
		return
	}

	transaction, err := h.svc.Dispatch(c.Request.Context(), userID, target, req)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock dispatched successfully", "transaction": transaction})
}

// Transfer handles POST /v1/transactions/transfer.
func (h *TransactionsHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := resolveTarget(c, req.DrumStockID, req.LooseStockID)
	if !ok {
		return
	}

	transaction, err := h.svc.Transfer(c.Request.Context(), userID, target, req)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock transferred successfully", "transaction": transaction})
}

// List handles GET /v1/transactions.
func (h *TransactionsHandler) List(c *gin.Context) {
	var filter dto.TransactionFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.RecentTransactions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resp})
}
