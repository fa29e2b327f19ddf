package handler

import (
	"net/http"

	"github.com/aashishdubey1/stock-inventory/internal/apierror"
	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StocksHandler struct{ svc service.StockService }

func NewStocksHandler(svc service.StockService) *StocksHandler {
	return &StocksHandler{svc: svc}
}

// Create registers a new drum — the intake (IN) movement.
func (h *StocksHandler) Create(c *gin.Context) {
	var req dto.CreateDrumStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stock, err := h.svc.CreateDrumStock(c.Request.Context(), userID, req)
	if err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cable stock added successfully", "cable_stock": stock})
}

func (h *StocksHandler) List(c *gin.Context) {
	var filter dto.DrumStockFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListDrumStocks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list cable stocks"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cable_stocks": resp})
}

func (h *StocksHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.DeleteDrumStock(c.Request.Context(), id); err != nil {
		writeStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cable stock deleted successfully"})
}
