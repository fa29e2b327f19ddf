package handler

import (
	"net/http"

	"github.com/aashishdubey1/stock-inventory/internal/apierror"
	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type LooseStocksHandler struct{ svc service.StockService }

func NewLooseStocksHandler(svc service.StockService) *LooseStocksHandler {
	return &LooseStocksHandler{svc: svc}
}

func (h *LooseStocksHandler) Create(c *gin.Context) {
	var req dto.CreateLooseStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	stock, err := h.svc.CreateLooseStock(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Loose length added successfully", "loose_length": stock})
}

func (h *LooseStocksHandler) List(c *gin.Context) {
	var filter dto.LooseStockFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListLooseStocks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list loose lengths"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"loose_lengths": resp})
}
