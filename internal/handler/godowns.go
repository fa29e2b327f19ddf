package handler

import (
	"errors"
	"net/http"

	"github.com/aashishdubey1/stock-inventory/internal/apierror"
	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GodownsHandler struct{ svc service.GodownService }

func NewGodownsHandler(svc service.GodownService) *GodownsHandler {
	return &GodownsHandler{svc: svc}
}

func (h *GodownsHandler) Create(c *gin.Context) {
	var req dto.CreateGodownRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create godown"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GodownsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list godowns"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"godowns": resp})
}

func (h *GodownsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Godown not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GodownsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateGodownRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrGodownNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Godown not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to update godown"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GodownsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGodownNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Godown not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to delete godown"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Godown deleted successfully"})
}
