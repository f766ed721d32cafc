package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"multi_accessor/internal/http/dto"
	"multi_accessor/internal/http/resp"
	"multi_accessor/internal/service/accessor"
)

type Handler struct {
	svc *accessor.Service[string]
	log *zap.Logger
}

func NewHandler(svc *accessor.Service[string], logger *zap.Logger) *Handler {
	return &Handler{svc: svc, log: logger}
}

// GetInstance returns the first instance registered under :id.
func (h *Handler) GetInstance(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "id must be an integer"})
		return
	}

	instance, ok := h.svc.Lookup(c.Request.Context(), id)
	if !ok {
		h.log.Debug("instance not found", zap.Int("id", id))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    resp.CodeNotFound,
			Message: fmt.Sprintf("No instance found for id=%d", id),
		})
		return
	}
	c.JSON(http.StatusOK, dto.InstanceResponse{ID: instance.ID, Data: instance.Data})
}
