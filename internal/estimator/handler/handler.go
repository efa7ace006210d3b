package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FIKE110/inverta/internal/estimator/service"
	"github.com/FIKE110/inverta/internal/estimator/transport"
	"github.com/FIKE110/inverta/platform/httpkit"
	"github.com/FIKE110/inverta/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles the public calculator endpoint.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new estimator handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Estimate sizes a system and captures the submitter as a lead.
// POST /api/v1/public/estimates
func (h *Handler) Estimate(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Estimate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}
