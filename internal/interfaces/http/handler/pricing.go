package handler

import (
	billingapp "github.com/bottleops/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// PricingHandler handles the per-bottle pricing endpoints
type PricingHandler struct {
	BaseHandler
	pricingService *billingapp.PricingService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(pricingService *billingapp.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// Get returns the current per-bottle price.
// GET /api/v1/pricing
func (h *PricingHandler) Get(c *gin.Context) {
	resp, err := h.pricingService.GetCurrent(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update sets the per-bottle price. Existing bills keep their snapshot.
// PUT /api/v1/pricing
func (h *PricingHandler) Update(c *gin.Context) {
	var req billingapp.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.pricingService.UpdatePrice(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
