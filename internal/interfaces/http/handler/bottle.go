package handler

import (
	inventoryapp "github.com/bottleops/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// BottleHandler handles bottle inventory endpoints
type BottleHandler struct {
	BaseHandler
	bottleService *inventoryapp.BottleService
}

// NewBottleHandler creates a new BottleHandler
func NewBottleHandler(bottleService *inventoryapp.BottleService) *BottleHandler {
	return &BottleHandler{bottleService: bottleService}
}

// RegisterSeries registers a numbered series of bottle codes.
// POST /api/v1/bottles/series
func (h *BottleHandler) RegisterSeries(c *gin.Context) {
	var req inventoryapp.RegisterSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bottleService.RegisterSeries(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single bottle by ID.
// GET /api/v1/bottles/:id
func (h *BottleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bottle ID")
		return
	}

	resp, err := h.bottleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByCode returns a single bottle by its code.
// GET /api/v1/bottles/code/:code
func (h *BottleHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Missing bottle code")
		return
	}

	resp, err := h.bottleService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns bottles matching the query.
// GET /api/v1/bottles
func (h *BottleHandler) List(c *gin.Context) {
	var filter inventoryapp.BottleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bottles, total, err := h.bottleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, bottles, total, filter.Page, filter.PageSize)
}

// Summary returns bottle counts by status.
// GET /api/v1/bottles/summary
func (h *BottleHandler) Summary(c *gin.Context) {
	summary, err := h.bottleService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
