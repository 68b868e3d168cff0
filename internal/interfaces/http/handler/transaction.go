package handler

import (
	rentalapp "github.com/bottleops/backend/internal/application/rental"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles bottle delivery and return endpoints
type TransactionHandler struct {
	BaseHandler
	txService *rentalapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txService *rentalapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// RecordDelivery records bottles going out to a client.
// POST /api/v1/transactions/delivery
func (h *TransactionHandler) RecordDelivery(c *gin.Context) {
	var req rentalapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.RecordedBy = currentUserID(c)

	resp, err := h.txService.RecordDelivery(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// RecordReturn records bottles coming back from a client.
// POST /api/v1/transactions/return
func (h *TransactionHandler) RecordReturn(c *gin.Context) {
	var req rentalapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.RecordedBy = currentUserID(c)

	resp, err := h.txService.RecordReturn(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single transaction.
// GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	resp, err := h.txService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns transactions matching the query, newest first.
// GET /api/v1/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter rentalapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transactions, total, err := h.txService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, transactions, total, filter.Page, filter.PageSize)
}
