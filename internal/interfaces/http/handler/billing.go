package handler

import (
	billingapp "github.com/bottleops/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// BillingHandler handles bill generation and lifecycle endpoints
type BillingHandler struct {
	BaseHandler
	ledgerService *billingapp.LedgerService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(ledgerService *billingapp.LedgerService) *BillingHandler {
	return &BillingHandler{ledgerService: ledgerService}
}

// GenerateAuto sweeps all unbilled transactions of a client into a bill.
// POST /api/v1/bills/auto
func (h *BillingHandler) GenerateAuto(c *gin.Context) {
	var req billingapp.GenerateAutoBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.GeneratedBy = currentUserID(c)

	resp, err := h.ledgerService.GenerateAutoBill(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GenerateCustom bills a hand-picked set of transactions.
// POST /api/v1/bills/custom
func (h *BillingHandler) GenerateCustom(c *gin.Context) {
	var req billingapp.GenerateCustomBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.GeneratedBy = currentUserID(c)

	resp, err := h.ledgerService.GenerateCustomBill(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Preview computes a billing breakdown without committing anything.
// POST /api/v1/bills/preview
func (h *BillingHandler) Preview(c *gin.Context) {
	var req billingapp.PreviewTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ledgerService.PreviewTotals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns a single bill.
// GET /api/v1/bills/:id
func (h *BillingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	resp, err := h.ledgerService.GetBill(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns bills matching the query, newest first.
// GET /api/v1/bills
func (h *BillingHandler) List(c *gin.Context) {
	var filter billingapp.BillListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bills, total, err := h.ledgerService.ListBills(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, bills, total, filter.Page, filter.PageSize)
}

// MarkPaid settles a bill. Payment is terminal.
// POST /api/v1/bills/:id/pay
func (h *BillingHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	resp, err := h.ledgerService.MarkPaid(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete reverses an unpaid bill, restoring its transactions to unbilled.
// DELETE /api/v1/bills/:id
func (h *BillingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.ledgerService.DeleteBill(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ClientSummary shows what a client could be billed for right now.
// GET /api/v1/bills/clients/:id/summary
func (h *BillingHandler) ClientSummary(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	summary, err := h.ledgerService.GetClientSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
