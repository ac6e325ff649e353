package handlers

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/services"
	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type InvoiceService interface {
	List(ctx context.Context) ([]*model.InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error)
	Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type InvoiceHandler struct {
	svc InvoiceService
}

func RegisterInvoiceRoutes(r *xhttp.Router, h *InvoiceHandler) {
	r.GET("/invoices", h.ListInvoices)
	r.GET("/invoices/{id}", h.GetInvoice)
	r.POST("/invoices", h.CreateInvoice)
	r.PUT("/invoices/{id}", h.UpdateInvoice)
	r.DELETE("/invoices/{id}", h.DeleteInvoice)
}

func NewInvoiceHandler(invoiceService InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: invoiceService,
	}
}

type createInvoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

type updateInvoiceRequest struct {
	Amt  float64 `json:"amt"`
	Paid *bool   `json:"paid"`
}

type invoicesResponse struct {
	Invoices []*model.InvoiceSummary `json:"invoices"`
}

type invoiceResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *InvoiceHandler) ListInvoices(ctx *xhttp.RequestCtx) {
	invoices, err := h.svc.List(ctx)
	if err != nil {
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoicesResponse{Invoices: invoices})
}

func (h *InvoiceHandler) GetInvoice(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid invoice id")
		return
	}

	invoice, err := h.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Invoice not found")
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoiceResponse{Invoice: invoice})
}

func (h *InvoiceHandler) CreateInvoice(ctx *xhttp.RequestCtx) {
	var req createInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	invoice, err := h.svc.Create(ctx, model.InvoiceCreateRequest{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		if isValidation(err) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, invoiceResponse{Invoice: invoice})
}

func (h *InvoiceHandler) UpdateInvoice(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid invoice id")
		return
	}

	var req updateInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	invoice, err := h.svc.Update(ctx, id, model.InvoiceUpdateRequest{
		Amt:  req.Amt,
		Paid: req.Paid,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Invoice not found")
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoiceResponse{Invoice: invoice})
}

func (h *InvoiceHandler) DeleteInvoice(ctx *xhttp.RequestCtx) {
	id, err := paramInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid invoice id")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Invoice not found")
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, statusResponse{Status: "deleted"})
}
