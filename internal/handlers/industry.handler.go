package handlers

import (
	"context"

	"github.com/nimasrn/biztime/internal/model"
	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type IndustryService interface {
	Create(ctx context.Context, p model.IndustryCreateRequest) (*model.Industry, error)
	ListWithCompanies(ctx context.Context) ([]*model.IndustryWithCompanies, error)
	Associate(ctx context.Context, p model.IndustryAssociateRequest) error
}

type IndustryHandler struct {
	svc IndustryService
}

// Industry routes live under /companies, they predate a dedicated resource
// path and clients depend on them.
func RegisterIndustryRoutes(r *xhttp.Router, h *IndustryHandler) {
	r.POST("/companies/add-industry", h.CreateIndustry)
	r.GET("/companies/list-industries", h.ListIndustries)
	r.POST("/companies/associate-industry", h.AssociateIndustry)
}

func NewIndustryHandler(industryService IndustryService) *IndustryHandler {
	return &IndustryHandler{
		svc: industryService,
	}
}

type createIndustryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type associateIndustryRequest struct {
	CompanyCode  string `json:"companyCode"`
	IndustryCode string `json:"industryCode"`
}

type industryResponse struct {
	Industry *model.Industry `json:"industry"`
}

type industriesResponse struct {
	Industries []*model.IndustryWithCompanies `json:"industries"`
}

type messageResponse struct {
	Message string `json:"message"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *IndustryHandler) CreateIndustry(ctx *xhttp.RequestCtx) {
	var req createIndustryRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	industry, err := h.svc.Create(ctx, model.IndustryCreateRequest{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		if isValidation(err) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, industryResponse{Industry: industry})
}

func (h *IndustryHandler) ListIndustries(ctx *xhttp.RequestCtx) {
	industries, err := h.svc.ListWithCompanies(ctx)
	if err != nil {
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, industriesResponse{Industries: industries})
}

func (h *IndustryHandler) AssociateIndustry(ctx *xhttp.RequestCtx) {
	var req associateIndustryRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	err := h.svc.Associate(ctx, model.IndustryAssociateRequest{
		CompanyCode:  req.CompanyCode,
		IndustryCode: req.IndustryCode,
	})
	if err != nil {
		if isValidation(err) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, messageResponse{Message: "Industry associated with company successfully"})
}
