package handlers

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/services"
	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type CompanyService interface {
	List(ctx context.Context) ([]*model.CompanySummary, error)
	Get(ctx context.Context, code string) (*model.CompanyDetail, error)
	Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error)
	Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error)
	Delete(ctx context.Context, code string) error
}

type CompanyHandler struct {
	svc CompanyService
}

func RegisterCompanyRoutes(r *xhttp.Router, h *CompanyHandler) {
	r.GET("/companies", h.ListCompanies)
	r.GET("/companies/{code}", h.GetCompany)
	r.POST("/companies", h.CreateCompany)
	r.PUT("/companies/{code}", h.UpdateCompany)
	r.DELETE("/companies/{code}", h.DeleteCompany)
}

func NewCompanyHandler(companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		svc: companyService,
	}
}

type createCompanyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type companiesResponse struct {
	Companies []*model.CompanySummary `json:"companies"`
}

type companyResponse struct {
	Company *model.Company `json:"company"`
}

type companyDetailResponse struct {
	Company *model.CompanyDetail `json:"company"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *CompanyHandler) ListCompanies(ctx *xhttp.RequestCtx) {
	companies, err := h.svc.List(ctx)
	if err != nil {
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companiesResponse{Companies: companies})
}

func (h *CompanyHandler) GetCompany(ctx *xhttp.RequestCtx) {
	code := param(ctx, "code")

	company, err := h.svc.Get(ctx, code)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Company not found")
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companyDetailResponse{Company: company})
}

func (h *CompanyHandler) CreateCompany(ctx *xhttp.RequestCtx) {
	var req createCompanyRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	company, err := h.svc.Create(ctx, model.CompanyCreateRequest{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if isValidation(err) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, companyResponse{Company: company})
}

func (h *CompanyHandler) UpdateCompany(ctx *xhttp.RequestCtx) {
	code := param(ctx, "code")

	var req updateCompanyRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	company, err := h.svc.Update(ctx, code, model.CompanyUpdateRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Company not found")
			return
		}
		if isValidation(err) {
			writeError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companyResponse{Company: company})
}

func (h *CompanyHandler) DeleteCompany(ctx *xhttp.RequestCtx) {
	code := param(ctx, "code")

	if err := h.svc.Delete(ctx, code); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Company not found")
			return
		}
		writeServerError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, statusResponse{Status: "deleted"})
}
