package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/repository"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository interface {
	List(ctx context.Context) ([]*model.CompanySummary, error)
	Get(ctx context.Context, code string) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) (*model.Company, error)
	Update(ctx context.Context, code, name, description string) (*model.Company, error)
	Delete(ctx context.Context, code string) error
}

type CompanyInvoiceRepository interface {
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
}

type CompanyIndustryRepository interface {
	NamesByCompany(ctx context.Context, compCode string) ([]string, error)
}

type CompanyService struct {
	companyRepo  CompanyRepository
	invoiceRepo  CompanyInvoiceRepository
	industryRepo CompanyIndustryRepository
}

func NewCompanyService(companyRepo CompanyRepository, invoiceRepo CompanyInvoiceRepository, industryRepo CompanyIndustryRepository) *CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		invoiceRepo:  invoiceRepo,
		industryRepo: industryRepo,
	}
}

func (s *CompanyService) List(ctx context.Context) ([]*model.CompanySummary, error) {
	return s.companyRepo.List(ctx)
}

// Get assembles the detail view: the company row plus its invoice ids and
// industry names. The three queries are independent, a company deleted in
// between is an accepted inconsistency window.
func (s *CompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	company, err := s.companyRepo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	ids, err := s.invoiceRepo.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}

	names, err := s.industryRepo.NamesByCompany(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list industry names: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	return &model.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    ids,
		Industries:  names,
	}, nil
}

// Create stores a new company. An explicit code is taken verbatim, an empty
// one is derived from the name by slugification.
func (s *CompanyService) Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	code := p.Code
	if code == "" {
		code = slug.Make(p.Name)
	}

	return s.companyRepo.Create(ctx, &model.Company{
		Code:        code,
		Name:        p.Name,
		Description: p.Description,
	})
}

func (s *CompanyService) Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.Update(ctx, code, p.Name, p.Description)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, code string) error {
	err := s.companyRepo.Delete(ctx, code)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return ErrCompanyNotFound
	}
	return err
}
