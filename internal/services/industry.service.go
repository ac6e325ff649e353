package services

import (
	"context"

	"github.com/nimasrn/biztime/internal/model"
)

type IndustryRepository interface {
	Create(ctx context.Context, industry *model.Industry) (*model.Industry, error)
	ListWithCompanies(ctx context.Context) ([]*model.IndustryWithCompanies, error)
	Associate(ctx context.Context, compCode, industryCode string) error
}

type IndustryService struct {
	industryRepo IndustryRepository
}

func NewIndustryService(industryRepo IndustryRepository) *IndustryService {
	return &IndustryService{
		industryRepo: industryRepo,
	}
}

func (s *IndustryService) Create(ctx context.Context, p model.IndustryCreateRequest) (*model.Industry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.industryRepo.Create(ctx, &model.Industry{
		Code:     p.Code,
		Industry: p.Name,
	})
}

func (s *IndustryService) ListWithCompanies(ctx context.Context) ([]*model.IndustryWithCompanies, error) {
	return s.industryRepo.ListWithCompanies(ctx)
}

// Associate links a company to an industry. Existence of either side is left
// to the foreign keys, a violation surfaces as a gateway failure.
func (s *IndustryService) Associate(ctx context.Context, p model.IndustryAssociateRequest) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.industryRepo.Associate(ctx, p.CompanyCode, p.IndustryCode)
}
