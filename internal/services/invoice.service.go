package services

import (
	"context"
	"errors"
	"time"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/repository"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

type InvoiceRepository interface {
	List(ctx context.Context) ([]*model.InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) error
	Delete(ctx context.Context, id int64) error
}

type InvoiceCompanyRepository interface {
	Get(ctx context.Context, code string) (*model.Company, error)
}

type InvoiceService struct {
	invoiceRepo InvoiceRepository
	companyRepo InvoiceCompanyRepository
	now         func() time.Time
}

func NewInvoiceService(invoiceRepo InvoiceRepository, companyRepo InvoiceCompanyRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

func (s *InvoiceService) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	return s.invoiceRepo.List(ctx)
}

// Get returns the invoice with the owning company embedded.
func (s *InvoiceService) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	company, err := s.companyRepo.Get(ctx, inv.CompCode)
	if err != nil && !errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, err
	}
	inv.Company = company

	return inv, nil
}

func (s *InvoiceService) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.invoiceRepo.Create(ctx, &model.Invoice{
		CompCode: p.CompCode,
		Amt:      p.Amt,
		Paid:     false,
		AddDate:  s.now(),
		PaidDate: nil,
	})
}

// Update applies the paid/paid_date transition rule:
//   - paid flips false -> true: paid_date is stamped with now
//   - paid true -> true again: paid_date is kept as is
//   - paid set to false: paid_date is cleared
//   - paid omitted: paid_date is untouched, whatever amt does
func (s *InvoiceService) Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error) {
	existing, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	paid := existing.Paid
	paidDate := existing.PaidDate
	if p.Paid != nil {
		paid = *p.Paid
		switch {
		case *p.Paid && !existing.Paid:
			now := s.now()
			paidDate = &now
		case !*p.Paid:
			paidDate = nil
		}
	}

	err = s.invoiceRepo.Update(ctx, id, p.Amt, paid, paidDate)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	return &model.Invoice{
		ID:       existing.ID,
		CompCode: existing.CompCode,
		Amt:      p.Amt,
		Paid:     paid,
		AddDate:  existing.AddDate,
		PaidDate: paidDate,
	}, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	err := s.invoiceRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return ErrInvoiceNotFound
	}
	return err
}
