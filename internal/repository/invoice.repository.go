package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrInvoiceNotFound is returned when no invoice matches the id.
	ErrInvoiceNotFound = errors.New("invoice not found")
)

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	var entities []*InvoiceEntity
	err := r.Read(ctx).WithContext(ctx).
		Model(&InvoiceEntity{}).
		Select("id", "comp_code").
		Order("id").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toInvoiceSummaries(entities), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toInvoiceModel(entity), nil
}

// Update writes amt, paid and paid_date in one statement. The caller decides
// the paid_date value, the repository does not apply transition rules.
func (r *InvoiceRepository) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) error {
	result := r.Write(ctx).WithContext(ctx).
		Model(&InvoiceEntity{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amt":       amt,
			"paid":      paid,
			"paid_date": paidDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&InvoiceEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// ListIDsByCompany returns the ids of every invoice billed to the company.
func (r *InvoiceRepository) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	var ids []int64
	err := r.Read(ctx).WithContext(ctx).
		Model(&InvoiceEntity{}).
		Where("comp_code = ?", compCode).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
