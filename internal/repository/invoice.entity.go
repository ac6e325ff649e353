package repository

import (
	"time"

	"github.com/nimasrn/biztime/internal/model"
)

type InvoiceEntity struct {
	ID       int64      `db:"id"        gorm:"primaryKey;autoIncrement;column:id"`
	CompCode string     `db:"comp_code" gorm:"column:comp_code;not null;index"`
	Amt      float64    `db:"amt"       gorm:"column:amt;not null"`
	Paid     bool       `db:"paid"      gorm:"column:paid;not null;default:false"`
	AddDate  time.Time  `db:"add_date"  gorm:"column:add_date;not null"`
	PaidDate *time.Time `db:"paid_date" gorm:"column:paid_date"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

func toInvoiceEntity(m *model.Invoice) *InvoiceEntity {
	if m == nil {
		return nil
	}
	return &InvoiceEntity{
		ID:       m.ID,
		CompCode: m.CompCode,
		Amt:      m.Amt,
		Paid:     m.Paid,
		AddDate:  m.AddDate,
		PaidDate: m.PaidDate,
	}
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	return &model.Invoice{
		ID:       e.ID,
		CompCode: e.CompCode,
		Amt:      e.Amt,
		Paid:     e.Paid,
		AddDate:  e.AddDate,
		PaidDate: e.PaidDate,
	}
}

func toInvoiceSummaries(entities []*InvoiceEntity) []*model.InvoiceSummary {
	summaries := make([]*model.InvoiceSummary, len(entities))
	for i, e := range entities {
		summaries[i] = &model.InvoiceSummary{ID: e.ID, CompCode: e.CompCode}
	}
	return summaries
}
