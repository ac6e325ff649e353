package model

import "time"

// Invoice carries the paid/paid_date pair whose transitions are the only
// nontrivial rule in the system: paid_date is set exactly when paid flips to
// true and cleared when it flips back to false.
type Invoice struct {
	ID       int64      `json:"id"        db:"id"        gorm:"primaryKey;autoIncrement;column:id"`
	CompCode string     `json:"comp_code" db:"comp_code" gorm:"column:comp_code;not null;index"`
	Amt      float64    `json:"amt"       db:"amt"       gorm:"column:amt;not null"`
	Paid     bool       `json:"paid"      db:"paid"      gorm:"column:paid;not null;default:false"`
	AddDate  time.Time  `json:"add_date"  db:"add_date"  gorm:"column:add_date;not null"`
	PaidDate *time.Time `json:"paid_date" db:"paid_date" gorm:"column:paid_date"`
	Company  *Company   `json:"company,omitempty"        gorm:"-"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceSummary is the projection used by the list endpoint.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceCreateRequest is the input for creating an invoice.
type InvoiceCreateRequest struct {
	CompCode string
	Amt      float64
}

func (p InvoiceCreateRequest) Validate() error {
	if p.CompCode == "" {
		return &ValidationError{Field: "comp_code"}
	}
	if p.Amt == 0 {
		return &ValidationError{Field: "amt"}
	}
	return nil
}

// InvoiceUpdateRequest is the input for updating an invoice. A nil Paid means
// the flag was omitted and the stored paid/paid_date pair stays untouched.
type InvoiceUpdateRequest struct {
	Amt  float64
	Paid *bool
}
