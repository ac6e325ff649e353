package helpers

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/nimasrn/biztime/internal/repository"
	"github.com/nimasrn/biztime/pkg/pg"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func SetupTestDB(t *testing.T) *pg.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&repository.CompanyEntity{},
		&repository.InvoiceEntity{},
		&repository.IndustryEntity{},
		&repository.CompanyIndustryEntity{},
	)
	require.NoError(t, err)

	pgDB := &pg.DB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	return pgDB
}

func CreateTestCompany(t *testing.T, db *pg.DB, code, name, description string) *repository.CompanyEntity {
	ctx := context.Background()
	company := &repository.CompanyEntity{
		Code:        code,
		Name:        name,
		Description: description,
	}
	err := db.Write(ctx).Create(company).Error
	require.NoError(t, err)
	return company
}

func CreateTestInvoice(t *testing.T, db *pg.DB, compCode string, amt float64, paid bool) *repository.InvoiceEntity {
	ctx := context.Background()
	invoice := &repository.InvoiceEntity{
		CompCode: compCode,
		Amt:      amt,
		Paid:     paid,
		AddDate:  time.Now(),
	}
	if paid {
		now := time.Now()
		invoice.PaidDate = &now
	}
	err := db.Write(ctx).Create(invoice).Error
	require.NoError(t, err)
	return invoice
}

func CreateTestIndustry(t *testing.T, db *pg.DB, code, name string) *repository.IndustryEntity {
	ctx := context.Background()
	industry := &repository.IndustryEntity{
		Code:     code,
		Industry: name,
	}
	err := db.Write(ctx).Create(industry).Error
	require.NoError(t, err)
	return industry
}

func AssociateTestIndustry(t *testing.T, db *pg.DB, compCode, indCode string) {
	ctx := context.Background()
	err := db.Write(ctx).Create(&repository.CompanyIndustryEntity{
		CompCode:     compCode,
		IndustryCode: indCode,
	}).Error
	require.NoError(t, err)
}

func ContextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func Ptr[T any](v T) *T {
	return &v
}
