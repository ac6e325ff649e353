package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	t.Run("returns invoices envelope", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("List", mock.Anything).Return([]*model.InvoiceSummary{
			{ID: 1, CompCode: "apple"},
			{ID: 2, CompCode: "ibm"},
		}, nil)

		ctx := setupTestContext("GET", "/invoices", nil)
		handler.ListInvoices(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response map[string][]model.InvoiceSummary
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		require.Len(t, response["invoices"], 2)
		assert.Equal(t, int64(1), response["invoices"][0].ID)
		assert.Equal(t, "apple", response["invoices"][0].CompCode)
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	t.Run("embeds company", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Get", mock.Anything, int64(7)).Return(&model.Invoice{
			ID:       7,
			CompCode: "apple",
			Amt:      100,
			AddDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Company:  &model.Company{Code: "apple", Name: "Apple Computer"},
		}, nil)

		ctx := setupTestContext("GET", "/invoices/7", nil)
		ctx.SetUserValue("id", "7")
		handler.GetInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response map[string]model.Invoice
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		invoice := response["invoice"]
		assert.Equal(t, int64(7), invoice.ID)
		require.NotNil(t, invoice.Company)
		assert.Equal(t, "Apple Computer", invoice.Company.Name)
	})

	t.Run("missing invoice maps to 404", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Get", mock.Anything, int64(999)).Return(nil, services.ErrInvoiceNotFound)

		ctx := setupTestContext("GET", "/invoices/999", nil)
		ctx.SetUserValue("id", "999")
		handler.GetInvoice(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())

		var response map[string]string
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "Invoice not found", response["error"])
	})

	t.Run("non numeric id maps to 400", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		ctx := setupTestContext("GET", "/invoices/abc", nil)
		ctx.SetUserValue("id", "abc")
		handler.GetInvoice(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Get")
	})
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		body, _ := json.Marshal(createInvoiceRequest{CompCode: "apple", Amt: 250})

		svc.On("Create", mock.Anything, model.InvoiceCreateRequest{CompCode: "apple", Amt: 250}).
			Return(&model.Invoice{ID: 1, CompCode: "apple", Amt: 250}, nil)

		ctx := setupTestContext("POST", "/invoices", body)
		handler.CreateInvoice(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response map[string]model.Invoice
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, int64(1), response["invoice"].ID)
		svc.AssertExpectations(t)
	})

	t.Run("missing comp_code maps to 400", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, &model.ValidationError{Field: "comp_code"})

		ctx := setupTestContext("POST", "/invoices", []byte(`{"amt": 100}`))
		handler.CreateInvoice(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var response map[string]string
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "comp_code is required", response["error"])
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	t.Run("paid flag reaches the service", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		paidDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		svc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p model.InvoiceUpdateRequest) bool {
			return p.Amt == 300 && p.Paid != nil && *p.Paid
		})).Return(&model.Invoice{ID: 1, CompCode: "apple", Amt: 300, Paid: true, PaidDate: &paidDate}, nil)

		ctx := setupTestContext("PUT", "/invoices/1", []byte(`{"amt": 300, "paid": true}`))
		ctx.SetUserValue("id", "1")
		handler.UpdateInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response map[string]model.Invoice
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.True(t, response["invoice"].Paid)
		require.NotNil(t, response["invoice"].PaidDate)
		svc.AssertExpectations(t)
	})

	t.Run("omitted paid flag stays nil", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p model.InvoiceUpdateRequest) bool {
			return p.Amt == 300 && p.Paid == nil
		})).Return(&model.Invoice{ID: 1, CompCode: "apple", Amt: 300}, nil)

		ctx := setupTestContext("PUT", "/invoices/1", []byte(`{"amt": 300}`))
		ctx.SetUserValue("id", "1")
		handler.UpdateInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("missing invoice maps to 404", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Update", mock.Anything, int64(999), mock.Anything).Return(nil, services.ErrInvoiceNotFound)

		ctx := setupTestContext("PUT", "/invoices/999", []byte(`{"amt": 300}`))
		ctx.SetUserValue("id", "999")
		handler.UpdateInvoice(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	t.Run("deleted status", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc)

		svc.On("Delete", mock.Anything, int64(1)).Return(nil)

		ctx := setupTestContext("DELETE", "/invoices/1", nil)
		ctx.SetUserValue("id", "1")
		handler.DeleteInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response map[string]string
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "deleted", response["status"])
	})
}
