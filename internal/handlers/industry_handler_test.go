package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIndustryService struct {
	mock.Mock
}

func (m *MockIndustryService) Create(ctx context.Context, p model.IndustryCreateRequest) (*model.Industry, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Industry), args.Error(1)
}

func (m *MockIndustryService) ListWithCompanies(ctx context.Context) ([]*model.IndustryWithCompanies, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.IndustryWithCompanies), args.Error(1)
}

func (m *MockIndustryService) Associate(ctx context.Context, p model.IndustryAssociateRequest) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func TestIndustryHandler_CreateIndustry(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc)

		svc.On("Create", mock.Anything, model.IndustryCreateRequest{Code: "tech", Name: "Technology"}).
			Return(&model.Industry{Code: "tech", Industry: "Technology"}, nil)

		ctx := setupTestContext("POST", "/companies/add-industry", []byte(`{"code":"tech","name":"Technology"}`))
		handler.CreateIndustry(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response map[string]model.Industry
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "tech", response["industry"].Code)
		assert.Equal(t, "Technology", response["industry"].Industry)
		svc.AssertExpectations(t)
	})

	t.Run("missing code maps to 400", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, &model.ValidationError{Field: "code"})

		ctx := setupTestContext("POST", "/companies/add-industry", []byte(`{"name":"Technology"}`))
		handler.CreateIndustry(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var response map[string]string
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "code is required", response["error"])
	})
}

func TestIndustryHandler_ListIndustries(t *testing.T) {
	t.Run("returns industries with company codes", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc)

		svc.On("ListWithCompanies", mock.Anything).Return([]*model.IndustryWithCompanies{
			{IndustryCode: "fin", Industry: "Finance", CompanyCodes: []string{}},
			{IndustryCode: "tech", Industry: "Technology", CompanyCodes: []string{"apple", "ibm"}},
		}, nil)

		ctx := setupTestContext("GET", "/companies/list-industries", nil)
		handler.ListIndustries(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var response map[string][]model.IndustryWithCompanies
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		require.Len(t, response["industries"], 2)
		assert.Equal(t, []string{}, response["industries"][0].CompanyCodes)
		assert.Equal(t, []string{"apple", "ibm"}, response["industries"][1].CompanyCodes)
	})
}

func TestIndustryHandler_AssociateIndustry(t *testing.T) {
	t.Run("successful association", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc)

		svc.On("Associate", mock.Anything, model.IndustryAssociateRequest{CompanyCode: "apple", IndustryCode: "tech"}).
			Return(nil)

		ctx := setupTestContext("POST", "/companies/associate-industry", []byte(`{"companyCode":"apple","industryCode":"tech"}`))
		handler.AssociateIndustry(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var response map[string]string
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
		assert.Equal(t, "Industry associated with company successfully", response["message"])
		svc.AssertExpectations(t)
	})

	t.Run("missing industryCode maps to 400", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc)

		svc.On("Associate", mock.Anything, mock.Anything).Return(&model.ValidationError{Field: "industryCode"})

		ctx := setupTestContext("POST", "/companies/associate-industry", []byte(`{"companyCode":"apple"}`))
		handler.AssociateIndustry(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})
}
