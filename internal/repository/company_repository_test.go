package repository

import (
	"context"
	"testing"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRepository_Create(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	t.Run("create company successfully", func(t *testing.T) {
		company := &model.Company{
			Code:        "apple",
			Name:        "Apple Computer",
			Description: "Maker of OSX.",
		}

		created, err := repo.Create(ctx, company)
		require.NoError(t, err)
		assert.Equal(t, "apple", created.Code)
		assert.Equal(t, "Apple Computer", created.Name)
		assert.Equal(t, "Maker of OSX.", created.Description)
	})

	t.Run("duplicate code fails", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Company{Code: "apple", Name: "Apple Again"})
		assert.Error(t, err)
	})
}

func TestCompanyRepository_List(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		companies, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, companies)
	})

	t.Run("lists code and name only", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Company{Code: "ibm", Name: "IBM", Description: "Big blue."})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Company{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."})
		require.NoError(t, err)

		companies, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, companies, 2)
		assert.Equal(t, "apple", companies[0].Code)
		assert.Equal(t, "Apple Computer", companies[0].Name)
		assert.Equal(t, "ibm", companies[1].Code)
	})
}

func TestCompanyRepository_Get(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Company{Code: "ibm", Name: "IBM", Description: "Big blue."})
	require.NoError(t, err)

	t.Run("existing company", func(t *testing.T) {
		company, err := repo.Get(ctx, "ibm")
		require.NoError(t, err)
		assert.Equal(t, "IBM", company.Name)
		assert.Equal(t, "Big blue.", company.Description)
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestCompanyRepository_Update(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Company{Code: "ibm", Name: "IBM", Description: "Big blue."})
	require.NoError(t, err)

	t.Run("updates name and description", func(t *testing.T) {
		updated, err := repo.Update(ctx, "ibm", "International Business Machines", "")
		require.NoError(t, err)
		assert.Equal(t, "ibm", updated.Code)
		assert.Equal(t, "International Business Machines", updated.Name)
		assert.Equal(t, "", updated.Description)

		stored, err := repo.Get(ctx, "ibm")
		require.NoError(t, err)
		assert.Equal(t, "International Business Machines", stored.Name)
		assert.Equal(t, "", stored.Description)
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := repo.Update(ctx, "nope", "Name", "Desc")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestCompanyRepository_Delete(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Company{Code: "ibm", Name: "IBM"})
	require.NoError(t, err)

	t.Run("deletes existing company", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "ibm"))

		_, err := repo.Get(ctx, "ibm")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})

	t.Run("missing company", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "ibm"), ErrCompanyNotFound)
	})
}
