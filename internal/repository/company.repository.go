package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrCompanyNotFound is returned when no company matches the code.
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository struct {
	*pg.DB
}

func NewCompanyRepository(db *pg.DB) *CompanyRepository {
	return &CompanyRepository{
		db,
	}
}

func (r *CompanyRepository) List(ctx context.Context) ([]*model.CompanySummary, error) {
	var entities []*CompanyEntity
	err := r.Read(ctx).WithContext(ctx).
		Model(&CompanyEntity{}).
		Select("code", "name").
		Order("code").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toCompanySummaries(entities), nil
}

func (r *CompanyRepository) Get(ctx context.Context, code string) (*model.Company, error) {
	var entity CompanyEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("code = ?", code).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return toCompanyModel(&entity), nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	entity := toCompanyEntity(company)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCompanyModel(entity), nil
}

func (r *CompanyRepository) Update(ctx context.Context, code, name, description string) (*model.Company, error) {
	result := r.Write(ctx).WithContext(ctx).
		Model(&CompanyEntity{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCompanyNotFound
	}

	return &model.Company{Code: code, Name: name, Description: description}, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	result := r.Write(ctx).WithContext(ctx).
		Where("code = ?", code).
		Delete(&CompanyEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
