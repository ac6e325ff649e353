package repository

import (
	"context"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
)

type IndustryRepository struct {
	*pg.DB
}

func NewIndustryRepository(db *pg.DB) *IndustryRepository {
	return &IndustryRepository{
		db,
	}
}

func (r *IndustryRepository) Create(ctx context.Context, industry *model.Industry) (*model.Industry, error) {
	entity := toIndustryEntity(industry)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toIndustryModel(entity), nil
}

// industryCompanyRow is one row of the left join between industries and the
// association table. CompCode is nil for industries with no company.
type industryCompanyRow struct {
	Code     string  `gorm:"column:code"`
	Industry string  `gorm:"column:industry"`
	CompCode *string `gorm:"column:comp_code"`
}

// ListWithCompanies returns every industry with the codes of its associated
// companies. The aggregation happens here rather than in SQL so the query
// stays portable across postgres and the sqlite test database.
func (r *IndustryRepository) ListWithCompanies(ctx context.Context) ([]*model.IndustryWithCompanies, error) {
	var rows []industryCompanyRow
	err := r.Read(ctx).WithContext(ctx).
		Table("industries AS i").
		Select("i.code AS code, i.industry AS industry, ci.comp_code AS comp_code").
		Joins("LEFT JOIN companies_industries AS ci ON ci.industry_code = i.code").
		Order("i.code, ci.comp_code").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var industries []*model.IndustryWithCompanies
	byCode := make(map[string]*model.IndustryWithCompanies)
	for _, row := range rows {
		entry, ok := byCode[row.Code]
		if !ok {
			entry = &model.IndustryWithCompanies{
				IndustryCode: row.Code,
				Industry:     row.Industry,
				CompanyCodes: []string{},
			}
			byCode[row.Code] = entry
			industries = append(industries, entry)
		}
		if row.CompCode != nil {
			entry.CompanyCodes = append(entry.CompanyCodes, *row.CompCode)
		}
	}

	if industries == nil {
		industries = []*model.IndustryWithCompanies{}
	}
	return industries, nil
}

func (r *IndustryRepository) Associate(ctx context.Context, compCode, industryCode string) error {
	entity := &CompanyIndustryEntity{
		CompCode:     compCode,
		IndustryCode: industryCode,
	}
	return r.Write(ctx).WithContext(ctx).Create(entity).Error
}

// NamesByCompany returns the display names of every industry the company is
// associated with.
func (r *IndustryRepository) NamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	var names []string
	err := r.Read(ctx).WithContext(ctx).
		Table("industries AS i").
		Joins("JOIN companies_industries AS ci ON ci.industry_code = i.code").
		Where("ci.comp_code = ?", compCode).
		Order("i.industry").
		Pluck("i.industry", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
