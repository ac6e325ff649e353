package repository

import (
	"github.com/nimasrn/biztime/internal/model"
)

type CompanyEntity struct {
	Code        string `db:"code"        gorm:"column:code;primaryKey"`
	Name        string `db:"name"        gorm:"column:name;not null;uniqueIndex"`
	Description string `db:"description" gorm:"column:description"`
}

func (CompanyEntity) TableName() string {
	return "companies"
}

func toCompanyEntity(m *model.Company) *CompanyEntity {
	if m == nil {
		return nil
	}
	return &CompanyEntity{
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
	}
}

func toCompanyModel(e *CompanyEntity) *model.Company {
	if e == nil {
		return nil
	}
	return &model.Company{
		Code:        e.Code,
		Name:        e.Name,
		Description: e.Description,
	}
}

func toCompanySummaries(entities []*CompanyEntity) []*model.CompanySummary {
	summaries := make([]*model.CompanySummary, len(entities))
	for i, e := range entities {
		summaries[i] = &model.CompanySummary{Code: e.Code, Name: e.Name}
	}
	return summaries
}
