package repository

import (
	"github.com/nimasrn/biztime/internal/model"
)

type IndustryEntity struct {
	Code     string `db:"code"     gorm:"column:code;primaryKey"`
	Industry string `db:"industry" gorm:"column:industry;not null;uniqueIndex"`
}

func (IndustryEntity) TableName() string {
	return "industries"
}

// CompanyIndustryEntity is the many-to-many join row. The pair is its whole
// identity.
type CompanyIndustryEntity struct {
	CompCode     string `db:"comp_code"     gorm:"column:comp_code;primaryKey"`
	IndustryCode string `db:"industry_code" gorm:"column:industry_code;primaryKey"`
}

func (CompanyIndustryEntity) TableName() string {
	return "companies_industries"
}

func toIndustryEntity(m *model.Industry) *IndustryEntity {
	if m == nil {
		return nil
	}
	return &IndustryEntity{
		Code:     m.Code,
		Industry: m.Industry,
	}
}

func toIndustryModel(e *IndustryEntity) *model.Industry {
	if e == nil {
		return nil
	}
	return &model.Industry{
		Code:     e.Code,
		Industry: e.Industry,
	}
}
