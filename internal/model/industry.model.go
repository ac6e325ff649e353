package model

// Industry is a classification companies can be tagged with.
type Industry struct {
	Code     string `json:"code"     db:"code"     gorm:"column:code;primaryKey"`
	Industry string `json:"industry" db:"industry" gorm:"column:industry;not null;uniqueIndex"`
}

func (Industry) TableName() string { return "industries" }

// IndustryWithCompanies is one industry joined against the association table,
// with the codes of every company tagged with it. CompanyCodes is an empty
// list, never nil, when no company is associated.
type IndustryWithCompanies struct {
	IndustryCode string   `json:"industry_code"`
	Industry     string   `json:"industry"`
	CompanyCodes []string `json:"company_codes"`
}

// IndustryCreateRequest is the input for creating an industry.
type IndustryCreateRequest struct {
	Code string
	Name string
}

func (p IndustryCreateRequest) Validate() error {
	if p.Code == "" {
		return &ValidationError{Field: "code"}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name"}
	}
	return nil
}

// IndustryAssociateRequest pairs a company with an industry.
type IndustryAssociateRequest struct {
	CompanyCode  string
	IndustryCode string
}

func (p IndustryAssociateRequest) Validate() error {
	if p.CompanyCode == "" {
		return &ValidationError{Field: "companyCode"}
	}
	if p.IndustryCode == "" {
		return &ValidationError{Field: "industryCode"}
	}
	return nil
}
