package model

// Company is a billable organization keyed by a short lowercase code.
type Company struct {
	Code        string `json:"code"        db:"code"        gorm:"column:code;primaryKey"`
	Name        string `json:"name"        db:"name"        gorm:"column:name;not null;uniqueIndex"`
	Description string `json:"description" db:"description" gorm:"column:description"`
}

func (Company) TableName() string { return "companies" }

// CompanySummary is the projection used by the list endpoint.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company plus its invoice ids and industry names.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyCreateRequest is the input for creating a company. Code is optional,
// an empty code is derived from Name.
type CompanyCreateRequest struct {
	Code        string
	Name        string
	Description string
}

func (p CompanyCreateRequest) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name"}
	}
	return nil
}

// CompanyUpdateRequest is the input for updating a company. Code is immutable
// and therefore not part of it.
type CompanyUpdateRequest struct {
	Name        string
	Description string
}

func (p CompanyUpdateRequest) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name"}
	}
	return nil
}
