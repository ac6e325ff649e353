package fixtures

import (
	"github.com/nimasrn/biztime/internal/model"
)

var (
	TestCompanyApple = model.Company{
		Code:        "apple",
		Name:        "Apple Computer",
		Description: "Maker of OSX.",
	}

	TestCompanyIBM = model.Company{
		Code:        "ibm",
		Name:        "IBM",
		Description: "Big blue.",
	}

	TestIndustryTech = model.Industry{
		Code:     "tech",
		Industry: "Technology",
	}

	TestIndustryAcct = model.Industry{
		Code:     "acct",
		Industry: "Accounting",
	}
)

func CompanyCreateRequest(code, name, description string) model.CompanyCreateRequest {
	return model.CompanyCreateRequest{
		Code:        code,
		Name:        name,
		Description: description,
	}
}

func CompanyCreateRequestMissingName() model.CompanyCreateRequest {
	return model.CompanyCreateRequest{Description: "nameless"}
}

func InvoiceCreateRequest(compCode string, amt float64) model.InvoiceCreateRequest {
	return model.InvoiceCreateRequest{
		CompCode: compCode,
		Amt:      amt,
	}
}

func InvoiceUpdateRequest(amt float64, paid *bool) model.InvoiceUpdateRequest {
	return model.InvoiceUpdateRequest{
		Amt:  amt,
		Paid: paid,
	}
}

func IndustryCreateRequest(code, name string) model.IndustryCreateRequest {
	return model.IndustryCreateRequest{
		Code: code,
		Name: name,
	}
}

func IndustryAssociateRequest(companyCode, industryCode string) model.IndustryAssociateRequest {
	return model.IndustryAssociateRequest{
		CompanyCode:  companyCode,
		IndustryCode: industryCode,
	}
}
