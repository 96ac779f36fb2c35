package requestresponse

import "customer-onboarding/internal/model"

// OpenAccountRequest : тело запроса на открытие счёта
type OpenAccountRequest struct {
	CustomerID                 string `json:"customerId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	GovernmentID               string `json:"governmentId" example:"ABCDE1234F"`
	IDType                     string `json:"idType" example:"PAN"`
	AccountType                string `json:"accountType" example:"Savings"`
	BranchName                 string `json:"branchName" example:"MainBranch"`
	AgreedToTermsAndConditions bool   `json:"agreedToTermsAndConditions" example:"true"`
	AgreedToPrivacyPolicy      bool   `json:"agreedToPrivacyPolicy" example:"true"`
	EmploymentStatus           string `json:"employmentStatus" example:"Employed"`
	OrganisationName           string `json:"organisationName" example:"Acme"`
	Occupation                 string `json:"occupation" example:"Engineer"`
	AnnualIncome               string `json:"annualIncome" example:"1200000.00"`
}

// OpenAccountResponse : успешный ответ
type OpenAccountResponse struct {
	Response struct {
		AccountNumber string `json:"accountNumber" example:"2412345612345"`
		RoutingCode   string `json:"routingCode" example:"IFSC123"`
		Message       string `json:"message" example:"Customer account details added successfully"`
	} `json:"response"`
}

// ListAccountsResponse : счета клиента
type ListAccountsResponse struct {
	Data struct {
		Accounts []model.Account `json:"accounts"`
	} `json:"data"`
}

type UpdateAccountRequest struct {
	GovernmentID     string `json:"governmentId" example:"CD7654321"`
	IDType           string `json:"idType" example:"DrivingLicence"`
	AccountType      string `json:"accountType" example:"Current"`
	EmploymentStatus string `json:"employmentStatus" example:"SelfEmployed"`
	OrganisationName string `json:"organisationName" example:"Own"`
	Occupation       string `json:"occupation" example:"Consultant"`
	AnnualIncome     string `json:"annualIncome" example:"250000.00"`
}

type AccountResponse struct {
	Data struct {
		Account model.Account `json:"account"`
	} `json:"data"`
}
