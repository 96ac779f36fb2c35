package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	UUID             string          `db:"id" json:"id"`
	CustomerID       string          `db:"customer_id" json:"customer_id"`
	GovernmentID     string          `db:"government_id" json:"government_id"`
	IDType           string          `db:"id_type" json:"id_type"`
	AccountType      string          `db:"account_type" json:"account_type"`
	BranchName       string          `db:"branch_name" json:"branch_name"`
	RoutingCode      string          `db:"routing_code" json:"routing_code"`
	AccountNumber    string          `db:"account_number" json:"account_number"`
	AgreedToTerms    bool            `db:"agreed_terms" json:"agreed_terms"`
	AgreedToPrivacy  bool            `db:"agreed_privacy" json:"agreed_privacy"`
	EmploymentStatus string          `db:"employment_status" json:"employment_status"`
	OrganisationName string          `db:"organisation_name" json:"organisation_name"`
	Occupation       string          `db:"occupation" json:"occupation"`
	AnnualIncome     decimal.Decimal `db:"annual_income" json:"annual_income"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// AccountApplication : заявка на открытие счёта
type AccountApplication struct {
	CustomerID       string
	GovernmentID     string
	IDType           string
	AccountType      string
	BranchName       string
	AgreedToTerms    bool
	AgreedToPrivacy  bool
	EmploymentStatus string
	OrganisationName string
	Occupation       string
	AnnualIncome     string
}

// SynthesizedAccount : результат генерации номера счёта
type SynthesizedAccount struct {
	AccountNumber string
	RoutingCode   string
}

// AccountUpdate : изменяемые поля открытого счёта. Номер счёта и отделение не меняются
type AccountUpdate struct {
	CustomerID       string
	AccountID        string
	GovernmentID     string
	IDType           string
	AccountType      string
	EmploymentStatus string
	OrganisationName string
	Occupation       string
	AnnualIncome     string
}
