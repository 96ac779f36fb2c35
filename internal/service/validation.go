package service

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"customer-onboarding/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	phonePattern        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	governmentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

const dateOfBirthLayout = "2006-01-02"

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// validateRegistration возвращает первое нарушенное правило
func validateRegistration(registration model.Registration) error {
	userNameLength := utf8.RuneCountInString(registration.UserName)

	switch {
	case blank(registration.UserName):
		return model.NewValidationError("Username is required")
	case userNameLength < 5 || userNameLength > 50:
		return model.NewValidationError("Username should be between 5 and 50 characters")
	case registration.Password == "":
		return model.NewValidationError("Password is required")
	case utf8.RuneCountInString(registration.Password) < 8:
		return model.NewValidationError("Password should contain at least 8 characters")
	case blank(registration.Name):
		return model.NewValidationError("Name is required")
	case blank(registration.PhoneNumber):
		return model.NewValidationError("PhoneNumber is required")
	case len(registration.PhoneNumber) < 10, !phonePattern.MatchString(registration.PhoneNumber):
		return model.NewValidationError("Invalid phone number")
	case registration.ConfirmPassword == "":
		return model.NewValidationError("Confirm password is required")
	case registration.ConfirmPassword != registration.Password:
		return model.NewValidationError("Password does not match")
	}

	return nil
}

// validateAccountApplication проверяет заявку и разбирает годовой доход
func validateAccountApplication(application model.AccountApplication) (decimal.Decimal, error) {
	if err := validateCustomerID(application.CustomerID); err != nil {
		return decimal.Zero, err
	}

	switch {
	case blank(application.GovernmentID):
		return decimal.Zero, model.NewValidationError("Government ID is required")
	case !governmentIDPattern.MatchString(application.GovernmentID):
		return decimal.Zero, model.NewValidationError("Government ID should contain only letters and digits")
	case blank(application.IDType):
		return decimal.Zero, model.NewValidationError("Id type is required")
	case blank(application.AccountType):
		return decimal.Zero, model.NewValidationError("Account type is required")
	case blank(application.BranchName):
		return decimal.Zero, model.NewValidationError("Branch name is required")
	case blank(application.EmploymentStatus):
		return decimal.Zero, model.NewValidationError("EmploymentStatus is required")
	case blank(application.OrganisationName):
		return decimal.Zero, model.NewValidationError("OrganisationName is required")
	case blank(application.Occupation):
		return decimal.Zero, model.NewValidationError("Occupation is required")
	case blank(application.AnnualIncome):
		return decimal.Zero, model.NewValidationError("AnnualIncome is required")
	}

	income, err := parseAnnualIncome(application.AnnualIncome)
	if err != nil {
		return decimal.Zero, err
	}

	if !application.AgreedToTerms || !application.AgreedToPrivacy {
		return decimal.Zero, model.NewValidationError("Please accept the Terms and Conditions and privacy policy")
	}

	return income, nil
}

func validateCustomerID(customerID string) error {
	if blank(customerID) {
		return model.NewValidationError("Customer ID is required")
	}
	if _, err := uuid.Parse(customerID); err != nil {
		return model.NewValidationError("Invalid customer ID")
	}
	return nil
}

// validateAccountUpdate : правила те же, что при открытии, кроме отделения и согласий
func validateAccountUpdate(update model.AccountUpdate) (decimal.Decimal, error) {
	if err := validateCustomerID(update.CustomerID); err != nil {
		return decimal.Zero, err
	}
	if _, err := uuid.Parse(update.AccountID); err != nil {
		return decimal.Zero, model.NewValidationError("Invalid account ID")
	}

	switch {
	case blank(update.GovernmentID):
		return decimal.Zero, model.NewValidationError("Government ID is required")
	case !governmentIDPattern.MatchString(update.GovernmentID):
		return decimal.Zero, model.NewValidationError("Government ID should contain only letters and digits")
	case blank(update.IDType):
		return decimal.Zero, model.NewValidationError("Id type is required")
	case blank(update.AccountType):
		return decimal.Zero, model.NewValidationError("Account type is required")
	case blank(update.EmploymentStatus):
		return decimal.Zero, model.NewValidationError("EmploymentStatus is required")
	case blank(update.OrganisationName):
		return decimal.Zero, model.NewValidationError("OrganisationName is required")
	case blank(update.Occupation):
		return decimal.Zero, model.NewValidationError("Occupation is required")
	case blank(update.AnnualIncome):
		return decimal.Zero, model.NewValidationError("AnnualIncome is required")
	}

	return parseAnnualIncome(update.AnnualIncome)
}

func parseAnnualIncome(value string) (decimal.Decimal, error) {
	income, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, model.NewValidationError("AnnualIncome should be a number")
	}
	if income.IsNegative() {
		return decimal.Zero, model.NewValidationError("AnnualIncome cannot be negative")
	}
	return income, nil
}

// validateProfile проверяет анкету и разбирает дату рождения. today: текущая дата в UTC
func validateProfile(details model.ProfileDetails, today time.Time) (time.Time, error) {
	if err := validateCustomerID(details.CustomerID); err != nil {
		return time.Time{}, err
	}

	switch {
	case blank(details.Name):
		return time.Time{}, model.NewValidationError("Name is Required")
	case blank(details.FatherName):
		return time.Time{}, model.NewValidationError("Father Name is Required")
	case blank(details.Gender):
		return time.Time{}, model.NewValidationError("Gender is Required")
	case blank(details.Nationality):
		return time.Time{}, model.NewValidationError("Nationality is Required")
	case blank(details.DateOfBirth):
		return time.Time{}, model.NewValidationError("Date of Birth is required")
	}

	dateOfBirth, err := time.Parse(dateOfBirthLayout, strings.TrimSpace(details.DateOfBirth))
	if err != nil {
		return time.Time{}, model.NewValidationError("Date should be a Valid")
	}
	if dateOfBirth.After(today) {
		return time.Time{}, model.NewValidationError("Date of Birth cannot be in the future")
	}

	switch {
	case blank(details.Address):
		return time.Time{}, model.NewValidationError("Address is Required")
	case blank(details.PhoneNumber):
		return time.Time{}, model.NewValidationError("PhoneNumber is required")
	case len(details.PhoneNumber) < 10:
		return time.Time{}, model.NewValidationError("Invalid Phone number")
	case !phonePattern.MatchString(details.PhoneNumber):
		return time.Time{}, model.NewValidationError("Invalid phone number")
	case blank(details.EmailAddress):
		return time.Time{}, model.NewValidationError("Email is Required")
	case !validEmail(details.EmailAddress):
		return time.Time{}, model.NewValidationError("Must be a valid Email")
	case blank(details.PlaceOfBirth):
		return time.Time{}, model.NewValidationError("Place of Birth is Required")
	}

	return dateOfBirth, nil
}

// validEmail : только голый адрес, без отображаемого имени
func validEmail(value string) bool {
	address, err := mail.ParseAddress(value)
	return err == nil && address.Address == value
}
