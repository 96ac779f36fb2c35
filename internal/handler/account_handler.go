package handler

import (
	"errors"
	"net/http"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/model/requestresponse"
	"customer-onboarding/internal/ports"
	"customer-onboarding/internal/util"

	"github.com/go-chi/chi/v5"
)

type AccountHandler struct {
	ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService}
}

// OpenAccount godoc
// @Summary Открытие счёта
// @Description Проверяет заявку, генерирует номер счёта и сохраняет счёт клиента
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body requestresponse.OpenAccountRequest true "Тело запроса"
// @Success 201 {object} requestresponse.OpenAccountResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/accounts [post]
func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	var req requestresponse.OpenAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	account, err := h.AccountService.OpenAccount(r.Context(), userName, model.AccountApplication{
		CustomerID:       req.CustomerID,
		GovernmentID:     req.GovernmentID,
		IDType:           req.IDType,
		AccountType:      req.AccountType,
		BranchName:       req.BranchName,
		AgreedToTerms:    req.AgreedToTermsAndConditions,
		AgreedToPrivacy:  req.AgreedToPrivacyPolicy,
		EmploymentStatus: req.EmploymentStatus,
		OrganisationName: req.OrganisationName,
		Occupation:       req.Occupation,
		AnnualIncome:     req.AnnualIncome,
	})
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			sendErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.OpenAccountResponse{}
	resp.Response.AccountNumber = account.AccountNumber
	resp.Response.RoutingCode = account.RoutingCode
	resp.Response.Message = "Customer account details added successfully"
	util.WriteJSON(w, http.StatusCreated, resp)
}

// ListAccounts godoc
// @Summary Счета клиента
// @Tags Accounts
// @Produce json
// @Param customer_id path string true "UUID клиента"
// @Success 200 {object} requestresponse.ListAccountsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/accounts/{customer_id} [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	accounts, err := h.AccountService.ListAccounts(r.Context(), userName, chi.URLParam(r, "customer_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.ListAccountsResponse{}
	resp.Data.Accounts = accounts
	if resp.Data.Accounts == nil {
		resp.Data.Accounts = []model.Account{}
	}
	util.WriteJSON(w, http.StatusOK, resp)
}

// UpdateAccount godoc
// @Summary Изменение данных счёта
// @Description Номер счёта и отделение не меняются
// @Tags Accounts
// @Accept json
// @Produce json
// @Param customer_id path string true "UUID клиента"
// @Param account_id path string true "UUID счёта"
// @Param body body requestresponse.UpdateAccountRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AccountResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/accounts/{customer_id}/{account_id} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	account, err := h.AccountService.UpdateAccount(r.Context(), userName, model.AccountUpdate{
		CustomerID:       chi.URLParam(r, "customer_id"),
		AccountID:        chi.URLParam(r, "account_id"),
		GovernmentID:     req.GovernmentID,
		IDType:           req.IDType,
		AccountType:      req.AccountType,
		EmploymentStatus: req.EmploymentStatus,
		OrganisationName: req.OrganisationName,
		Occupation:       req.Occupation,
		AnnualIncome:     req.AnnualIncome,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.AccountResponse{}
	resp.Data.Account = *account
	util.WriteJSON(w, http.StatusOK, resp)
}
