package handler

import (
	"context"
	"net/http"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/model/requestresponse"
	"customer-onboarding/internal/ports"
	"customer-onboarding/internal/util"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	ports.CustomerService
}

func NewProfileHandler(customerService ports.CustomerService) *ProfileHandler {
	return &ProfileHandler{customerService}
}

// AddProfile godoc
// @Summary Анкета клиента
// @Description Сохраняет персональные данные клиента. Анкета у клиента одна.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer_id path string true "UUID клиента"
// @Param body body requestresponse.ProfileRequest true "Тело запроса"
// @Success 201 {object} requestresponse.ProfileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/customers/{customer_id}/profile [post]
func (h *ProfileHandler) AddProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, h.CustomerService.AddProfile, http.StatusCreated)
}

// GetProfile godoc
// @Summary Анкета клиента
// @Tags Customers
// @Produce json
// @Param customer_id path string true "UUID клиента"
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/customers/{customer_id}/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	profile, err := h.CustomerService.GetProfile(r.Context(), userName, chi.URLParam(r, "customer_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeProfile(w, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Изменение анкеты клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer_id path string true "UUID клиента"
// @Param body body requestresponse.ProfileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/customers/{customer_id}/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, h.CustomerService.UpdateProfile, http.StatusOK)
}

type saveProfileFunc func(ctx context.Context, userName string, details model.ProfileDetails) (*model.Profile, error)

func (h *ProfileHandler) saveProfile(w http.ResponseWriter, r *http.Request, save saveProfileFunc, status int) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	var req requestresponse.ProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	profile, err := save(r.Context(), userName, model.ProfileDetails{
		CustomerID:   chi.URLParam(r, "customer_id"),
		Name:         req.Name,
		FatherName:   req.FatherName,
		Gender:       req.Gender,
		Nationality:  req.Nationality,
		DateOfBirth:  req.DateOfBirth,
		Address:      req.Address,
		PlaceOfBirth: req.PlaceOfBirth,
		PhoneNumber:  req.PhoneNumber,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeProfile(w, status, profile)
}

func writeProfile(w http.ResponseWriter, status int, profile *model.Profile) {
	resp := requestresponse.ProfileResponse{}
	resp.Data.Profile = *profile
	util.WriteJSON(w, status, resp)
}
