package handler

import (
	"net/http"
	"strings"

	"customer-onboarding/internal/model/requestresponse"
	"customer-onboarding/internal/ports"
	"customer-onboarding/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация клиента
// @Description Выдаёт access и refresh токены по логину и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "invalid username or password"
// @Failure 429 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if strings.TrimSpace(req.UserName) == "" || req.Password == "" {
		sendErrorResponse(w, http.StatusBadRequest, "userName and password are required")
		return
	}

	result, err := h.AuthenticationService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.LoginResponse{}
	resp.Response.AccessToken = result.AccessToken
	resp.Response.RefreshToken = result.RefreshToken
	resp.Response.CustomerID = result.CustomerID
	resp.Response.Message = "Successfully logged in"
	util.WriteJSON(w, http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary Обновление access токена
// @Description Выдаёт новый access токен по действующему refresh токену. Refresh токен меняется только при включённой ротации.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RefreshTokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if strings.TrimSpace(req.UserName) == "" || req.RefreshToken == "" {
		sendErrorResponse(w, http.StatusBadRequest, "userName and refreshToken are required")
		return
	}

	tokens, err := h.AuthenticationService.RefreshAccessToken(r.Context(), req.UserName, req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.RefreshTokenResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	resp.Response.RefreshToken = tokens.RefreshToken
	util.WriteJSON(w, http.StatusOK, resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh токен клиента из access токена
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userName, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), userName); err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.LogoutResponse{}
	resp.Response.Revoked = true
	util.WriteJSON(w, http.StatusOK, resp)
}
