package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/model/requestresponse"
	"customer-onboarding/internal/ports"
	"customer-onboarding/internal/security"
	"customer-onboarding/internal/util"

	"go.uber.org/zap"
)

type UserHandler struct {
	ports.AuthenticationService
}

func NewUserHandler(authenticationService ports.AuthenticationService) *UserHandler {
	return &UserHandler{authenticationService}
}

// RegisterUser godoc
// @Summary Регистрация клиента
// @Description Создаёт учётную запись клиента. Возвращается первое нарушенное правило валидации.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	err := h.AuthenticationService.Register(r.Context(), model.Registration{
		UserName:        req.UserName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := requestresponse.RegisterResponse{}
	resp.Response.Message = "Customer registered successfully"
	util.WriteJSON(w, http.StatusCreated, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// writeServiceError переводит ошибки сервисов в HTTP статусы. Неизвестные ошибки: 500 без подробностей
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, model.ErrDuplicateUser), errors.Is(err, model.ErrAccountNumberTaken), errors.Is(err, model.ErrProfileExists):
		sendErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrForbidden):
		sendErrorResponse(w, http.StatusForbidden, model.ErrForbidden.Error())
	case errors.Is(err, model.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, model.ErrNotFound.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		sendErrorResponse(w, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	default:
		zap.L().Error("ошибка обработки запроса",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		sendErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	util.WriteJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

// subject : логин клиента из access токена, без токена ответ 401
func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return claims.Subject, true
}
