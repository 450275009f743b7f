package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/auth"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/handler/http/response"
)

type AuthHandler interface {
	// Login authenticates by phone number and password
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login handles POST /login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
