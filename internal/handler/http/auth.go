package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/models"
)

// register handles POST /api/auth/register.
//
// On success the new account is returned together with a freshly issued
// token, so a client can start making authenticated calls without a separate
// login round-trip.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  registeredUser,
	}, http.StatusCreated)
}

// login handles POST /api/auth/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("login failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  foundUser,
	}, http.StatusOK)
}
