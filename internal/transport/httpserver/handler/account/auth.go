package account

import (
	"errors"
	"net/http"
	"time"

	userdomain "diet-profile-go/internal/domain/user"
	"diet-profile-go/internal/transport/httpserver/handler/common"
)

type signUpRequest struct {
	FullName string `json:"full_name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type signUpResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken         string    `json:"access_token"`
	TokenType           string    `json:"token_type"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	UserID              int64     `json:"user_id"`
	ExpiresAt           time.Time `json:"expires_at"`
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !common.DecodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.Users.SignUp(r.Context(), userdomain.SignUpInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrPasswordTooLong) {
			h.log.BusinessError("account.signup: password too long", err)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "password must be at most 72 bytes")
			return
		}
		if errors.Is(err, userdomain.ErrEmailTaken) {
			h.log.BusinessError("account.signup: email already registered", err)
			common.WriteError(w, http.StatusBadRequest, "conflict", "email already registered")
			return
		}
		h.log.InternalError("account.signup: create user failed", err)
		common.WriteInternalError(w)
		return
	}

	common.WriteJSON(w, http.StatusCreated, signUpResponse{
		ID:       created.ID,
		FullName: created.FullName,
		Email:    created.Email,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !common.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("account.login: invalid credentials", err)
			common.WriteError(w, http.StatusUnauthorized, "unauthenticated", "invalid email or password")
			return
		}
		h.log.InternalError("account.login: login failed", err)
		common.WriteInternalError(w)
		return
	}

	common.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken:         result.AccessToken,
		TokenType:           result.TokenType,
		OnboardingCompleted: result.User.OnboardingCompleted,
		UserID:              result.User.ID,
		ExpiresAt:           result.ExpiresAt.UTC(),
	})
}
