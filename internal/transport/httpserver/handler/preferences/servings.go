package preferences

import (
	"errors"
	"net/http"

	"diet-profile-go/internal/domain/serving"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/internal/transport/httpserver/middleware"
)

type servingSelectionRequest struct {
	ServingID   int64 `json:"serving_id" validate:"required,gt=0"`
	FamilyCount *int  `json:"family_count"`
}

type servingResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	LogoPath    *string `json:"logo_path"`
	FamilyCount *int    `json:"family_count"`
}

type servingListResponse struct {
	Servings []servingResponse `json:"servings"`
}

func (h *Handlers) SaveServing(w http.ResponseWriter, r *http.Request) {
	var req servingSelectionRequest
	if !common.DecodeAndValidate(w, r, &req) {
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	if _, err := h.Servings.Set(r.Context(), user.ID, req.ServingID, req.FamilyCount); err != nil {
		switch {
		case errors.Is(err, serving.ErrInvalidServing):
			h.log.BusinessError("servings.set: invalid serving", err, "user_id", user.ID, "serving_id", req.ServingID)
			common.WriteError(w, http.StatusNotFound, "not_found", "invalid serving option")
		case errors.Is(err, serving.ErrFamilyCountRequired):
			h.log.BusinessError("servings.set: family count missing", err, "user_id", user.ID)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "family_count is required for family servings")
		case errors.Is(err, serving.ErrInvalidFamilyCount):
			h.log.BusinessError("servings.set: invalid family count", err, "user_id", user.ID)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "family_count must be positive")
		case errors.Is(err, serving.ErrPersistence):
			h.log.InternalError("servings.set: persistence failed", err, "user_id", user.ID)
			common.WriteError(w, http.StatusInternalServerError, "persistence_error", "could not save serving preference")
		default:
			h.log.InternalError("servings.set: failed", err, "user_id", user.ID)
			common.WriteInternalError(w)
		}
		return
	}

	common.WriteMessage(w, "Serving preference saved successfully")
}

func (h *Handlers) GetServing(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	selection, err := h.Servings.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, serving.ErrServingNotSet) {
			common.WriteJSON(w, http.StatusOK, servingListResponse{Servings: []servingResponse{}})
			return
		}
		h.log.InternalError("servings.get: failed", err, "user_id", user.ID)
		common.WriteInternalError(w)
		return
	}

	common.WriteJSON(w, http.StatusOK, servingListResponse{Servings: []servingResponse{{
		ID:          selection.ID,
		Name:        selection.Name,
		LogoPath:    common.LogoURL(common.BaseURL(r, h.publicBaseURL), selection.LogoPath),
		FamilyCount: selection.FamilyCount,
	}}})
}
