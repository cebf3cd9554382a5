package account

import (
	"errors"
	"net/http"

	"diet-profile-go/internal/domain/catalog"
	userdomain "diet-profile-go/internal/domain/user"
	"diet-profile-go/internal/transport/httpserver/handler/common"
)

type profileItem struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type userInfoResponse struct {
	UserID              int64         `json:"user_id"`
	DietaryRestrictions []profileItem `json:"dietary_restrictions"`
	Allergies           []profileItem `json:"allergies"`
	LabResultFilename   *string       `json:"lab_result_filename"`
}

func (h *Handlers) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.PathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id")
		return
	}

	if err := h.Users.CompleteOnboarding(r.Context(), userID); err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("account.onboarding: user not found", err, "user_id", userID)
			common.WriteError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("account.onboarding: update failed", err, "user_id", userID)
		common.WriteInternalError(w)
		return
	}

	common.WriteMessage(w, "Onboarding completed successfully")
}

func (h *Handlers) UserInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.PathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id")
		return
	}

	full, err := h.Profiles.GetFullProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("account.user_info: user not found", err, "user_id", userID)
			common.WriteError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("account.user_info: aggregate failed", err, "user_id", userID)
		common.WriteInternalError(w)
		return
	}

	base := common.BaseURL(r, h.publicBaseURL)
	common.WriteJSON(w, http.StatusOK, userInfoResponse{
		UserID:              full.UserID,
		DietaryRestrictions: profileItems(base, full.DietaryRestrictions),
		Allergies:           profileItems(base, full.Allergies),
		LabResultFilename:   full.LabResultFilename,
	})
}

func profileItems(base string, items []catalog.Item) []profileItem {
	response := make([]profileItem, 0, len(items))
	for _, item := range items {
		response = append(response, profileItem{
			ID:   item.ID,
			Name: item.Name,
			Logo: common.LogoURL(base, item.LogoPath),
		})
	}
	return response
}
