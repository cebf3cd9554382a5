package preferences

import (
	"errors"
	"net/http"

	prefdomain "diet-profile-go/internal/domain/preferences"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/internal/transport/httpserver/middleware"
)

type dietarySelectionRequest struct {
	DietaryIDs []int64 `json:"dietary_ids" validate:"required"`
}

type allergySelectionRequest struct {
	AllergyIDs []int64 `json:"allergy_ids" validate:"required"`
}

type dietaryListResponse struct {
	DietaryRestrictions []common.CatalogItem `json:"dietary_restrictions"`
}

type allergyListResponse struct {
	Allergies []common.CatalogItem `json:"allergies"`
}

// setLabels carries the wording used in responses and logs for one preference set.
type setLabels struct {
	op       string
	saved    string
	deleted  string
	notFound string
}

var (
	dietaryLabels = setLabels{
		op:       "dietary_restrictions",
		saved:    "Dietary restrictions saved successfully",
		deleted:  "Dietary restriction deleted successfully",
		notFound: "dietary restriction not found for user",
	}
	allergyLabels = setLabels{
		op:       "allergies",
		saved:    "Allergies saved successfully",
		deleted:  "Allergy deleted successfully",
		notFound: "allergy not found for user",
	}
)

func (h *Handlers) SaveDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	var req dietarySelectionRequest
	if !common.DecodeAndValidate(w, r, &req) {
		return
	}
	h.replaceAll(w, r, h.Dietary, dietaryLabels, req.DietaryIDs)
}

func (h *Handlers) SaveAllergies(w http.ResponseWriter, r *http.Request) {
	var req allergySelectionRequest
	if !common.DecodeAndValidate(w, r, &req) {
		return
	}
	h.replaceAll(w, r, h.Allergies, allergyLabels, req.AllergyIDs)
}

func (h *Handlers) DeleteDietaryRestriction(w http.ResponseWriter, r *http.Request) {
	h.removeOne(w, r, h.Dietary, dietaryLabels)
}

func (h *Handlers) DeleteAllergy(w http.ResponseWriter, r *http.Request) {
	h.removeOne(w, r, h.Allergies, allergyLabels)
}

func (h *Handlers) GetDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	items, ok := h.listForUser(w, r, h.Dietary, dietaryLabels)
	if !ok {
		return
	}
	common.WriteJSON(w, http.StatusOK, dietaryListResponse{DietaryRestrictions: items})
}

func (h *Handlers) GetAllergies(w http.ResponseWriter, r *http.Request) {
	items, ok := h.listForUser(w, r, h.Allergies, allergyLabels)
	if !ok {
		return
	}
	common.WriteJSON(w, http.StatusOK, allergyListResponse{Allergies: items})
}

func (h *Handlers) replaceAll(w http.ResponseWriter, r *http.Request, manager *prefdomain.Manager, labels setLabels, ids []int64) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	if err := manager.ReplaceAll(r.Context(), user.ID, ids); err != nil {
		switch {
		case errors.Is(err, prefdomain.ErrItemNotFound):
			h.log.BusinessError(labels.op+".replace: unknown catalog item", err, "user_id", user.ID, "ids", ids)
			common.WriteError(w, http.StatusNotFound, "not_found", "one or more items do not exist")
		case errors.Is(err, prefdomain.ErrPersistence):
			h.log.InternalError(labels.op+".replace: persistence failed", err, "user_id", user.ID)
			common.WriteError(w, http.StatusInternalServerError, "persistence_error", "could not save preferences")
		default:
			h.log.InternalError(labels.op+".replace: failed", err, "user_id", user.ID)
			common.WriteInternalError(w)
		}
		return
	}

	common.WriteMessage(w, labels.saved)
}

func (h *Handlers) removeOne(w http.ResponseWriter, r *http.Request, manager *prefdomain.Manager, labels setLabels) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	itemID, ok := common.PathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "validation_error", "invalid id")
		return
	}

	if err := manager.RemoveOne(r.Context(), user.ID, itemID); err != nil {
		if errors.Is(err, prefdomain.ErrAssociationNotFound) {
			h.log.BusinessError(labels.op+".delete: association not found", err, "user_id", user.ID, "item_id", itemID)
			common.WriteError(w, http.StatusNotFound, "not_found", labels.notFound)
			return
		}
		h.log.InternalError(labels.op+".delete: failed", err, "user_id", user.ID, "item_id", itemID)
		common.WriteError(w, http.StatusInternalServerError, "persistence_error", "could not delete preference")
		return
	}

	common.WriteMessage(w, labels.deleted)
}

func (h *Handlers) listForUser(w http.ResponseWriter, r *http.Request, manager *prefdomain.Manager, labels setLabels) ([]common.CatalogItem, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return nil, false
	}

	items, err := manager.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError(labels.op+".list: failed", err, "user_id", user.ID)
		common.WriteInternalError(w)
		return nil, false
	}

	return common.CatalogItems(common.BaseURL(r, h.publicBaseURL), items), true
}
