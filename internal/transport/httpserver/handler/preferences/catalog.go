package preferences

import (
	"net/http"

	"diet-profile-go/internal/domain/catalog"
	"diet-profile-go/internal/transport/httpserver/handler/common"
)

func (h *Handlers) ListDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	h.listCatalog(w, r, catalog.KindDietary)
}

func (h *Handlers) ListAllergies(w http.ResponseWriter, r *http.Request) {
	h.listCatalog(w, r, catalog.KindAllergy)
}

func (h *Handlers) ListServings(w http.ResponseWriter, r *http.Request) {
	h.listCatalog(w, r, catalog.KindServings)
}

func (h *Handlers) listCatalog(w http.ResponseWriter, r *http.Request, kind catalog.Kind) {
	items, err := h.Catalog.List(r.Context(), kind)
	if err != nil {
		h.log.InternalError("catalog.list: list failed", err, "kind", kind)
		common.WriteInternalError(w)
		return
	}

	common.WriteJSON(w, http.StatusOK, common.CatalogItems(common.BaseURL(r, h.publicBaseURL), items))
}
