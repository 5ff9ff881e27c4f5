package api

import (
	"net/http"
	"strconv"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assetType, err := domain.ParseAssetType(chi.URLParam(r, "assetType"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}

	var payload any
	switch assetType {
	case domain.AssetTypePhysical:
		payload, err = s.assets.ListPhysical(r.Context(), limit, offset)
	case domain.AssetTypeInformation:
		payload, err = s.assets.ListInformation(r.Context(), limit, offset)
	case domain.AssetTypeSoftware:
		payload, err = s.assets.ListSoftware(r.Context(), limit, offset)
	case domain.AssetTypeApplication:
		payload, err = s.assets.ListApplications(r.Context(), limit, offset)
	case domain.AssetTypeSupplier:
		payload, err = s.assets.ListSuppliers(r.Context(), limit, offset)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

func pagination(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	limit = 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return 0, 0, false
		}
		limit = parsed
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = parsed
	}
	return limit, offset, true
}
