package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/grclabs/asset-api/internal/importer"
	"github.com/grclabs/asset-api/internal/repository"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service errors onto HTTP statuses. Anything not
// recognized is a 500 with a generic body so internals stay out of responses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, importer.ErrUnsupportedAssetType):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, importer.ErrEmptyFile),
		errors.Is(err, importer.ErrNoData),
		errors.Is(err, importer.ErrMalformed),
		errors.Is(err, importer.ErrNoSheets),
		errors.Is(err, importer.ErrSheetNotFound):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
