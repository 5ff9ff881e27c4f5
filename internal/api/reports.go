package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/report"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	assetType, err := domain.ParseAssetType(chi.URLParam(r, "assetType"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.reports.Generate(r.Context(), assetType, format)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", rep.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(rep.Data)
}
