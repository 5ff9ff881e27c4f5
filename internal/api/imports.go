package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/importer"
	"github.com/grclabs/asset-api/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

// upload is the decoded multipart payload shared by import and preview.
type upload struct {
	data         []byte
	fileName     string
	fileType     domain.ImportFileType
	sheetName    string
	fieldMapping importer.FieldMapping
}

func readUpload(r *http.Request) (upload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return upload{}, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return upload{}, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return upload{}, fmt.Errorf("failed to read upload: %w", err)
	}

	u := upload{
		data:      data,
		fileName:  header.Filename,
		sheetName: r.FormValue("sheetName"),
	}

	switch r.FormValue("fileType") {
	case "":
		u.fileType = importer.DetectFileType(header.Filename)
	case string(domain.ImportFileTypeCSV):
		u.fileType = domain.ImportFileTypeCSV
	case string(domain.ImportFileTypeExcel):
		u.fileType = domain.ImportFileTypeExcel
	default:
		return upload{}, fmt.Errorf("unknown file type %q", r.FormValue("fileType"))
	}

	if raw := r.FormValue("fieldMapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &u.fieldMapping); err != nil {
			return upload{}, fmt.Errorf("invalid fieldMapping: %w", err)
		}
	}

	return u, nil
}

func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	assetType, err := domain.ParseAssetType(chi.URLParam(r, "assetType"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := readUpload(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log := logging.WithFields(r.Context(),
		"asset_type", assetType,
		"file_name", u.fileName,
	)
	log.Info("import started")

	result, err := s.imports.Import(r.Context(), importer.Request{
		Data:         u.data,
		FileType:     u.fileType,
		AssetType:    assetType,
		FieldMapping: u.fieldMapping,
		UserID:       userID(r),
		FileName:     u.fileName,
		SheetName:    u.sheetName,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info("import finished",
		"total", result.TotalRecords,
		"successful", result.SuccessfulImports,
		"failed", result.FailedImports,
	)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if _, err := domain.ParseAssetType(chi.URLParam(r, "assetType")); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := readUpload(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if raw := r.FormValue("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	preview, err := s.imports.Preview(importer.PreviewRequest{
		Data:      u.data,
		FileType:  u.fileType,
		SheetName: u.sheetName,
		Limit:     limit,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

func (s *Server) handleImportHistory(w http.ResponseWriter, r *http.Request) {
	var assetType *domain.AssetType
	if raw := r.URL.Query().Get("assetType"); raw != "" {
		parsed, err := domain.ParseAssetType(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		assetType = &parsed
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	logs, err := s.imports.History(r.Context(), assetType, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

func (s *Server) handleImportLog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid import log id")
		return
	}

	log, err := s.imports.Log(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, log)
}
