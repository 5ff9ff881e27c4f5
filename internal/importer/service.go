// Package importer implements the bulk import pipeline: parsing uploaded
// CSV/Excel buffers, mapping and validating rows per asset type, creating
// assets row by row, and keeping a durable import log per run. Row-level
// failures never abort a run; only pipeline-level failures do.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/logging"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// ErrUnsupportedAssetType is returned when no handler is registered for the
// requested asset type.
var ErrUnsupportedAssetType = errors.New("unsupported asset type")

// Request describes one import run.
type Request struct {
	Data         []byte
	FileType     domain.ImportFileType
	AssetType    domain.AssetType
	FieldMapping FieldMapping
	UserID       string
	FileName     string
	SheetName    string
}

// PreviewRequest describes a preview of an uploaded file prior to import.
type PreviewRequest struct {
	Data      []byte
	FileType  domain.ImportFileType
	SheetName string
	Limit     int
}

// RowError itemizes the failures of a single row.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// Result summarizes one completed import run.
type Result struct {
	ImportLogID       uuid.UUID  `json:"importLogId"`
	TotalRecords      int        `json:"totalRecords"`
	SuccessfulImports int        `json:"successfulImports"`
	FailedImports     int        `json:"failedImports"`
	Errors            []RowError `json:"errors"`
}

// Service orchestrates the parse, map, validate, create loop across all
// rows of an uploaded file.
type Service struct {
	handlers Handlers
	logs     repository.ImportLogRepository
	now      func() time.Time
}

// NewService creates the import orchestrator. The handler table is supplied
// by the caller so the set of importable asset types is explicit.
func NewService(handlers Handlers, logs repository.ImportLogRepository) *Service {
	return &Service{
		handlers: handlers,
		logs:     logs,
		now:      time.Now,
	}
}

// Preview parses the upload and returns a capped sample of rows.
func (s *Service) Preview(req PreviewRequest) (Preview, error) {
	if req.FileType == domain.ImportFileTypeExcel {
		return PreviewExcel(req.Data, req.SheetName, req.Limit)
	}
	return PreviewCSV(req.Data, req.Limit)
}

// Import runs one end-to-end import. Rows are processed strictly in file
// order; a failing row is recorded and skipped, never fatal. Parse-level
// failures mark the log failed and are returned to the caller.
func (s *Service) Import(ctx context.Context, req Request) (Result, error) {
	handler, ok := s.handlers[req.AssetType]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAssetType, req.AssetType)
	}

	// The log is written before any row is touched so a crash mid-run still
	// leaves an auditable processing record. Stuck processing rows are not
	// reconciled automatically; operators must watch for them.
	log, err := s.logs.Create(ctx, domain.ImportLog{
		FileName:     req.FileName,
		FileType:     req.FileType,
		AssetType:    req.AssetType,
		Status:       domain.ImportStatusProcessing,
		FieldMapping: req.FieldMapping,
		ImportedBy:   req.UserID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to create import log: %w", err)
	}

	var rows []Row
	if req.FileType == domain.ImportFileTypeExcel {
		_, rows, err = ParseExcel(req.Data, req.SheetName)
	} else {
		_, rows, err = ParseCSV(req.Data)
	}
	if err != nil {
		s.failLog(ctx, log, err)
		return Result{}, err
	}

	rowErrors := []RowError{}
	successful := 0
	failed := 0

	for i, row := range rows {
		rowNumber := i + 2 // row 1 is the header

		record, mapErr := handler.MapFields(row, req.FieldMapping)
		if mapErr != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNumber, Errors: []string{mapErr.Error()}})
			failed++
			continue
		}

		if validationErrors := handler.Validate(record); len(validationErrors) > 0 {
			rowErrors = append(rowErrors, RowError{Row: rowNumber, Errors: validationErrors})
			failed++
			continue
		}

		if createErr := handler.Create(ctx, record, req.UserID); createErr != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNumber, Errors: []string{createErr.Error()}})
			failed++
			continue
		}
		successful++
	}

	log.Status = domain.DeriveImportStatus(successful, failed)
	log.TotalRecords = len(rows)
	log.SuccessfulImports = successful
	log.FailedImports = failed
	log.ErrorReport = marshalErrorReport(rowErrors)
	completed := s.now()
	log.CompletedAt = &completed

	if err := s.logs.Finalize(ctx, log); err != nil {
		logging.FromContext(ctx).Error("failed to finalize import log", "importLogId", log.ID, "error", err)
	}

	return Result{
		ImportLogID:       log.ID,
		TotalRecords:      len(rows),
		SuccessfulImports: successful,
		FailedImports:     failed,
		Errors:            rowErrors,
	}, nil
}

// History lists import logs, most recent first, optionally filtered by
// asset type.
func (s *Service) History(ctx context.Context, assetType *domain.AssetType, limit int) ([]domain.ImportLog, error) {
	return s.logs.List(ctx, assetType, limit)
}

// Log fetches one import log by id.
func (s *Service) Log(ctx context.Context, id uuid.UUID) (domain.ImportLog, error) {
	return s.logs.GetByID(ctx, id)
}

// failLog marks the run failed after a pipeline-level error, with that
// error as the sole report entry.
func (s *Service) failLog(ctx context.Context, log domain.ImportLog, cause error) {
	log.Status = domain.ImportStatusFailed
	report, _ := json.Marshal([]map[string]string{{"message": cause.Error()}})
	log.ErrorReport = string(report)
	completed := s.now()
	log.CompletedAt = &completed

	if err := s.logs.Finalize(ctx, log); err != nil {
		logging.FromContext(ctx).Error("failed to mark import log failed", "importLogId", log.ID, "error", err)
	}
}

func marshalErrorReport(rowErrors []RowError) string {
	report, err := json.Marshal(rowErrors)
	if err != nil {
		return "[]"
	}
	return string(report)
}
