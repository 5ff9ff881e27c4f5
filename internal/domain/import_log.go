package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportStatus tracks the lifecycle of one import run.
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusPartial    ImportStatus = "partial"
	ImportStatusFailed     ImportStatus = "failed"
)

// ImportFileType identifies the uploaded file format.
type ImportFileType string

const (
	ImportFileTypeCSV   ImportFileType = "csv"
	ImportFileTypeExcel ImportFileType = "excel"
)

// ImportLog is the durable audit record of one import run. It is created
// with status processing before the first row is touched and updated exactly
// once to a terminal status when the run ends. Rows created by the run carry
// no back-reference to the log.
type ImportLog struct {
	ID                uuid.UUID         `json:"id"`
	FileName          string            `json:"fileName"`
	FileType          ImportFileType    `json:"fileType"`
	AssetType         AssetType         `json:"assetType"`
	Status            ImportStatus      `json:"status"`
	TotalRecords      int               `json:"totalRecords"`
	SuccessfulImports int               `json:"successfulImports"`
	FailedImports     int               `json:"failedImports"`
	ErrorReport       string            `json:"errorReport,omitempty"`
	FieldMapping      map[string]string `json:"fieldMapping,omitempty"`
	ImportedBy        string            `json:"importedBy"`
	CreatedAt         time.Time         `json:"createdAt"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty"`
}

// Terminal reports whether the log reached a final status.
func (l ImportLog) Terminal() bool {
	switch l.Status {
	case ImportStatusCompleted, ImportStatusPartial, ImportStatusFailed:
		return true
	default:
		return false
	}
}

// DeriveImportStatus maps run counts to the terminal status: no failures
// means completed, no successes (with rows attempted) means failed, a mix
// means partial.
func DeriveImportStatus(successful, failed int) ImportStatus {
	switch {
	case failed == 0:
		return ImportStatusCompleted
	case successful > 0:
		return ImportStatusPartial
	default:
		return ImportStatusFailed
	}
}
