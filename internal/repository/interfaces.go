package repository

import (
	"context"
	"errors"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateIdentifier is returned when an insert violates the unique
// identifier constraint of an asset table.
var ErrDuplicateIdentifier = errors.New("duplicate unique identifier")

// ImportLogRepository persists the audit record of import runs.
type ImportLogRepository interface {
	// Create inserts the log with its initial status and returns the stored
	// row including the generated id and creation timestamp.
	Create(ctx context.Context, log domain.ImportLog) (domain.ImportLog, error)
	// Finalize writes the terminal status, counts, error report and
	// completion timestamp for one run.
	Finalize(ctx context.Context, log domain.ImportLog) error
	List(ctx context.Context, assetType *domain.AssetType, limit int) ([]domain.ImportLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ImportLog, error)
}

// PhysicalAssetRepository defines storage operations for physical assets.
type PhysicalAssetRepository interface {
	Create(ctx context.Context, asset domain.PhysicalAsset) (domain.PhysicalAsset, error)
	ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error)
}

// InformationAssetRepository defines storage operations for information assets.
type InformationAssetRepository interface {
	Create(ctx context.Context, asset domain.InformationAsset) (domain.InformationAsset, error)
	ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.InformationAsset, error)
}

// SoftwareAssetRepository defines storage operations for software assets.
type SoftwareAssetRepository interface {
	Create(ctx context.Context, asset domain.SoftwareAsset) (domain.SoftwareAsset, error)
	ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.SoftwareAsset, error)
}

// BusinessApplicationRepository defines storage operations for business applications.
type BusinessApplicationRepository interface {
	Create(ctx context.Context, app domain.BusinessApplication) (domain.BusinessApplication, error)
	ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.BusinessApplication, error)
}

// SupplierRepository defines storage operations for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
}
