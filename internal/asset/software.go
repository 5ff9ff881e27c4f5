package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// SoftwareService manages the software inventory.
type SoftwareService struct {
	repo repository.SoftwareAssetRepository
}

// NewSoftwareService creates a software asset service.
func NewSoftwareService(repo repository.SoftwareAssetRepository) *SoftwareService {
	return &SoftwareService{repo: repo}
}

// Create persists one software asset.
func (s *SoftwareService) Create(ctx context.Context, asset domain.SoftwareAsset, userID string) (domain.SoftwareAsset, error) {
	if strings.TrimSpace(asset.UniqueIdentifier) == "" {
		asset.UniqueIdentifier = newIdentifier("SA")
	}

	exists, err := s.repo.ExistsByIdentifier(ctx, asset.UniqueIdentifier)
	if err != nil {
		return domain.SoftwareAsset{}, fmt.Errorf("failed to check identifier: %w", err)
	}
	if exists {
		return domain.SoftwareAsset{}, duplicateErr(asset.UniqueIdentifier)
	}

	asset.ID = uuid.New()
	asset.CreatedBy = userID
	return s.repo.Create(ctx, asset)
}

// List returns a page of software assets, most recent first.
func (s *SoftwareService) List(ctx context.Context, limit, offset int) ([]domain.SoftwareAsset, error) {
	return s.repo.List(ctx, limit, offset)
}
