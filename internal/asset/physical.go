package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// PhysicalService manages the physical asset inventory.
type PhysicalService struct {
	repo repository.PhysicalAssetRepository
}

// NewPhysicalService creates a physical asset service.
func NewPhysicalService(repo repository.PhysicalAssetRepository) *PhysicalService {
	return &PhysicalService{repo: repo}
}

// Create persists one physical asset, generating an identifier when none is
// supplied and rejecting duplicates.
func (s *PhysicalService) Create(ctx context.Context, asset domain.PhysicalAsset, userID string) (domain.PhysicalAsset, error) {
	if strings.TrimSpace(asset.UniqueIdentifier) == "" {
		asset.UniqueIdentifier = newIdentifier("PA")
	}

	exists, err := s.repo.ExistsByIdentifier(ctx, asset.UniqueIdentifier)
	if err != nil {
		return domain.PhysicalAsset{}, fmt.Errorf("failed to check identifier: %w", err)
	}
	if exists {
		return domain.PhysicalAsset{}, duplicateErr(asset.UniqueIdentifier)
	}

	asset.ID = uuid.New()
	asset.CreatedBy = userID
	return s.repo.Create(ctx, asset)
}

// List returns a page of physical assets, most recent first.
func (s *PhysicalService) List(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error) {
	return s.repo.List(ctx, limit, offset)
}
