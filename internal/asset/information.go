package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// InformationService manages the information asset register.
type InformationService struct {
	repo repository.InformationAssetRepository
}

// NewInformationService creates an information asset service.
func NewInformationService(repo repository.InformationAssetRepository) *InformationService {
	return &InformationService{repo: repo}
}

// Create persists one information asset.
func (s *InformationService) Create(ctx context.Context, asset domain.InformationAsset, userID string) (domain.InformationAsset, error) {
	if strings.TrimSpace(asset.UniqueIdentifier) == "" {
		asset.UniqueIdentifier = newIdentifier("IA")
	}

	exists, err := s.repo.ExistsByIdentifier(ctx, asset.UniqueIdentifier)
	if err != nil {
		return domain.InformationAsset{}, fmt.Errorf("failed to check identifier: %w", err)
	}
	if exists {
		return domain.InformationAsset{}, duplicateErr(asset.UniqueIdentifier)
	}

	asset.ID = uuid.New()
	asset.CreatedBy = userID
	return s.repo.Create(ctx, asset)
}

// List returns a page of information assets, most recent first.
func (s *InformationService) List(ctx context.Context, limit, offset int) ([]domain.InformationAsset, error) {
	return s.repo.List(ctx, limit, offset)
}
