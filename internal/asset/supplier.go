package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
)

// SupplierService manages the supplier register.
type SupplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService creates a supplier service.
func NewSupplierService(repo repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create persists one supplier.
func (s *SupplierService) Create(ctx context.Context, supplier domain.Supplier, userID string) (domain.Supplier, error) {
	if strings.TrimSpace(supplier.UniqueIdentifier) == "" {
		supplier.UniqueIdentifier = newIdentifier("SU")
	}

	exists, err := s.repo.ExistsByIdentifier(ctx, supplier.UniqueIdentifier)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("failed to check identifier: %w", err)
	}
	if exists {
		return domain.Supplier{}, duplicateErr(supplier.UniqueIdentifier)
	}

	supplier.ID = uuid.New()
	supplier.CreatedBy = userID
	return s.repo.Create(ctx, supplier)
}

// List returns a page of suppliers, most recent first.
func (s *SupplierService) List(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	return s.repo.List(ctx, limit, offset)
}
