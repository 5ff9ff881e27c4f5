package asset

import (
	"context"

	"github.com/grclabs/asset-api/internal/domain"
)

// Inventory groups the per-type services into one listing surface for
// callers that span all asset types, such as report generation.
type Inventory struct {
	Physical     *PhysicalService
	Information  *InformationService
	Software     *SoftwareService
	Applications *ApplicationService
	Suppliers    *SupplierService
}

func (inv *Inventory) ListPhysical(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error) {
	return inv.Physical.List(ctx, limit, offset)
}

func (inv *Inventory) ListInformation(ctx context.Context, limit, offset int) ([]domain.InformationAsset, error) {
	return inv.Information.List(ctx, limit, offset)
}

func (inv *Inventory) ListSoftware(ctx context.Context, limit, offset int) ([]domain.SoftwareAsset, error) {
	return inv.Software.List(ctx, limit, offset)
}

func (inv *Inventory) ListApplications(ctx context.Context, limit, offset int) ([]domain.BusinessApplication, error) {
	return inv.Applications.List(ctx, limit, offset)
}

func (inv *Inventory) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	return inv.Suppliers.List(ctx, limit, offset)
}
