package importer

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"
)

// PhysicalAssetCreator persists physical assets on behalf of an importing user.
type PhysicalAssetCreator interface {
	Create(ctx context.Context, asset domain.PhysicalAsset, userID string) (domain.PhysicalAsset, error)
}

// PhysicalAssetHandler imports rows into the physical asset inventory.
type PhysicalAssetHandler struct {
	creator PhysicalAssetCreator
}

// NewPhysicalAssetHandler creates a physical asset import handler.
func NewPhysicalAssetHandler(creator PhysicalAssetCreator) *PhysicalAssetHandler {
	return &PhysicalAssetHandler{creator: creator}
}

func (h *PhysicalAssetHandler) AssetType() domain.AssetType {
	return domain.AssetTypePhysical
}

func (h *PhysicalAssetHandler) MapFields(row Row, mapping FieldMapping) (any, error) {
	asset := domain.PhysicalAsset{
		UniqueIdentifier:      fieldString(row, mapping, "uniqueIdentifier", "Unique Identifier", "Identifier", "ID"),
		AssetDescription:      fieldString(row, mapping, "assetDescription", "Asset Description", "Description"),
		Manufacturer:          fieldString(row, mapping, "manufacturer", "Manufacturer"),
		Model:                 fieldString(row, mapping, "model", "Model"),
		BusinessPurpose:       fieldString(row, mapping, "businessPurpose", "Business Purpose"),
		PhysicalLocation:      fieldString(row, mapping, "physicalLocation", "Physical Location", "Location"),
		CriticalityLevel:      fieldString(row, mapping, "criticalityLevel", "Criticality Level", "Criticality"),
		NetworkApprovalStatus: fieldString(row, mapping, "networkApprovalStatus", "Network Approval Status"),
		ConnectivityStatus:    fieldString(row, mapping, "connectivityStatus", "Connectivity Status"),
		SerialNumber:          fieldString(row, mapping, "serialNumber", "Serial Number"),
		AssetTag:              fieldString(row, mapping, "assetTag", "Asset Tag"),
	}

	var err error
	if asset.AssetTypeID, err = toUUID("assetTypeId", first(row, mapping, "assetTypeId", "Asset Type ID")); err != nil {
		return nil, err
	}
	if asset.OwnerID, err = toUUID("ownerId", first(row, mapping, "ownerId", "Owner ID", "Owner")); err != nil {
		return nil, err
	}
	if asset.BusinessUnitID, err = toUUID("businessUnitId", first(row, mapping, "businessUnitId", "Business Unit ID", "Business Unit")); err != nil {
		return nil, err
	}
	if asset.PurchaseDate, err = toTime("purchaseDate", first(row, mapping, "purchaseDate", "Purchase Date")); err != nil {
		return nil, err
	}
	if asset.WarrantyExpiry, err = toTime("warrantyExpiry", first(row, mapping, "warrantyExpiry", "Warranty Expiry")); err != nil {
		return nil, err
	}
	if asset.SecurityTestResults, err = toJSONMap("securityTestResults", first(row, mapping, "securityTestResults", "Security Test Results")); err != nil {
		return nil, err
	}

	asset.MACAddresses = toStringSlice(first(row, mapping, "macAddresses", "MAC Addresses"))
	asset.IPAddresses = toStringSlice(first(row, mapping, "ipAddresses", "IP Addresses"))
	asset.InstalledSoftware = toStringSlice(first(row, mapping, "installedSoftware", "Installed Software"))
	asset.ActivePortsServices = toStringSlice(first(row, mapping, "activePortsServices", "Active Ports/Services"))
	asset.ComplianceRequirements = toStringSlice(first(row, mapping, "complianceRequirements", "Compliance Requirements"))

	return asset, nil
}

func (h *PhysicalAssetHandler) Validate(record any) []string {
	asset, ok := record.(domain.PhysicalAsset)
	if !ok {
		return []string{"unexpected record type"}
	}

	var errs []string
	errs = requireString(errs, asset.UniqueIdentifier, "uniqueIdentifier")
	errs = requireString(errs, asset.AssetDescription, "assetDescription")
	return errs
}

func (h *PhysicalAssetHandler) Create(ctx context.Context, record any, userID string) error {
	asset, ok := record.(domain.PhysicalAsset)
	if !ok {
		return fmt.Errorf("unexpected record type %T", record)
	}
	_, err := h.creator.Create(ctx, asset, userID)
	return err
}

// first resolves a field value without flattening, for coercion helpers.
func first(row Row, mapping FieldMapping, field string, aliases ...string) any {
	value, _ := fieldValue(row, mapping, field, aliases...)
	return value
}
