package importer

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"
)

// InformationAssetCreator persists information assets on behalf of an importing user.
type InformationAssetCreator interface {
	Create(ctx context.Context, asset domain.InformationAsset, userID string) (domain.InformationAsset, error)
}

// InformationAssetHandler imports rows into the information asset register.
type InformationAssetHandler struct {
	creator InformationAssetCreator
}

// NewInformationAssetHandler creates an information asset import handler.
func NewInformationAssetHandler(creator InformationAssetCreator) *InformationAssetHandler {
	return &InformationAssetHandler{creator: creator}
}

func (h *InformationAssetHandler) AssetType() domain.AssetType {
	return domain.AssetTypeInformation
}

func (h *InformationAssetHandler) MapFields(row Row, mapping FieldMapping) (any, error) {
	asset := domain.InformationAsset{
		UniqueIdentifier:    fieldString(row, mapping, "uniqueIdentifier", "Unique Identifier", "Identifier"),
		Name:                fieldString(row, mapping, "name", "Name", "Asset Name"),
		InformationType:     fieldString(row, mapping, "informationType", "Information Type", "Type"),
		Description:         fieldString(row, mapping, "description", "Description"),
		ClassificationLevel: fieldString(row, mapping, "classificationLevel", "Classification Level", "Classification"),
		AssetLocation:       fieldString(row, mapping, "assetLocation", "Asset Location", "Location"),
		StorageMedium:       fieldString(row, mapping, "storageMedium", "Storage Medium"),
		RetentionPeriod:     fieldString(row, mapping, "retentionPeriod", "Retention Period"),
	}

	var err error
	if asset.ClassificationDate, err = toTime("classificationDate", first(row, mapping, "classificationDate", "Classification Date")); err != nil {
		return nil, err
	}
	if asset.ReclassificationDate, err = toTime("reclassificationDate", first(row, mapping, "reclassificationDate", "Reclassification Date")); err != nil {
		return nil, err
	}
	if asset.InformationOwnerID, err = toUUID("informationOwnerId", first(row, mapping, "informationOwnerId", "Information Owner ID", "Information Owner")); err != nil {
		return nil, err
	}
	if asset.AssetCustodianID, err = toUUID("assetCustodianId", first(row, mapping, "assetCustodianId", "Asset Custodian ID", "Asset Custodian")); err != nil {
		return nil, err
	}
	if asset.BusinessUnitID, err = toUUID("businessUnitId", first(row, mapping, "businessUnitId", "Business Unit ID", "Business Unit")); err != nil {
		return nil, err
	}

	asset.ComplianceRequirements = toStringSlice(first(row, mapping, "complianceRequirements", "Compliance Requirements"))

	return asset, nil
}

func (h *InformationAssetHandler) Validate(record any) []string {
	asset, ok := record.(domain.InformationAsset)
	if !ok {
		return []string{"unexpected record type"}
	}

	var errs []string
	errs = requireString(errs, asset.Name, "name")
	errs = requireString(errs, asset.InformationType, "informationType")
	errs = requireString(errs, asset.ClassificationLevel, "classificationLevel")
	return errs
}

func (h *InformationAssetHandler) Create(ctx context.Context, record any, userID string) error {
	asset, ok := record.(domain.InformationAsset)
	if !ok {
		return fmt.Errorf("unexpected record type %T", record)
	}
	_, err := h.creator.Create(ctx, asset, userID)
	return err
}
