package importer

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"
)

// SoftwareAssetCreator persists software assets on behalf of an importing user.
type SoftwareAssetCreator interface {
	Create(ctx context.Context, asset domain.SoftwareAsset, userID string) (domain.SoftwareAsset, error)
}

// SoftwareAssetHandler imports rows into the software inventory.
type SoftwareAssetHandler struct {
	creator SoftwareAssetCreator
}

// NewSoftwareAssetHandler creates a software asset import handler.
func NewSoftwareAssetHandler(creator SoftwareAssetCreator) *SoftwareAssetHandler {
	return &SoftwareAssetHandler{creator: creator}
}

func (h *SoftwareAssetHandler) AssetType() domain.AssetType {
	return domain.AssetTypeSoftware
}

func (h *SoftwareAssetHandler) MapFields(row Row, mapping FieldMapping) (any, error) {
	asset := domain.SoftwareAsset{
		UniqueIdentifier: fieldString(row, mapping, "uniqueIdentifier", "Unique Identifier", "Identifier"),
		SoftwareName:     fieldString(row, mapping, "softwareName", "Software Name", "Name"),
		SoftwareType:     fieldString(row, mapping, "softwareType", "Software Type", "Type"),
		VersionNumber:    fieldString(row, mapping, "versionNumber", "Version Number", "Version"),
		PatchLevel:       fieldString(row, mapping, "patchLevel", "Patch Level"),
		BusinessPurpose:  fieldString(row, mapping, "businessPurpose", "Business Purpose"),
		VendorName:       fieldString(row, mapping, "vendorName", "Vendor Name", "Vendor"),
		LicenseType:      fieldString(row, mapping, "licenseType", "License Type"),
		LicenseKey:       fieldString(row, mapping, "licenseKey", "License Key"),
	}

	var err error
	if asset.OwnerID, err = toUUID("ownerId", first(row, mapping, "ownerId", "Owner ID", "Owner")); err != nil {
		return nil, err
	}
	if asset.BusinessUnitID, err = toUUID("businessUnitId", first(row, mapping, "businessUnitId", "Business Unit ID", "Business Unit")); err != nil {
		return nil, err
	}
	if asset.VendorContact, err = toContact("vendorContact", first(row, mapping, "vendorContact", "Vendor Contact")); err != nil {
		return nil, err
	}
	if asset.LicenseCount, err = toInt("licenseCount", first(row, mapping, "licenseCount", "License Count")); err != nil {
		return nil, err
	}
	if asset.LicenseExpiry, err = toTime("licenseExpiry", first(row, mapping, "licenseExpiry", "License Expiry", "License Expiry Date")); err != nil {
		return nil, err
	}
	if asset.InstallationCount, err = toInt("installationCount", first(row, mapping, "installationCount", "Installation Count")); err != nil {
		return nil, err
	}
	if asset.SecurityTestResults, err = toJSONMap("securityTestResults", first(row, mapping, "securityTestResults", "Security Test Results")); err != nil {
		return nil, err
	}
	if asset.LastSecurityTestDate, err = toTime("lastSecurityTestDate", first(row, mapping, "lastSecurityTestDate", "Last Security Test Date")); err != nil {
		return nil, err
	}
	if asset.SupportEndDate, err = toTime("supportEndDate", first(row, mapping, "supportEndDate", "Support End Date")); err != nil {
		return nil, err
	}

	asset.KnownVulnerabilities = toStringSlice(first(row, mapping, "knownVulnerabilities", "Known Vulnerabilities"))

	return asset, nil
}

func (h *SoftwareAssetHandler) Validate(record any) []string {
	asset, ok := record.(domain.SoftwareAsset)
	if !ok {
		return []string{"unexpected record type"}
	}

	var errs []string
	errs = requireString(errs, asset.SoftwareName, "softwareName")
	return errs
}

func (h *SoftwareAssetHandler) Create(ctx context.Context, record any, userID string) error {
	asset, ok := record.(domain.SoftwareAsset)
	if !ok {
		return fmt.Errorf("unexpected record type %T", record)
	}
	_, err := h.creator.Create(ctx, asset, userID)
	return err
}
