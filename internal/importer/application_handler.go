package importer

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"
)

// BusinessApplicationCreator persists business applications on behalf of an importing user.
type BusinessApplicationCreator interface {
	Create(ctx context.Context, app domain.BusinessApplication, userID string) (domain.BusinessApplication, error)
}

// BusinessApplicationHandler imports rows into the business application catalogue.
type BusinessApplicationHandler struct {
	creator BusinessApplicationCreator
}

// NewBusinessApplicationHandler creates a business application import handler.
func NewBusinessApplicationHandler(creator BusinessApplicationCreator) *BusinessApplicationHandler {
	return &BusinessApplicationHandler{creator: creator}
}

func (h *BusinessApplicationHandler) AssetType() domain.AssetType {
	return domain.AssetTypeApplication
}

func (h *BusinessApplicationHandler) MapFields(row Row, mapping FieldMapping) (any, error) {
	app := domain.BusinessApplication{
		UniqueIdentifier:     fieldString(row, mapping, "uniqueIdentifier", "Unique Identifier", "Identifier"),
		ApplicationName:      fieldString(row, mapping, "applicationName", "Application Name", "Name"),
		ApplicationType:      fieldString(row, mapping, "applicationType", "Application Type", "Type"),
		VersionNumber:        fieldString(row, mapping, "versionNumber", "Version Number", "Version"),
		PatchLevel:           fieldString(row, mapping, "patchLevel", "Patch Level"),
		BusinessPurpose:      fieldString(row, mapping, "businessPurpose", "Business Purpose"),
		DataClassification:   fieldString(row, mapping, "dataClassification", "Data Classification"),
		VendorName:           fieldString(row, mapping, "vendorName", "Vendor Name", "Vendor"),
		LicenseType:          fieldString(row, mapping, "licenseType", "License Type"),
		HostingType:          fieldString(row, mapping, "hostingType", "Hosting Type"),
		HostingLocation:      fieldString(row, mapping, "hostingLocation", "Hosting Location"),
		AccessURL:            fieldString(row, mapping, "accessUrl", "Access URL", "URL"),
		AuthenticationMethod: fieldString(row, mapping, "authenticationMethod", "Authentication Method"),
		CriticalityLevel:     fieldString(row, mapping, "criticalityLevel", "Criticality Level", "Criticality"),
	}

	var err error
	if app.OwnerID, err = toUUID("ownerId", first(row, mapping, "ownerId", "Owner ID", "Owner")); err != nil {
		return nil, err
	}
	if app.BusinessUnitID, err = toUUID("businessUnitId", first(row, mapping, "businessUnitId", "Business Unit ID", "Business Unit")); err != nil {
		return nil, err
	}
	if app.VendorContact, err = toContact("vendorContact", first(row, mapping, "vendorContact", "Vendor Contact")); err != nil {
		return nil, err
	}
	if app.LicenseCount, err = toInt("licenseCount", first(row, mapping, "licenseCount", "License Count")); err != nil {
		return nil, err
	}
	if app.LicenseExpiry, err = toTime("licenseExpiry", first(row, mapping, "licenseExpiry", "License Expiry", "License Expiry Date")); err != nil {
		return nil, err
	}
	if app.SecurityTestResults, err = toJSONMap("securityTestResults", first(row, mapping, "securityTestResults", "Security Test Results")); err != nil {
		return nil, err
	}
	if app.LastSecurityTestDate, err = toTime("lastSecurityTestDate", first(row, mapping, "lastSecurityTestDate", "Last Security Test Date")); err != nil {
		return nil, err
	}

	app.DataProcessed = toStringSlice(first(row, mapping, "dataProcessed", "Data Processed"))
	app.ComplianceRequirements = toStringSlice(first(row, mapping, "complianceRequirements", "Compliance Requirements"))

	return app, nil
}

func (h *BusinessApplicationHandler) Validate(record any) []string {
	app, ok := record.(domain.BusinessApplication)
	if !ok {
		return []string{"unexpected record type"}
	}

	var errs []string
	errs = requireString(errs, app.ApplicationName, "applicationName")
	return errs
}

func (h *BusinessApplicationHandler) Create(ctx context.Context, record any, userID string) error {
	app, ok := record.(domain.BusinessApplication)
	if !ok {
		return fmt.Errorf("unexpected record type %T", record)
	}
	_, err := h.creator.Create(ctx, app, userID)
	return err
}
