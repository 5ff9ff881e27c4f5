package importer

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"
)

// SupplierCreator persists suppliers on behalf of an importing user.
type SupplierCreator interface {
	Create(ctx context.Context, supplier domain.Supplier, userID string) (domain.Supplier, error)
}

// SupplierHandler imports rows into the supplier register.
type SupplierHandler struct {
	creator SupplierCreator
}

// NewSupplierHandler creates a supplier import handler.
func NewSupplierHandler(creator SupplierCreator) *SupplierHandler {
	return &SupplierHandler{creator: creator}
}

func (h *SupplierHandler) AssetType() domain.AssetType {
	return domain.AssetTypeSupplier
}

func (h *SupplierHandler) MapFields(row Row, mapping FieldMapping) (any, error) {
	supplier := domain.Supplier{
		UniqueIdentifier:   fieldString(row, mapping, "uniqueIdentifier", "Unique Identifier", "Identifier"),
		SupplierName:       fieldString(row, mapping, "supplierName", "Supplier Name", "Name"),
		SupplierType:       fieldString(row, mapping, "supplierType", "Supplier Type", "Type"),
		BusinessPurpose:    fieldString(row, mapping, "businessPurpose", "Business Purpose"),
		CriticalityLevel:   fieldString(row, mapping, "criticalityLevel", "Criticality Level", "Criticality"),
		ContractReference:  fieldString(row, mapping, "contractReference", "Contract Reference"),
		Currency:           fieldString(row, mapping, "currency", "Currency"),
		TaxID:              fieldString(row, mapping, "taxId", "Tax ID"),
		RegistrationNumber: fieldString(row, mapping, "registrationNumber", "Registration Number"),
		Address:            fieldString(row, mapping, "address", "Address"),
		Country:            fieldString(row, mapping, "country", "Country"),
		Website:            fieldString(row, mapping, "website", "Website"),
		RiskLevel:          fieldString(row, mapping, "riskLevel", "Risk Level"),
	}

	var err error
	if supplier.OwnerID, err = toUUID("ownerId", first(row, mapping, "ownerId", "Owner ID", "Owner")); err != nil {
		return nil, err
	}
	if supplier.BusinessUnitID, err = toUUID("businessUnitId", first(row, mapping, "businessUnitId", "Business Unit ID", "Business Unit")); err != nil {
		return nil, err
	}
	if supplier.ContractStartDate, err = toTime("contractStartDate", first(row, mapping, "contractStartDate", "Contract Start Date")); err != nil {
		return nil, err
	}
	if supplier.ContractEndDate, err = toTime("contractEndDate", first(row, mapping, "contractEndDate", "Contract End Date")); err != nil {
		return nil, err
	}
	if supplier.ContractValue, err = toFloat("contractValue", first(row, mapping, "contractValue", "Contract Value")); err != nil {
		return nil, err
	}
	if supplier.AutoRenewal, err = toBool("autoRenewal", first(row, mapping, "autoRenewal", "Auto Renewal")); err != nil {
		return nil, err
	}
	if supplier.PrimaryContact, err = toContact("primaryContact", first(row, mapping, "primaryContact", "Primary Contact")); err != nil {
		return nil, err
	}
	if supplier.SecondaryContact, err = toContact("secondaryContact", first(row, mapping, "secondaryContact", "Secondary Contact")); err != nil {
		return nil, err
	}
	if supplier.RiskAssessmentDate, err = toTime("riskAssessmentDate", first(row, mapping, "riskAssessmentDate", "Risk Assessment Date")); err != nil {
		return nil, err
	}
	if supplier.InsuranceVerified, err = toBool("insuranceVerified", first(row, mapping, "insuranceVerified", "Insurance Verified")); err != nil {
		return nil, err
	}
	if supplier.BackgroundCheckDate, err = toTime("backgroundCheckDate", first(row, mapping, "backgroundCheckDate", "Background Check Date")); err != nil {
		return nil, err
	}
	if supplier.PerformanceRating, err = toFloat("performanceRating", first(row, mapping, "performanceRating", "Performance Rating")); err != nil {
		return nil, err
	}
	if supplier.LastReviewDate, err = toTime("lastReviewDate", first(row, mapping, "lastReviewDate", "Last Review Date")); err != nil {
		return nil, err
	}

	supplier.GoodsServicesType = toStringSlice(first(row, mapping, "goodsServicesType", "Goods/Services Type", "Goods Services Type"))
	supplier.ComplianceCertifications = toStringSlice(first(row, mapping, "complianceCertifications", "Compliance Certifications"))

	return supplier, nil
}

func (h *SupplierHandler) Validate(record any) []string {
	supplier, ok := record.(domain.Supplier)
	if !ok {
		return []string{"unexpected record type"}
	}

	var errs []string
	errs = requireString(errs, supplier.UniqueIdentifier, "uniqueIdentifier")
	errs = requireString(errs, supplier.SupplierName, "supplierName")
	return errs
}

func (h *SupplierHandler) Create(ctx context.Context, record any, userID string) error {
	supplier, ok := record.(domain.Supplier)
	if !ok {
		return fmt.Errorf("unexpected record type %T", record)
	}
	_, err := h.creator.Create(ctx, supplier, userID)
	return err
}
