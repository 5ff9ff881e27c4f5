package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhysicalAsset is one row of the physical asset inventory.
type PhysicalAsset struct {
	ID                     uuid.UUID      `json:"id"`
	UniqueIdentifier       string         `json:"uniqueIdentifier"`
	AssetDescription       string         `json:"assetDescription"`
	AssetTypeID            *uuid.UUID     `json:"assetTypeId,omitempty"`
	Manufacturer           string         `json:"manufacturer,omitempty"`
	Model                  string         `json:"model,omitempty"`
	BusinessPurpose        string         `json:"businessPurpose,omitempty"`
	OwnerID                *uuid.UUID     `json:"ownerId,omitempty"`
	BusinessUnitID         *uuid.UUID     `json:"businessUnitId,omitempty"`
	PhysicalLocation       string         `json:"physicalLocation,omitempty"`
	CriticalityLevel       string         `json:"criticalityLevel,omitempty"`
	MACAddresses           []string       `json:"macAddresses,omitempty"`
	IPAddresses            []string       `json:"ipAddresses,omitempty"`
	InstalledSoftware      []string       `json:"installedSoftware,omitempty"`
	ActivePortsServices    []string       `json:"activePortsServices,omitempty"`
	NetworkApprovalStatus  string         `json:"networkApprovalStatus,omitempty"`
	ConnectivityStatus     string         `json:"connectivityStatus,omitempty"`
	SerialNumber           string         `json:"serialNumber,omitempty"`
	AssetTag               string         `json:"assetTag,omitempty"`
	PurchaseDate           *time.Time     `json:"purchaseDate,omitempty"`
	WarrantyExpiry         *time.Time     `json:"warrantyExpiry,omitempty"`
	ComplianceRequirements []string       `json:"complianceRequirements,omitempty"`
	SecurityTestResults    map[string]any `json:"securityTestResults,omitempty"`
	CreatedBy              string         `json:"createdBy,omitempty"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}
