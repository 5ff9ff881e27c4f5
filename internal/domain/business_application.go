package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessApplication is one row of the business application catalogue.
type BusinessApplication struct {
	ID                     uuid.UUID      `json:"id"`
	UniqueIdentifier       string         `json:"uniqueIdentifier"`
	ApplicationName        string         `json:"applicationName"`
	ApplicationType        string         `json:"applicationType,omitempty"`
	VersionNumber          string         `json:"versionNumber,omitempty"`
	PatchLevel             string         `json:"patchLevel,omitempty"`
	BusinessPurpose        string         `json:"businessPurpose,omitempty"`
	OwnerID                *uuid.UUID     `json:"ownerId,omitempty"`
	BusinessUnitID         *uuid.UUID     `json:"businessUnitId,omitempty"`
	DataProcessed          []string       `json:"dataProcessed,omitempty"`
	DataClassification     string         `json:"dataClassification,omitempty"`
	VendorName             string         `json:"vendorName,omitempty"`
	VendorContact          *Contact       `json:"vendorContact,omitempty"`
	LicenseType            string         `json:"licenseType,omitempty"`
	LicenseCount           *int           `json:"licenseCount,omitempty"`
	LicenseExpiry          *time.Time     `json:"licenseExpiry,omitempty"`
	HostingType            string         `json:"hostingType,omitempty"`
	HostingLocation        string         `json:"hostingLocation,omitempty"`
	AccessURL              string         `json:"accessUrl,omitempty"`
	AuthenticationMethod   string         `json:"authenticationMethod,omitempty"`
	SecurityTestResults    map[string]any `json:"securityTestResults,omitempty"`
	LastSecurityTestDate   *time.Time     `json:"lastSecurityTestDate,omitempty"`
	ComplianceRequirements []string       `json:"complianceRequirements,omitempty"`
	CriticalityLevel       string         `json:"criticalityLevel,omitempty"`
	CreatedBy              string         `json:"createdBy,omitempty"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}
