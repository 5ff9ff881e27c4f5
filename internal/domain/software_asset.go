package domain

import (
	"time"

	"github.com/google/uuid"
)

// SoftwareAsset is one row of the software inventory.
type SoftwareAsset struct {
	ID                   uuid.UUID      `json:"id"`
	UniqueIdentifier     string         `json:"uniqueIdentifier"`
	SoftwareName         string         `json:"softwareName"`
	SoftwareType         string         `json:"softwareType,omitempty"`
	VersionNumber        string         `json:"versionNumber,omitempty"`
	PatchLevel           string         `json:"patchLevel,omitempty"`
	BusinessPurpose      string         `json:"businessPurpose,omitempty"`
	OwnerID              *uuid.UUID     `json:"ownerId,omitempty"`
	BusinessUnitID       *uuid.UUID     `json:"businessUnitId,omitempty"`
	VendorName           string         `json:"vendorName,omitempty"`
	VendorContact        *Contact       `json:"vendorContact,omitempty"`
	LicenseType          string         `json:"licenseType,omitempty"`
	LicenseCount         *int           `json:"licenseCount,omitempty"`
	LicenseKey           string         `json:"licenseKey,omitempty"`
	LicenseExpiry        *time.Time     `json:"licenseExpiry,omitempty"`
	InstallationCount    *int           `json:"installationCount,omitempty"`
	SecurityTestResults  map[string]any `json:"securityTestResults,omitempty"`
	KnownVulnerabilities []string       `json:"knownVulnerabilities,omitempty"`
	LastSecurityTestDate *time.Time     `json:"lastSecurityTestDate,omitempty"`
	SupportEndDate       *time.Time     `json:"supportEndDate,omitempty"`
	CreatedBy            string         `json:"createdBy,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
