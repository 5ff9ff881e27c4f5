package domain

import (
	"time"

	"github.com/google/uuid"
)

// InformationAsset is one row of the information asset register.
type InformationAsset struct {
	ID                     uuid.UUID  `json:"id"`
	UniqueIdentifier       string     `json:"uniqueIdentifier"`
	Name                   string     `json:"name"`
	InformationType        string     `json:"informationType"`
	Description            string     `json:"description,omitempty"`
	ClassificationLevel    string     `json:"classificationLevel"`
	ClassificationDate     *time.Time `json:"classificationDate,omitempty"`
	ReclassificationDate   *time.Time `json:"reclassificationDate,omitempty"`
	InformationOwnerID     *uuid.UUID `json:"informationOwnerId,omitempty"`
	AssetCustodianID       *uuid.UUID `json:"assetCustodianId,omitempty"`
	BusinessUnitID         *uuid.UUID `json:"businessUnitId,omitempty"`
	AssetLocation          string     `json:"assetLocation,omitempty"`
	StorageMedium          string     `json:"storageMedium,omitempty"`
	ComplianceRequirements []string   `json:"complianceRequirements,omitempty"`
	RetentionPeriod        string     `json:"retentionPeriod,omitempty"`
	CreatedBy              string     `json:"createdBy,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}
