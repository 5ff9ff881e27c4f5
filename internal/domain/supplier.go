package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is one row of the supplier register.
type Supplier struct {
	ID                       uuid.UUID  `json:"id"`
	UniqueIdentifier         string     `json:"uniqueIdentifier"`
	SupplierName             string     `json:"supplierName"`
	SupplierType             string     `json:"supplierType,omitempty"`
	BusinessPurpose          string     `json:"businessPurpose,omitempty"`
	OwnerID                  *uuid.UUID `json:"ownerId,omitempty"`
	BusinessUnitID           *uuid.UUID `json:"businessUnitId,omitempty"`
	GoodsServicesType        []string   `json:"goodsServicesType,omitempty"`
	CriticalityLevel         string     `json:"criticalityLevel,omitempty"`
	ContractReference        string     `json:"contractReference,omitempty"`
	ContractStartDate        *time.Time `json:"contractStartDate,omitempty"`
	ContractEndDate          *time.Time `json:"contractEndDate,omitempty"`
	ContractValue            *float64   `json:"contractValue,omitempty"`
	Currency                 string     `json:"currency,omitempty"`
	AutoRenewal              bool       `json:"autoRenewal,omitempty"`
	PrimaryContact           *Contact   `json:"primaryContact,omitempty"`
	SecondaryContact         *Contact   `json:"secondaryContact,omitempty"`
	TaxID                    string     `json:"taxId,omitempty"`
	RegistrationNumber       string     `json:"registrationNumber,omitempty"`
	Address                  string     `json:"address,omitempty"`
	Country                  string     `json:"country,omitempty"`
	Website                  string     `json:"website,omitempty"`
	RiskAssessmentDate       *time.Time `json:"riskAssessmentDate,omitempty"`
	RiskLevel                string     `json:"riskLevel,omitempty"`
	ComplianceCertifications []string   `json:"complianceCertifications,omitempty"`
	InsuranceVerified        bool       `json:"insuranceVerified,omitempty"`
	BackgroundCheckDate      *time.Time `json:"backgroundCheckDate,omitempty"`
	PerformanceRating        *float64   `json:"performanceRating,omitempty"`
	LastReviewDate           *time.Time `json:"lastReviewDate,omitempty"`
	CreatedBy                string     `json:"createdBy,omitempty"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}
