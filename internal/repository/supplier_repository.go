package repository

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository wires a supplier repository backed by pgxpool.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

func (r *supplierRepository) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	goods, err := jsonbValue(supplier.GoodsServicesType)
	if err != nil {
		return domain.Supplier{}, err
	}
	primary, err := jsonbValue(supplier.PrimaryContact)
	if err != nil {
		return domain.Supplier{}, err
	}
	secondary, err := jsonbValue(supplier.SecondaryContact)
	if err != nil {
		return domain.Supplier{}, err
	}
	certs, err := jsonbValue(supplier.ComplianceCertifications)
	if err != nil {
		return domain.Supplier{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO suppliers (
			id, unique_identifier, supplier_name, supplier_type, business_purpose, owner_id,
			business_unit_id, goods_services_type, criticality_level, contract_reference,
			contract_start_date, contract_end_date, contract_value, currency, auto_renewal,
			primary_contact, secondary_contact, tax_id, registration_number, address, country,
			website, risk_assessment_date, risk_level, compliance_certifications,
			insurance_verified, background_check_date, performance_rating, last_review_date,
			created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		RETURNING created_at, updated_at`,
		supplier.ID,
		supplier.UniqueIdentifier,
		supplier.SupplierName,
		nullable(supplier.SupplierType),
		nullable(supplier.BusinessPurpose),
		supplier.OwnerID,
		supplier.BusinessUnitID,
		goods,
		nullable(supplier.CriticalityLevel),
		nullable(supplier.ContractReference),
		supplier.ContractStartDate,
		supplier.ContractEndDate,
		supplier.ContractValue,
		nullable(supplier.Currency),
		supplier.AutoRenewal,
		primary,
		secondary,
		nullable(supplier.TaxID),
		nullable(supplier.RegistrationNumber),
		nullable(supplier.Address),
		nullable(supplier.Country),
		nullable(supplier.Website),
		supplier.RiskAssessmentDate,
		nullable(supplier.RiskLevel),
		certs,
		supplier.InsuranceVerified,
		supplier.BackgroundCheckDate,
		supplier.PerformanceRating,
		supplier.LastReviewDate,
		supplier.CreatedBy,
	)

	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Supplier{}, fmt.Errorf("identifier %s: %w", supplier.UniqueIdentifier, ErrDuplicateIdentifier)
		}
		return domain.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}
	if createdAt.Valid {
		supplier.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		supplier.UpdatedAt = updatedAt.Time
	}
	return supplier, nil
}

func (r *supplierRepository) ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM suppliers WHERE unique_identifier = $1)`,
		uniqueIdentifier,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check supplier identifier: %w", err)
	}
	return exists, nil
}

func (r *supplierRepository) List(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, unique_identifier, supplier_name, supplier_type, business_purpose, owner_id,
			business_unit_id, goods_services_type, criticality_level, contract_reference,
			contract_start_date, contract_end_date, contract_value, currency, auto_renewal,
			primary_contact, secondary_contact, tax_id, registration_number, address, country,
			website, risk_assessment_date, risk_level, compliance_certifications,
			insurance_verified, background_check_date, performance_rating, last_review_date,
			created_by, created_at, updated_at
		 FROM suppliers
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
	}
	return suppliers, nil
}

func scanSupplier(row pgx.Row) (domain.Supplier, error) {
	var (
		supplier domain.Supplier

		supplierType, purpose, criticality   pgtype.Text
		contractRef, currency, taxID         pgtype.Text
		regNumber, address, country, website pgtype.Text
		riskLevel                            pgtype.Text
		goods, primary, secondary, certs     []byte
		contractStart, contractEnd           pgtype.Timestamptz
		contractValue, performanceRating     pgtype.Float8
		riskDate, backgroundDate, reviewDate pgtype.Timestamptz
		createdBy                            pgtype.Text
		createdAt, updatedAt                 pgtype.Timestamptz
	)
	err := row.Scan(
		&supplier.ID,
		&supplier.UniqueIdentifier,
		&supplier.SupplierName,
		&supplierType,
		&purpose,
		&supplier.OwnerID,
		&supplier.BusinessUnitID,
		&goods,
		&criticality,
		&contractRef,
		&contractStart,
		&contractEnd,
		&contractValue,
		&currency,
		&supplier.AutoRenewal,
		&primary,
		&secondary,
		&taxID,
		&regNumber,
		&address,
		&country,
		&website,
		&riskDate,
		&riskLevel,
		&certs,
		&supplier.InsuranceVerified,
		&backgroundDate,
		&performanceRating,
		&reviewDate,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("failed to scan supplier: %w", err)
	}

	supplier.SupplierType = supplierType.String
	supplier.BusinessPurpose = purpose.String
	supplier.CriticalityLevel = criticality.String
	supplier.ContractReference = contractRef.String
	supplier.Currency = currency.String
	supplier.TaxID = taxID.String
	supplier.RegistrationNumber = regNumber.String
	supplier.Address = address.String
	supplier.Country = country.String
	supplier.Website = website.String
	supplier.RiskLevel = riskLevel.String
	supplier.CreatedBy = createdBy.String
	if err := scanJSONB(goods, &supplier.GoodsServicesType); err != nil {
		return domain.Supplier{}, err
	}
	if err := scanJSONB(primary, &supplier.PrimaryContact); err != nil {
		return domain.Supplier{}, err
	}
	if err := scanJSONB(secondary, &supplier.SecondaryContact); err != nil {
		return domain.Supplier{}, err
	}
	if err := scanJSONB(certs, &supplier.ComplianceCertifications); err != nil {
		return domain.Supplier{}, err
	}
	if contractStart.Valid {
		t := contractStart.Time
		supplier.ContractStartDate = &t
	}
	if contractEnd.Valid {
		t := contractEnd.Time
		supplier.ContractEndDate = &t
	}
	if contractValue.Valid {
		v := contractValue.Float64
		supplier.ContractValue = &v
	}
	if performanceRating.Valid {
		v := performanceRating.Float64
		supplier.PerformanceRating = &v
	}
	if riskDate.Valid {
		t := riskDate.Time
		supplier.RiskAssessmentDate = &t
	}
	if backgroundDate.Valid {
		t := backgroundDate.Time
		supplier.BackgroundCheckDate = &t
	}
	if reviewDate.Valid {
		t := reviewDate.Time
		supplier.LastReviewDate = &t
	}
	if createdAt.Valid {
		supplier.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		supplier.UpdatedAt = updatedAt.Time
	}
	return supplier, nil
}
