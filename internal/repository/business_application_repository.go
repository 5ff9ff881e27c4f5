package repository

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type businessApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessApplicationRepository wires a business application repository backed by pgxpool.
func NewBusinessApplicationRepository(pool *pgxpool.Pool) BusinessApplicationRepository {
	return &businessApplicationRepository{pool: pool}
}

func (r *businessApplicationRepository) Create(ctx context.Context, app domain.BusinessApplication) (domain.BusinessApplication, error) {
	dataProcessed, err := jsonbValue(app.DataProcessed)
	if err != nil {
		return domain.BusinessApplication{}, err
	}
	contact, err := jsonbValue(app.VendorContact)
	if err != nil {
		return domain.BusinessApplication{}, err
	}
	security, err := jsonbValue(app.SecurityTestResults)
	if err != nil {
		return domain.BusinessApplication{}, err
	}
	compliance, err := jsonbValue(app.ComplianceRequirements)
	if err != nil {
		return domain.BusinessApplication{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO business_applications (
			id, unique_identifier, application_name, application_type, version_number, patch_level,
			business_purpose, owner_id, business_unit_id, data_processed, data_classification,
			vendor_name, vendor_contact, license_type, license_count, license_expiry,
			hosting_type, hosting_location, access_url, authentication_method,
			security_test_results, last_security_test_date, compliance_requirements,
			criticality_level, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		RETURNING created_at, updated_at`,
		app.ID,
		app.UniqueIdentifier,
		app.ApplicationName,
		nullable(app.ApplicationType),
		nullable(app.VersionNumber),
		nullable(app.PatchLevel),
		nullable(app.BusinessPurpose),
		app.OwnerID,
		app.BusinessUnitID,
		dataProcessed,
		nullable(app.DataClassification),
		nullable(app.VendorName),
		contact,
		nullable(app.LicenseType),
		app.LicenseCount,
		app.LicenseExpiry,
		nullable(app.HostingType),
		nullable(app.HostingLocation),
		nullable(app.AccessURL),
		nullable(app.AuthenticationMethod),
		security,
		app.LastSecurityTestDate,
		compliance,
		nullable(app.CriticalityLevel),
		app.CreatedBy,
	)

	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.BusinessApplication{}, fmt.Errorf("identifier %s: %w", app.UniqueIdentifier, ErrDuplicateIdentifier)
		}
		return domain.BusinessApplication{}, fmt.Errorf("failed to create business application: %w", err)
	}
	if createdAt.Valid {
		app.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		app.UpdatedAt = updatedAt.Time
	}
	return app, nil
}

func (r *businessApplicationRepository) ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM business_applications WHERE unique_identifier = $1)`,
		uniqueIdentifier,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check business application identifier: %w", err)
	}
	return exists, nil
}

func (r *businessApplicationRepository) List(ctx context.Context, limit, offset int) ([]domain.BusinessApplication, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, unique_identifier, application_name, application_type, version_number, patch_level,
			business_purpose, owner_id, business_unit_id, data_processed, data_classification,
			vendor_name, vendor_contact, license_type, license_count, license_expiry,
			hosting_type, hosting_location, access_url, authentication_method,
			security_test_results, last_security_test_date, compliance_requirements,
			criticality_level, created_by, created_at, updated_at
		 FROM business_applications
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list business applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.BusinessApplication{}
	for rows.Next() {
		app, err := scanBusinessApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business applications: %w", err)
	}
	return apps, nil
}

func scanBusinessApplication(row pgx.Row) (domain.BusinessApplication, error) {
	var (
		app domain.BusinessApplication

		appType, version, patch, purpose     pgtype.Text
		classification, vendorName           pgtype.Text
		licenseType, hostingType, hostingLoc pgtype.Text
		accessURL, authMethod, criticality   pgtype.Text
		dataProcessed, contact               []byte
		security, compliance                 []byte
		licenseCount                         pgtype.Int4
		licenseExpiry, lastTest              pgtype.Timestamptz
		createdBy                            pgtype.Text
		createdAt, updatedAt                 pgtype.Timestamptz
	)
	err := row.Scan(
		&app.ID,
		&app.UniqueIdentifier,
		&app.ApplicationName,
		&appType,
		&version,
		&patch,
		&purpose,
		&app.OwnerID,
		&app.BusinessUnitID,
		&dataProcessed,
		&classification,
		&vendorName,
		&contact,
		&licenseType,
		&licenseCount,
		&licenseExpiry,
		&hostingType,
		&hostingLoc,
		&accessURL,
		&authMethod,
		&security,
		&lastTest,
		&compliance,
		&criticality,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.BusinessApplication{}, fmt.Errorf("failed to scan business application: %w", err)
	}

	app.ApplicationType = appType.String
	app.VersionNumber = version.String
	app.PatchLevel = patch.String
	app.BusinessPurpose = purpose.String
	app.DataClassification = classification.String
	app.VendorName = vendorName.String
	app.LicenseType = licenseType.String
	app.HostingType = hostingType.String
	app.HostingLocation = hostingLoc.String
	app.AccessURL = accessURL.String
	app.AuthenticationMethod = authMethod.String
	app.CriticalityLevel = criticality.String
	app.CreatedBy = createdBy.String
	if err := scanJSONB(dataProcessed, &app.DataProcessed); err != nil {
		return domain.BusinessApplication{}, err
	}
	if err := scanJSONB(contact, &app.VendorContact); err != nil {
		return domain.BusinessApplication{}, err
	}
	if err := scanJSONB(security, &app.SecurityTestResults); err != nil {
		return domain.BusinessApplication{}, err
	}
	if err := scanJSONB(compliance, &app.ComplianceRequirements); err != nil {
		return domain.BusinessApplication{}, err
	}
	if licenseCount.Valid {
		v := int(licenseCount.Int32)
		app.LicenseCount = &v
	}
	if licenseExpiry.Valid {
		t := licenseExpiry.Time
		app.LicenseExpiry = &t
	}
	if lastTest.Valid {
		t := lastTest.Time
		app.LastSecurityTestDate = &t
	}
	if createdAt.Valid {
		app.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		app.UpdatedAt = updatedAt.Time
	}
	return app, nil
}
