package repository

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type softwareAssetRepository struct {
	pool *pgxpool.Pool
}

// NewSoftwareAssetRepository wires a software asset repository backed by pgxpool.
func NewSoftwareAssetRepository(pool *pgxpool.Pool) SoftwareAssetRepository {
	return &softwareAssetRepository{pool: pool}
}

func (r *softwareAssetRepository) Create(ctx context.Context, asset domain.SoftwareAsset) (domain.SoftwareAsset, error) {
	contact, err := jsonbValue(asset.VendorContact)
	if err != nil {
		return domain.SoftwareAsset{}, err
	}
	security, err := jsonbValue(asset.SecurityTestResults)
	if err != nil {
		return domain.SoftwareAsset{}, err
	}
	vulns, err := jsonbValue(asset.KnownVulnerabilities)
	if err != nil {
		return domain.SoftwareAsset{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO software_assets (
			id, unique_identifier, software_name, software_type, version_number, patch_level,
			business_purpose, owner_id, business_unit_id, vendor_name, vendor_contact,
			license_type, license_count, license_key, license_expiry, installation_count,
			security_test_results, known_vulnerabilities, last_security_test_date,
			support_end_date, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21
		)
		RETURNING created_at, updated_at`,
		asset.ID,
		asset.UniqueIdentifier,
		asset.SoftwareName,
		nullable(asset.SoftwareType),
		nullable(asset.VersionNumber),
		nullable(asset.PatchLevel),
		nullable(asset.BusinessPurpose),
		asset.OwnerID,
		asset.BusinessUnitID,
		nullable(asset.VendorName),
		contact,
		nullable(asset.LicenseType),
		asset.LicenseCount,
		nullable(asset.LicenseKey),
		asset.LicenseExpiry,
		asset.InstallationCount,
		security,
		vulns,
		asset.LastSecurityTestDate,
		asset.SupportEndDate,
		asset.CreatedBy,
	)

	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.SoftwareAsset{}, fmt.Errorf("identifier %s: %w", asset.UniqueIdentifier, ErrDuplicateIdentifier)
		}
		return domain.SoftwareAsset{}, fmt.Errorf("failed to create software asset: %w", err)
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}

func (r *softwareAssetRepository) ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM software_assets WHERE unique_identifier = $1)`,
		uniqueIdentifier,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check software asset identifier: %w", err)
	}
	return exists, nil
}

func (r *softwareAssetRepository) List(ctx context.Context, limit, offset int) ([]domain.SoftwareAsset, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, unique_identifier, software_name, software_type, version_number, patch_level,
			business_purpose, owner_id, business_unit_id, vendor_name, vendor_contact,
			license_type, license_count, license_key, license_expiry, installation_count,
			security_test_results, known_vulnerabilities, last_security_test_date,
			support_end_date, created_by, created_at, updated_at
		 FROM software_assets
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list software assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.SoftwareAsset{}
	for rows.Next() {
		asset, err := scanSoftwareAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate software assets: %w", err)
	}
	return assets, nil
}

func scanSoftwareAsset(row pgx.Row) (domain.SoftwareAsset, error) {
	var (
		asset domain.SoftwareAsset

		softwareType, version, patch, purpose pgtype.Text
		vendorName, licenseType, licenseKey   pgtype.Text
		contact, security, vulns              []byte
		licenseCount, installationCount       pgtype.Int4
		licenseExpiry, lastTest, supportEnd   pgtype.Timestamptz
		createdBy                             pgtype.Text
		createdAt, updatedAt                  pgtype.Timestamptz
	)
	err := row.Scan(
		&asset.ID,
		&asset.UniqueIdentifier,
		&asset.SoftwareName,
		&softwareType,
		&version,
		&patch,
		&purpose,
		&asset.OwnerID,
		&asset.BusinessUnitID,
		&vendorName,
		&contact,
		&licenseType,
		&licenseCount,
		&licenseKey,
		&licenseExpiry,
		&installationCount,
		&security,
		&vulns,
		&lastTest,
		&supportEnd,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.SoftwareAsset{}, fmt.Errorf("failed to scan software asset: %w", err)
	}

	asset.SoftwareType = softwareType.String
	asset.VersionNumber = version.String
	asset.PatchLevel = patch.String
	asset.BusinessPurpose = purpose.String
	asset.VendorName = vendorName.String
	asset.LicenseType = licenseType.String
	asset.LicenseKey = licenseKey.String
	asset.CreatedBy = createdBy.String
	if err := scanJSONB(contact, &asset.VendorContact); err != nil {
		return domain.SoftwareAsset{}, err
	}
	if err := scanJSONB(security, &asset.SecurityTestResults); err != nil {
		return domain.SoftwareAsset{}, err
	}
	if err := scanJSONB(vulns, &asset.KnownVulnerabilities); err != nil {
		return domain.SoftwareAsset{}, err
	}
	if licenseCount.Valid {
		v := int(licenseCount.Int32)
		asset.LicenseCount = &v
	}
	if installationCount.Valid {
		v := int(installationCount.Int32)
		asset.InstallationCount = &v
	}
	if licenseExpiry.Valid {
		t := licenseExpiry.Time
		asset.LicenseExpiry = &t
	}
	if lastTest.Valid {
		t := lastTest.Time
		asset.LastSecurityTestDate = &t
	}
	if supportEnd.Valid {
		t := supportEnd.Time
		asset.SupportEndDate = &t
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}
