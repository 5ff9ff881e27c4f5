package repository

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type physicalAssetRepository struct {
	pool *pgxpool.Pool
}

// NewPhysicalAssetRepository wires a physical asset repository backed by pgxpool.
func NewPhysicalAssetRepository(pool *pgxpool.Pool) PhysicalAssetRepository {
	return &physicalAssetRepository{pool: pool}
}

func (r *physicalAssetRepository) Create(ctx context.Context, asset domain.PhysicalAsset) (domain.PhysicalAsset, error) {
	macs, err := jsonbValue(asset.MACAddresses)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}
	ips, err := jsonbValue(asset.IPAddresses)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}
	software, err := jsonbValue(asset.InstalledSoftware)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}
	ports, err := jsonbValue(asset.ActivePortsServices)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}
	compliance, err := jsonbValue(asset.ComplianceRequirements)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}
	security, err := jsonbValue(asset.SecurityTestResults)
	if err != nil {
		return domain.PhysicalAsset{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO physical_assets (
			id, unique_identifier, asset_description, asset_type_id, manufacturer, model,
			business_purpose, owner_id, business_unit_id, physical_location, criticality_level,
			mac_addresses, ip_addresses, installed_software, active_ports_services,
			network_approval_status, connectivity_status, serial_number, asset_tag,
			purchase_date, warranty_expiry, compliance_requirements, security_test_results, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING created_at, updated_at`,
		asset.ID,
		asset.UniqueIdentifier,
		asset.AssetDescription,
		asset.AssetTypeID,
		nullable(asset.Manufacturer),
		nullable(asset.Model),
		nullable(asset.BusinessPurpose),
		asset.OwnerID,
		asset.BusinessUnitID,
		nullable(asset.PhysicalLocation),
		nullable(asset.CriticalityLevel),
		macs,
		ips,
		software,
		ports,
		nullable(asset.NetworkApprovalStatus),
		nullable(asset.ConnectivityStatus),
		nullable(asset.SerialNumber),
		nullable(asset.AssetTag),
		asset.PurchaseDate,
		asset.WarrantyExpiry,
		compliance,
		security,
		asset.CreatedBy,
	)

	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.PhysicalAsset{}, fmt.Errorf("identifier %s: %w", asset.UniqueIdentifier, ErrDuplicateIdentifier)
		}
		return domain.PhysicalAsset{}, fmt.Errorf("failed to create physical asset: %w", err)
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}

func (r *physicalAssetRepository) ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM physical_assets WHERE unique_identifier = $1)`,
		uniqueIdentifier,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check physical asset identifier: %w", err)
	}
	return exists, nil
}

func (r *physicalAssetRepository) List(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, unique_identifier, asset_description, asset_type_id, manufacturer, model,
			business_purpose, owner_id, business_unit_id, physical_location, criticality_level,
			mac_addresses, ip_addresses, installed_software, active_ports_services,
			network_approval_status, connectivity_status, serial_number, asset_tag,
			purchase_date, warranty_expiry, compliance_requirements, security_test_results,
			created_by, created_at, updated_at
		 FROM physical_assets
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list physical assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.PhysicalAsset{}
	for rows.Next() {
		asset, err := scanPhysicalAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate physical assets: %w", err)
	}
	return assets, nil
}

func scanPhysicalAsset(row pgx.Row) (domain.PhysicalAsset, error) {
	var (
		asset                           domain.PhysicalAsset
		manufacturer, model, purpose    pgtype.Text
		location, criticality, approval pgtype.Text
		connectivity, serial, tag       pgtype.Text
		macs, ips, software, ports      []byte
		compliance, security            []byte
		purchaseDate, warrantyExpiry    pgtype.Timestamptz
		createdBy                       pgtype.Text
		createdAt, updatedAt            pgtype.Timestamptz
	)
	err := row.Scan(
		&asset.ID,
		&asset.UniqueIdentifier,
		&asset.AssetDescription,
		&asset.AssetTypeID,
		&manufacturer,
		&model,
		&purpose,
		&asset.OwnerID,
		&asset.BusinessUnitID,
		&location,
		&criticality,
		&macs,
		&ips,
		&software,
		&ports,
		&approval,
		&connectivity,
		&serial,
		&tag,
		&purchaseDate,
		&warrantyExpiry,
		&compliance,
		&security,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.PhysicalAsset{}, fmt.Errorf("failed to scan physical asset: %w", err)
	}

	asset.Manufacturer = manufacturer.String
	asset.Model = model.String
	asset.BusinessPurpose = purpose.String
	asset.PhysicalLocation = location.String
	asset.CriticalityLevel = criticality.String
	asset.NetworkApprovalStatus = approval.String
	asset.ConnectivityStatus = connectivity.String
	asset.SerialNumber = serial.String
	asset.AssetTag = tag.String
	asset.CreatedBy = createdBy.String
	if err := scanJSONB(macs, &asset.MACAddresses); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if err := scanJSONB(ips, &asset.IPAddresses); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if err := scanJSONB(software, &asset.InstalledSoftware); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if err := scanJSONB(ports, &asset.ActivePortsServices); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if err := scanJSONB(compliance, &asset.ComplianceRequirements); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if err := scanJSONB(security, &asset.SecurityTestResults); err != nil {
		return domain.PhysicalAsset{}, err
	}
	if purchaseDate.Valid {
		t := purchaseDate.Time
		asset.PurchaseDate = &t
	}
	if warrantyExpiry.Valid {
		t := warrantyExpiry.Time
		asset.WarrantyExpiry = &t
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}
