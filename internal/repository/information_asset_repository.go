package repository

import (
	"context"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type informationAssetRepository struct {
	pool *pgxpool.Pool
}

// NewInformationAssetRepository wires an information asset repository backed by pgxpool.
func NewInformationAssetRepository(pool *pgxpool.Pool) InformationAssetRepository {
	return &informationAssetRepository{pool: pool}
}

func (r *informationAssetRepository) Create(ctx context.Context, asset domain.InformationAsset) (domain.InformationAsset, error) {
	compliance, err := jsonbValue(asset.ComplianceRequirements)
	if err != nil {
		return domain.InformationAsset{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO information_assets (
			id, unique_identifier, name, information_type, description, classification_level,
			classification_date, reclassification_date, information_owner_id, asset_custodian_id,
			business_unit_id, asset_location, storage_medium, compliance_requirements,
			retention_period, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`,
		asset.ID,
		asset.UniqueIdentifier,
		asset.Name,
		asset.InformationType,
		nullable(asset.Description),
		asset.ClassificationLevel,
		asset.ClassificationDate,
		asset.ReclassificationDate,
		asset.InformationOwnerID,
		asset.AssetCustodianID,
		asset.BusinessUnitID,
		nullable(asset.AssetLocation),
		nullable(asset.StorageMedium),
		compliance,
		nullable(asset.RetentionPeriod),
		asset.CreatedBy,
	)

	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.InformationAsset{}, fmt.Errorf("identifier %s: %w", asset.UniqueIdentifier, ErrDuplicateIdentifier)
		}
		return domain.InformationAsset{}, fmt.Errorf("failed to create information asset: %w", err)
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}

func (r *informationAssetRepository) ExistsByIdentifier(ctx context.Context, uniqueIdentifier string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM information_assets WHERE unique_identifier = $1)`,
		uniqueIdentifier,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check information asset identifier: %w", err)
	}
	return exists, nil
}

func (r *informationAssetRepository) List(ctx context.Context, limit, offset int) ([]domain.InformationAsset, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, unique_identifier, name, information_type, description, classification_level,
			classification_date, reclassification_date, information_owner_id, asset_custodian_id,
			business_unit_id, asset_location, storage_medium, compliance_requirements,
			retention_period, created_by, created_at, updated_at
		 FROM information_assets
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list information assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.InformationAsset{}
	for rows.Next() {
		asset, err := scanInformationAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate information assets: %w", err)
	}
	return assets, nil
}

func scanInformationAsset(row pgx.Row) (domain.InformationAsset, error) {
	var (
		asset domain.InformationAsset

		description, location, medium, retention pgtype.Text
		classificationDate, reclassificationDate pgtype.Timestamptz
		compliance                               []byte
		createdBy                                pgtype.Text
		createdAt, updatedAt                     pgtype.Timestamptz
	)
	err := row.Scan(
		&asset.ID,
		&asset.UniqueIdentifier,
		&asset.Name,
		&asset.InformationType,
		&description,
		&asset.ClassificationLevel,
		&classificationDate,
		&reclassificationDate,
		&asset.InformationOwnerID,
		&asset.AssetCustodianID,
		&asset.BusinessUnitID,
		&location,
		&medium,
		&compliance,
		&retention,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.InformationAsset{}, fmt.Errorf("failed to scan information asset: %w", err)
	}

	asset.Description = description.String
	asset.AssetLocation = location.String
	asset.StorageMedium = medium.String
	asset.RetentionPeriod = retention.String
	asset.CreatedBy = createdBy.String
	if err := scanJSONB(compliance, &asset.ComplianceRequirements); err != nil {
		return domain.InformationAsset{}, err
	}
	if classificationDate.Valid {
		t := classificationDate.Time
		asset.ClassificationDate = &t
	}
	if reclassificationDate.Valid {
		t := reclassificationDate.Time
		asset.ReclassificationDate = &t
	}
	if createdAt.Valid {
		asset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		asset.UpdatedAt = updatedAt.Time
	}
	return asset, nil
}
