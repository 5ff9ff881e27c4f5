package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type importLogRepository struct {
	pool *pgxpool.Pool
}

// NewImportLogRepository wires an import log repository backed by pgxpool.
func NewImportLogRepository(pool *pgxpool.Pool) ImportLogRepository {
	return &importLogRepository{pool: pool}
}

func (r *importLogRepository) Create(ctx context.Context, log domain.ImportLog) (domain.ImportLog, error) {
	mapping, err := jsonbValue(log.FieldMapping)
	if err != nil {
		return domain.ImportLog{}, err
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO import_logs (file_name, file_type, asset_type, status, field_mapping, imported_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		log.FileName,
		string(log.FileType),
		string(log.AssetType),
		string(log.Status),
		mapping,
		log.ImportedBy,
	)

	var createdAt pgtype.Timestamptz
	if err := row.Scan(&log.ID, &createdAt); err != nil {
		return domain.ImportLog{}, fmt.Errorf("failed to create import log: %w", err)
	}
	if createdAt.Valid {
		log.CreatedAt = createdAt.Time
	}
	return log, nil
}

func (r *importLogRepository) Finalize(ctx context.Context, log domain.ImportLog) error {
	var report any
	if log.ErrorReport != "" {
		report = []byte(log.ErrorReport)
	}

	tag, err := r.pool.Exec(
		ctx,
		`UPDATE import_logs
		 SET status = $2,
		     total_records = $3,
		     successful_imports = $4,
		     failed_imports = $5,
		     error_report = $6,
		     completed_at = COALESCE($7, NOW())
		 WHERE id = $1`,
		log.ID,
		string(log.Status),
		log.TotalRecords,
		log.SuccessfulImports,
		log.FailedImports,
		report,
		log.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize import log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("import log %s: %w", log.ID, ErrNotFound)
	}
	return nil
}

const importLogColumns = `id, file_name, file_type, asset_type, status,
	total_records, successful_imports, failed_imports,
	error_report, field_mapping, imported_by, created_at, completed_at`

func (r *importLogRepository) List(ctx context.Context, assetType *domain.AssetType, limit int) ([]domain.ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + importLogColumns + ` FROM import_logs`
	args := []any{}
	if assetType != nil {
		query += ` WHERE asset_type = $1`
		args = append(args, string(*assetType))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list import logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ImportLog{}
	for rows.Next() {
		log, err := scanImportLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import logs: %w", err)
	}
	return logs, nil
}

func (r *importLogRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.ImportLog, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+importLogColumns+` FROM import_logs WHERE id = $1`, id)
	log, err := scanImportLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ImportLog{}, fmt.Errorf("import log %s: %w", id, ErrNotFound)
		}
		return domain.ImportLog{}, err
	}
	return log, nil
}

func scanImportLog(row pgx.Row) (domain.ImportLog, error) {
	var (
		log         domain.ImportLog
		fileType    string
		assetType   string
		status      string
		errorReport []byte
		mapping     []byte
		createdAt   pgtype.Timestamptz
		completedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&log.ID,
		&log.FileName,
		&fileType,
		&assetType,
		&status,
		&log.TotalRecords,
		&log.SuccessfulImports,
		&log.FailedImports,
		&errorReport,
		&mapping,
		&log.ImportedBy,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ImportLog{}, err
		}
		return domain.ImportLog{}, fmt.Errorf("failed to scan import log: %w", err)
	}

	log.FileType = domain.ImportFileType(fileType)
	log.AssetType = domain.AssetType(assetType)
	log.Status = domain.ImportStatus(status)
	log.ErrorReport = string(errorReport)
	if err := scanJSONB(mapping, &log.FieldMapping); err != nil {
		return domain.ImportLog{}, err
	}
	if createdAt.Valid {
		log.CreatedAt = createdAt.Time
	}
	if completedAt.Valid {
		t := completedAt.Time
		log.CompletedAt = &t
	}
	return log, nil
}
