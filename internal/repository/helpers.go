package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// jsonbValue marshals a Go value for a JSONB column, mapping empty values to
// SQL NULL so that absent data stays absent in the row.
func jsonbValue(v any) (any, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case []string:
		if len(value) == 0 {
			return nil, nil
		}
	case map[string]any:
		if len(value) == 0 {
			return nil, nil
		}
	case map[string]string:
		if len(value) == 0 {
			return nil, nil
		}
	case *domain.Contact:
		if value == nil || value.Empty() {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb value: %w", err)
	}
	return data, nil
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// scanJSONB unmarshals a JSONB column into dest, leaving dest untouched for
// NULL columns.
func scanJSONB(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode jsonb value: %w", err)
	}
	return nil
}
