package importer

import (
	"context"

	"github.com/grclabs/asset-api/internal/domain"
)

// Handler implements the map/validate/create trio for one asset type. The
// orchestrator treats the record as opaque: MapFields produces it, Validate
// inspects it, Create persists it.
type Handler interface {
	AssetType() domain.AssetType
	// MapFields resolves one raw row into a typed create record using the
	// caller's field mapping. Missing optional columns never fail here;
	// only values that cannot be coerced do.
	MapFields(row Row, mapping FieldMapping) (any, error)
	// Validate returns one human-readable message per violated constraint.
	// An empty slice means the record is acceptable.
	Validate(record any) []string
	// Create persists the validated record on behalf of userID.
	Create(ctx context.Context, record any, userID string) error
}

// Handlers is the dispatch table from asset type to handler, assembled at
// construction time rather than hidden in package state.
type Handlers map[domain.AssetType]Handler

// fieldValue resolves a row cell for a target field: the caller's mapping
// wins, then the field name itself, then the known header aliases. The
// second return reports whether the column was present at all.
func fieldValue(row Row, mapping FieldMapping, field string, aliases ...string) (any, bool) {
	if column, ok := mapping[field]; ok && column != "" {
		if value, present := row[column]; present {
			return value, true
		}
	}
	if value, present := row[field]; present {
		return value, true
	}
	for _, alias := range aliases {
		if value, present := row[alias]; present {
			return value, true
		}
	}
	return nil, false
}

// fieldString resolves a field to a trimmed string ("" when absent).
func fieldString(row Row, mapping FieldMapping, field string, aliases ...string) string {
	value, _ := fieldValue(row, mapping, field, aliases...)
	return asString(value)
}

func requireString(errs []string, value, field string) []string {
	if value == "" {
		return append(errs, field+" is required")
	}
	return errs
}
