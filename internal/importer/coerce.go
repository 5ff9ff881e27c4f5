package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/google/uuid"
)

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

// asString flattens a raw cell (string or nil) to a trimmed string.
func asString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func toInt(field string, v any) (*int, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		n := int(i)
		return &n, nil
	}
	// Spreadsheets often format whole numbers as floats.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && math.Mod(f, 1) == 0 {
		n := int(f)
		return &n, nil
	}
	return nil, fmt.Errorf("%s: unable to coerce %q to integer", field, raw)
}

func toFloat(field string, v any) (*float64, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: unable to coerce %q to number", field, raw)
	}
	return &f, nil
}

func toBool(field string, v any) (bool, error) {
	raw := strings.ToLower(asString(v))
	switch raw {
	case "":
		return false, nil
	case "1", "yes", "y":
		return true, nil
	case "0", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: unable to coerce %q to boolean", field, raw)
	}
	return b, nil
}

func toTime(field string, v any) (*time.Time, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("%s: unrecognized date %q", field, raw)
}

// toStringSlice accepts either a JSON array or a comma-separated list.
func toStringSlice(v any) []string {
	raw := asString(v)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return parsed
		}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func toJSONMap(field string, v any) (map[string]any, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%s: invalid json payload", field)
	}
	return parsed, nil
}

// toContact accepts either a JSON object or the pipe shorthand
// name|title|email|phone (title may be omitted for three-part values).
func toContact(field string, v any) (*domain.Contact, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "{") {
		var contact domain.Contact
		if err := json.Unmarshal([]byte(raw), &contact); err != nil {
			return nil, fmt.Errorf("%s: invalid contact json", field)
		}
		return &contact, nil
	}

	parts := trimAll(strings.Split(raw, "|"))
	contact := domain.Contact{}
	switch len(parts) {
	case 1:
		contact.Name = parts[0]
	case 2:
		contact.Name, contact.Email = parts[0], parts[1]
	case 3:
		contact.Name, contact.Email, contact.Phone = parts[0], parts[1], parts[2]
	default:
		contact.Name, contact.Title, contact.Email, contact.Phone = parts[0], parts[1], parts[2], parts[3]
	}
	if contact.Empty() {
		return nil, nil
	}
	return &contact, nil
}

func toUUID(field string, v any) (*uuid.UUID, error) {
	raw := asString(v)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid uuid %q", field, raw)
	}
	return &id, nil
}
