// Package asset holds the create/list services for each asset inventory.
// Creation enforces unique-identifier conflicts and generates identifiers
// for rows that arrive without one.
package asset

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grclabs/asset-api/internal/repository"
)

// ErrDuplicateIdentifier is surfaced when a unique identifier already exists.
var ErrDuplicateIdentifier = repository.ErrDuplicateIdentifier

// newIdentifier builds a generated unique identifier such as
// PA-M3K2V1A9-4F21. The prefix names the asset inventory.
func newIdentifier(prefix string) string {
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	buf := make([]byte, 2)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s-%s-%s", prefix, stamp, strings.ToUpper(hex.EncodeToString(buf)))
}

func duplicateErr(identifier string) error {
	return fmt.Errorf("asset with identifier %s already exists: %w", identifier, ErrDuplicateIdentifier)
}
