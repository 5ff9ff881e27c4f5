package domain

import "fmt"

// AssetType identifies one of the asset inventories that can be imported.
type AssetType string

const (
	AssetTypePhysical    AssetType = "physical"
	AssetTypeInformation AssetType = "information"
	AssetTypeSoftware    AssetType = "software"
	AssetTypeApplication AssetType = "application"
	AssetTypeSupplier    AssetType = "supplier"
)

// AssetTypes lists every supported asset type in a stable order.
func AssetTypes() []AssetType {
	return []AssetType{
		AssetTypePhysical,
		AssetTypeInformation,
		AssetTypeSoftware,
		AssetTypeApplication,
		AssetTypeSupplier,
	}
}

// ParseAssetType validates a raw asset type string.
func ParseAssetType(raw string) (AssetType, error) {
	switch AssetType(raw) {
	case AssetTypePhysical, AssetTypeInformation, AssetTypeSoftware, AssetTypeApplication, AssetTypeSupplier:
		return AssetType(raw), nil
	default:
		return "", fmt.Errorf("unknown asset type %q", raw)
	}
}

func (t AssetType) String() string {
	return string(t)
}
