package importer

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/grclabs/asset-api/internal/domain"
)

type capturingCreator struct {
	physical    []domain.PhysicalAsset
	lastUserID  string
	physicalErr error
}

func (c *capturingCreator) Create(ctx context.Context, asset domain.PhysicalAsset, userID string) (domain.PhysicalAsset, error) {
	if c.physicalErr != nil {
		return domain.PhysicalAsset{}, c.physicalErr
	}
	c.physical = append(c.physical, asset)
	c.lastUserID = userID
	return asset, nil
}

type capturingSupplierCreator struct {
	suppliers  []domain.Supplier
	lastUserID string
}

func (c *capturingSupplierCreator) Create(ctx context.Context, supplier domain.Supplier, userID string) (domain.Supplier, error) {
	c.suppliers = append(c.suppliers, supplier)
	c.lastUserID = userID
	return supplier, nil
}

func TestPhysicalHandlerMapFields(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	row := Row{
		"Unique Identifier": "PA-001",
		"Asset Description": "Core router",
		"Manufacturer":      "Cisco",
		"MAC Addresses":     "aa:bb:cc, dd:ee:ff",
		"Purchase Date":     "2024-03-01",
		"Owner ID":          "0e3f1f2a-5b52-4f7a-9c91-3a642cf28f01",
	}

	record, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asset := record.(domain.PhysicalAsset)

	if asset.UniqueIdentifier != "PA-001" {
		t.Fatalf("alias resolution failed: %q", asset.UniqueIdentifier)
	}
	if asset.AssetDescription != "Core router" || asset.Manufacturer != "Cisco" {
		t.Fatalf("unexpected mapping: %+v", asset)
	}
	if !reflect.DeepEqual(asset.MACAddresses, []string{"aa:bb:cc", "dd:ee:ff"}) {
		t.Fatalf("unexpected MAC addresses: %v", asset.MACAddresses)
	}
	if asset.PurchaseDate == nil || !asset.PurchaseDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected purchase date: %v", asset.PurchaseDate)
	}
	if asset.OwnerID == nil || asset.OwnerID.String() != "0e3f1f2a-5b52-4f7a-9c91-3a642cf28f01" {
		t.Fatalf("unexpected owner id: %v", asset.OwnerID)
	}
}

func TestPhysicalHandlerMappingPrecedence(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	// The explicit mapping must win over both the field name and aliases.
	row := Row{
		"uniqueIdentifier":  "wrong",
		"Unique Identifier": "also wrong",
		"Ref":               "PA-123",
	}
	mapping := FieldMapping{"uniqueIdentifier": "Ref"}

	record, err := h.MapFields(row, mapping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := record.(domain.PhysicalAsset).UniqueIdentifier; got != "PA-123" {
		t.Fatalf("expected mapped column to win, got %q", got)
	}
}

func TestPhysicalHandlerMapFieldsIdempotent(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	row := Row{
		"Unique Identifier": "PA-002",
		"Asset Description": "Switch",
		"IP Addresses":      "10.0.0.1,10.0.0.2",
	}

	first, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping is not idempotent: %+v vs %+v", first, second)
	}
}

func TestPhysicalHandlerMapFieldsCoercionError(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	_, err := h.MapFields(Row{
		"Unique Identifier": "PA-003",
		"Asset Description": "Firewall",
		"Purchase Date":     "not a date",
	}, nil)
	if err == nil {
		t.Fatal("expected coercion error")
	}
	if !strings.HasPrefix(err.Error(), "purchaseDate:") {
		t.Fatalf("error should name the field, got %q", err.Error())
	}
}

func TestPhysicalHandlerValidate(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	errs := h.Validate(domain.PhysicalAsset{})
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", errs)
	}
	if errs[0] != "uniqueIdentifier is required" || errs[1] != "assetDescription is required" {
		t.Fatalf("unexpected messages: %v", errs)
	}

	errs = h.Validate(domain.PhysicalAsset{UniqueIdentifier: "PA-1", AssetDescription: "d"})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestPhysicalHandlerCreatePassesUserID(t *testing.T) {
	creator := &capturingCreator{}
	h := NewPhysicalAssetHandler(creator)

	asset := domain.PhysicalAsset{UniqueIdentifier: "PA-1", AssetDescription: "d"}
	if err := h.Create(context.Background(), asset, "auditor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(creator.physical) != 1 || creator.lastUserID != "auditor" {
		t.Fatalf("create not forwarded: %+v user=%q", creator.physical, creator.lastUserID)
	}

	if err := h.Create(context.Background(), "not an asset", "auditor"); err == nil {
		t.Fatal("expected error for wrong record type")
	}
}

func TestInformationHandlerValidate(t *testing.T) {
	h := NewInformationAssetHandler(nil)

	errs := h.Validate(domain.InformationAsset{})
	want := []string{
		"name is required",
		"informationType is required",
		"classificationLevel is required",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestSoftwareHandlerValidate(t *testing.T) {
	h := NewSoftwareAssetHandler(nil)

	errs := h.Validate(domain.SoftwareAsset{})
	if len(errs) != 1 || errs[0] != "softwareName is required" {
		t.Fatalf("unexpected messages: %v", errs)
	}
}

func TestBusinessApplicationHandlerValidate(t *testing.T) {
	h := NewBusinessApplicationHandler(nil)

	errs := h.Validate(domain.BusinessApplication{})
	if len(errs) != 1 || errs[0] != "applicationName is required" {
		t.Fatalf("unexpected messages: %v", errs)
	}
}

func TestSupplierHandlerMapFields(t *testing.T) {
	h := NewSupplierHandler(&capturingSupplierCreator{})

	row := Row{
		"Unique Identifier":   "SU-001",
		"Supplier Name":       "Acme Ltd",
		"Contract Start Date": "2024-01-01",
		"Contract Value":      "12500.50",
		"Auto Renewal":        "yes",
		"Primary Contact":     "Jane Doe|CTO|jane@acme.test|555-0100",
		"Insurance Verified":  "no",
		"Performance Rating":  "4.5",
		"Goods/Services Type": "hardware, logistics",
	}

	record, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	supplier := record.(domain.Supplier)

	if supplier.SupplierName != "Acme Ltd" {
		t.Fatalf("unexpected name: %q", supplier.SupplierName)
	}
	if supplier.ContractValue == nil || *supplier.ContractValue != 12500.50 {
		t.Fatalf("unexpected contract value: %v", supplier.ContractValue)
	}
	if !supplier.AutoRenewal {
		t.Fatal("expected autoRenewal true")
	}
	if supplier.InsuranceVerified {
		t.Fatal("expected insuranceVerified false")
	}
	if supplier.PrimaryContact == nil {
		t.Fatal("expected a primary contact")
	}
	want := domain.Contact{Name: "Jane Doe", Title: "CTO", Email: "jane@acme.test", Phone: "555-0100"}
	if *supplier.PrimaryContact != want {
		t.Fatalf("unexpected contact: %+v", supplier.PrimaryContact)
	}
	if supplier.PerformanceRating == nil || *supplier.PerformanceRating != 4.5 {
		t.Fatalf("unexpected rating: %v", supplier.PerformanceRating)
	}
	if !reflect.DeepEqual(supplier.GoodsServicesType, []string{"hardware", "logistics"}) {
		t.Fatalf("unexpected goods/services: %v", supplier.GoodsServicesType)
	}
}

func TestSupplierHandlerContactJSON(t *testing.T) {
	h := NewSupplierHandler(&capturingSupplierCreator{})

	row := Row{
		"Unique Identifier": "SU-002",
		"Supplier Name":     "JSON Corp",
		"Primary Contact":   `{"name":"Sam","email":"sam@json.test"}`,
	}

	record, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contact := record.(domain.Supplier).PrimaryContact
	if contact == nil || contact.Name != "Sam" || contact.Email != "sam@json.test" {
		t.Fatalf("unexpected contact: %+v", contact)
	}
}

func TestSupplierHandlerValidate(t *testing.T) {
	h := NewSupplierHandler(nil)

	errs := h.Validate(domain.Supplier{})
	want := []string{"uniqueIdentifier is required", "supplierName is required"}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestHandlersCoverEveryAssetType(t *testing.T) {
	handlers := Handlers{
		domain.AssetTypePhysical:    NewPhysicalAssetHandler(nil),
		domain.AssetTypeInformation: NewInformationAssetHandler(nil),
		domain.AssetTypeSoftware:    NewSoftwareAssetHandler(nil),
		domain.AssetTypeApplication: NewBusinessApplicationHandler(nil),
		domain.AssetTypeSupplier:    NewSupplierHandler(nil),
	}

	for _, assetType := range domain.AssetTypes() {
		handler, ok := handlers[assetType]
		if !ok {
			t.Fatalf("no handler registered for %s", assetType)
		}
		if handler.AssetType() != assetType {
			t.Fatalf("handler for %s reports %s", assetType, handler.AssetType())
		}
	}
}

func TestNilCellsFromExcelAreIgnored(t *testing.T) {
	h := NewPhysicalAssetHandler(&capturingCreator{})

	row := Row{
		"Unique Identifier": "PA-004",
		"Asset Description": "Rack",
		"Purchase Date":     nil,
		"Owner ID":          nil,
	}

	record, err := h.MapFields(row, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asset := record.(domain.PhysicalAsset)
	if asset.PurchaseDate != nil || asset.OwnerID != nil {
		t.Fatalf("nil cells should map to unset fields: %+v", asset)
	}
}
