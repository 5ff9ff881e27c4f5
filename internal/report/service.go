// Package report renders asset inventories as downloadable CSV or Excel
// workbooks.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Format selects the on-disk encoding of a generated report.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat resolves a user-supplied format string, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown report format %q", raw)
	}
}

// reportPageSize caps how many assets a single report pulls from storage.
const reportPageSize = 10000

// Table is a fully materialized report ready for rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AssetLister supplies report rows for every asset type.
type AssetLister interface {
	ListPhysical(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error)
	ListInformation(ctx context.Context, limit, offset int) ([]domain.InformationAsset, error)
	ListSoftware(ctx context.Context, limit, offset int) ([]domain.SoftwareAsset, error)
	ListApplications(ctx context.Context, limit, offset int) ([]domain.BusinessApplication, error)
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
}

// Service generates asset inventory reports.
type Service struct {
	assets AssetLister
}

// NewService creates a report service on top of the asset inventory.
func NewService(assets AssetLister) *Service {
	return &Service{assets: assets}
}

// Report is a rendered document plus the metadata a download response needs.
type Report struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Generate builds the inventory report for one asset type in the requested
// format.
func (s *Service) Generate(ctx context.Context, assetType domain.AssetType, format Format) (Report, error) {
	table, err := s.buildTable(ctx, assetType)
	if err != nil {
		return Report{}, err
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case FormatXLSX:
		data, err := renderXLSX(table, string(assetType))
		if err != nil {
			return Report{}, err
		}
		return Report{
			FileName:    fmt.Sprintf("%s-assets-%s.xlsx", assetType, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		data, err := renderCSV(table)
		if err != nil {
			return Report{}, err
		}
		return Report{
			FileName:    fmt.Sprintf("%s-assets-%s.csv", assetType, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func (s *Service) buildTable(ctx context.Context, assetType domain.AssetType) (Table, error) {
	switch assetType {
	case domain.AssetTypePhysical:
		assets, err := s.assets.ListPhysical(ctx, reportPageSize, 0)
		if err != nil {
			return Table{}, err
		}
		return physicalTable(assets), nil
	case domain.AssetTypeInformation:
		assets, err := s.assets.ListInformation(ctx, reportPageSize, 0)
		if err != nil {
			return Table{}, err
		}
		return informationTable(assets), nil
	case domain.AssetTypeSoftware:
		assets, err := s.assets.ListSoftware(ctx, reportPageSize, 0)
		if err != nil {
			return Table{}, err
		}
		return softwareTable(assets), nil
	case domain.AssetTypeApplication:
		assets, err := s.assets.ListApplications(ctx, reportPageSize, 0)
		if err != nil {
			return Table{}, err
		}
		return applicationTable(assets), nil
	case domain.AssetTypeSupplier:
		assets, err := s.assets.ListSuppliers(ctx, reportPageSize, 0)
		if err != nil {
			return Table{}, err
		}
		return supplierTable(assets), nil
	default:
		return Table{}, fmt.Errorf("unknown asset type %q", assetType)
	}
}

func renderCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(table Table, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName != "" && sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, fmt.Errorf("failed to name report sheet: %w", err)
		}
	} else {
		sheetName = defaultSheet
	}

	headerRow := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, addr, &cells); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func physicalTable(assets []domain.PhysicalAsset) Table {
	t := Table{Headers: []string{
		"Unique Identifier", "Asset Description", "Manufacturer", "Model",
		"Business Purpose", "Physical Location", "Criticality Level",
		"Serial Number", "Asset Tag", "MAC Addresses", "IP Addresses",
		"Network Approval Status", "Connectivity Status", "Purchase Date",
		"Warranty Expiry", "Compliance Requirements", "Created At",
	}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{
			a.UniqueIdentifier, a.AssetDescription, a.Manufacturer, a.Model,
			a.BusinessPurpose, a.PhysicalLocation, a.CriticalityLevel,
			a.SerialNumber, a.AssetTag, joinList(a.MACAddresses), joinList(a.IPAddresses),
			a.NetworkApprovalStatus, a.ConnectivityStatus, formatDate(a.PurchaseDate),
			formatDate(a.WarrantyExpiry), joinList(a.ComplianceRequirements), formatTimestamp(a.CreatedAt),
		})
	}
	return t
}

func informationTable(assets []domain.InformationAsset) Table {
	t := Table{Headers: []string{
		"Unique Identifier", "Name", "Information Type", "Description",
		"Classification Level", "Classification Date", "Reclassification Date",
		"Asset Location", "Storage Medium", "Compliance Requirements",
		"Retention Period", "Created At",
	}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{
			a.UniqueIdentifier, a.Name, a.InformationType, a.Description,
			a.ClassificationLevel, formatDate(a.ClassificationDate), formatDate(a.ReclassificationDate),
			a.AssetLocation, a.StorageMedium, joinList(a.ComplianceRequirements),
			a.RetentionPeriod, formatTimestamp(a.CreatedAt),
		})
	}
	return t
}

func softwareTable(assets []domain.SoftwareAsset) Table {
	t := Table{Headers: []string{
		"Unique Identifier", "Software Name", "Software Type", "Version",
		"Patch Level", "Business Purpose", "Vendor Name", "Vendor Contact",
		"License Type", "License Count", "License Expiry", "Installation Count",
		"Known Vulnerabilities", "Last Security Test", "Support End Date", "Created At",
	}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{
			a.UniqueIdentifier, a.SoftwareName, a.SoftwareType, a.VersionNumber,
			a.PatchLevel, a.BusinessPurpose, a.VendorName, formatContact(a.VendorContact),
			a.LicenseType, formatInt(a.LicenseCount), formatDate(a.LicenseExpiry), formatInt(a.InstallationCount),
			joinList(a.KnownVulnerabilities), formatDate(a.LastSecurityTestDate), formatDate(a.SupportEndDate), formatTimestamp(a.CreatedAt),
		})
	}
	return t
}

func applicationTable(assets []domain.BusinessApplication) Table {
	t := Table{Headers: []string{
		"Unique Identifier", "Application Name", "Application Type", "Version",
		"Business Purpose", "Data Processed", "Data Classification",
		"Vendor Name", "Vendor Contact", "License Type", "License Count",
		"License Expiry", "Hosting Type", "Hosting Location", "Access URL",
		"Authentication Method", "Criticality Level", "Compliance Requirements", "Created At",
	}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{
			a.UniqueIdentifier, a.ApplicationName, a.ApplicationType, a.VersionNumber,
			a.BusinessPurpose, joinList(a.DataProcessed), a.DataClassification,
			a.VendorName, formatContact(a.VendorContact), a.LicenseType, formatInt(a.LicenseCount),
			formatDate(a.LicenseExpiry), a.HostingType, a.HostingLocation, a.AccessURL,
			a.AuthenticationMethod, a.CriticalityLevel, joinList(a.ComplianceRequirements), formatTimestamp(a.CreatedAt),
		})
	}
	return t
}

func supplierTable(assets []domain.Supplier) Table {
	t := Table{Headers: []string{
		"Unique Identifier", "Supplier Name", "Supplier Type", "Business Purpose",
		"Goods/Services", "Criticality Level", "Contract Reference",
		"Contract Start", "Contract End", "Contract Value", "Currency",
		"Auto Renewal", "Primary Contact", "Country", "Risk Level",
		"Compliance Certifications", "Insurance Verified", "Performance Rating", "Created At",
	}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{
			a.UniqueIdentifier, a.SupplierName, a.SupplierType, a.BusinessPurpose,
			joinList(a.GoodsServicesType), a.CriticalityLevel, a.ContractReference,
			formatDate(a.ContractStartDate), formatDate(a.ContractEndDate), formatFloat(a.ContractValue), a.Currency,
			formatBool(a.AutoRenewal), formatContact(a.PrimaryContact), a.Country, a.RiskLevel,
			joinList(a.ComplianceCertifications), formatBool(a.InsuranceVerified), formatFloat(a.PerformanceRating), formatTimestamp(a.CreatedAt),
		})
	}
	return t
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatContact(c *domain.Contact) string {
	if c == nil || c.Empty() {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}
