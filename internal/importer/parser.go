package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyFile is returned when an uploaded CSV buffer decodes to blank text.
	ErrEmptyFile = errors.New("file is empty")
	// ErrNoData is returned when a CSV contains a header but no data rows.
	ErrNoData = errors.New("no data rows found")
	// ErrMalformed is returned when the file cannot be tokenized or opened.
	ErrMalformed = errors.New("malformed file")
	// ErrNoSheets is returned when a workbook contains zero sheets.
	ErrNoSheets = errors.New("excel file has no sheets")
	// ErrSheetNotFound is returned when a named sheet is absent from the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Row is one parsed data row, keyed by column header. CSV cells are trimmed
// strings; Excel cells are trimmed strings with nil standing in for an
// empty cell, so "column present but empty" stays distinguishable from
// "column absent".
type Row map[string]any

// FieldMapping associates target field names with source column headers.
type FieldMapping map[string]string

// PreviewRow is one sample row returned by the preview endpoints.
type PreviewRow struct {
	RowNumber int `json:"rowNumber"`
	Data      Row `json:"data"`
}

// Preview summarizes an uploaded file before import. TotalRows always
// reflects the whole file even when Rows is capped.
type Preview struct {
	Headers   []string     `json:"headers"`
	Rows      []PreviewRow `json:"rows"`
	TotalRows int          `json:"totalRows"`
}

// DefaultPreviewLimit caps preview rows when the caller supplies no limit.
const DefaultPreviewLimit = 10

// DetectFileType infers the upload format from the file extension. Anything
// that is not a spreadsheet extension is treated as CSV.
func DetectFileType(fileName string) domain.ImportFileType {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xls":
		return domain.ImportFileTypeExcel
	default:
		return domain.ImportFileTypeCSV
	}
}

// ParseCSV decodes the buffer as UTF-8 CSV. The first row is the header;
// data rows are numbered from 2 in file order. Rows with inconsistent
// column counts are tolerated; fully empty lines are skipped. A blank
// buffer fails with ErrEmptyFile, a header-only file with ErrNoData.
func ParseCSV(data []byte) ([]string, []Row, error) {
	content := bytes.TrimPrefix(data, byteOrderMark)
	if strings.TrimSpace(string(content)) == "" {
		return nil, nil, fmt.Errorf("csv %w", ErrEmptyFile)
	}

	reader := csv.NewReader(bufio.NewReader(bytes.NewReader(content)))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var headers []string
	rows := []Row{}
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		if headers == nil {
			headers = trimAll(record)
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("csv: %w", ErrNoData)
	}
	return headers, rows, nil
}

// ParseExcel opens the buffer as a workbook and converts the selected sheet
// (first sheet when sheetName is blank) into rows. Empty cells become nil.
// An empty sheet is not an error: it yields zero rows, unlike the CSV path.
func ParseExcel(data []byte, sheetName string) ([]string, []Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoSheets
	}

	sheet := sheets[0]
	if sheetName != "" {
		found := false
		for _, name := range sheets {
			if name == sheetName {
				sheet = name
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
		}
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return []string{}, []Row{}, nil
	}

	headers := trimAll(records[0])
	rows := []Row{}
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			var value any
			if i < len(record) {
				if cell := strings.TrimSpace(record[i]); cell != "" {
					value = cell
				}
			}
			row[header] = value
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// PreviewCSV parses the buffer and returns at most limit rows along with
// the true total row count.
func PreviewCSV(data []byte, limit int) (Preview, error) {
	headers, rows, err := ParseCSV(data)
	if err != nil {
		return Preview{}, err
	}
	return buildPreview(headers, rows, limit), nil
}

// PreviewExcel parses the selected sheet and returns at most limit rows. A
// sheet with zero data rows yields an empty preview rather than an error.
func PreviewExcel(data []byte, sheetName string, limit int) (Preview, error) {
	headers, rows, err := ParseExcel(data, sheetName)
	if err != nil {
		return Preview{}, err
	}
	if len(rows) == 0 {
		return Preview{Headers: []string{}, Rows: []PreviewRow{}, TotalRows: 0}, nil
	}
	return buildPreview(headers, rows, limit), nil
}

func buildPreview(headers []string, rows []Row, limit int) Preview {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	preview := Preview{
		Headers:   headers,
		Rows:      []PreviewRow{},
		TotalRows: len(rows),
	}
	for i, row := range rows {
		if i >= limit {
			break
		}
		// Row 1 is the header, so the first data row reports as row 2.
		preview.Rows = append(preview.Rows, PreviewRow{RowNumber: i + 2, Data: row})
	}
	return preview
}

func trimAll(record []string) []string {
	trimmed := make([]string, len(record))
	for i, cell := range record {
		trimmed[i] = strings.TrimSpace(cell)
	}
	return trimmed
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
