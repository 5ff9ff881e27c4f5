package importer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/grclabs/asset-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	data := []byte("Name, Type\nRouter,network\n laptop , endpoint\n")

	headers, rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 2 || headers[0] != "Name" || headers[1] != "Type" {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1]["Name"] != "laptop" {
		t.Fatalf("expected trimmed cell, got %q", rows[1]["Name"])
	}
}

func TestParseCSVStripsByteOrderMark(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name\nRouter\n")...)

	headers, rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headers[0] != "Name" {
		t.Fatalf("expected BOM stripped from header, got %q", headers[0])
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestParseCSVEmptyFile(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("  \n \n")} {
		if _, _, err := ParseCSV(data); !errors.Is(err, ErrEmptyFile) {
			t.Fatalf("expected ErrEmptyFile, got %v", err)
		}
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	if _, _, err := ParseCSV([]byte("Name,Type\n")); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestParseCSVMalformed(t *testing.T) {
	if _, _, err := ParseCSV([]byte("Name,Type\n\"unterminated,network\n")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseCSVRaggedRows(t *testing.T) {
	data := []byte("Name,Type,Owner\nRouter,network\nSwitch,network,ops,extra\n")

	_, rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rows[0]["Owner"]; ok {
		t.Fatal("short row should not carry the missing column")
	}
	if rows[1]["Owner"] != "ops" {
		t.Fatalf("expected Owner=ops, got %q", rows[1]["Owner"])
	}
	if len(rows[1]) != 3 {
		t.Fatalf("extra cells should be dropped, got %d keys", len(rows[1]))
	}
}

func TestParseCSVSkipsBlankLines(t *testing.T) {
	data := []byte("\nName\n\nRouter\n , \nSwitch\n")

	_, rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestPreviewCSV(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("Name\n")
	for i := 0; i < 12; i++ {
		buf.WriteString("asset\n")
	}

	preview, err := PreviewCSV(buf.Bytes(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.TotalRows != 12 {
		t.Fatalf("expected totalRows 12, got %d", preview.TotalRows)
	}
	if len(preview.Rows) != DefaultPreviewLimit {
		t.Fatalf("expected %d preview rows, got %d", DefaultPreviewLimit, len(preview.Rows))
	}
	if preview.Rows[0].RowNumber != 2 {
		t.Fatalf("first data row should be row 2, got %d", preview.Rows[0].RowNumber)
	}
	if last := preview.Rows[len(preview.Rows)-1].RowNumber; last != DefaultPreviewLimit+1 {
		t.Fatalf("expected last row number %d, got %d", DefaultPreviewLimit+1, last)
	}

	preview, err = PreviewCSV(buf.Bytes(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Rows) != 3 || preview.TotalRows != 12 {
		t.Fatalf("expected 3 of 12 rows, got %d of %d", len(preview.Rows), preview.TotalRows)
	}
}

func TestDetectFileType(t *testing.T) {
	cases := map[string]domain.ImportFileType{
		"assets.csv":      domain.ImportFileTypeCSV,
		"assets.XLSX":     domain.ImportFileTypeExcel,
		"assets.xls":      domain.ImportFileTypeExcel,
		"assets.txt":      domain.ImportFileTypeCSV,
		"no-extension":    domain.ImportFileTypeCSV,
		"export.xlsx.csv": domain.ImportFileTypeCSV,
	}
	for name, want := range cases {
		if got := DetectFileType(name); got != want {
			t.Errorf("DetectFileType(%q) = %q, want %q", name, got, want)
		}
	}
}

func buildWorkbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("failed to add sheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("failed to write sheet row: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseExcel(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Assets": {
			{"Name", "Type", "Owner"},
			{"Router", "network", ""},
			{"Switch", "network", "ops"},
		},
	})

	headers, rows, err := ParseExcel(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 3 {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Owner"] != nil {
		t.Fatalf("empty cell should be nil, got %#v", rows[0]["Owner"])
	}
	if _, ok := rows[0]["Owner"]; !ok {
		t.Fatal("empty cell should still be present in the row")
	}
	if rows[1]["Owner"] != "ops" {
		t.Fatalf("expected Owner=ops, got %v", rows[1]["Owner"])
	}
}

func TestParseExcelSheetSelection(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Ignore": {{"Wrong"}},
		"Assets": {
			{"Name"},
			{"Router"},
		},
	})

	headers, rows, err := ParseExcel(data, "Assets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headers[0] != "Name" || len(rows) != 1 {
		t.Fatalf("wrong sheet parsed: headers=%v rows=%d", headers, len(rows))
	}

	if _, _, err := ParseExcel(data, "Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestParseExcelEmptySheet(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{"Assets": {}})

	headers, rows, err := ParseExcel(data, "")
	if err != nil {
		t.Fatalf("empty sheet should not error, got %v", err)
	}
	if len(headers) != 0 || len(rows) != 0 {
		t.Fatalf("expected empty result, got headers=%v rows=%d", headers, len(rows))
	}
}

func TestParseExcelMalformed(t *testing.T) {
	if _, _, err := ParseExcel([]byte("not a workbook"), ""); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestPreviewExcel(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		"Assets": {
			{"Name"},
			{"Router"},
			{"Switch"},
			{"Firewall"},
		},
	})

	preview, err := PreviewExcel(data, "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.TotalRows != 3 {
		t.Fatalf("expected totalRows 3, got %d", preview.TotalRows)
	}
	if len(preview.Rows) != 2 {
		t.Fatalf("expected 2 preview rows, got %d", len(preview.Rows))
	}
	if preview.Rows[1].RowNumber != 3 {
		t.Fatalf("expected row number 3, got %d", preview.Rows[1].RowNumber)
	}
}

func TestPreviewExcelEmptySheet(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{"Assets": {}})

	preview, err := PreviewExcel(data, "", 0)
	if err != nil {
		t.Fatalf("empty sheet preview should not error, got %v", err)
	}
	if preview.TotalRows != 0 || len(preview.Rows) != 0 {
		t.Fatalf("expected empty preview, got %+v", preview)
	}
}
