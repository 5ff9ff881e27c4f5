package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grclabs/asset-api/internal/asset"
	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/importer"
	"github.com/grclabs/asset-api/internal/report"
	"github.com/grclabs/asset-api/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type memImportLogRepo struct {
	logs map[uuid.UUID]domain.ImportLog
}

func newMemImportLogRepo() *memImportLogRepo {
	return &memImportLogRepo{logs: map[uuid.UUID]domain.ImportLog{}}
}

func (m *memImportLogRepo) Create(ctx context.Context, log domain.ImportLog) (domain.ImportLog, error) {
	log.ID = uuid.New()
	m.logs[log.ID] = log
	return log, nil
}

func (m *memImportLogRepo) Finalize(ctx context.Context, log domain.ImportLog) error {
	if _, ok := m.logs[log.ID]; !ok {
		return repository.ErrNotFound
	}
	m.logs[log.ID] = log
	return nil
}

func (m *memImportLogRepo) List(ctx context.Context, assetType *domain.AssetType, limit int) ([]domain.ImportLog, error) {
	var out []domain.ImportLog
	for _, log := range m.logs {
		if assetType == nil || log.AssetType == *assetType {
			out = append(out, log)
		}
	}
	return out, nil
}

func (m *memImportLogRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ImportLog, error) {
	log, ok := m.logs[id]
	if !ok {
		return domain.ImportLog{}, repository.ErrNotFound
	}
	return log, nil
}

type memPhysicalRepo struct {
	assets []domain.PhysicalAsset
}

func (m *memPhysicalRepo) Create(ctx context.Context, a domain.PhysicalAsset) (domain.PhysicalAsset, error) {
	m.assets = append(m.assets, a)
	return a, nil
}

func (m *memPhysicalRepo) ExistsByIdentifier(ctx context.Context, id string) (bool, error) {
	for _, a := range m.assets {
		if a.UniqueIdentifier == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPhysicalRepo) List(ctx context.Context, limit, offset int) ([]domain.PhysicalAsset, error) {
	return m.assets, nil
}

func newTestServer(t *testing.T) (*Server, *memImportLogRepo, *memPhysicalRepo) {
	t.Helper()

	logRepo := newMemImportLogRepo()
	physRepo := &memPhysicalRepo{}

	inventory := &asset.Inventory{
		Physical: asset.NewPhysicalService(physRepo),
	}
	handlers := importer.Handlers{
		domain.AssetTypePhysical: importer.NewPhysicalAssetHandler(inventory.Physical),
	}

	imports := importer.NewService(handlers, logRepo)
	reports := report.NewService(inventory)

	return NewServer(imports, inventory, reports, "http://localhost:5173"), logRepo, physRepo
}

func multipartUpload(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &body, w.FormDataContentType()
}

func TestImportEndpoint(t *testing.T) {
	server, logRepo, physRepo := newTestServer(t)
	router := server.Router()

	csvData := []byte("Unique Identifier,Asset Description\nPA-001,Core router\nPA-002,Switch\n")
	body, contentType := multipartUpload(t, "assets.csv", csvData, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assets/physical/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "auditor")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result importer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.TotalRecords != 2 || result.SuccessfulImports != 2 || result.FailedImports != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(physRepo.assets) != 2 {
		t.Fatalf("expected 2 assets created, got %d", len(physRepo.assets))
	}
	if physRepo.assets[0].CreatedBy != "auditor" {
		t.Fatalf("expected createdBy from header, got %q", physRepo.assets[0].CreatedBy)
	}

	log, ok := logRepo.logs[result.ImportLogID]
	if !ok {
		t.Fatal("import log not persisted")
	}
	if log.Status != domain.ImportStatusCompleted {
		t.Fatalf("expected completed log, got %s", log.Status)
	}
}

func TestImportEndpointPartial(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	// Second row is missing the required description.
	csvData := []byte("Unique Identifier,Asset Description\nPA-001,Router\nPA-002,\n")
	body, contentType := multipartUpload(t, "assets.csv", csvData, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assets/physical/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result importer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.SuccessfulImports != 1 || result.FailedImports != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 3 {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
	if result.Errors[0].Errors[0] != "assetDescription is required" {
		t.Fatalf("unexpected message: %v", result.Errors[0].Errors)
	}
}

func TestImportEndpointDuplicateIdentifier(t *testing.T) {
	server, logRepo, physRepo := newTestServer(t)
	router := server.Router()

	// Row 2 is valid, row 3 misses the required description, row 4 reuses
	// the identifier created by row 2.
	csvData := []byte("Unique Identifier,Asset Description\nPA-001,Router\nPA-002,\nPA-001,Copy of router\n")
	body, contentType := multipartUpload(t, "assets.csv", csvData, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assets/physical/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result importer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.TotalRecords != 3 || result.SuccessfulImports != 1 || result.FailedImports != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Errors[0].Row != 3 || result.Errors[1].Row != 4 {
		t.Fatalf("unexpected error rows: %+v", result.Errors)
	}
	if !strings.Contains(result.Errors[1].Errors[0], "PA-001") {
		t.Fatalf("duplicate error should name the identifier: %v", result.Errors[1].Errors)
	}
	if len(physRepo.assets) != 1 {
		t.Fatalf("expected 1 asset persisted, got %d", len(physRepo.assets))
	}

	log := logRepo.logs[result.ImportLogID]
	if log.Status != domain.ImportStatusPartial {
		t.Fatalf("expected partial log, got %s", log.Status)
	}
}

func TestImportEndpointUnknownAssetType(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	body, contentType := multipartUpload(t, "assets.csv", []byte("a\nb\n"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assets/vehicle/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportEndpointEmptyFile(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	body, contentType := multipartUpload(t, "assets.csv", []byte(""), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assets/physical/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPreviewEndpointDetectsExcel(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]any{"Unique Identifier", "Asset Description"})
	f.SetSheetRow("Sheet1", "A2", &[]any{"PA-001", "Router"})
	var wb bytes.Buffer
	if err := f.Write(&wb); err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}
	f.Close()

	// No explicit fileType: the .xlsx extension must select the Excel parser.
	body, contentType := multipartUpload(t, "assets.xlsx", wb.Bytes(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/assets/physical/import/preview", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var preview importer.Preview
	if err := json.Unmarshal(rec.Body.Bytes(), &preview); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if preview.TotalRows != 1 || len(preview.Rows) != 1 {
		t.Fatalf("unexpected preview: %+v", preview)
	}
	if preview.Rows[0].RowNumber != 2 {
		t.Fatalf("expected row number 2, got %d", preview.Rows[0].RowNumber)
	}
}

func TestImportLogNotFound(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/imports/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestImportHistoryEndpoint(t *testing.T) {
	server, logRepo, _ := newTestServer(t)
	router := server.Router()

	logRepo.Create(context.Background(), domain.ImportLog{AssetType: domain.AssetTypePhysical})
	logRepo.Create(context.Background(), domain.ImportLog{AssetType: domain.AssetTypeSupplier})

	req := httptest.NewRequest(http.MethodGet, "/api/imports?assetType=physical", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var logs []domain.ImportLog
	if err := json.Unmarshal(rec.Body.Bytes(), &logs); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(logs) != 1 || logs[0].AssetType != domain.AssetTypePhysical {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}

func TestReportEndpoint(t *testing.T) {
	server, _, physRepo := newTestServer(t)
	router := server.Router()

	physRepo.assets = append(physRepo.assets, domain.PhysicalAsset{
		UniqueIdentifier: "PA-001",
		AssetDescription: "Router",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/physical?format=csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type %q", got)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "physical-assets-") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "PA-001") {
		t.Fatal("report body missing asset row")
	}
}

func TestListAssetsEndpoint(t *testing.T) {
	server, _, physRepo := newTestServer(t)
	router := server.Router()

	physRepo.assets = append(physRepo.assets, domain.PhysicalAsset{UniqueIdentifier: "PA-001"})

	req := httptest.NewRequest(http.MethodGet, "/api/assets/physical", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var assets []domain.PhysicalAsset
	if err := json.Unmarshal(rec.Body.Bytes(), &assets); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(assets) != 1 || assets[0].UniqueIdentifier != "PA-001" {
		t.Fatalf("unexpected assets: %+v", assets)
	}
}
