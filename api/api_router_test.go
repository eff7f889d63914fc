package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/itsatony/gartentrack/internal/config"
	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/repository/sqlite"
	"github.com/itsatony/gartentrack/internal/trackservice"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	dir := t.TempDir()

	devicesDB, err := database.NewSQLiteDB(config.SQLiteConfig{
		Path: filepath.Join(dir, "devices.db"), BusyTimeout: 5, WALMode: true,
	})
	if err != nil {
		t.Fatalf("NewSQLiteDB(devices) error = %v", err)
	}
	t.Cleanup(func() { devicesDB.Close() })
	if err := database.EnsureDeviceSchema(devicesDB); err != nil {
		t.Fatalf("EnsureDeviceSchema() error = %v", err)
	}

	bottlesDB, err := database.NewSQLiteDB(config.SQLiteConfig{
		Path: filepath.Join(dir, "bottles.db"), BusyTimeout: 5, WALMode: true,
	})
	if err != nil {
		t.Fatalf("NewSQLiteDB(bottles) error = %v", err)
	}
	t.Cleanup(func() { bottlesDB.Close() })
	if err := database.EnsureBottleSchema(bottlesDB); err != nil {
		t.Fatalf("EnsureBottleSchema() error = %v", err)
	}

	svc := trackservice.New(
		sqlite.NewDeviceRepository(devicesDB),
		sqlite.NewDeviceOperationRepository(devicesDB),
		sqlite.NewBottleRepository(bottlesDB),
		sqlite.NewBottleOperationRepository(bottlesDB),
	)
	return NewRouter(svc, "")
}

func doJSON(t *testing.T, router *Router, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		// List endpoints return arrays; callers decode those themselves.
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestDeviceLifecycleHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Create
	rec, body := doJSON(t, router, http.MethodPost, "/devices/", map[string]any{"name": "Controller A"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /devices/ status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if body["id"] != float64(1) || body["name"] != "Controller A" || body["active"] != true {
		t.Errorf("POST /devices/ body = %v", body)
	}
	if ops, ok := body["operations"].([]any); !ok || len(ops) != 0 {
		t.Errorf("POST /devices/ operations = %v, want []", body["operations"])
	}

	// Create operation through the parent-scoped route; payload FK must lose.
	rec, opBody := doJSON(t, router, http.MethodPost, "/devices/1/operations/", map[string]any{
		"date": "2024-05-01", "duration": 30, "device_id": 999,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /devices/1/operations/ status = %d (body %s)", rec.Code, rec.Body.String())
	}
	opID := int64(opBody["id"].(float64))

	// Parent get carries the nested operation
	rec, body = doJSON(t, router, http.MethodGet, "/devices/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /devices/1 status = %d", rec.Code)
	}
	ops, _ := body["operations"].([]any)
	if len(ops) != 1 {
		t.Fatalf("GET /devices/1 operations = %v, want one entry", body["operations"])
	}
	op := ops[0].(map[string]any)
	if op["date"] != "2024-05-01" || op["duration"] != float64(30) {
		t.Errorf("nested operation = %v", op)
	}
	if _, present := op["device_id"]; present {
		t.Error("nested operation exposes device_id; read shape must omit it")
	}

	// Single operation through the literal route
	rec, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/devices/operations/%d", opID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /devices/operations/%d status = %d", opID, rec.Code)
	}

	// Cascade delete
	rec, body = doJSON(t, router, http.MethodDelete, "/devices/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE /devices/1 status = %d", rec.Code)
	}
	if body["message"] != "Device deleted successfully" {
		t.Errorf("DELETE /devices/1 body = %v", body)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/devices/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /devices/1 after delete status = %d, want 404", rec.Code)
	}
	rec, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/devices/operations/%d", opID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET cascaded operation status = %d, want 404", rec.Code)
	}
}

func TestBottleLifecycleHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/bottles/", map[string]any{
		"purchase_date":  "2024-01-01",
		"purchase_price": 45.5,
		"initial_weight": 30.0,
		"filling_weight": 11.0,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /bottles/ status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if body["active"] != true {
		t.Errorf("POST /bottles/ active = %v, want defaulted true", body["active"])
	}
	bottleID := int64(body["id"].(float64))

	rec, body = doJSON(t, router, http.MethodPut, fmt.Sprintf("/bottles/%d", bottleID), map[string]any{"active": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /bottles/%d status = %d", bottleID, rec.Code)
	}
	if body["active"] != false {
		t.Errorf("PUT active = %v, want false", body["active"])
	}
	if body["purchase_price"] != 45.5 || body["initial_weight"] != 30.0 || body["filling_weight"] != 11.0 ||
		body["purchase_date"] != "2024-01-01" {
		t.Errorf("PUT touched immutable fields: %v", body)
	}

	// Weight reading through the parent-scoped route
	rec, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/bottles/%d/operations/", bottleID), map[string]any{
		"date": "2024-02-01", "weight": 28.4, "bottle_id": 999,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST bottle operation status = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/bottles/%d", bottleID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /bottles/%d status = %d", bottleID, rec.Code)
	}
	if ops, _ := body["operations"].([]any); len(ops) != 1 {
		t.Errorf("GET bottle operations = %v, want one entry", body["operations"])
	}

	rec, body = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/bottles/%d", bottleID), nil)
	if rec.Code != http.StatusOK || body["message"] != "Bottle deleted successfully" {
		t.Errorf("DELETE /bottles/%d = %d %v", bottleID, rec.Code, body)
	}
}

func TestRoutePrecedenceHTTP(t *testing.T) {
	router := newTestRouter(t)

	// The literal operations route must win over /{id}: a miss is a 404 on the
	// operation, never an invalid-device-id rejection.
	rec, body := doJSON(t, router, http.MethodGet, "/devices/operations/77", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /devices/operations/77 status = %d, want 404", rec.Code)
	}
	if body["type"] != "not_found" {
		t.Errorf("error type = %v, want not_found", body["type"])
	}

	rec, body = doJSON(t, router, http.MethodGet, "/bottles/operations/77", nil)
	if rec.Code != http.StatusNotFound || body["type"] != "not_found" {
		t.Errorf("GET /bottles/operations/77 = %d %v, want 404 not_found", rec.Code, body)
	}
}

func TestValidationAndNotFoundHTTP(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create without required field", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/devices/", map[string]any{})
		if rec.Code != http.StatusBadRequest || body["type"] != "validation" {
			t.Errorf("POST /devices/ {} = %d %v, want 400 validation", rec.Code, body)
		}
	})

	t.Run("operation create on missing parent", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/devices/4242/operations/", map[string]any{
			"date": "2024-05-01", "duration": 10,
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("POST on missing parent status = %d, want 404", rec.Code)
		}
	})

	t.Run("operation list on missing parent", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/devices/4242/operations/", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET operations of missing parent status = %d, want 404", rec.Code)
		}
	})

	t.Run("update missing bottle", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPut, "/bottles/4242", map[string]any{"active": false})
		if rec.Code != http.StatusNotFound {
			t.Errorf("PUT missing bottle status = %d, want 404", rec.Code)
		}
	})

	t.Run("delete missing device", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodDelete, "/devices/4242", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("DELETE missing device status = %d, want 404", rec.Code)
		}
	})
}

func TestListPaginationHTTP(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 4; i++ {
		rec, _ := doJSON(t, router, http.MethodPost, "/devices/", map[string]any{"name": fmt.Sprintf("d%d", i)})
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/devices/?skip=1&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /devices/?skip=1&limit=2 status = %d", rec.Code)
	}

	var page []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decoding page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	if page[0]["id"] != float64(2) {
		t.Errorf("page starts at id %v, want 2", page[0]["id"])
	}
}

func TestHealthHTTP(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want 200", rec.Code)
	}
}
