package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"heating_advisor/internal/service"
)

func adminRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header = authHeader("valid")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestImportCatalogHandler(t *testing.T) {
	cases := []struct {
		name      string
		catalog   *mockCatalog
		wantCode  int
		wantCount int
	}{
		{
			name:      "imported",
			catalog:   &mockCatalog{importN: 2},
			wantCode:  http.StatusOK,
			wantCount: 2,
		},
		{
			name:     "invalid json",
			catalog:  &mockCatalog{importErr: fmt.Errorf("%w: boom", service.ErrInvalidCatalog)},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty catalog",
			catalog:  &mockCatalog{importErr: service.ErrEmptyCatalog},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate ids",
			catalog:  &mockCatalog{importErr: fmt.Errorf("%w: a", service.ErrDuplicateDeviceID)},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			catalog:  &mockCatalog{importErr: errors.New("disk full")},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "audit event lost",
			catalog:   &mockCatalog{importN: 2, importErr: errors.New("log down")},
			wantCode:  http.StatusOK,
			wantCount: 2,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Catalog: tc.catalog})

			body := `[{"id":"a","fuel":"electric","power_kw":8}]`
			w := httptest.NewRecorder()
			r.ServeHTTP(w, adminRequest(http.MethodPut, "/api/v1/admin/catalog", body))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if string(tc.catalog.lastImport) != body {
				t.Fatalf("raw body not forwarded: %q", tc.catalog.lastImport)
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var out map[string]int
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out["imported"] != tc.wantCount {
				t.Fatalf("imported=%d, want %d", out["imported"], tc.wantCount)
			}
		})
	}
}

func TestImportCatalogHandler_RequiresAuth(t *testing.T) {
	catalog := &mockCatalog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseErr: errors.New("expired")}, Catalog: catalog})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodPut, "/api/v1/admin/catalog", `[]`))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if catalog.importCalls != 0 {
		t.Fatalf("Import must not run without a valid token")
	}
}

func TestReloadCatalogHandler(t *testing.T) {
	cases := []struct {
		name        string
		catalog     *mockCatalog
		wantCode    int
		wantChanged bool
	}{
		{name: "changed", catalog: &mockCatalog{reloadOK: true}, wantCode: http.StatusOK, wantChanged: true},
		{name: "unchanged", catalog: &mockCatalog{}, wantCode: http.StatusOK},
		{name: "storage failure", catalog: &mockCatalog{reloadErr: errors.New("db down")}, wantCode: http.StatusInternalServerError},
		{name: "audit event lost", catalog: &mockCatalog{reloadOK: true, reloadErr: errors.New("log down")}, wantCode: http.StatusOK, wantChanged: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Catalog: tc.catalog})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, adminRequest(http.MethodPost, "/api/v1/admin/catalog/reload", ""))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tc.wantCode)
			}
			if tc.catalog.reloadCalls != 1 {
				t.Fatalf("expected one Reload call, got %d", tc.catalog.reloadCalls)
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var out struct {
				Changed bool `json:"changed"`
				Count   int  `json:"count"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Changed != tc.wantChanged {
				t.Fatalf("changed=%v, want %v", out.Changed, tc.wantChanged)
			}
		})
	}
}
