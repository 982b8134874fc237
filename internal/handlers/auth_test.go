package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"heating_advisor/internal/repository"
	"heating_advisor/internal/service"
)

func TestAuthHandlers_SignUpAndSignIn(t *testing.T) {
	auth := &mockAuth{signUpID: 42, genTokenToken: "tok123", parseID: 1}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// sign-up success
	body := bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 42 {
		t.Fatalf("expected id=42, got %v", m["id"])
	}

	// sign-in success
	body = bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/sign-in", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}

	// sign-in invalid body → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewBufferString(`{"username":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_Failures(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		auth     *mockAuth
		wantCode int
	}{
		{
			name:     "sign-up duplicate username",
			path:     "/auth/sign-up",
			auth:     &mockAuth{signUpErr: fmt.Errorf("insert admin: %w", repository.ErrUsernameTaken)},
			wantCode: http.StatusConflict,
		},
		{
			name:     "sign-up rejected password",
			path:     "/auth/sign-up",
			auth:     &mockAuth{signUpErr: errors.New("invalid password: password is empty")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "sign-in wrong credentials",
			path:     "/auth/sign-in",
			auth:     &mockAuth{genTokenErr: service.ErrInvalidPassword},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tc.path, bytes.NewBufferString(`{"username":"u","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_SignUpGate(t *testing.T) {
	cases := []struct {
		name          string
		auth          *mockAuth
		header        string
		wantCode      int
		wantBootstrap int
		wantSignUp    int
	}{
		{
			name:          "first maintainer without a token",
			auth:          &mockAuth{signUpID: 1},
			wantCode:      http.StatusOK,
			wantBootstrap: 1,
		},
		{
			name:          "anonymous once a maintainer exists",
			auth:          &mockAuth{hasMaintainers: true},
			wantCode:      http.StatusUnauthorized,
			wantBootstrap: 1,
		},
		{
			name:       "maintainer adds another maintainer",
			auth:       &mockAuth{hasMaintainers: true, signUpID: 2, parseID: 1},
			header:     "Bearer good",
			wantCode:   http.StatusOK,
			wantSignUp: 1,
		},
		{
			name:     "invalid token",
			auth:     &mockAuth{hasMaintainers: true, parseErr: service.ErrInvalidToken},
			header:   "Bearer forged",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:          "store failure",
			auth:          &mockAuth{signUpErr: fmt.Errorf("%w: db down", service.ErrMaintainerStore)},
			wantCode:      http.StatusInternalServerError,
			wantBootstrap: 1,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", bytes.NewBufferString(`{"username":"u","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.auth.bootstrapCalls != tc.wantBootstrap || tc.auth.signUpCalls != tc.wantSignUp {
				t.Fatalf("bootstrap=%d signUp=%d, want %d/%d",
					tc.auth.bootstrapCalls, tc.auth.signUpCalls, tc.wantBootstrap, tc.wantSignUp)
			}
		})
	}
}

func TestAuthHandlers_AnonymousCannotTakeOverCatalog(t *testing.T) {
	auth := &mockAuth{hasMaintainers: true, genTokenErr: service.ErrUserNotFound}
	s, catalog, _ := newTestServices()
	s.Authorization = auth
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", bytes.NewBufferString(`{"username":"mallory","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sign-up status=%d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/admin/catalog", bytes.NewBufferString(`[]`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("catalog import status=%d, want 401", w.Code)
	}
	if catalog.importCalls != 0 {
		t.Fatalf("catalog must not be imported without a token")
	}
}
