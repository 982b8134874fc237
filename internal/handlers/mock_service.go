package handlers

import (
	"context"
	"net/http"
	"time"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/models"
	"heating_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	// hasMaintainers closes anonymous sign-up.
	hasMaintainers bool
	bootstrapCalls int
	signUpCalls    int

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) Bootstrap(username, password string) (int, error) {
	m.bootstrapCalls++
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	if m.hasMaintainers {
		return 0, service.ErrSignUpClosed
	}
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.signUpCalls++
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockCatalog serves a fixed engine and records admin calls.
type mockCatalog struct {
	eng *engine.Engine

	importN    int
	importErr  error
	reloadOK   bool
	reloadErr  error
	lastImport []byte

	importCalls int
	reloadCalls int
}

func (m *mockCatalog) Import(ctx context.Context, raw []byte) (int, error) {
	m.importCalls++
	m.lastImport = raw
	return m.importN, m.importErr
}
func (m *mockCatalog) ImportFile(ctx context.Context, path string) (int, error) {
	return 0, nil
}
func (m *mockCatalog) Reload(ctx context.Context) (bool, error) {
	m.reloadCalls++
	return m.reloadOK, m.reloadErr
}
func (m *mockCatalog) Devices() []models.Device { return m.Engine().Catalog() }
func (m *mockCatalog) Engine() *engine.Engine {
	if m.eng == nil {
		m.eng = engine.New(nil, engine.DefaultConfig())
	}
	return m.eng
}

// mockAdvisor runs requests through a real engine and remembers them.
type mockAdvisor struct {
	eng *engine.Engine

	lastReq engine.Request
	calls   int
}

func (m *mockAdvisor) Recommend(req engine.Request) engine.Result {
	m.lastReq = req
	m.calls++
	return m.eng.Recommend(req)
}
func (m *mockAdvisor) Estimate(area, insulation string) int {
	return m.eng.Estimate(area, insulation)
}

type mockEventLog struct {
	resp     []models.CatalogEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.CatalogEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func kw(v float64) *float64 { return &v }

// testCatalog is a small catalog covering both fuels and both tiers.
func testCatalog() []models.Device {
	return []models.Device{
		{ID: "hp-9", Brand: "Daikin", Model: "Altherma", Fuel: "electric", PowerKW: kw(9), PriceEUR: kw(7200), Tier: models.TierPremium},
		{ID: "gas-24", Brand: "Viessmann", Model: "Vitodens", Fuel: "gas", PowerKWMin: kw(3.2), PowerKWMax: kw(24), PriceEUR: kw(2100), Tier: models.TierBudget},
		{ID: "el-8", Brand: "Kospel", Model: "EKCO", Fuel: "electric", PowerKW: kw(8), PriceEUR: kw(900), Tier: models.TierBudget},
	}
}

func newTestServices() (*service.Service, *mockCatalog, *mockAdvisor) {
	eng := engine.New(testCatalog(), engine.DefaultConfig())
	catalog := &mockCatalog{eng: eng}
	advisor := &mockAdvisor{eng: eng}
	return &service.Service{Catalog: catalog, Advisor: advisor}, catalog, advisor
}
