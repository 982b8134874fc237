package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `{
	"premium": [
		{"id": "hp-9", "brand": "Daikin", "model": "Altherma", "type": "heat pump", "fuel": "electric",
		 "power_kw": 9, "price_eur": 7200, "scop": 4.5, "min_temp": -25, "refrigerant": "R32",
		 "dhw": "integruotas", "vendors": [{"name": "Šilumos centras", "email": "info@example.lt"}]}
	],
	"budget": [
		{"id": "el-8", "brand": "Kospel", "model": "EKCO", "type": "electric boiler", "fuel": "electric",
		 "power_kw": 8, "price_eur": 900, "dhw": "none"},
		{"id": "gas-24", "brand": "Viessmann", "model": "Vitodens", "fuel": "gas",
		 "power_kw_min": 3.2, "power_kw_max": 24}
	]
}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"heatadvisor"}, args...))
	return out.String(), err
}

func TestEstimateCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"estimate", "--area", "120"}, "7 kW\n"},
		{[]string{"estimate", "--area", "120", "--insulation", "low"}, "10 kW\n"},
		{[]string{"estimate", "--area", "20"}, "5 kW\n"},
	}
	for _, tc := range cases {
		out, err := run(t, tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if out != tc.want {
			t.Fatalf("%v: got %q, want %q", tc.args, out, tc.want)
		}
	}
}

func TestRecommendCommand_Text(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, "recommend", "--catalog", path, "--area", "120", "--dhw", "integrated")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	for _, want := range []string{
		"Required capacity: 7 kW",
		"Premium\n",
		"Budget\n",
		"Daikin Altherma (heat pump) | 9 kW |",
		"SCOP 4.5, down to -25 °C, R32",
		"hot water: needs a separate boiler",
		"vendor: Šilumos centras, info@example.lt",
		"Kospel EKCO (electric boiler) | 8 kW |",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Viessmann") {
		t.Fatalf("gas boiler listed without gas access:\n%s", out)
	}
	if strings.Index(out, "Premium") > strings.Index(out, "Budget\n") {
		t.Fatalf("premium should come first without a budget:\n%s", out)
	}
}

func TestRecommendCommand_JSON(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, "recommend", "--catalog", path, "--area", "120", "--gas", "--sort", "price_asc", "--json")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	var res struct {
		RequiredKW int `json:"required_kw"`
		Devices    []struct {
			ID string `json:"id"`
		} `json:"devices"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	var ids []string
	for _, d := range res.Devices {
		ids = append(ids, d.ID)
	}
	// Unpriced devices sort last on price_asc.
	if strings.Join(ids, ",") != "el-8,hp-9,gas-24" {
		t.Fatalf("unexpected order: %v", ids)
	}
}

func TestRecommendCommand_EmptyStates(t *testing.T) {
	path := writeCatalog(t)

	out, err := run(t, "recommend", "--catalog", path, "--area", "900", "--insulation", "low")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "No devices match") {
		t.Fatalf("expected a no-match message:\n%s", out)
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err = run(t, "recommend", "--catalog", empty, "--area", "100")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "The catalog is empty.") {
		t.Fatalf("expected an empty-catalog message:\n%s", out)
	}
}

func TestRecommendCommand_Errors(t *testing.T) {
	path := writeCatalog(t)

	if _, err := run(t, "recommend", "--catalog", path, "--sort", "cheapest"); err == nil {
		t.Fatalf("expected error for an unknown sort mode")
	}
	if _, err := run(t, "recommend", "--catalog", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for a missing catalog")
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--catalog", writeCatalog(t))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, want := range []string{
		"Devices: 3\n",
		"Fuel: electric=2 gas=1\n",
		"Tier: budget=2 premium=1\n",
		"Unpriced: 1\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
