package citation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/finewarden/internal/citation"
	citationStore "github.com/rgoodwin/finewarden/internal/citation/store"
	internalHttp "github.com/rgoodwin/finewarden/internal/http"
	citationHandler "github.com/rgoodwin/finewarden/internal/http/citation"
	"github.com/rgoodwin/finewarden/internal/registry"
	registryStore "github.com/rgoodwin/finewarden/internal/registry/store"
)

var (
	driverID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	officerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	refs := registryStore.NewMemory()
	refs.AddDriver(registry.Driver{
		ID:            driverID,
		LicenseNumber: "D1234567",
		FirstName:     "Avery",
		LastName:      "Holt",
	})
	refs.AddVehicle(registry.Vehicle{
		ID:          uuid.New(),
		PlateNumber: "8XQR441",
		Make:        "Honda",
		Model:       "Civic",
		Year:        2019,
		OwnerID:     driverID,
	})
	refs.AddOfficer(registry.Officer{
		ID:          officerID,
		BadgeNumber: "4411",
		FirstName:   "Rosa",
		LastName:    "Ferreira",
		Active:      true,
	})
	refs.AddViolationType(registry.ViolationType{
		Code:        "SPD10",
		Description: "Speeding 10-19 over limit",
		BaseFine:    125000,
		Moving:      true,
		Points:      2,
	})

	svc := citation.NewService(citationStore.NewMemory(refs), registry.NewService(refs), 90)
	router := internalHttp.New(citationHandler.NewHandler(svc), "")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)

	return resp
}

func issueCitation(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, srv.URL+"/api/v1/citations", map[string]any{
		"driver_license": "D1234567",
		"plate_number":   "8XQR441",
		"officer_id":     officerID,
		"violation_code": "SPD10",
		"violation_at":   time.Now().UTC().Add(-time.Hour),
		"location":       "Main St & 5th Ave",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Number string `json:"number"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.Number)

	return created.Number
}

func TestHandler_Issue(t *testing.T) {
	srv := newTestServer(t)

	number := issueCitation(t, srv)

	resp, err := http.Get(srv.URL + "/api/v1/citations/" + number)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Number      string `json:"number"`
		FineAmount  int64  `json:"fine_amount"`
		Status      string `json:"status"`
		Outstanding int64  `json:"outstanding"`
		Points      []struct {
			Points int `json:"points"`
		} `json:"points"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))

	assert.Equal(t, number, detail.Number)
	assert.Equal(t, int64(125000), detail.FineAmount)
	assert.Equal(t, "issued", detail.Status)
	assert.Equal(t, int64(125000), detail.Outstanding)
	require.Len(t, detail.Points, 1)
	assert.Equal(t, 2, detail.Points[0].Points)
}

func TestHandler_Issue_Errors(t *testing.T) {
	srv := newTestServer(t)

	base := map[string]any{
		"driver_license": "D1234567",
		"officer_id":     officerID,
		"violation_code": "SPD10",
		"violation_at":   time.Now().UTC().Add(-time.Hour),
		"location":       "Main St & 5th Ave",
	}

	type testCase struct {
		name       string
		override   map[string]any
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "UnknownDriver",
			override:   map[string]any{"driver_license": "NOPE"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "UnknownPlate",
			override:   map[string]any{"plate_number": "ZZZ999"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "UnknownViolationCode",
			override:   map[string]any{"violation_code": "XXX99"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "UnknownOfficer",
			override:   map[string]any{"officer_id": uuid.New()},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "FutureViolationTime",
			override:   map[string]any{"violation_at": time.Now().UTC().Add(time.Hour)},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "MissingLocation",
			override:   map[string]any{"location": ""},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{}
			for k, v := range base {
				body[k] = v
			}
			for k, v := range tt.override {
				body[k] = v
			}

			resp := postJSON(t, srv.URL+"/api/v1/citations", body)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_Pay(t *testing.T) {
	srv := newTestServer(t)
	number := issueCitation(t, srv)
	payURL := fmt.Sprintf("%s/api/v1/citations/%s/payments", srv.URL, number)

	resp := postJSON(t, payURL, map[string]any{"amount": 50000, "method": "card"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payment struct {
		ID     uuid.UUID `json:"id"`
		Amount int64     `json:"amount"`
		Method string    `json:"method"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payment))
	assert.NotEqual(t, uuid.Nil, payment.ID)
	assert.Equal(t, int64(50000), payment.Amount)
	assert.Equal(t, "card", payment.Method)

	// Overpaying the remainder is rejected, exact settlement is accepted.
	over := postJSON(t, payURL, map[string]any{"amount": 80000, "method": "cash"})
	over.Body.Close()
	assert.Equal(t, http.StatusConflict, over.StatusCode)

	rest := postJSON(t, payURL, map[string]any{"amount": 75000, "method": "online", "reference": "web-81"})
	rest.Body.Close()
	require.Equal(t, http.StatusCreated, rest.StatusCode)

	detail, err := http.Get(srv.URL + "/api/v1/citations/" + number)
	require.NoError(t, err)
	defer detail.Body.Close()

	var got struct {
		Status      string `json:"status"`
		TotalPaid   int64  `json:"total_paid"`
		Outstanding int64  `json:"outstanding"`
	}
	require.NoError(t, json.NewDecoder(detail.Body).Decode(&got))
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, int64(125000), got.TotalPaid)
	assert.Zero(t, got.Outstanding)

	// A settled citation accepts no further payments.
	again := postJSON(t, payURL, map[string]any{"amount": 100, "method": "cash"})
	again.Body.Close()
	assert.Equal(t, http.StatusConflict, again.StatusCode)
}

func TestHandler_Pay_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	number := issueCitation(t, srv)
	payURL := fmt.Sprintf("%s/api/v1/citations/%s/payments", srv.URL, number)

	type testCase struct {
		name string
		body map[string]any
	}

	tests := []testCase{
		{name: "ZeroAmount", body: map[string]any{"amount": 0, "method": "cash"}},
		{name: "NegativeAmount", body: map[string]any{"amount": -500, "method": "cash"}},
		{name: "UnknownMethod", body: map[string]any{"amount": 500, "method": "barter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, payURL, tt.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_Pay_UnknownCitation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/citations/000000XXXXX/payments", map[string]any{
		"amount": 500,
		"method": "cash",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_SweepAndSettlement(t *testing.T) {
	srv := newTestServer(t)
	number := issueCitation(t, srv)

	// The fresh citation is inside its grace period, so nothing escalates.
	resp := postJSON(t, srv.URL+"/api/v1/citations/sweep", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var swept struct {
		Escalated int `json:"escalated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&swept))
	assert.Zero(t, swept.Escalated)

	// Settlement only applies to warranted citations.
	settle := postJSON(t, fmt.Sprintf("%s/api/v1/citations/%s/settlement", srv.URL, number), map[string]any{
		"amount": 125000,
		"method": "cash",
	})
	settle.Body.Close()
	assert.Equal(t, http.StatusConflict, settle.StatusCode)
}

func TestHandler_OverdueReport(t *testing.T) {
	srv := newTestServer(t)
	issueCitation(t, srv)

	resp, err := http.Get(srv.URL + "/api/v1/reports/overdue?min_days=30")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []struct {
		CitationNumber string `json:"citation_number"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.Empty(t, rows)

	bad, err := http.Get(srv.URL + "/api/v1/reports/overdue?min_days=abc")
	require.NoError(t, err)
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestHandler_DriverPoints(t *testing.T) {
	srv := newTestServer(t)
	issueCitation(t, srv)

	resp, err := http.Get(srv.URL + "/api/v1/drivers/D1234567/points")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		LicenseNumber string `json:"license_number"`
		Points        int    `json:"points"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "D1234567", got.LicenseNumber)
	assert.Equal(t, 2, got.Points)

	missing, err := http.Get(srv.URL + "/api/v1/drivers/UNKNOWN/points")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
