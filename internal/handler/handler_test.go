package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealgrind/underwriting-service/internal/models"
	"github.com/dealgrind/underwriting-service/internal/service"
)

func newTestHandler() *Handler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	// The compute endpoint never touches the repository.
	return NewHandler(service.NewService(nil, log, nil))
}

func TestComputeMetricsEndpoint(t *testing.T) {
	h := newTestHandler()

	body := `{
		"strategy": "LTR",
		"purchase_price": "$200,000",
		"monthly_rent": 2000,
		"property_taxes": 200,
		"insurance": 100,
		"management_fee_pct": "8%",
		"capex_pct": 2,
		"vacancy_pct": 4,
		"repairs_pct": 2,
		"loans": [{"amount": "160,000", "annual_rate_pct": 6, "term_months": 360}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ComputeMetrics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var m models.Metrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.InDelta(t, 1380, m.MonthlyNOI, 0.001)
	assert.InDelta(t, 420.72, m.MonthlyCashFlow, 0.01)
	assert.True(t, m.CashOnCash.Unbounded)
}

func TestComputeMetricsEndpointUnknownStrategy(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader(`{"strategy": "Flip"}`))
	rec := httptest.NewRecorder()
	h.ComputeMetrics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown analysis strategy")
}

func TestComputeMetricsEndpointBadBody(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.ComputeMetrics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeMetricsEndpointInfiniteSentinelWireShape(t *testing.T) {
	h := newTestHandler()

	// All-cash lease option with no fee: invested capital is zero, the wire
	// shape for cash-on-cash must be the literal string "Infinite".
	req := httptest.NewRequest(http.MethodPost, "/metrics",
		strings.NewReader(`{"strategy": "Lease Option", "monthly_rent": 1500}`))
	rec := httptest.NewRecorder()
	h.ComputeMetrics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cash_on_cash":"Infinite"`)
}
