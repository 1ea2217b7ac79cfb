package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDecision(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordDecision("code", "speed", "codestral", false, 10, 40*time.Microsecond)
	m.RecordDecision("code", "speed", "codestral", false, 12, 50*time.Microsecond)
	m.RecordDecision("audio", "economy", "gpt-4o", true, 3, 20*time.Microsecond)

	if got := testutil.ToFloat64(m.Decisions.WithLabelValues("code", "speed", "codestral")); got != 2 {
		t.Errorf("decisions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ModalityFallbacks.WithLabelValues("audio")); got != 1 {
		t.Errorf("fallbacks = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ModalityFallbacks.WithLabelValues("code")); got != 0 {
		t.Errorf("code fallbacks = %v, want 0", got)
	}
	if got := testutil.CollectAndCount(m.EstimatedTokens); got != 2 {
		t.Errorf("token histogram series = %d, want 2", got)
	}
}

func TestRecordError(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordError("REQ-001", "http")
	m.RecordError("REQ-001", "http")
	m.RecordError("", "cli")

	if got := testutil.ToFloat64(m.Errors.WithLabelValues("REQ-001", "http")); got != 2 {
		t.Errorf("errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Errors.WithLabelValues("UNKNOWN", "cli")); got != 1 {
		t.Errorf("unknown errors = %v, want 1", got)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/route-model", 200, time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/route-model", 400, time.Millisecond)

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/route-model", "400")); got != 1 {
		t.Errorf("400 requests = %v, want 1", got)
	}
}

func TestCatalogGauge(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.CatalogModels.Set(18)

	if got := testutil.ToFloat64(m.CatalogModels); got != 18 {
		t.Errorf("catalog models = %v, want 18", got)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering the same metrics twice should panic")
		}
	}()
	NewMetrics(reg)
}

func TestHandlerFor(t *testing.T) {
	reg, m := NewRegistry()
	m.RecordDecision("text", "economy", "llama-3.1-8b", false, 5, time.Microsecond)

	rec := httptest.NewRecorder()
	HandlerFor(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"paikeys_routing_decisions_total", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %s", want)
		}
	}
}

func TestDefault(t *testing.T) {
	Reset()
	defer Reset()

	reg1, m1 := Default()
	reg2, m2 := Default()
	if reg1 != reg2 || m1 != m2 {
		t.Error("Default should return the same instance")
	}
}
