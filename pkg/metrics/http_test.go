package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCountersAndHistogram(t *testing.T) {
	m := NewHTTPMetrics()
	m.ObserveRequest(http.MethodGet, "/api/v1/parks", http.StatusOK, 120*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/parks", http.StatusOK, 80*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/v1/parks", http.StatusUnprocessableEntity, 5*time.Millisecond)

	mfs, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", "status", "2xx"); err != nil {
		t.Fatalf("fetch 2xx counter: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 successful requests, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", "status", "4xx"); err != nil {
		t.Fatalf("fetch 4xx counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected 1 client error, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "http_request_duration_seconds", "route", "/api/v1/parks"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	m := NewHTTPMetrics()
	m.ObserveRequest(http.MethodGet, "/health/live", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Fatal("expected exposition output to contain http_requests_total")
	}
}

func TestNormalizeRoute(t *testing.T) {
	if got := normalizeRoute(""); got != "unmatched" {
		t.Fatalf("expected unmatched, got %q", got)
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	var total float64
	found := false
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			total += metric.GetCounter().GetValue()
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
	}
	return total, nil
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
