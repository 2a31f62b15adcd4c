package metrics

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCalculation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, Config{ServiceName: "itrgo-test"})

	m.ObserveCalculation("old", 1.35)
	m.ObserveCalculation("old", 12.5)
	m.ObserveCalculation("new", 0)

	if got := testutil.ToFloat64(m.calculations.WithLabelValues("old")); got != 2 {
		t.Fatalf("expected 2 old-regime calculations, got %v", got)
	}
	if got := testutil.ToFloat64(m.calculations.WithLabelValues("new")); got != 1 {
		t.Fatalf("expected 1 new-regime calculation, got %v", got)
	}
	if got := testutil.CollectAndCount(m.effectiveRate); got != 2 {
		t.Fatalf("expected 2 effective rate series, got %d", got)
	}
}

func TestObserveRecommendationAndBreakEven(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, Config{})

	m.ObserveRecommendation("new")
	m.ObserveRecommendation("new")
	m.ObserveRecommendation("either")
	m.ObserveBreakEven(21)

	if got := testutil.ToFloat64(m.recommendations.WithLabelValues("new")); got != 2 {
		t.Fatalf("expected 2 new recommendations, got %v", got)
	}

	expected := `
# HELP itrgo_break_even_iterations Binary search iterations per break-even solve.
# TYPE itrgo_break_even_iterations histogram
itrgo_break_even_iterations_bucket{service="itrgo",le="0"} 0
itrgo_break_even_iterations_bucket{service="itrgo",le="5"} 0
itrgo_break_even_iterations_bucket{service="itrgo",le="10"} 0
itrgo_break_even_iterations_bucket{service="itrgo",le="15"} 0
itrgo_break_even_iterations_bucket{service="itrgo",le="20"} 0
itrgo_break_even_iterations_bucket{service="itrgo",le="25"} 1
itrgo_break_even_iterations_bucket{service="itrgo",le="30"} 1
itrgo_break_even_iterations_bucket{service="itrgo",le="40"} 1
itrgo_break_even_iterations_bucket{service="itrgo",le="64"} 1
itrgo_break_even_iterations_bucket{service="itrgo",le="+Inf"} 1
itrgo_break_even_iterations_sum{service="itrgo"} 21
itrgo_break_even_iterations_count{service="itrgo"} 1
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "itrgo_break_even_iterations"); err != nil {
		t.Fatalf("unexpected histogram: %v", err)
	}
}

func TestObserveHTTP(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry, Config{})

	m.ObserveHTTP(http.MethodPost, "/v1/tax/compare", http.StatusOK, 3*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "/v1/tax/compare", http.StatusBadRequest, time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/v1/tax/compare", "200")); got != 1 {
		t.Fatalf("expected one 200, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched routes to share a label, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveCalculation("old", 1)
	m.ObserveRecommendation("old")
	m.ObserveBreakEven(1)
	m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry, Config{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustRegister to panic on duplicate registration")
		}
	}()
	New(registry, Config{})
}
