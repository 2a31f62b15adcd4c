package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures metric labels.
type Config struct {
	ServiceName string
}

// Metrics holds the Prometheus instruments of the tax service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	calculations        *prometheus.CounterVec
	effectiveRate       *prometheus.HistogramVec
	recommendations     *prometheus.CounterVec
	breakEvenIterations prometheus.Histogram
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New creates the instruments and registers them; a nil registerer uses the
// default one.
func New(registerer prometheus.Registerer, cfg Config) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "itrgo"
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "itrgo_tax_calculations_total",
			Help:        "Tax liabilities computed, by regime.",
			ConstLabels: constLabels,
		}, []string{"regime"}),
		effectiveRate: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "itrgo_effective_tax_rate_percent",
			Help:        "Effective tax rate of computed liabilities, by regime.",
			Buckets:     []float64{0, 1, 2.5, 5, 7.5, 10, 15, 20, 25, 30, 35, 40},
			ConstLabels: constLabels,
		}, []string{"regime"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "itrgo_regime_recommendations_total",
			Help:        "Regime comparisons, by recommended regime.",
			ConstLabels: constLabels,
		}, []string{"recommended"}),
		breakEvenIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "itrgo_break_even_iterations",
			Help:        "Binary search iterations per break-even solve.",
			Buckets:     []float64{0, 5, 10, 15, 20, 25, 30, 40, 64},
			ConstLabels: constLabels,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "itrgo_http_requests_total",
			Help:        "HTTP requests by route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "itrgo_http_request_duration_seconds",
			Help:        "HTTP request latency by route.",
			Buckets:     []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
	}

	registerer.MustRegister(
		m.calculations,
		m.effectiveRate,
		m.recommendations,
		m.breakEvenIterations,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveCalculation records one regime liability.
func (m *Metrics) ObserveCalculation(regime string, effectiveRate float64) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(regime).Inc()
	m.effectiveRate.WithLabelValues(regime).Observe(effectiveRate)
}

// ObserveRecommendation records the outcome of a comparison.
func (m *Metrics) ObserveRecommendation(recommended string) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(recommended).Inc()
}

// ObserveBreakEven records the iterations one solve needed.
func (m *Metrics) ObserveBreakEven(iterations int) {
	if m == nil {
		return
	}
	m.breakEvenIterations.Observe(float64(iterations))
}

// ObserveHTTP records a served request. route is the matched route pattern,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
